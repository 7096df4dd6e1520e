// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package bytesutil searches byte arrays and reallocates owned buffers.
package bytesutil
