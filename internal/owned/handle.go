// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package owned

// Handle owns at most one value of type T. The zero value is empty and
// ready to use. A Handle is not safe for concurrent use.
type Handle[T any] struct {
	v     T
	valid bool
}

// New returns a handle holding v.
func New[T any](v T) *Handle[T] {
	return &Handle[T]{v: v, valid: true}
}

// Get returns the held value and whether one is held. The handle keeps
// ownership.
func (h *Handle[T]) Get() (T, bool) {
	return h.v, h.valid
}

// Valid reports whether the handle holds a value.
func (h *Handle[T]) Valid() bool {
	return h.valid
}

// Replace releases the held value, if any, and stores v.
func (h *Handle[T]) Replace(v T) {
	h.Release()
	h.v = v
	h.valid = true
}

// Take moves the held value out and leaves the handle empty.
func (h *Handle[T]) Take() (T, bool) {
	v, ok := h.v, h.valid
	h.Release()
	return v, ok
}

// Release drops the held value. Releasing an empty handle is a no-op.
func (h *Handle[T]) Release() {
	var zero T
	h.v = zero
	h.valid = false
}
