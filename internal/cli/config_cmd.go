// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/leptutil/internal/config"
	"github.com/jeranaias/leptutil/internal/diag"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and edit the leptutil configuration",
	}
	cmd.AddCommand(
		newConfigPathCmd(app),
		newConfigShowCmd(app),
		newConfigGetCmd(app),
		newConfigSetCmd(app),
		newConfigInitCmd(app),
	)
	return cmd
}

// configPath returns the --config flag value or the default location.
func configPath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path, nil
	}
	return config.ConfigPath()
}

// keyError turns a Get or Set failure into a usage error. Unknown keys
// list the valid ones.
func keyError(err error) error {
	if errors.Is(err, config.ErrUnknownKey) {
		return usageErrorf("%w (valid keys: %s)", err, strings.Join(config.GetAllKeys(), ", "))
	}
	return &UsageError{Err: err}
}

func newConfigPathCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "path",
		Annotations: map[string]string{annotationConfigRepair: "true"},
		Short:       "Print the config file location",
		Args:        usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(cmd)
			if err != nil {
				return err
			}
			p := newPrinter(cmd, app.Stdout)
			if p.isJSON() {
				return p.json(path)
			}
			p.line(path)
			return nil
		},
	}
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd, app.Stdout)
			if p.isJSON() {
				return p.json(app.cfg)
			}
			_, err := fmt.Fprint(app.Stdout, app.cfg.String())
			return err
		},
	}
}

func newConfigGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one setting, e.g. diagnostics.severity",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.cfg.Get(args[0])
			if err != nil {
				return keyError(err)
			}
			p := newPrinter(cmd, app.Stdout)
			if p.isJSON() {
				return p.json(v)
			}
			p.line(fmt.Sprint(v))
			return nil
		},
	}
}

func newConfigSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "set <key> <value>",
		Annotations: map[string]string{annotationConfigRepair: "true"},
		Short:       "Change one setting and save the config file",
		Args:        usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(cmd)
			if err != nil {
				return err
			}
			cfg := app.cfg.Clone()
			if err := cfg.Set(args[0], args[1]); err != nil {
				return keyError(err)
			}
			if err := cfg.Validate(); err != nil {
				return &UsageError{Err: err}
			}
			if err := config.SaveTOML(cfg, path); err != nil {
				return err
			}
			app.diag.Info("saved "+path, "config")
			return nil
		},
	}
}

func newConfigInitCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "init",
		Annotations: map[string]string{annotationConfigRepair: "true"},
		Short:       "Write a config file with the default settings",
		Args:        usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(cmd)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return diag.Errorf("config.init", diag.ErrInvalidArg, "%s already exists, use --force to overwrite", path)
			}
			if err := config.SaveTOML(config.Default(), path); err != nil {
				return err
			}
			app.diag.Info("wrote "+path, "config")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
