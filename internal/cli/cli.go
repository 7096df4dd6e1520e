// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/jeranaias/leptutil/internal/config"
	"github.com/jeranaias/leptutil/internal/diag"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// App carries the streams and the state shared by all commands of one run.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	cfg     *config.Config
	diag    *diag.Emitter
	logFile *os.File
}

// Run executes the command line args and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := &App{Stdin: stdin, Stdout: stdout, Stderr: stderr}
	defer app.close()

	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return ExitSuccess
	}

	app.emitter().Report("leptutil", err)
	code := GetExitCode(err)
	if code == ExitUsageError {
		fmt.Fprintln(stderr, "Run 'leptutil --help' for usage.")
	}
	return code
}

// annotationConfigRepair marks commands that still run, on default
// settings, when the config file cannot be loaded.
const annotationConfigRepair = "leptutil/config-repair"

// NewRootCommand returns the root command with all subcommands wired in.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "leptutil",
		Short:         "Diagnostics, string, byte, file and path utilities",
		Long:          "leptutil exposes safe string handling, byte search, whole-file I/O, byte-order conversion, path splitting and elapsed-time measurement from the command line.",
		Version:       fmt.Sprintf("%s (commit %s, built %s, %s/%s)", Version, GitCommit, BuildDate, runtime.GOOS, runtime.GOARCH),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default $LEPTUTIL_CONFIG or ~/.leptutil/config.toml)")
	root.PersistentFlags().BoolP("quiet", "q", false, "print errors only")
	root.PersistentFlags().BoolP("verbose", "v", false, "print informational diagnostics")
	root.PersistentFlags().String("log", "", "append a JSON copy of every diagnostic to this file")
	root.PersistentFlags().StringP("output", "o", "table", "output format: table or json")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	root.AddCommand(
		newSplitDirCmd(app),
		newSplitExtCmd(app),
		newJoinPathCmd(app),
		newTokenizeCmd(app),
		newRemoveCharsCmd(app),
		newReplaceCmd(app),
		newFindCmd(app),
		newSwapCmd(app),
		newCatCmd(app),
		newWriteCmd(app),
		newTimeCmd(app),
		newConfigCmd(app),
	)

	return root
}

// setup loads the configuration and builds the diagnostic emitter from it
// and the global flags.
func (a *App) setup(cmd *cobra.Command) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")
	if quiet && verbose {
		return usageErrorf("--quiet and --verbose are mutually exclusive")
	}
	if format := outputFormat(cmd); format != "table" && format != "json" {
		return usageErrorf("invalid output format '%s', must be one of: table, json", format)
	}

	path, _ := cmd.Flags().GetString("config")
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFromPath(path)
	} else {
		cfg, err = config.Load()
	}
	var loadErr error
	if err != nil {
		if cmd.Annotations[annotationConfigRepair] == "" {
			return err
		}
		loadErr = err
		cfg = config.Default()
		cfg.ApplyEnvOverrides()
		if cfg.Validate() != nil {
			cfg = config.Default()
		}
	}

	opts := cfg.EmitterOptions(a.Stderr)
	switch {
	case quiet:
		opts.Severity = diag.SeverityError
	case verbose:
		opts.Severity = diag.SeverityInfo
	}

	logPath, _ := cmd.Flags().GetString("log")
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.logFile = f
		opts.Logger = slog.New(slog.NewJSONHandler(f, nil)).With("command", cmd.Name())
	}

	a.cfg = cfg
	a.diag = diag.New(opts)
	if loadErr != nil {
		a.diag.Warning("using defaults, "+loadErr.Error(), "config")
	}
	return nil
}

// emitter returns the configured emitter, or a plain one on Stderr when
// setup did not complete.
func (a *App) emitter() *diag.Emitter {
	if a.diag == nil {
		a.diag = diag.New(diag.Options{Writer: a.Stderr})
	}
	return a.diag
}

func (a *App) close() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

// outputFormat returns "json" or "table" from the --output flag.
func outputFormat(cmd *cobra.Command) string {
	f, _ := cmd.Flags().GetString("output")
	return f
}
