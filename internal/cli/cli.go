// SPDX-License-Identifier: MIT

// Package cli implements the affinetree command-line interface.
//
// # Commands
//
//   - run:     execute a request stream (file or stdin) against a Composition Tree
//   - apply:   compose a chain of transformations and apply it to one point
//   - version: print build information
//
// # Logging
//
// Logs go to stderr through charmbracelet/log; --verbose switches to debug
// level, which logs every request.
//
// # Configuration
//
// An optional TOML file (--config) sets defaults; explicit flags win.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const (
	appName     = "affinetree"
	verboseFlag = "verbose"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// version is overridden at build time via -ldflags.
var version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	in     io.Reader
	out    io.Writer
}

// New creates a CLI reading stdin from in, writing results to out and logs to logw.
func New(in io.Reader, out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		in:     in,
		out:    out,
	}
}

// newLogger creates a logger with "HH:MM:SS.ms" timestamps filtered at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The persistent --verbose flag switches the logger to debug level and takes
// precedence over a log_level set in a config file.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Range composition of 2D affine transformations",
		Long:         `affinetree keeps a sequence of 2D affine transformations in a segment tree and answers point-update and range-apply requests in O(log N).`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, verboseFlag, "v", false, "enable verbose logging")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.applyCommand())
	root.AddCommand(c.versionCommand())

	return root
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), appName+" "+version+"\n")
			return err
		},
	}
}
