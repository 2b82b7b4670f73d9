// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/affinetree/request"
	"github.com/katalvlaran/affinetree/segtree"
)

type runOpts struct {
	config          string
	indexBase       int
	precision       int
	strategy        string
	rejectNonFinite bool
}

func (c *CLI) runCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Execute a request stream against a Composition Tree",
		Long: `Reads "N Q", N transformations (Translate dx dy | Scale sx sy | Rotate deg)
and Q requests (Q x y l r | U pos <transformation>) from file or stdin, and
prints "(x,y): <new_x> <new_y>" for every query.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadConfig(opts.config)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, &s, opts); err != nil {
				return err
			}
			if s.logLevel != nil && !cmd.Flags().Changed(verboseFlag) {
				c.SetLogLevel(*s.logLevel)
			}

			in := c.in
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			return c.runStream(cmd, s, in, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML config file")
	cmd.Flags().IntVar(&opts.indexBase, "index-base", request.DefaultIndexBase, "index base used by the stream (0 or 1)")
	cmd.Flags().IntVarP(&opts.precision, "precision", "p", request.DefaultPrecision, "decimals printed for results")
	cmd.Flags().StringVar(&opts.strategy, "strategy", segtree.DefaultStrategy.String(), "tree walk: recursive or iterative")
	cmd.Flags().BoolVar(&opts.rejectNonFinite, "reject-non-finite", false, "fail when a query yields NaN or Inf")

	return cmd
}

// applyFlags overrides s with every flag the user set explicitly.
func applyFlags(cmd *cobra.Command, s *settings, opts runOpts) error {
	flags := cmd.Flags()
	if flags.Changed("index-base") {
		s.request.IndexBase = opts.indexBase
	}
	if flags.Changed("precision") {
		s.request.Precision = opts.precision
	}
	if flags.Changed("reject-non-finite") {
		s.request.RejectNonFinite = opts.rejectNonFinite
	}
	if flags.Changed("strategy") {
		st, err := segtree.ParseStrategy(opts.strategy)
		if err != nil {
			return err
		}
		s.strategy = st
	}

	return s.request.Validate()
}

func (c *CLI) runStream(cmd *cobra.Command, s settings, in io.Reader, out io.Writer) error {
	runner, err := request.NewRunner(s.request, c.Logger, segtree.WithStrategy(s.strategy))
	if err != nil {
		return err
	}

	start := time.Now()
	stats, err := runner.Run(cmd.Context(), in, out)
	if err != nil {
		return err
	}
	c.Logger.Debugf("executed %d queries, %d updates (%s)",
		stats.Queries, stats.Updates, time.Since(start).Round(time.Millisecond))

	return nil
}
