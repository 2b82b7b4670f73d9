// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/affinetree/affine"
	"github.com/katalvlaran/affinetree/request"
)

func (c *CLI) applyCommand() *cobra.Command {
	var (
		ops       []string
		point     string
		precision int
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a chain of transformations to one point",
		Example: `  affinetree apply --point 1,0 --op "Translate 5 0" --op "Rotate 90" --op "Scale 2 2"
  (1,0): 0.00000 12.00000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(point)
			if err != nil {
				return err
			}
			chain := affine.Identity()
			for i, op := range ops {
				t, err := request.ParseOp(op)
				if err != nil {
					return fmt.Errorf("--op %d: %w", i+1, err)
				}
				c.Logger.Debug("op", "index", i, "transform", t)
				chain = chain.Then(t)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), request.FormatResult(p, chain.Apply(p), precision))
			return err
		},
	}

	cmd.Flags().StringArrayVar(&ops, "op", nil, `transformation, applied in order (e.g. "Rotate 90")`)
	cmd.Flags().StringVar(&point, "point", "0,0", "input point as x,y")
	cmd.Flags().IntVarP(&precision, "precision", "p", request.DefaultPrecision, "decimals printed for the result")

	return cmd
}

// parsePoint parses "x,y".
func parsePoint(s string) (affine.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return affine.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return affine.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return affine.Point{}, fmt.Errorf("point %q: %w", s, err)
	}

	return affine.Point{X: x, Y: y}, nil
}
