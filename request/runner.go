// SPDX-License-Identifier: MIT

package request

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/affinetree/affine"
	"github.com/katalvlaran/affinetree/segtree"
)

// Stats counts the requests a Run executed.
type Stats struct {
	Transforms int
	Queries    int
	Updates    int
}

// Runner executes request streams against a freshly built Tree.
type Runner struct {
	cfg      Config
	logger   *log.Logger
	treeOpts []segtree.Option
}

// NewRunner validates cfg and returns a Runner. A nil logger discards output.
// treeOpts are passed to segtree.New for every run.
func NewRunner(cfg Config, logger *log.Logger, treeOpts ...segtree.Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Runner{cfg: cfg, logger: logger, treeOpts: treeOpts}, nil
}

// Run decodes the header and the initial sequence from in, builds the tree,
// then executes every request, writing one line per query to out.
//
// Implementation:
//   - Stage 1: read "N Q" and N transformations.
//   - Stage 2: build the tree.
//   - Stage 3: for each of Q requests, check ctx, shift indices by IndexBase,
//     dispatch to Update or QueryPoint.
//
// Behavior highlights:
//   - The first failing request aborts the run; output written so far is flushed.
//   - A stream shorter than Q requests is an io.ErrUnexpectedEOF error.
//
// Errors:
//   - decode errors (ErrUnknownOp, ErrArity, ErrMalformed, io.ErrUnexpectedEOF),
//   - segtree.ErrEmptySequence, segtree.ErrOutOfRange,
//   - ErrNonFinite when Config.RejectNonFinite is set,
//   - ctx.Err() on cancellation.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (stats Stats, err error) {
	w := bufio.NewWriter(out)
	defer func() {
		if ferr := w.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}()

	dec := NewDecoder(in)
	n, q, err := dec.Header()
	if err != nil {
		return stats, fmt.Errorf("header: %w", err)
	}

	// n is untrusted; grow as transformations decode so a bogus header ends
	// in io.ErrUnexpectedEOF instead of a huge allocation.
	var seq []affine.Transform
	for i := 0; i < n; i++ {
		t, err := dec.Transform()
		if err != nil {
			return stats, fmt.Errorf("transformation %d: %w", i+1, err)
		}
		seq = append(seq, t)
	}
	stats.Transforms = n

	tree, err := segtree.New(seq, r.treeOpts...)
	if err != nil {
		return stats, err
	}
	r.logger.Info("built composition tree", "transforms", n, "nodes", tree.Nodes(), "strategy", tree.Strategy())

	var req Request
	for i := 0; i < q; i++ {
		if err = ctx.Err(); err != nil {
			return stats, err
		}
		req, err = dec.Next()
		if errors.Is(err, io.EOF) {
			return stats, fmt.Errorf("request %d of %d: %w", i+1, q, io.ErrUnexpectedEOF)
		}
		if err != nil {
			return stats, fmt.Errorf("request %d: %w", i+1, err)
		}
		if err = r.exec(tree, req, w, &stats); err != nil {
			return stats, fmt.Errorf("request %d: %w", i+1, err)
		}
	}
	r.logger.Info("done", "queries", stats.Queries, "updates", stats.Updates)

	return stats, nil
}

func (r *Runner) exec(tree *segtree.Tree, req Request, w io.Writer, stats *Stats) error {
	base := r.cfg.IndexBase
	switch req.Kind {
	case KindUpdate:
		r.logger.Debug("update", "pos", req.Pos, "transform", req.T)
		pos, err := shiftIndex(req.Pos, base)
		if err != nil {
			return err
		}
		if err = tree.Update(pos, req.T); err != nil {
			return err
		}
		stats.Updates++

		return nil
	default:
		r.logger.Debug("query", "point", req.Point, "l", req.L, "r", req.R)
		l, err := shiftIndex(req.L, base)
		if err != nil {
			return err
		}
		rr, err := shiftIndex(req.R, base)
		if err != nil {
			return err
		}
		res, err := tree.QueryPoint(l, rr, req.Point)
		if err != nil {
			return err
		}
		if r.cfg.RejectNonFinite && !res.IsFinite() {
			return fmt.Errorf("%w: %v over [%d,%d]", ErrNonFinite, res, req.L, req.R)
		}
		stats.Queries++
		_, err = fmt.Fprintln(w, FormatResult(req.Point, res, r.cfg.Precision))

		return err
	}
}

// shiftIndex converts a stream index to a 0-based tree index. Values whose
// shift would wrap around are out of range.
func shiftIndex(v, base int) (int, error) {
	if v < math.MinInt+base {
		return 0, fmt.Errorf("index %d with base %d: %w", v, base, segtree.ErrOutOfRange)
	}

	return v - base, nil
}
