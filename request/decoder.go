// SPDX-License-Identifier: MIT

package request

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/affinetree/affine"
)

// Kind distinguishes the two request types.
type Kind int

const (
	// KindQuery applies a range of transformations to a point.
	KindQuery Kind = iota

	// KindUpdate replaces one transformation.
	KindUpdate
)

// String returns "query" or "update".
func (k Kind) String() string {
	if k == KindUpdate {
		return "update"
	}

	return "query"
}

// Request is one decoded request. Indices are as written in the stream,
// before any IndexBase shift.
type Request struct {
	Kind Kind

	// query fields
	Point affine.Point
	L, R  int

	// update fields
	Pos int
	T   affine.Transform
}

// Decoder reads tokens from a request stream.
type Decoder struct {
	sc *bufio.Scanner
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	return &Decoder{sc: sc}
}

// Header reads the leading "N Q" counts.
func (d *Decoder) Header() (n, q int, err error) {
	if n, err = d.int("N"); err != nil {
		return 0, 0, err
	}
	if q, err = d.int("Q"); err != nil {
		return 0, 0, err
	}
	if n < 0 || q < 0 {
		return 0, 0, fmt.Errorf("%w: negative count N=%d Q=%d", ErrMalformed, n, q)
	}

	return n, q, nil
}

// Transform reads one "Name params..." transformation.
func (d *Decoder) Transform() (affine.Transform, error) {
	name, err := d.token("transformation name")
	if err != nil {
		return affine.Transform{}, err
	}
	arity, err := OpArity(name)
	if err != nil {
		return affine.Transform{}, err
	}
	params := make([]float64, arity)
	for i := range params {
		if params[i], err = d.float(name + " parameter"); err != nil {
			return affine.Transform{}, err
		}
	}

	return FromOp(name, params)
}

// Next reads one request. It returns io.EOF when the stream ends cleanly
// between requests.
func (d *Decoder) Next() (Request, error) {
	if !d.sc.Scan() {
		if err := d.sc.Err(); err != nil {
			return Request{}, err
		}

		return Request{}, io.EOF
	}

	switch kind := d.sc.Text(); strings.ToUpper(kind) {
	case "Q":
		return d.query()
	case "U":
		return d.update()
	default:
		return Request{}, fmt.Errorf("%w: unknown request kind %q", ErrMalformed, kind)
	}
}

func (d *Decoder) query() (Request, error) {
	var (
		req = Request{Kind: KindQuery}
		err error
	)
	if req.Point.X, err = d.float("x"); err != nil {
		return Request{}, err
	}
	if req.Point.Y, err = d.float("y"); err != nil {
		return Request{}, err
	}
	if req.L, err = d.int("l"); err != nil {
		return Request{}, err
	}
	if req.R, err = d.int("r"); err != nil {
		return Request{}, err
	}

	return req, nil
}

func (d *Decoder) update() (Request, error) {
	var (
		req = Request{Kind: KindUpdate}
		err error
	)
	if req.Pos, err = d.int("pos"); err != nil {
		return Request{}, err
	}
	if req.T, err = d.Transform(); err != nil {
		return Request{}, err
	}

	return req, nil
}

// token returns the next token or io.ErrUnexpectedEOF naming what was expected.
func (d *Decoder) token(what string) (string, error) {
	if !d.sc.Scan() {
		if err := d.sc.Err(); err != nil {
			return "", err
		}

		return "", fmt.Errorf("reading %s: %w", what, io.ErrUnexpectedEOF)
	}

	return d.sc.Text(), nil
}

func (d *Decoder) int(what string) (int, error) {
	tok, err := d.token(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformed, what, tok)
	}

	return v, nil
}

func (d *Decoder) float(what string) (float64, error) {
	tok, err := d.token(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrMalformed, what, tok)
	}

	return v, nil
}

// peekExtra consumes and returns the next token, if any.
func (d *Decoder) peekExtra() (string, bool) {
	if d.sc.Scan() {
		return d.sc.Text(), true
	}

	return "", false
}
