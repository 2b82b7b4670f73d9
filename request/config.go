// SPDX-License-Identifier: MIT

package request

import "fmt"

// Defaults for Config.
const (
	DefaultIndexBase = 0
	DefaultPrecision = 5
	maxPrecision     = 17
)

// Config controls how a Runner interprets and prints the stream.
//   - IndexBase: 0 or 1; subtracted from every position and range bound read.
//   - Precision: decimals printed for query results, in [0, 17].
//   - RejectNonFinite: fail the run when a query yields NaN or ±Inf.
type Config struct {
	IndexBase       int
	Precision       int
	RejectNonFinite bool
}

// DefaultConfig returns 0-based indices and 5-digit output.
func DefaultConfig() Config {
	return Config{
		IndexBase: DefaultIndexBase,
		Precision: DefaultPrecision,
	}
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.IndexBase != 0 && c.IndexBase != 1 {
		return fmt.Errorf("%w: index base must be 0 or 1, got %d", ErrBadConfig, c.IndexBase)
	}
	if c.Precision < 0 || c.Precision > maxPrecision {
		return fmt.Errorf("%w: precision must be in [0,%d], got %d", ErrBadConfig, maxPrecision, c.Precision)
	}

	return nil
}
