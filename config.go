package rs01dict

import (
	"errors"
	"math"

	"github.com/hupe1980/rs01dict/internal/bitpattern"
	"github.com/hupe1980/rs01dict/internal/rank"
	"github.com/hupe1980/rs01dict/internal/selectindex"
)

// Config holds the tuning constants of a dictionary. They trade space for
// query time and never change query results.
type Config struct {
	// RankLargeLen is the rank large block length in bits (at most 65536).
	RankLargeLen int

	// RankSmallLen is the rank small block length in bits. It must divide
	// RankLargeLen.
	RankSmallLen int

	// SelectLargePopcnt is the number of matching bits between two select
	// anchors.
	SelectLargePopcnt int

	// SelectLargeSparseLen is the largest span, in bits, of a select group
	// that is still indexed densely. Wider groups store explicit positions.
	SelectLargeSparseLen int

	// SelectLargeBranch is the branching factor of dense select trees.
	SelectLargeBranch int

	// SelectLargeNodeLen is the leaf length of dense select trees in bits
	// (at most 64).
	SelectLargeNodeLen int

	// SubWordWidth is the pattern width of the shared bit-pattern table:
	// 1, 2, 4, 8 or 16.
	SubWordWidth int
}

// DefaultConfig returns word-aligned constants suited to most inputs.
func DefaultConfig() Config {
	return Config{
		RankLargeLen:         4096,
		RankSmallLen:         256,
		SelectLargePopcnt:    1024,
		SelectLargeSparseLen: 1 << 20,
		SelectLargeBranch:    8,
		SelectLargeNodeLen:   64,
		SubWordWidth:         8,
	}
}

// AutoConfig derives the constants from the input length using the classic
// asymptotic choices, with lg = log2(n):
//
//	RankSmallLen         = ceil(lg/2)
//	RankLargeLen         = (2*RankSmallLen)^2
//	SelectLargePopcnt    = ceil(lg^2/16)
//	SelectLargeSparseLen = ceil(lg^4/128)
//	SelectLargeBranch    = ceil(cbrt(lg))
//	SelectLargeNodeLen   = ceil(lg/2)
func AutoConfig(n uint64) Config {
	lg := max(1.0, math.Log2(float64(max(n, 1))))

	small := max(2, int(math.Ceil(lg/2)))
	return Config{
		RankLargeLen:         4 * small * small,
		RankSmallLen:         small,
		SelectLargePopcnt:    max(1, int(math.Ceil(lg*lg/16))),
		SelectLargeSparseLen: int(math.Ceil(math.Pow(lg, 4) / 128)),
		SelectLargeBranch:    max(2, int(math.Ceil(math.Cbrt(lg)))),
		SelectLargeNodeLen:   min(64, small),
		SubWordWidth:         8,
	}
}

func (c Config) rankOptions(concurrency int) rank.Options {
	return rank.Options{
		LargeLen:    c.RankLargeLen,
		SmallLen:    c.RankSmallLen,
		Concurrency: concurrency,
	}
}

func (c Config) selectParams() selectindex.Params {
	return selectindex.Params{
		Popcnt:    c.SelectLargePopcnt,
		SparseLen: c.SelectLargeSparseLen,
		Branch:    c.SelectLargeBranch,
		NodeLen:   c.SelectLargeNodeLen,
	}
}

// Validate reports the first invalid field as a *ConfigError.
func (c Config) Validate() error {
	switch {
	case !bitpattern.ValidWidth(c.SubWordWidth):
		return &ConfigError{Field: "SubWordWidth", Value: c.SubWordWidth, Reason: "must be 1, 2, 4, 8 or 16", cause: bitpattern.ErrInvalidWidth}
	case c.RankSmallLen <= 0:
		return &ConfigError{Field: "RankSmallLen", Value: c.RankSmallLen, Reason: "must be positive", cause: rank.ErrInvalidBlockLen}
	case c.RankLargeLen <= 0 || c.RankLargeLen > rank.MaxLargeLen:
		return &ConfigError{Field: "RankLargeLen", Value: c.RankLargeLen, Reason: "must be in [1, 65536]", cause: rank.ErrInvalidBlockLen}
	case c.RankLargeLen%c.RankSmallLen != 0:
		return &ConfigError{Field: "RankLargeLen", Value: c.RankLargeLen, Reason: "must be a multiple of RankSmallLen", cause: rank.ErrInvalidBlockLen}
	case c.SelectLargePopcnt < 1:
		return &ConfigError{Field: "SelectLargePopcnt", Value: c.SelectLargePopcnt, Reason: "must be positive", cause: selectindex.ErrInvalidParams}
	case c.SelectLargeSparseLen < 0:
		return &ConfigError{Field: "SelectLargeSparseLen", Value: c.SelectLargeSparseLen, Reason: "must not be negative", cause: selectindex.ErrInvalidParams}
	case c.SelectLargeBranch < 2:
		return &ConfigError{Field: "SelectLargeBranch", Value: c.SelectLargeBranch, Reason: "must be at least 2", cause: selectindex.ErrInvalidParams}
	case c.SelectLargeNodeLen < 1 || c.SelectLargeNodeLen > 64:
		return &ConfigError{Field: "SelectLargeNodeLen", Value: c.SelectLargeNodeLen, Reason: "must be in [1, 64]", cause: selectindex.ErrInvalidParams}
	}
	return nil
}

// isConfigError reports whether err is a component configuration error.
func isConfigError(err error) bool {
	return errors.Is(err, rank.ErrInvalidBlockLen) ||
		errors.Is(err, selectindex.ErrInvalidParams) ||
		errors.Is(err, bitpattern.ErrInvalidWidth)
}
