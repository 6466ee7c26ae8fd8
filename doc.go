// Package rs01dict provides a succinct rank/select dictionary over an
// immutable bit vector.
//
// Given n bits, a Dict answers in near-constant time:
//
//	Rank1(i)   number of ones in [0, i), 0 <= i <= n
//	Rank0(i)   number of zeros in [0, i)
//	Select1(k) position of the k-th one (0-indexed), 0 <= k < Ones()
//	Select0(k) position of the k-th zero, 0 <= k < Zeros()
//
// using an index that is small compared to the bits themselves. It is the
// building block for wavelet trees, compressed text indexes and compact
// tree encodings.
//
// # Quick Start
//
//	d, err := rs01dict.New([]bool{true, false, true, true})
//	if err != nil {
//	    return err
//	}
//	r, _ := d.Rank1(3)   // 2
//	p, _ := d.Select0(0) // 1
//
// Packed words, roaring bitmaps and bitsets are accepted directly:
//
//	d, _ := rs01dict.NewFromWords(words, n)
//	d, _ := rs01dict.FromRoaring(bm, n)
//	d, _ := rs01dict.FromBitSet(bs)
//
// # Structure
//
// Rank uses two levels of cumulative counts (large and small blocks) and
// finishes inside a small block with word popcounts. Select samples every
// SelectLargePopcnt-th matching bit; the span between samples is either
// stored as explicit positions (sparse) or covered by a shallow count tree
// (dense), decided per span at build time. Sub-word work goes through a
// process-wide bit-pattern table.
//
// All tuning constants live in Config. They change space and speed, never
// results:
//
//	d, _ := rs01dict.New(bits, rs01dict.WithConfig(rs01dict.DefaultConfig()))
//	d, _ := rs01dict.New(bits, rs01dict.WithAutoConfig())
//
// # Errors
//
// Queries never clamp. Out-of-range arguments return a *RangeError that
// matches ErrOutOfRange; invalid configurations return a *ConfigError that
// matches ErrInvalidConfig.
//
// # Concurrency
//
// A Dict is never modified after construction, so any number of goroutines
// may query it without coordination. WithConcurrency parallelizes the build.
package rs01dict
