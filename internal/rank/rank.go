// Package rank implements the two-level rank directory over a packed bit array.
//
// The array is cut into large blocks of LargeLen bits and each large block
// into small blocks of SmallLen bits. For every large block the index keeps
// the absolute number of ones before it; for every small block the number of
// ones between the start of its large block and itself. A query adds both
// counters and finishes the remaining < SmallLen bits with word popcounts:
//
//	rank1(i) = large[i/LargeLen] + small[i/SmallLen] + popcount(bits[i/SmallLen*SmallLen, i))
package rank

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/rs01dict/internal/bitarray"
	"github.com/hupe1980/rs01dict/internal/bitpattern"
)

// MaxLargeLen is the largest supported large block; relative counts within a
// large block are stored as uint16.
const MaxLargeLen = 1 << 16

// ErrInvalidBlockLen is returned when the block lengths cannot form a directory.
var ErrInvalidBlockLen = errors.New("rank: small block length must divide large block length")

// Options configures the build.
type Options struct {
	// LargeLen is the large block length in bits.
	LargeLen int

	// SmallLen is the small block length in bits. It must divide LargeLen.
	SmallLen int

	// Concurrency bounds the goroutines counting large blocks. Values <= 1
	// build sequentially.
	Concurrency int
}

// Index is an immutable rank directory.
type Index struct {
	bits     *bitarray.Array
	table    *bitpattern.Table
	largeLen uint64
	smallLen uint64

	// large[j] is the number of ones in [0, j*largeLen).
	large []uint64

	// small[j] is the number of ones in [j*smallLen/largeLen*largeLen, j*smallLen).
	small []uint16
}

// Validate checks the block lengths.
func (o Options) Validate() error {
	if o.SmallLen <= 0 || o.LargeLen <= 0 || o.LargeLen%o.SmallLen != 0 || o.LargeLen > MaxLargeLen {
		return ErrInvalidBlockLen
	}
	return nil
}

// New builds the rank directory for bits.
func New(bits *bitarray.Array, table *bitpattern.Table, opts Options) (*Index, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	n := bits.Len()
	idx := &Index{
		bits:     bits,
		table:    table,
		largeLen: uint64(opts.LargeLen),
		smallLen: uint64(opts.SmallLen),
		large:    make([]uint64, n/uint64(opts.LargeLen)+1),
		small:    make([]uint16, n/uint64(opts.SmallLen)+1),
	}

	// Pass 1: relative small counts and per-large-block totals. Large blocks
	// are independent, so disjoint ranges may be counted concurrently.
	totals := make([]uint64, len(idx.large))
	var g errgroup.Group
	g.SetLimit(max(1, opts.Concurrency))

	chunk := max(1, len(idx.large)/max(1, opts.Concurrency))
	for lo := 0; lo < len(idx.large); lo += chunk {
		hi := min(lo+chunk, len(idx.large))
		g.Go(func() error {
			for j := lo; j < hi; j++ {
				totals[j] = idx.fillLargeBlock(j)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Pass 2: prefix sums over large blocks.
	var acc uint64
	for j, c := range totals {
		idx.large[j] = acc
		acc += c
	}

	return idx, nil
}

// fillLargeBlock writes the relative small counts of large block j and
// returns the number of ones inside it.
func (idx *Index) fillLargeBlock(j int) uint64 {
	n := idx.bits.Len()
	start := uint64(j) * idx.largeLen
	end := min(start+idx.largeLen, n)

	var rel uint64
	for s := start; s <= end; s += idx.smallLen {
		si := s / idx.smallLen
		if si >= uint64(len(idx.small)) {
			break
		}
		if s < start+idx.largeLen {
			idx.small[si] = uint16(rel)
		}
		if s < end {
			rel += idx.popcount(s, min(s+idx.smallLen, end))
		}
	}
	return rel
}

// popcount counts ones in [start, end) one word-sized chunk at a time. A
// trailing partial chunk is ranked within its word.
func (idx *Index) popcount(start, end uint64) uint64 {
	var c uint64
	for s := start; s < end; s += bitarray.WordBits {
		w := idx.bits.Range(s, s+bitarray.WordBits)
		c += uint64(idx.table.Rank64(w, int(min(end-s, bitarray.WordBits))))
	}
	return c
}

// Len returns the length of the indexed array.
func (idx *Index) Len() uint64 { return idx.bits.Len() }

// Rank1 returns the number of ones in [0, i). i must be <= Len().
func (idx *Index) Rank1(i uint64) uint64 {
	si := i / idx.smallLen
	base := si * idx.smallLen
	return idx.large[i/idx.largeLen] + uint64(idx.small[si]) + idx.popcount(base, i)
}

// Rank0 returns the number of zeros in [0, i). i must be <= Len().
func (idx *Index) Rank0(i uint64) uint64 {
	return i - idx.Rank1(i)
}

// Rank returns the number of bits equal to b in [0, i).
func (idx *Index) Rank(b bool, i uint64) uint64 {
	if b {
		return idx.Rank1(i)
	}
	return idx.Rank0(i)
}

// SizeInBits returns the directory size in bits, excluding the bit array and
// the shared table.
func (idx *Index) SizeInBits() uint64 {
	return uint64(len(idx.large))*64 + uint64(len(idx.small))*16
}
