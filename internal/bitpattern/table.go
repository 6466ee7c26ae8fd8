package bitpattern

import (
	"errors"
	"math/bits"
	"sync"
)

// WordBits is the width of a packed word.
const WordBits = 64

// MaxWidth is the largest supported sub-word width.
const MaxWidth = 16

// NotFound is returned by the select helpers when the requested set bit does
// not exist in the pattern. It is larger than any valid offset.
const NotFound = 0xFF

// ErrInvalidWidth is returned by Get for unsupported sub-word widths.
var ErrInvalidWidth = errors.New("bitpattern: width must be one of 1, 2, 4, 8, 16")

// Table holds precomputed answers for every pattern of Width bits.
type Table struct {
	width int
	mask  uint64

	// count[p] is the popcount of p.
	count []uint8

	// rank[p*width+i] is the number of set bits of p below offset i.
	rank []uint8

	// sel[p*width+k] is the offset of the k-th set bit of p, or NotFound.
	sel []uint8
}

var tables [MaxWidth + 1]struct {
	once sync.Once
	t    *Table
}

// ValidWidth reports whether w can be used as a sub-word width.
func ValidWidth(w int) bool {
	return w > 0 && w <= MaxWidth && w&(w-1) == 0
}

// Get returns the shared table for the given width, building it on first use.
func Get(width int) (*Table, error) {
	if !ValidWidth(width) {
		return nil, ErrInvalidWidth
	}

	slot := &tables[width]
	slot.once.Do(func() {
		slot.t = build(width)
	})

	return slot.t, nil
}

func build(width int) *Table {
	patterns := 1 << width
	t := &Table{
		width: width,
		mask:  uint64(patterns - 1),
		count: make([]uint8, patterns),
		rank:  make([]uint8, patterns*width),
		sel:   make([]uint8, patterns*width),
	}

	for p := range patterns {
		base := p * width
		for j := range width {
			t.sel[base+j] = NotFound
		}

		cur := 0
		for j := range width {
			t.rank[base+j] = uint8(cur)
			if p>>j&1 != 0 {
				t.sel[base+cur] = uint8(j)
				cur++
			}
		}
		t.count[p] = uint8(cur)
	}

	return t
}

// Width returns the sub-word width in bits.
func (t *Table) Width() int { return t.width }

// Count returns the population count of pattern p.
func (t *Table) Count(p uint64) int {
	return int(t.count[p&t.mask])
}

// Rank returns the number of set bits of pattern p at offsets [0, i).
// i must be in [0, Width]; Rank(p, Width) equals Count(p).
func (t *Table) Rank(p uint64, i int) int {
	p &= t.mask
	if i >= t.width {
		return int(t.count[p])
	}
	return int(t.rank[int(p)*t.width+i])
}

// Select returns the offset of the k-th (0-indexed) set bit of pattern p, or
// NotFound when p has k or fewer set bits.
func (t *Table) Select(p uint64, k int) int {
	if k < 0 || k >= t.width {
		return NotFound
	}
	return int(t.sel[int(p&t.mask)*t.width+k])
}

// SizeInBits returns the memory held by the table, in bits.
func (t *Table) SizeInBits() uint64 {
	return uint64(len(t.count)+len(t.rank)+len(t.sel)) * 8
}

// PopCount64 returns the population count of w using the active kernel.
func (t *Table) PopCount64(w uint64) int {
	if activeKernel == Hardware {
		return bits.OnesCount64(w)
	}
	return t.popCountTable(w)
}

func (t *Table) popCountTable(w uint64) int {
	n := 0
	for w != 0 {
		n += t.Count(w)
		w >>= uint(t.width)
	}
	return n
}

// Rank64 returns the number of set bits of w at offsets [0, i), i <= 64.
//
// Whole sub-words below i are popcounted; the sub-word holding offset i is
// answered from the prefix-rank table.
func (t *Table) Rank64(w uint64, i int) int {
	if i <= 0 {
		return 0
	}
	if i >= WordBits {
		return t.PopCount64(w)
	}

	full := i / t.width * t.width
	n := 0
	if full > 0 {
		n = t.PopCount64(w & (1<<uint(full) - 1))
	}
	return n + t.Rank(w>>uint(full), i-full)
}

// Select64 returns the offset of the k-th (0-indexed) set bit of w, or
// NotFound when w has k or fewer set bits.
//
// The word is scanned one sub-word at a time; the final offset comes from the
// table.
func (t *Table) Select64(w uint64, k int) int {
	if k < 0 {
		return NotFound
	}
	for off := 0; off < WordBits && w != 0; off += t.width {
		p := w & t.mask
		c := int(t.count[p])
		if k < c {
			return off + int(t.sel[int(p)*t.width+k])
		}
		k -= c
		w >>= uint(t.width)
	}
	return NotFound
}
