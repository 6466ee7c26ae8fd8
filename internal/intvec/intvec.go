// Package intvec stores unsigned integers of a fixed bit width packed
// back-to-back in 64-bit words.
//
// The select index keeps positions and node counts here so that each entry
// costs only as many bits as its value range needs.
package intvec

import "math/bits"

const wordBits = 64

// BitLen returns the number of bits needed to store any value in [0, n],
// with a minimum of 1.
func BitLen(n uint64) int {
	return max(1, bits.Len64(n))
}

// Vec is a packed vector of fixed-width unsigned integers.
type Vec struct {
	width int
	mask  uint64
	buf   []uint64
	len   int
}

// New returns an empty vector holding width-bit values, 1 <= width <= 64.
func New(width int) *Vec {
	if width < 1 || width > wordBits {
		panic("intvec: width must be in [1, 64]")
	}
	mask := ^uint64(0)
	if width < wordBits {
		mask = 1<<uint(width) - 1
	}
	return &Vec{width: width, mask: mask}
}

// Width returns the bit width of each entry.
func (v *Vec) Width() int { return v.width }

// Len returns the number of entries.
func (v *Vec) Len() int { return v.len }

// Push appends x. Bits of x above Width are dropped.
func (v *Vec) Push(x uint64) {
	x &= v.mask
	pos := v.len * v.width
	j, off := pos/wordBits, pos%wordBits
	if off == 0 {
		v.buf = append(v.buf, x)
	} else {
		v.buf[j] |= x << uint(off)
		if off+v.width > wordBits {
			v.buf = append(v.buf, x>>uint(wordBits-off))
		}
	}
	v.len++
}

// Get returns the i-th entry.
func (v *Vec) Get(i int) uint64 {
	pos := i * v.width
	j, off := pos/wordBits, pos%wordBits
	res := v.buf[j] >> uint(off)
	if off+v.width > wordBits {
		res |= v.buf[j+1] << uint(wordBits-off)
	}
	return res & v.mask
}

// SizeInBits returns the payload size in bits.
func (v *Vec) SizeInBits() uint64 {
	return uint64(v.len) * uint64(v.width)
}
