// Package bitarray provides the immutable packed bit array indexed by the
// rank/select structures.
//
// Bits are stored LSB-first in 64-bit words: bit i lives in word i/64 at
// offset i%64. Bits at positions >= Len() are always zero.
package bitarray

import (
	"errors"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// WordBits is the number of bits per word.
const WordBits = 64

// ErrPositionOutOfRange is returned when a source holds a set bit at or
// beyond the declared length.
var ErrPositionOutOfRange = errors.New("bitarray: set bit beyond length")

// ErrShortWords is returned when a word source cannot hold the declared length.
var ErrShortWords = errors.New("bitarray: not enough words for length")

// Array is an immutable packed sequence of bits.
type Array struct {
	words []uint64
	n     uint64
	ones  uint64
}

func wordsFor(n uint64) uint64 {
	return (n + WordBits - 1) / WordBits
}

// FromBools packs a boolean sequence.
func FromBools(src []bool) *Array {
	n := uint64(len(src))
	a := &Array{words: make([]uint64, wordsFor(n)), n: n}
	for i, b := range src {
		if b {
			a.words[i/WordBits] |= 1 << uint(i%WordBits)
			a.ones++
		}
	}
	return a
}

// FromWords copies the first n bits of a packed LSB-first word slice.
// Bits past n in the last word are cleared.
func FromWords(words []uint64, n uint64) (*Array, error) {
	need := wordsFor(n)
	if uint64(len(words)) < need {
		return nil, ErrShortWords
	}

	a := &Array{words: make([]uint64, need), n: n}
	copy(a.words, words[:need])
	if tail := n % WordBits; tail != 0 {
		a.words[need-1] &= 1<<tail - 1
	}
	a.countOnes()
	return a, nil
}

// FromRoaring builds an array of length n whose set bits are the members of bm.
func FromRoaring(bm *roaring.Bitmap, n uint64) (*Array, error) {
	a := &Array{words: make([]uint64, wordsFor(n)), n: n}
	if bm == nil || bm.IsEmpty() {
		return a, nil
	}
	if uint64(bm.Maximum()) >= n {
		return nil, ErrPositionOutOfRange
	}

	it := bm.Iterator()
	for it.HasNext() {
		x := it.Next()
		a.words[x/WordBits] |= 1 << (x % WordBits)
	}
	a.ones = bm.GetCardinality()
	return a, nil
}

// FromBitSet builds an array with the length and contents of bs.
func FromBitSet(bs *bitset.BitSet) *Array {
	if bs == nil {
		return &Array{}
	}

	n := uint64(bs.Len())
	a := &Array{words: make([]uint64, wordsFor(n)), n: n}
	for i, ok := bs.NextSet(0); ok && uint64(i) < n; i, ok = bs.NextSet(i + 1) {
		a.words[i/WordBits] |= 1 << (i % WordBits)
		a.ones++
	}
	return a
}

func (a *Array) countOnes() {
	a.ones = 0
	for _, w := range a.words {
		a.ones += uint64(bits.OnesCount64(w))
	}
}

// Len returns the number of bits.
func (a *Array) Len() uint64 { return a.n }

// Ones returns the number of set bits.
func (a *Array) Ones() uint64 { return a.ones }

// Zeros returns the number of clear bits.
func (a *Array) Zeros() uint64 { return a.n - a.ones }

// Count returns the number of bits equal to b.
func (a *Array) Count(b bool) uint64 {
	if b {
		return a.ones
	}
	return a.Zeros()
}

// NumWords returns the number of backing words.
func (a *Array) NumWords() int { return len(a.words) }

// Word returns the j-th backing word.
func (a *Array) Word(j int) uint64 { return a.words[j] }

// Get returns bit i. i must be < Len().
func (a *Array) Get(i uint64) bool {
	return a.words[i/WordBits]>>(i%WordBits)&1 != 0
}

// Range returns bits [start, end) right-aligned in a word, end-start <= 64.
// Positions at or beyond Len() read as zero.
func (a *Array) Range(start, end uint64) uint64 {
	if end <= start {
		return 0
	}

	j := start / WordBits
	if j >= uint64(len(a.words)) {
		return 0
	}

	off := start % WordBits
	res := a.words[j] >> off
	if off != 0 && j+1 < uint64(len(a.words)) {
		res |= a.words[j+1] << (WordBits - off)
	}
	if width := end - start; width < WordBits {
		res &= 1<<width - 1
	}
	return res
}

// RangeOf is Range for bits equal to b: for b == false the extracted bits are
// complemented, and positions beyond Len() still read as zero.
func (a *Array) RangeOf(b bool, start, end uint64) uint64 {
	if b {
		return a.Range(start, end)
	}
	if end > a.n {
		end = a.n
	}
	if end <= start {
		return 0
	}

	res := ^a.Range(start, end)
	if width := end - start; width < WordBits {
		res &= 1<<width - 1
	}
	return res
}

// WordOf returns the j-th word seen as bits equal to b, with positions beyond
// Len() cleared.
func (a *Array) WordOf(b bool, j int) uint64 {
	start := uint64(j) * WordBits
	return a.RangeOf(b, start, start+WordBits)
}

// SizeInBits returns the storage held by the array, in bits.
func (a *Array) SizeInBits() uint64 {
	return uint64(len(a.words)) * WordBits
}
