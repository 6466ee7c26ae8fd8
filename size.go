package rs01dict

import "github.com/hupe1980/rs01dict/internal/bitpattern"

// SizeInfo breaks down the memory of a dictionary in bits.
type SizeInfo struct {
	// Bits is the packed bit array.
	Bits uint64

	// Rank is the rank directory.
	Rank uint64

	// Select0 and Select1 are the select indices.
	Select0 uint64
	Select1 uint64

	// Table is the shared bit-pattern table. It is counted once per process,
	// not per dictionary.
	Table uint64
}

// Index returns the space of the rank and select structures.
func (s SizeInfo) Index() uint64 {
	return s.Rank + s.Select0 + s.Select1
}

// Overhead returns the index space relative to the bit array.
func (s SizeInfo) Overhead() float64 {
	if s.Bits == 0 {
		return 0
	}
	return float64(s.Index()) / float64(s.Bits)
}

// SizeInfo reports the memory held by the dictionary.
func (d *Dict) SizeInfo() SizeInfo {
	return SizeInfo{
		Bits:    d.bits.SizeInBits(),
		Rank:    d.rank.SizeInBits(),
		Select0: d.sel[0].SizeInBits(),
		Select1: d.sel[1].SizeInBits(),
		Table:   d.table.SizeInBits(),
	}
}

// PopcountKernel names the whole-word popcount implementation in use:
// "hardware" or "table". It can be forced with the RS01DICT_KERNEL
// environment variable.
func PopcountKernel() string {
	return bitpattern.ActiveKernel().String()
}
