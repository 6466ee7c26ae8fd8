// Package bitpattern provides precomputed per-pattern answers for small
// sub-words and the word-level rank/select helpers built on top of them.
//
// A Table covers every bit pattern of a configured width w (1, 2, 4, 8 or 16)
// and answers, for each pattern:
//   - its population count
//   - the number of set bits below every offset (prefix rank)
//   - the offset of its k-th set bit, or NotFound
//
// Tables are pure functions of the width. They are built lazily, once per
// width, and shared by every dictionary in the process:
//
//	t, _ := bitpattern.Get(8)
//	t.Select64(0b1011_0000, 1) // 5
//
// # Kernels
//
// Popcounts of whole 64-bit words either sum table entries or use the CPU's
// population count instruction. The kernel is chosen once at init via
// golang.org/x/sys/cpu and can be forced with RS01DICT_KERNEL=table|hardware.
// Results never depend on the active kernel.
package bitpattern
