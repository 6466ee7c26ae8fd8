// Package selectindex implements density-adaptive select over a packed bit
// array.
//
// An Index is built for one bit value b. Every Popcnt-th b-bit is an anchor,
// splitting the b-bits into groups of Popcnt consecutive ranks, so the group
// of rank k is k/Popcnt with no search. Each group spans the positions from
// its first to its last b-bit and is classified once at build time:
//
//   - sparse: span > SparseLen. The positions of all its b-bits are stored
//     explicitly and select is a single lookup.
//   - dense: span <= SparseLen. The span is cut into leaves of NodeLen bits
//     and covered by a count tree with Branch children per node. Each
//     internal non-root node stores the number of b-bits in its earlier
//     siblings; select descends the tree, counts the at most Branch leaves
//     under the last internal node with word popcounts and resolves the
//     offset inside the leaf with the shared bit-pattern table.
//
// Sparse groups cost space proportional to their popcount, which is cheap
// precisely because long spans are rare when there are many b-bits.
package selectindex
