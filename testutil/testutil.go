package testutil

import (
	"math/rand"
	"sync"
)

// Densities used across the dictionary tests, from all-ones to all-zeros.
var Densities = []float64{1.0, 0.999, 0.9, 0.5, 0.1, 1.0e-3, 0.0}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Bernoulli generates n independent bits, each set with probability p.
func (r *RNG) Bernoulli(n int, p float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	bits := make([]bool, n)
	for i := range n {
		bits[i] = r.rand.Float64() < p
	}

	return bits
}

// Clustered generates n bits where runs of runLen ones start with probability
// p at each position not already covered by a run, so adjacent runs may
// merge. Long empty stretches between runs produce the sparse select groups
// that uniform densities rarely hit.
func (r *RNG) Clustered(n, runLen int, p float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		if r.rand.Float64() >= p {
			continue
		}
		for j := i; j < min(n, i+runLen); j++ {
			bits[j] = true
		}
		i += max(runLen, 1) - 1
	}

	return bits
}

// Words packs bits LSB-first into 64-bit words.
func Words(bits []bool) []uint64 {
	words := make([]uint64, (len(bits)+63)/64)
	for i, b := range bits {
		if b {
			words[i/64] |= 1 << uint(i%64)
		}
	}
	return words
}

// Oracle answers rank/select with plain prefix arrays.
type Oracle struct {
	bits  []bool
	rank1 []uint64
	pos   [2][]uint64
}

// NewOracle builds the oracle for bits.
func NewOracle(bits []bool) *Oracle {
	o := &Oracle{
		bits:  bits,
		rank1: make([]uint64, len(bits)+1),
	}
	for i, b := range bits {
		o.rank1[i+1] = o.rank1[i]
		if b {
			o.rank1[i+1]++
			o.pos[1] = append(o.pos[1], uint64(i))
		} else {
			o.pos[0] = append(o.pos[0], uint64(i))
		}
	}
	return o
}

// Len returns the number of bits.
func (o *Oracle) Len() uint64 { return uint64(len(o.bits)) }

// Count returns the number of bits equal to b.
func (o *Oracle) Count(b bool) uint64 { return uint64(len(o.pos[idx(b)])) }

// Rank1 returns the number of ones in [0, i).
func (o *Oracle) Rank1(i uint64) uint64 { return o.rank1[i] }

// Rank0 returns the number of zeros in [0, i).
func (o *Oracle) Rank0(i uint64) uint64 { return i - o.rank1[i] }

// Rank returns the number of bits equal to b in [0, i).
func (o *Oracle) Rank(b bool, i uint64) uint64 {
	if b {
		return o.Rank1(i)
	}
	return o.Rank0(i)
}

// Select returns the position of the k-th bit equal to b.
func (o *Oracle) Select(b bool, k uint64) uint64 { return o.pos[idx(b)][k] }

// Select1 returns the position of the k-th one.
func (o *Oracle) Select1(k uint64) uint64 { return o.pos[1][k] }

// Select0 returns the position of the k-th zero.
func (o *Oracle) Select0(k uint64) uint64 { return o.pos[0][k] }

func idx(b bool) int {
	if b {
		return 1
	}
	return 0
}
