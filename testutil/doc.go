// Package testutil provides testing utilities for rs01dict.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random bit sequences and a naive
// rank/select oracle to check the succinct structures against.
//
// # Random Bit Generation
//
//	rng := testutil.NewRNG(seed)
//	bits := rng.Bernoulli(10_000, 0.1) // ~10% ones
//	bits = rng.Clustered(10_000, 64, 0.01)
//
// # Ground Truth
//
//	oracle := testutil.NewOracle(bits)
//	oracle.Rank1(i)
//	oracle.Select1(k)
package testutil
