package benchmark_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/rs01dict"
	"github.com/hupe1980/rs01dict/testutil"
)

// ============================================================================
// RANK / SELECT BENCHMARKS
// ============================================================================
//
// Run: go test -bench=. -run=^$ ./benchmark_test/...
//
// Each benchmark sweeps the densities from testutil.Densities so that the
// sparse and dense select paths are both covered. Queries are drawn from a
// fixed pseudo-random sequence to defeat the branch predictor.

const benchLen = 1 << 22

var benchConfigs = []struct {
	name string
	opt  rs01dict.Option
}{
	{"default", rs01dict.WithConfig(rs01dict.DefaultConfig())},
	{"auto", rs01dict.WithAutoConfig()},
}

func buildDict(b *testing.B, p float64, opt rs01dict.Option) *rs01dict.Dict {
	b.Helper()

	rng := testutil.NewRNG(42)
	d, err := rs01dict.New(rng.Bernoulli(benchLen, p), opt)
	if err != nil {
		b.Fatalf("build: %v", err)
	}
	return d
}

func queries(n int, limit uint64) []uint64 {
	rng := testutil.NewRNG(7)
	out := make([]uint64, n)
	if limit == 0 {
		return out
	}
	for i := range out {
		x := uint64(0)
		for j, bit := range rng.Bernoulli(64, 0.5) {
			if bit {
				x |= 1 << uint(j)
			}
		}
		out[i] = x % limit
	}
	return out
}

func BenchmarkBuild(b *testing.B) {
	for _, p := range []float64{0.5, 1e-3} {
		bits := testutil.NewRNG(42).Bernoulli(benchLen, p)
		for _, conc := range []int{1, 4} {
			b.Run(fmt.Sprintf("p=%g/conc=%d", p, conc), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(benchLen / 8)
				for i := 0; i < b.N; i++ {
					if _, err := rs01dict.New(bits, rs01dict.WithConcurrency(conc)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkRank1(b *testing.B) {
	for _, cfg := range benchConfigs {
		for _, p := range testutil.Densities {
			b.Run(fmt.Sprintf("%s/p=%g", cfg.name, p), func(b *testing.B) {
				d := buildDict(b, p, cfg.opt)
				qs := queries(4096, d.Len()+1)

				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := d.Rank1(qs[i%len(qs)]); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkSelect(b *testing.B) {
	for _, cfg := range benchConfigs {
		for _, p := range testutil.Densities {
			for _, bit := range []bool{false, true} {
				d := buildDict(b, p, cfg.opt)
				count := d.Zeros()
				if bit {
					count = d.Ones()
				}
				if count == 0 {
					continue
				}

				b.Run(fmt.Sprintf("%s/p=%g/bit=%t", cfg.name, p, bit), func(b *testing.B) {
					qs := queries(4096, count)

					b.ReportAllocs()
					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						if _, err := d.Select(bit, qs[i%len(qs)]); err != nil {
							b.Fatal(err)
						}
					}

					b.StopTimer()
					si := d.SizeInfo()
					b.ReportMetric(si.Overhead(), "overhead")
				})
			}
		}
	}
}
