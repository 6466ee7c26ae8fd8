package rs01dict

import (
	"context"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/rs01dict/internal/bitarray"
	"github.com/hupe1980/rs01dict/internal/bitpattern"
	"github.com/hupe1980/rs01dict/internal/rank"
	"github.com/hupe1980/rs01dict/internal/selectindex"
)

// Dict is an immutable bit vector with rank and select support.
//
// A Dict is safe for concurrent use by multiple goroutines.
type Dict struct {
	bits    *bitarray.Array
	table   *bitpattern.Table
	rank    *rank.Index
	sel     [2]*selectindex.Index // indexed by bit value
	cfg     Config
	metrics MetricsCollector
}

// New builds a dictionary over a boolean sequence.
func New(bits []bool, optFns ...Option) (*Dict, error) {
	return build(bitarray.FromBools(bits), optFns)
}

// NewFromWords builds a dictionary over the first n bits of a packed word
// slice. Bit i is read from words[i/64] at offset i%64; bits past n are
// ignored.
func NewFromWords(words []uint64, n uint64, optFns ...Option) (*Dict, error) {
	arr, err := bitarray.FromWords(words, n)
	if err != nil {
		return nil, translateError(err)
	}
	return build(arr, optFns)
}

// FromRoaring builds a dictionary of length n whose set bits are the members
// of bm. Every member must be below n.
func FromRoaring(bm *roaring.Bitmap, n uint64, optFns ...Option) (*Dict, error) {
	arr, err := bitarray.FromRoaring(bm, n)
	if err != nil {
		return nil, translateError(err)
	}
	return build(arr, optFns)
}

// FromBitSet builds a dictionary with the length and contents of bs.
func FromBitSet(bs *bitset.BitSet, optFns ...Option) (*Dict, error) {
	return build(bitarray.FromBitSet(bs), optFns)
}

func build(arr *bitarray.Array, optFns []Option) (*Dict, error) {
	o := applyOptions(optFns)
	cfg := o.config
	if o.autoConfig {
		cfg = AutoConfig(arr.Len())
	}

	start := time.Now()
	d, err := newDict(arr, cfg, o.concurrency)
	err = translateError(err)

	info := BuildInfo{Len: arr.Len(), Ones: arr.Ones(), Duration: time.Since(start)}
	if d != nil {
		si := d.SizeInfo()
		info.IndexBits = si.Index()
		for _, s := range d.sel {
			st := s.Stats()
			info.SparseGroups += st.Sparse
			info.DenseGroups += st.Dense
		}
		d.metrics = o.metricsCollector
	}

	o.logger.WithLen(arr.Len()).LogBuild(context.Background(), info, err)
	o.metricsCollector.RecordBuild(info, err)

	if err != nil {
		return nil, err
	}
	return d, nil
}

func newDict(arr *bitarray.Array, cfg Config, concurrency int) (*Dict, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	table, err := bitpattern.Get(cfg.SubWordWidth)
	if err != nil {
		return nil, err
	}

	d := &Dict{bits: arr, table: table, cfg: cfg}

	d.rank, err = rank.New(arr, table, cfg.rankOptions(concurrency))
	if err != nil {
		return nil, err
	}

	var g errgroup.Group
	g.SetLimit(max(1, concurrency))
	for _, b := range []bool{false, true} {
		g.Go(func() error {
			s, err := selectindex.New(arr, table, b, cfg.selectParams())
			if err != nil {
				return err
			}
			d.sel[bitIndex(b)] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return d, nil
}

func bitIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (d *Dict) reject(op string, arg, limit uint64) error {
	d.metrics.RecordRejectedQuery(op)
	return &RangeError{Op: op, Arg: arg, Limit: limit}
}

// Len returns the number of bits.
func (d *Dict) Len() uint64 { return d.bits.Len() }

// Ones returns the number of set bits.
func (d *Dict) Ones() uint64 { return d.bits.Ones() }

// Zeros returns the number of clear bits.
func (d *Dict) Zeros() uint64 { return d.bits.Zeros() }

// Config returns the tuning constants the dictionary was built with.
func (d *Dict) Config() Config { return d.cfg }

// Get returns bit i for 0 <= i < Len().
func (d *Dict) Get(i uint64) (bool, error) {
	if i >= d.bits.Len() {
		return false, d.reject("get", i, d.bits.Len())
	}
	return d.bits.Get(i), nil
}

// Rank1 returns the number of set bits in [0, i) for 0 <= i <= Len().
func (d *Dict) Rank1(i uint64) (uint64, error) {
	if i > d.bits.Len() {
		return 0, d.reject("rank1", i, d.bits.Len()+1)
	}
	return d.rank.Rank1(i), nil
}

// Rank0 returns the number of clear bits in [0, i) for 0 <= i <= Len().
func (d *Dict) Rank0(i uint64) (uint64, error) {
	if i > d.bits.Len() {
		return 0, d.reject("rank0", i, d.bits.Len()+1)
	}
	return d.rank.Rank0(i), nil
}

// Rank returns the number of bits equal to b in [0, i).
func (d *Dict) Rank(b bool, i uint64) (uint64, error) {
	if b {
		return d.Rank1(i)
	}
	return d.Rank0(i)
}

// Select1 returns the position of the k-th (0-indexed) set bit for
// 0 <= k < Ones().
func (d *Dict) Select1(k uint64) (uint64, error) {
	return d.Select(true, k)
}

// Select0 returns the position of the k-th (0-indexed) clear bit for
// 0 <= k < Zeros().
func (d *Dict) Select0(k uint64) (uint64, error) {
	return d.Select(false, k)
}

// Select returns the position of the k-th (0-indexed) bit equal to b.
func (d *Dict) Select(b bool, k uint64) (uint64, error) {
	s := d.sel[bitIndex(b)]
	if k >= s.Count() {
		op := "select0"
		if b {
			op = "select1"
		}
		return 0, d.reject(op, k, s.Count())
	}
	return s.Select(k), nil
}
