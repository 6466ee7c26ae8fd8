package selectindex

import (
	"errors"
	"math"
	"math/bits"
	"unsafe"

	"github.com/hupe1980/rs01dict/internal/bitarray"
	"github.com/hupe1980/rs01dict/internal/bitpattern"
	"github.com/hupe1980/rs01dict/internal/intvec"
)

// ErrInvalidParams is returned when the sampling parameters are unusable.
var ErrInvalidParams = errors.New("selectindex: invalid parameters")

// Params configures sampling and the dense count trees.
type Params struct {
	// Popcnt is the number of b-bits per group.
	Popcnt int

	// SparseLen is the largest span, in bits, of a dense group.
	SparseLen int

	// Branch is the branching factor of the dense count trees.
	Branch int

	// NodeLen is the leaf length in bits, at most 64.
	NodeLen int
}

// Validate checks the parameters.
func (p Params) Validate() error {
	if p.Popcnt < 1 || p.SparseLen < 0 || p.Branch < 2 || p.NodeLen < 1 || p.NodeLen > bitarray.WordBits {
		return ErrInvalidParams
	}
	return nil
}

type kind uint8

const (
	sparse kind = iota
	dense
)

// group is one sampled block; kind selects which fields are meaningful.
type group struct {
	// start is the position of the group's first b-bit.
	start uint64

	// off indexes positions (sparse) or prefix (dense).
	off uint64

	// leaves and height describe the dense count tree.
	leaves uint32
	height uint8

	kind kind
}

// Stats describes the group classification of an Index.
type Stats struct {
	Sparse int
	Dense  int
}

// Index answers select queries for one bit value.
type Index struct {
	bits   *bitarray.Array
	table  *bitpattern.Table
	bit    bool
	params Params
	count  uint64

	groups []group

	// positions holds the absolute positions of b-bits in sparse groups.
	positions *intvec.Vec

	// prefix holds, level by level from the root's children down to the
	// parents of the leaves, each node's count of b-bits in earlier siblings.
	// Leaf counts are not stored; they are popcounts of at most Branch words.
	prefix *intvec.Vec

	stats Stats
}

// New builds the select index for bits equal to bit.
func New(arr *bitarray.Array, table *bitpattern.Table, bit bool, params Params) (*Index, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	idx := &Index{
		bits:      arr,
		table:     table,
		bit:       bit,
		params:    params,
		count:     arr.Count(bit),
		positions: intvec.New(intvec.BitLen(arr.Len())),
		prefix:    intvec.New(intvec.BitLen(uint64(params.Popcnt))),
	}

	pos := make([]uint64, 0, params.Popcnt)
	for j := range arr.NumWords() {
		w := arr.WordOf(bit, j)
		for w != 0 {
			pos = append(pos, uint64(j)*bitarray.WordBits+uint64(bits.TrailingZeros64(w)))
			w &= w - 1
			if len(pos) == params.Popcnt {
				idx.addGroup(pos)
				pos = pos[:0]
			}
		}
	}
	if len(pos) > 0 {
		idx.addGroup(pos)
	}

	return idx, nil
}

func (idx *Index) addGroup(pos []uint64) {
	start := pos[0]
	span := pos[len(pos)-1] + 1 - start

	nodeLen := uint64(idx.params.NodeLen)
	if span > uint64(idx.params.SparseLen) || span/nodeLen >= math.MaxUint32 {
		idx.groups = append(idx.groups, group{kind: sparse, start: start, off: uint64(idx.positions.Len())})
		for _, p := range pos {
			idx.positions.Push(p)
		}
		idx.stats.Sparse++
		return
	}

	branch := idx.params.Branch
	leaves := int((span + nodeLen - 1) / nodeLen)
	levels := [][]uint64{make([]uint64, leaves)}
	for _, p := range pos {
		levels[0][(p-start)/nodeLen]++
	}
	for len(levels[len(levels)-1]) > 1 {
		below := levels[len(levels)-1]
		above := make([]uint64, (len(below)+branch-1)/branch)
		for c, cnt := range below {
			above[c/branch] += cnt
		}
		levels = append(levels, above)
	}

	g := group{
		kind:   dense,
		start:  start,
		off:    uint64(idx.prefix.Len()),
		leaves: uint32(leaves),
		height: uint8(len(levels) - 1),
	}

	// levels[0] is the leaf level; emit top-down, skipping the root and the
	// leaves.
	for d := len(levels) - 2; d >= 1; d-- {
		var acc uint64
		for c, cnt := range levels[d] {
			if c%branch == 0 {
				acc = 0
			}
			idx.prefix.Push(acc)
			acc += cnt
		}
	}

	idx.groups = append(idx.groups, g)
	idx.stats.Dense++
}

// Bit returns the bit value this index selects.
func (idx *Index) Bit() bool { return idx.bit }

// Count returns the number of b-bits.
func (idx *Index) Count() uint64 { return idx.count }

// Stats returns the group classification counts.
func (idx *Index) Stats() Stats { return idx.stats }

// Select returns the position of the k-th (0-indexed) b-bit. k must be < Count().
func (idx *Index) Select(k uint64) uint64 {
	popcnt := uint64(idx.params.Popcnt)
	g := &idx.groups[k/popcnt]
	r := k % popcnt

	if g.kind == sparse {
		return idx.positions.Get(int(g.off + r))
	}
	return idx.selectDense(g, r)
}

func (idx *Index) selectDense(g *group, r uint64) uint64 {
	branch := idx.params.Branch
	leaves := int(g.leaves)
	height := int(g.height)

	// pow is branch^(height-d) while visiting depth d.
	pow := 1
	for range height {
		pow *= branch
	}

	node := 0
	levelOff := int(g.off)
	for d := 1; d < height; d++ {
		pow /= branch
		size := (leaves + pow - 1) / pow

		first := node * branch
		last := min(first+branch, size)

		c := first
		for c+1 < last && idx.prefix.Get(levelOff+c+1) <= r {
			c++
		}
		r -= idx.prefix.Get(levelOff + c)

		node = c
		levelOff += size
	}

	// node is the parent of the target leaf; count its children directly.
	nodeLen := uint64(idx.params.NodeLen)
	first := node * branch
	last := min(first+branch, leaves)
	for c := first; c < last; c++ {
		leafStart := g.start + uint64(c)*nodeLen
		w := idx.bits.RangeOf(idx.bit, leafStart, leafStart+nodeLen)
		cnt := uint64(idx.table.PopCount64(w))
		if r < cnt {
			return leafStart + uint64(idx.table.Select64(w, int(r)))
		}
		r -= cnt
	}

	panic("selectindex: rank not found in dense group")
}

// SizeInBits returns the index size in bits, excluding the bit array and the
// shared table.
func (idx *Index) SizeInBits() uint64 {
	groupBits := uint64(unsafe.Sizeof(group{})) * 8
	return uint64(len(idx.groups))*groupBits + idx.positions.SizeInBits() + idx.prefix.SizeInBits()
}
