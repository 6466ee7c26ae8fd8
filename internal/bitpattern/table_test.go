package bitpattern

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveSelect returns the offset of the k-th set bit of w or NotFound.
func naiveSelect(w uint64, k int) int {
	for i := range WordBits {
		if w>>uint(i)&1 != 0 {
			if k == 0 {
				return i
			}
			k--
		}
	}
	return NotFound
}

func TestGet_InvalidWidth(t *testing.T) {
	for _, w := range []int{0, -1, 3, 5, 12, 32, 64} {
		_, err := Get(w)
		assert.ErrorIs(t, err, ErrInvalidWidth, "width %d", w)
	}
}

func TestGet_Shared(t *testing.T) {
	a, err := Get(8)
	require.NoError(t, err)
	b, err := Get(8)
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 8, a.Width())
}

func TestTable_ByteEntries(t *testing.T) {
	tbl, err := Get(8)
	require.NoError(t, err)

	for p := uint64(0); p < 256; p++ {
		assert.Equal(t, bits.OnesCount64(p), tbl.Count(p))
		for i := 0; i <= 8; i++ {
			assert.Equal(t, bits.OnesCount64(p&(1<<uint(i)-1)), tbl.Rank(p, i), "p=%08b i=%d", p, i)
		}
		for k := 0; k < 8; k++ {
			assert.Equal(t, naiveSelect(p, k), tbl.Select(p, k), "p=%08b k=%d", p, k)
		}
	}
}

func TestTable_SmallPatterns(t *testing.T) {
	tbl, err := Get(4)
	require.NoError(t, err)

	// 0b0110: set bits at offsets 1 and 2.
	assert.Equal(t, 2, tbl.Count(0b0110))
	assert.Equal(t, 0, tbl.Rank(0b0110, 1))
	assert.Equal(t, 1, tbl.Rank(0b0110, 2))
	assert.Equal(t, 2, tbl.Rank(0b0110, 4))
	assert.Equal(t, 1, tbl.Select(0b0110, 0))
	assert.Equal(t, 2, tbl.Select(0b0110, 1))
	assert.Equal(t, NotFound, tbl.Select(0b0110, 2))
	assert.Equal(t, NotFound, tbl.Select(0b0110, -1))
}

func TestTable_WordHelpers(t *testing.T) {
	words := []uint64{
		0,
		1,
		1 << 63,
		^uint64(0),
		0xF0F0_0000_0000_F00F,
		0x8000_0001_0000_0100,
		0x0123_4567_89AB_CDEF,
	}

	for _, width := range []int{1, 2, 4, 8, 16} {
		tbl, err := Get(width)
		require.NoError(t, err)

		for _, kernel := range []Kernel{TableKernel, Hardware} {
			prev := activeKernel
			activeKernel = kernel

			for _, w := range words {
				assert.Equal(t, bits.OnesCount64(w), tbl.PopCount64(w), "width=%d kernel=%s w=%x", width, kernel, w)
				for i := 0; i <= WordBits; i++ {
					var want int
					if i == WordBits {
						want = bits.OnesCount64(w)
					} else {
						want = bits.OnesCount64(w & (1<<uint(i) - 1))
					}
					assert.Equal(t, want, tbl.Rank64(w, i))
				}
				for k := 0; k <= bits.OnesCount64(w); k++ {
					assert.Equal(t, naiveSelect(w, k), tbl.Select64(w, k), "width=%d w=%x k=%d", width, w, k)
				}
			}

			activeKernel = prev
		}
	}
}

func TestParseKernel(t *testing.T) {
	k, ok := ParseKernel(" Hardware ")
	assert.True(t, ok)
	assert.Equal(t, Hardware, k)

	k, ok = ParseKernel("table")
	assert.True(t, ok)
	assert.Equal(t, TableKernel, k)

	_, ok = ParseKernel("avx512")
	assert.False(t, ok)

	assert.Equal(t, "hardware", Hardware.String())
	assert.Equal(t, "unknown", Kernel(9).String())
}

func TestInitKernel_Override(t *testing.T) {
	prevKernel, prevOverride := activeKernel, hasOverride
	defer func() { activeKernel, hasOverride = prevKernel, prevOverride }()

	t.Setenv("RS01DICT_KERNEL", "table")
	initKernel()
	assert.Equal(t, TableKernel, ActiveKernel())
	assert.True(t, IsOverridden())
}

func TestInitKernel_UnsupportedOverride(t *testing.T) {
	prevKernel, prevOverride, prevPopcount := activeKernel, hasOverride, hasPopcount
	defer func() { activeKernel, hasOverride, hasPopcount = prevKernel, prevOverride, prevPopcount }()

	hasPopcount = false
	hasOverride = false
	t.Setenv("RS01DICT_KERNEL", "hardware")
	initKernel()
	assert.Equal(t, TableKernel, ActiveKernel())
	assert.False(t, IsOverridden())
	assert.False(t, HasHardwarePopcount())

	hasPopcount = true
	initKernel()
	assert.Equal(t, Hardware, ActiveKernel())
	assert.True(t, IsOverridden())
}

func TestTable_Rank64UsesPrefixTable(t *testing.T) {
	// Offsets inside a sub-word exercise the prefix-rank entries.
	w := uint64(0b1011_0110_1101)
	for _, width := range []int{1, 2, 4, 8, 16} {
		tbl, err := Get(width)
		require.NoError(t, err)
		for i := 0; i <= 12; i++ {
			assert.Equal(t, bits.OnesCount64(w&(1<<uint(i)-1)), tbl.Rank64(w, i), "width=%d i=%d", width, i)
		}
	}
}
