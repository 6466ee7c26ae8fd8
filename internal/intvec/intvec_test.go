package intvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitLen(t *testing.T) {
	assert.Equal(t, 1, BitLen(0))
	assert.Equal(t, 1, BitLen(1))
	assert.Equal(t, 2, BitLen(2))
	assert.Equal(t, 2, BitLen(3))
	assert.Equal(t, 3, BitLen(4))
	assert.Equal(t, 10, BitLen(1000))
	assert.Equal(t, 64, BitLen(^uint64(0)))
}

func TestVec_PushGet(t *testing.T) {
	for _, width := range []int{1, 3, 7, 13, 31, 32, 33, 63, 64} {
		v := New(width)
		mask := ^uint64(0)
		if width < 64 {
			mask = 1<<uint(width) - 1
		}

		var want []uint64
		x := uint64(0x9E3779B97F4A7C15)
		for range 500 {
			x = x*6364136223846793005 + 1442695040888963407
			want = append(want, x&mask)
			v.Push(x)
		}

		require.Equal(t, len(want), v.Len())
		for i, w := range want {
			assert.Equal(t, w, v.Get(i), "width=%d i=%d", width, i)
		}
		assert.Equal(t, uint64(500*width), v.SizeInBits())
	}
}

func TestNew_InvalidWidth(t *testing.T) {
	assert.Panics(t, func() { New(0) })
	assert.Panics(t, func() { New(65) })
}
