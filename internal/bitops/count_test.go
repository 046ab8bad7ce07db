package bitops

import (
	"errors"
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nandkit/pkg/types"
)

func TestCountSetBits(t *testing.T) {
	for _, v := range []uint64{
		0, 1, 0xFF, math.MaxUint64,
		0xAAAAAAAAAAAAAAAA, 0x5555555555555555,
		0xC0FFFFFFFFFFFFFF, 0x8000000000000000,
	} {
		assert.Equal(t, uint32(bits.OnesCount64(v)), CountSetBits(v), "CountSetBits(0x%x)", v)
	}
}

func TestCountSetNibbles(t *testing.T) {
	assert.Equal(t, 0, CountSetNibbles(0))
	assert.Equal(t, 1, CountSetNibbles(0xF))
	assert.Equal(t, 1, CountSetNibbles(0xF000000000000000))
	assert.Equal(t, 2, CountSetNibbles(0xFF00000000000000))
	assert.Equal(t, 16, CountSetNibbles(math.MaxUint64))
	// partial nibbles do not count
	assert.Equal(t, 0, CountSetNibbles(0x7777))
}

func TestIsZero(t *testing.T) {
	for _, n := range []int{0, 1, 7, 512} {
		buf := make([]byte, n)
		ok, err := IsZero(buf, 0, -1)
		require.NoError(t, err)
		assert.True(t, ok, "len %d", n)

		for i := 0; i < n; i++ {
			buf[i] = 0x01
			ok, err = IsZero(buf, 0, 0)
			require.NoError(t, err)
			assert.False(t, ok, "nonzero at %d of %d", i, n)
			buf[i] = 0
		}
	}
}

func TestIsZeroWindow(t *testing.T) {
	buf := []byte{0xFF, 0, 0, 0, 0xFF}

	ok, err := IsZero(buf, 1, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsZero(buf, 1, 4)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsZero(buf, 5, 0)
	require.NoError(t, err)
	assert.True(t, ok, "empty tail window")
}

func TestIsZeroOutOfRange(t *testing.T) {
	buf := make([]byte, 8)

	_, err := IsZero(buf, 9, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrOutOfRange))

	_, err = IsZero(buf, 4, 5)
	require.Error(t, err)
	assert.Equal(t, types.ErrKindOutOfRange, types.KindOf(err))

	_, err = IsZero(buf, -1, 2)
	require.Error(t, err)
}

func TestCountByte(t *testing.T) {
	buf := []byte{0xFF, 0x00, 0xFF, 0xFF, 0x12}

	n, err := CountByte(buf, 0xFF, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = CountByte(buf, 0xFF, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = CountByte(buf, 0xFF, 3, 3)
	assert.True(t, errors.Is(err, types.ErrOutOfRange))
}

func TestRange(t *testing.T) {
	buf := []byte{1, 2, 3, 4}

	w, err := Range(buf, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3}, w)

	w, err = Range(buf, 2, -5)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 4}, w)

	_, err = Range(buf, 5, 0)
	assert.Error(t, err)
}

func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	got, ok := Slice(data, 1, 3)
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, got)

	_, ok = Slice(data, 4, 2)
	assert.False(t, ok)
	assert.False(t, Has(data, 2, 4))
	assert.True(t, Has(data, 2, 1))

	_, ok = Slice(data, -1, 1)
	assert.False(t, ok)
	_, ok = Slice(data, 1, -1)
	assert.False(t, ok)

	_, ok = AddOverflowSafe(math.MaxInt, 1)
	assert.False(t, ok)
}
