package fuse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nandkit/pkg/types"
)

func TestParseText(t *testing.T) {
	dump := `CPUKey: FFFFFFFFFFFFF800000000000000FFFF
fuseset 00: C0FFFFFFFFFFFFFF
fuseset 01: 0F0F0F0F0F0F0FF0
FUSESET 02: 0xFF00000000000000

fuseset 15: 0000000000000001
`
	lines, err := ParseText(strings.NewReader(dump))
	require.NoError(t, err)
	assert.Equal(t, uint64(0xC0FFFFFFFFFFFFFF), lines[0])
	assert.Equal(t, uint64(0x0F0F0F0F0F0F0FF0), lines[1])
	assert.Equal(t, uint64(0xFF00000000000000), lines[2])
	assert.Zero(t, lines[3])
	assert.Equal(t, uint64(1), lines[15])

	fs := Decode(lines)
	assert.True(t, fs.FatRetail())
	assert.Equal(t, 2, fs.CBLDV)
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", types.ErrDataNotFound},
		{"no fuselines", "hello\nworld\n", types.ErrDataNotFound},
		{"index too big", "fuseset 16: 00", types.ErrOutOfRange},
		{"bad index", "fuseset x: 00", types.ErrInvalidImage},
		{"bad value", "fuseset 01: XYZ", types.ErrInvalidImage},
		{"no colon", "fuseset 01 00", types.ErrInvalidImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseText(strings.NewReader(tt.in))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseBinary(t *testing.T) {
	b := make([]byte, BinarySize)
	b[0] = 0xC0
	b[8*15+7] = 0x2A
	lines, err := ParseBinary(b)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xC000000000000000), lines[0])
	assert.Equal(t, uint64(0x2A), lines[15])

	_, err = ParseBinary(b[:10])
	assert.ErrorIs(t, err, types.ErrInvalidImage)
}
