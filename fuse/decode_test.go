package fuse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nandkit/pkg/types"
)

// fatRetailLines is a retail fat console bank with CB LDV 2 and CF LDV 3.
var fatRetailLines = [types.FuseLineCount]uint64{
	0xC0FFFFFFFFFFFFFF,
	0x0F0F0F0F0F0F0FF0,
	0xFF00000000000000,
	0xFFFFFFFFFFFFF800,
	0xFFFFFFFFFFFFF800,
	0x000000000000FFFF,
	0x000000000000FFFF,
	0xFFF0000000000000,
}

func TestDecodeAllZero(t *testing.T) {
	var lines [types.FuseLineCount]uint64
	fs := Decode(lines)

	assert.Equal(t, types.ClassUnknown, fs.Class)
	assert.False(t, fs.FatRetail())
	assert.False(t, fs.SlimRetail())
	assert.False(t, fs.Devkit())
	assert.False(t, fs.Testkit())
	assert.False(t, fs.Unlocked)
	assert.False(t, fs.UsesEeprom)
	assert.Nil(t, fs.Eeprom)
	assert.False(t, fs.Secure)
	assert.False(t, fs.ReservedOK)
	assert.False(t, fs.CPUKeyValid)
	assert.Zero(t, fs.CBLDV)
	assert.Zero(t, fs.CFLDV)
	assert.Equal(t, "00000000000000000000000000000000", fs.CPUKeyHex)
}

func TestDecodeFatRetail(t *testing.T) {
	fs := Decode(fatRetailLines)

	assert.Equal(t, types.ClassFatRetail, fs.Class)
	assert.True(t, fs.FatRetail())
	assert.False(t, fs.SlimRetail() || fs.Devkit() || fs.Testkit())
	assert.True(t, fs.Secure)
	assert.True(t, fs.ReservedOK)
	assert.False(t, fs.Unlocked)
	assert.False(t, fs.Invalid)
	assert.False(t, fs.UsesEeprom)
	assert.Nil(t, fs.Eeprom)
	assert.Equal(t, 2, fs.CBLDV)
	assert.Equal(t, 3, fs.CFLDV)
	assert.Equal(t, "FFFFFFFFFFFFF800000000000000FFFF", fs.CPUKeyHex)
	assert.True(t, fs.CPUKeyValid)
	assert.Equal(t, fatRetailLines, fs.Lines)
}

func TestDecodeClassExclusive(t *testing.T) {
	cases := map[uint64]types.HardwareClass{
		PatternFatRetail:   types.ClassFatRetail,
		PatternSlimRetail:  types.ClassSlimRetail,
		PatternDevkit:      types.ClassDevkit,
		PatternTestkit:     types.ClassTestkit,
		0x0123456789ABCDEF: types.ClassUnknown,
	}
	for pattern, want := range cases {
		var lines [types.FuseLineCount]uint64
		lines[1] = pattern
		fs := Decode(lines)
		assert.Equal(t, want, fs.Class, "pattern %016X", pattern)

		set := 0
		for _, b := range []bool{fs.FatRetail(), fs.SlimRetail(), fs.Devkit(), fs.Testkit()} {
			if b {
				set++
			}
		}
		if want == types.ClassUnknown {
			assert.Zero(t, set)
		} else {
			assert.Equal(t, 1, set)
		}
	}
}

func TestDecodeEepromPresentIffFlag(t *testing.T) {
	lines := fatRetailLines
	lines[12] = 0x1111111111111111
	lines[13] = 0x2222222222222222
	lines[14] = 0x3333333333333333
	lines[15] = 0x4444444444444444

	fs := Decode(lines)
	assert.False(t, fs.UsesEeprom)
	assert.Nil(t, fs.Eeprom, "key lines are ignored without the flag")

	lines[0] |= 1 << 60
	fs = Decode(lines)
	require.True(t, fs.UsesEeprom)
	require.NotNil(t, fs.Eeprom)
	assert.Equal(t, types.EepromKeys{
		Key1:  0x1111111111111111,
		Key2:  0x2222222222222222,
		Hash1: 0x3333333333333333,
		Hash2: 0x4444444444444444,
	}, *fs.Eeprom)
}

func TestDecodeFlags(t *testing.T) {
	var lines [types.FuseLineCount]uint64
	lines[0] = 1<<61 | 1<<59
	fs := Decode(lines)
	assert.True(t, fs.Unlocked)
	assert.True(t, fs.Invalid)
	assert.False(t, fs.Secure)
}

func TestDecodeDeterministic(t *testing.T) {
	a := Decode(fatRetailLines)
	b := Decode(fatRetailLines)
	assert.Equal(t, a, b)
}

func TestFieldExtract(t *testing.T) {
	lines := [types.FuseLineCount]uint64{0xABCD}
	f := Field{Name: "x", Line: 0, Bit: 4, Width: 8}
	assert.Equal(t, uint64(0xBC), f.Extract(&lines))

	past := Field{Name: "past", Line: types.FuseLineCount, Width: 64}
	assert.Zero(t, past.Extract(&lines))

	lines[14] = 0xF
	lines[15] = 0xFF
	unary := Field{Name: "u", Line: 14, Span: 4, Width: 64, Kind: FieldUnary}
	assert.Equal(t, uint64(3), unary.Extract(&lines))
}

func TestCPUKeyHelpers(t *testing.T) {
	key, err := ParseCPUKey("FFFFFFFFFFFFF800000000000000FFFF")
	require.NoError(t, err)
	assert.True(t, ValidCPUKey(key))
	assert.Equal(t, CPUKey(0xFFFFFFFFFFFFF800, 0xFFFF), key)

	key[0] = 0x7F
	assert.False(t, ValidCPUKey(key))

	_, err = ParseCPUKey("ABC")
	assert.ErrorIs(t, err, types.ErrInvalidImage)
	_, err = ParseCPUKey("ZZFFFFFFFFFFF800000000000000FFFF")
	assert.ErrorIs(t, err, types.ErrInvalidImage)
}
