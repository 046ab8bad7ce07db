package fuse

import (
	"github.com/joshuapare/nandkit/internal/bitops"
	"github.com/joshuapare/nandkit/pkg/types"
)

// FieldKind selects how a field's raw bits are interpreted.
type FieldKind int

const (
	// FieldBits is a plain bit range: (line >> Bit) & (1<<Width - 1).
	FieldBits FieldKind = iota
	// FieldUnary counts set nibbles across Span consecutive lines.
	FieldUnary
)

// Field is one row of the fuse layout.
type Field struct {
	Name  string
	Line  int
	Span  int // lines covered by a unary field; 0 or 1 means one line
	Bit   int
	Width int
	Kind  FieldKind
}

// Field names used by Decode.
const (
	FieldSecure      = "secure"
	FieldReserved62  = "reserved_62"
	FieldUnlocked    = "unlocked"
	FieldUsesEeprom  = "uses_eeprom"
	FieldInvalid     = "invalid"
	FieldReserved    = "reserved"
	FieldClass       = "class"
	FieldCBLDV       = "cb_ldv"
	FieldCPUKeyHi    = "cpukey_hi"
	FieldCPUKeyLo    = "cpukey_lo"
	FieldCFLDV       = "cf_ldv"
	FieldEepromKey1  = "eeprom_key1"
	FieldEepromKey2  = "eeprom_key2"
	FieldEepromHash1 = "eeprom_hash1"
	FieldEepromHash2 = "eeprom_hash2"
)

// Layout is the fuse bank layout. A new hardware revision with a different
// arrangement gets its own table; Extract does not change.
var Layout = []Field{
	{Name: FieldSecure, Line: 0, Bit: 63, Width: 1},
	{Name: FieldReserved62, Line: 0, Bit: 62, Width: 1},
	{Name: FieldUnlocked, Line: 0, Bit: 61, Width: 1},
	{Name: FieldUsesEeprom, Line: 0, Bit: 60, Width: 1},
	{Name: FieldInvalid, Line: 0, Bit: 59, Width: 1},
	{Name: FieldReserved, Line: 0, Bit: 0, Width: 56},
	{Name: FieldClass, Line: 1, Width: 64},
	{Name: FieldCBLDV, Line: 2, Span: 1, Width: 64, Kind: FieldUnary},
	{Name: FieldCPUKeyHi, Line: 3, Width: 64},
	{Name: FieldCPUKeyLo, Line: 5, Width: 64},
	{Name: FieldCFLDV, Line: 7, Span: 5, Width: 64, Kind: FieldUnary},
	{Name: FieldEepromKey1, Line: 12, Width: 64},
	{Name: FieldEepromKey2, Line: 13, Width: 64},
	{Name: FieldEepromHash1, Line: 14, Width: 64},
	{Name: FieldEepromHash2, Line: 15, Width: 64},
}

func (f Field) mask() uint64 {
	if f.Width >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(f.Width) - 1
}

// Extract reads the field's value from lines. Rows that point past the bank
// read as zero.
func (f Field) Extract(lines *[types.FuseLineCount]uint64) uint64 {
	if f.Kind == FieldUnary {
		span := max(f.Span, 1)
		n := 0
		for i := f.Line; i < f.Line+span && i < len(lines); i++ {
			n += bitops.CountSetNibbles(lines[i] >> uint(f.Bit) & f.mask())
		}
		return uint64(n)
	}
	if f.Line < 0 || f.Line >= len(lines) {
		return 0
	}
	return lines[f.Line] >> uint(f.Bit) & f.mask()
}

// Values extracts every row of layout into a name-indexed map.
func Values(layout []Field, lines [types.FuseLineCount]uint64) map[string]uint64 {
	out := make(map[string]uint64, len(layout))
	for _, f := range layout {
		out[f.Name] = f.Extract(&lines)
	}
	return out
}
