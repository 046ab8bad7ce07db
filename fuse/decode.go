package fuse

import "github.com/joshuapare/nandkit/pkg/types"

// reservedMask covers the low bits of line 0 that must all be set.
const reservedMask = 1<<56 - 1

// Decode derives a FuseSet from raw lines. It never fails: an unrecognized
// bank decodes with ClassUnknown and whatever flags its bits say.
func Decode(lines [types.FuseLineCount]uint64) types.FuseSet {
	v := Values(Layout, lines)
	key := CPUKey(v[FieldCPUKeyHi], v[FieldCPUKeyLo])

	fs := types.FuseSet{
		Lines:       lines,
		CPUKey:      key,
		CPUKeyHex:   FormatCPUKey(key),
		CPUKeyValid: ValidCPUKey(key),
		CBLDV:       int(v[FieldCBLDV]),
		CFLDV:       int(v[FieldCFLDV]),
		Class:       Classify(v[FieldClass]),
		Unlocked:    v[FieldUnlocked] == 1,
		UsesEeprom:  v[FieldUsesEeprom] == 1,
		Secure:      v[FieldSecure] == 1,
		Invalid:     v[FieldInvalid] == 1,
		ReservedOK:  v[FieldReserved] == reservedMask && v[FieldReserved62] == 1,
	}
	if fs.UsesEeprom {
		fs.Eeprom = &types.EepromKeys{
			Key1:  v[FieldEepromKey1],
			Key2:  v[FieldEepromKey2],
			Hash1: v[FieldEepromHash1],
			Hash2: v[FieldEepromHash2],
		}
	}
	return fs
}
