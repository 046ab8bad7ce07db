package fuse

import "github.com/joshuapare/nandkit/pkg/types"

// Class patterns as burned into line 1.
const (
	PatternFatRetail  uint64 = 0x0F0F0F0F0F0F0FF0
	PatternSlimRetail uint64 = 0x0F0F0F0F0F0FF00F
	PatternDevkit     uint64 = 0x0F0F0F0F0F0F0F0F
	PatternTestkit    uint64 = 0x0F0F0F0F0F0F0F00
)

var classPatterns = map[uint64]types.HardwareClass{
	PatternFatRetail:  types.ClassFatRetail,
	PatternSlimRetail: types.ClassSlimRetail,
	PatternDevkit:     types.ClassDevkit,
	PatternTestkit:    types.ClassTestkit,
}

// Classify maps the line 1 pattern to a hardware class. Unrecognized
// patterns give ClassUnknown.
func Classify(line1 uint64) types.HardwareClass {
	if c, ok := classPatterns[line1]; ok {
		return c
	}
	return types.ClassUnknown
}
