package smc

import (
	"errors"
	"fmt"

	"github.com/joshuapare/nandkit/internal/format"
	"github.com/joshuapare/nandkit/pkg/types"
)

// Decode decodes a decrypted firmware blob. The blob must be exactly
// format.SMCSize bytes.
func Decode(blob []byte) (types.SMCInfo, error) {
	if len(blob) != format.SMCSize {
		return types.SMCInfo{}, types.Errorf(types.ErrKindInvalidImage,
			fmt.Sprintf("smc: blob is 0x%X bytes, want 0x%X", len(blob), format.SMCSize), nil)
	}
	major, minor, err := versionBytes(blob)
	if err != nil {
		return types.SMCInfo{}, err
	}
	info := types.SMCInfo{
		Version:       fmt.Sprintf("%d.%d", major, minor),
		Major:         major,
		Minor:         minor,
		Board:         BoardName(major),
		Type:          Classify(blob),
		GlitchPatched: DetectGlitchPatch(blob),
	}
	patches, err := AnalyseJTAG(blob)
	switch {
	case err == nil:
		info.JTAGPatches = patches
	case !errors.Is(err, types.ErrNotApplicable):
		return info, err
	}
	return info, nil
}
