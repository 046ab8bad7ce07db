package smc

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/nandkit/internal/format"
	"github.com/joshuapare/nandkit/pkg/types"
)

// DetectGlitchPatch reports whether the glitch patch is present.
func DetectGlitchPatch(blob []byte) bool {
	return bytes.Contains(blob, format.SMCGlitchSignature)
}

// AnalyseJTAG lists the JTAG patch slots found in the blob. It only has
// meaning for Jtag and RJtag images; other variants yield NotApplicable.
func AnalyseJTAG(blob []byte) ([]string, error) {
	typ := Classify(blob)
	if !typ.IsJTAG() {
		return nil, types.Errorf(types.ErrKindNotApplicable,
			fmt.Sprintf("smc: jtag analysis of a %s image", typ), nil)
	}
	var found []string
	for _, p := range format.SMCJTAGPatches {
		if bytes.Contains(blob, p.Signature) {
			found = append(found, p.Name)
		}
	}
	return found, nil
}
