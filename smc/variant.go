package smc

import (
	"bytes"

	"github.com/joshuapare/nandkit/internal/format"
	"github.com/joshuapare/nandkit/pkg/types"
)

// signatures is checked in order; the first hit decides the category.
var signatures = []struct {
	typ types.SMCType
	sig []byte
}{
	{types.SMCCygnos, format.SMCCygnosSignature},
	{types.SMCRJtag, format.SMCRJtagSignature},
	{types.SMCJtag, format.SMCJtagSignature},
	{types.SMCGlitch, format.SMCGlitchSignature},
}

// Classify returns the variant category of a decrypted blob. A blob that
// matches no patch signature is Retail when it starts with the stock reset
// vector and Unknown otherwise.
func Classify(blob []byte) types.SMCType {
	for _, s := range signatures {
		if bytes.Contains(blob, s.sig) {
			return s.typ
		}
	}
	if LooksDecrypted(blob) {
		return types.SMCRetail
	}
	return types.SMCUnknown
}
