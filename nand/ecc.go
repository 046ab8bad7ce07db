package nand

import (
	"encoding/binary"
	"fmt"

	"github.com/joshuapare/nandkit/internal/format"
	"github.com/joshuapare/nandkit/pkg/types"
)

const (
	eccBits   = 0x1066 // data bits covered: 524 bytes plus 6 bits of the EDC word
	eccPoly   = 0x6954559
	eccMask   = 0x3FFFFFF // 26-bit EDC
	eccShift  = 6
	eccOffset = format.ECCDataBytes
)

// ComputeECC returns the 26-bit EDC of a raw 0x210-byte page. The EDC covers
// the page data, the first 12 spare bytes and the low 6 bits of the EDC word
// itself.
func ComputeECC(page []byte) (uint32, error) {
	if len(page) != format.RawPageSize {
		return 0, types.Errorf(types.ErrKindOutOfRange,
			fmt.Sprintf("nand: ecc page is %d bytes, want %d", len(page), format.RawPageSize), nil)
	}
	var val, v uint32
	for i := 0; i < eccBits; i++ {
		if i&31 == 0 {
			v = ^binary.LittleEndian.Uint32(page[i/8:])
		}
		val ^= v & 1
		v >>= 1
		if val&1 != 0 {
			val ^= eccPoly
		}
		val >>= 1
	}
	return ^val & eccMask, nil
}

// StoredECC returns the EDC recorded in the page's spare area.
func StoredECC(page []byte) (uint32, error) {
	if len(page) != format.RawPageSize {
		return 0, types.Errorf(types.ErrKindOutOfRange,
			fmt.Sprintf("nand: ecc page is %d bytes, want %d", len(page), format.RawPageSize), nil)
	}
	return binary.LittleEndian.Uint32(page[eccOffset:]) >> eccShift, nil
}

// VerifyPageECC reports whether the stored EDC matches the page contents.
func VerifyPageECC(page []byte) bool {
	want, err := ComputeECC(page)
	if err != nil {
		return false
	}
	got, _ := StoredECC(page)
	return want == got
}

// VerifyBlockECC checks every page of block b and returns the indexes of
// pages whose EDC does not match. Raw images are unsupported.
func (r *Reader) VerifyBlockECC(b int) ([]int, error) {
	if !r.lay.hasSpare() {
		return nil, types.Errorf(types.ErrKindUnsupported, "nand: "+r.geo.String()+" image has no spare data", nil)
	}
	raw, err := r.ReadBlockRaw(b)
	if err != nil {
		return nil, err
	}
	var bad []int
	for p, off := 0, 0; off+format.RawPageSize <= len(raw); p, off = p+1, off+format.RawPageSize {
		if !VerifyPageECC(raw[off : off+format.RawPageSize]) {
			bad = append(bad, p)
		}
	}
	return bad, nil
}
