package nand

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/nandkit/internal/bitops"
	"github.com/joshuapare/nandkit/internal/format"
	"github.com/joshuapare/nandkit/pkg/types"
)

// Header is the flash header at the start of the data space.
//
//	Offset  Size  Description
//	------  ----  ------------------------------------------
//	 0x00    2    magic 0xFF4F
//	 0x02    2    build
//	 0x04    2    qfe
//	 0x06    2    flags
//	 0x08    4    bootloader entry
//	 0x0C    4    bootloader size
//	 0x10   64    copyright
//	 0x78    4    SMC length
//	 0x7C    4    SMC offset
//
// All fields are big-endian.
type Header struct {
	Magic     uint16 `json:"magic"`
	Build     uint16 `json:"build"`
	QFE       uint16 `json:"qfe"`
	Flags     uint16 `json:"flags"`
	Entry     uint32 `json:"entry"`
	Size      uint32 `json:"size"`
	Copyright string `json:"copyright"`
	SMCLength uint32 `json:"smc_length"`
	SMCOffset uint32 `json:"smc_offset"`
}

// ParseHeader decodes a flash header from b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < format.HeaderSize {
		return Header{}, types.Errorf(types.ErrKindInvalidImage,
			fmt.Sprintf("nand: header truncated: have=%d need=%d", len(b), format.HeaderSize), nil)
	}
	magic := bitops.U16BE(b[format.HeaderMagicOffset:])
	if magic != format.HeaderMagic {
		return Header{}, types.Errorf(types.ErrKindInvalidImage,
			fmt.Sprintf("nand: bad header magic 0x%04X", magic), nil)
	}
	copyright := b[format.HeaderCopyOffset : format.HeaderCopyOffset+format.HeaderCopySize]
	if i := bytes.IndexByte(copyright, 0); i >= 0 {
		copyright = copyright[:i]
	}
	return Header{
		Magic:     magic,
		Build:     bitops.U16BE(b[format.HeaderBuildOffset:]),
		QFE:       bitops.U16BE(b[format.HeaderQFEOffset:]),
		Flags:     bitops.U16BE(b[format.HeaderFlagsOffset:]),
		Entry:     bitops.U32BE(b[format.HeaderEntryOffset:]),
		Size:      bitops.U32BE(b[format.HeaderSizeOffset:]),
		Copyright: string(copyright),
		SMCLength: bitops.U32BE(b[format.HeaderSMCLenOffset:]),
		SMCOffset: bitops.U32BE(b[format.HeaderSMCOffOffset:]),
	}, nil
}

// Header reads and decodes the flash header.
func (r *Reader) Header() (Header, error) {
	b, err := r.ReadData(0, format.HeaderSize)
	if err != nil {
		return Header{}, err
	}
	return ParseHeader(b)
}
