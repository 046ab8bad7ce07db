package nand

import (
	"bytes"
	"fmt"
	"log/slog"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/nandkit/internal/bitops"
	"github.com/joshuapare/nandkit/internal/format"
	"github.com/joshuapare/nandkit/pkg/types"
)

// maxLaunchIni bounds the text collected after the section header.
const maxLaunchIni = 0x4000

// SMC returns the SMC firmware blob exactly as stored (still obfuscated).
func (r *Reader) SMC() ([]byte, error) {
	h, err := r.Header()
	if err != nil {
		return nil, err
	}
	if h.SMCLength == 0 || h.SMCOffset == 0 {
		return nil, types.Errorf(types.ErrKindDataNotFound, "nand: header records no SMC", nil)
	}
	r.log.Debug("nand: smc", slog.Uint64("offset", uint64(h.SMCOffset)), slog.Uint64("length", uint64(h.SMCLength)))
	return r.ReadData(int64(h.SMCOffset), int(h.SMCLength))
}

// SMCConfigOffset returns where the SMC config record lives for this image.
// Parts larger than 16 MiB keep it near the end of the first 64 MiB.
func (r *Reader) SMCConfigOffset() int64 {
	if r.geo == GeometryBigBlock || r.DataSize() > format.Size16M {
		return format.SMCConfigOffsetBig
	}
	return format.SMCConfigOffsetSmall
}

// SMCConfig returns the raw SMC config record.
func (r *Reader) SMCConfig() ([]byte, error) {
	b, err := r.ReadData(r.SMCConfigOffset(), format.ConfigSize)
	if err != nil {
		return nil, err
	}
	if ok, _ := bitops.IsZero(b, 0, 0); ok {
		return nil, types.Errorf(types.ErrKindDataNotFound, "nand: smc config block is blank", nil)
	}
	if n, _ := bitops.CountByte(b, 0xFF, 0, 0); n == len(b) {
		return nil, types.Errorf(types.ErrKindDataNotFound, "nand: smc config block is erased", nil)
	}
	return b, nil
}

// VirtualFuses returns the reconstructed fuse bank glitch images store in
// flash. Images without one yield DataNotFound.
func (r *Reader) VirtualFuses() ([types.FuseLineCount]uint64, error) {
	var lines [types.FuseLineCount]uint64
	b, err := r.ReadData(format.VirtualFuseOffset, format.VirtualFuseSize)
	if err != nil {
		return lines, err
	}
	for i := range lines {
		lines[i] = bitops.U64BE(b[i*8:])
	}
	if lines[0] != format.VirtualFuseMagic {
		return lines, types.Errorf(types.ErrKindDataNotFound,
			fmt.Sprintf("nand: no virtual fuses at 0x%X", format.VirtualFuseOffset), nil)
	}
	return lines, nil
}

// LaunchIni locates the dashboard launch.ini text in the data space and
// returns it decoded from Windows-1252.
func (r *Reader) LaunchIni() (string, error) {
	off, err := r.find(format.LaunchIniSection)
	if err != nil {
		return "", err
	}
	n := int(min(int64(maxLaunchIni), r.DataSize()-off))
	b, err := r.ReadData(off, n)
	if err != nil {
		return "", err
	}
	if i := bytes.IndexAny(b, "\x00\xff"); i >= 0 {
		b = b[:i]
	}
	text, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("nand: decode launch.ini: %w", err)
	}
	return string(text), nil
}

// find returns the logical offset of the first occurrence of needle,
// scanning block by block with enough overlap to catch matches that cross
// a block boundary.
func (r *Reader) find(needle []byte) (int64, error) {
	if err := r.checkOpen(); err != nil {
		return 0, err
	}
	overlap := len(needle) - 1
	var tail []byte
	for b := 0; b < r.BlockCount(); b++ {
		data, err := r.ReadBlock(b)
		if err != nil {
			return 0, err
		}
		window := append(tail, data...)
		if i := bytes.Index(window, needle); i >= 0 {
			return int64(b)*int64(r.lay.blockData) - int64(len(tail)) + int64(i), nil
		}
		if len(window) > overlap {
			tail = append([]byte(nil), window[len(window)-overlap:]...)
		} else {
			tail = window
		}
	}
	return 0, types.Errorf(types.ErrKindDataNotFound,
		fmt.Sprintf("nand: %q not found", needle), nil)
}
