package nand

import (
	"fmt"

	"github.com/joshuapare/nandkit/internal/format"
	"github.com/joshuapare/nandkit/pkg/types"
)

// Geometry identifies the physical layout of a dump.
type Geometry int

const (
	GeometryAuto Geometry = iota // detect from size and spare contents
	GeometryRaw
	GeometrySmallBlock
	GeometryBigBlock
)

func (g Geometry) String() string {
	switch g {
	case GeometryRaw:
		return "Raw"
	case GeometrySmallBlock:
		return "SmallBlock"
	case GeometryBigBlock:
		return "BigBlock"
	default:
		return "Auto"
	}
}

// MarshalText renders the geometry by name.
func (g Geometry) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

// layout is the resolved page/block arithmetic for one geometry.
type layout struct {
	pageRaw      int // bytes per stored page
	blockData    int // data bytes per block
	blockRaw     int // stored bytes per block
	markerOffset int // bad-block marker within the spare, -1 when absent
	sizes        []int64
}

var layouts = map[Geometry]layout{
	GeometryRaw: {
		pageRaw:      format.PageSize,
		blockData:    format.RawBlockSize,
		blockRaw:     format.RawBlockSize,
		markerOffset: -1,
		sizes:        []int64{format.Size16M, format.Size64M, format.Size256M, format.Size512M},
	},
	GeometrySmallBlock: {
		pageRaw:      format.RawPageSize,
		blockData:    format.SmallBlockSize,
		blockRaw:     format.SmallBlockRawSize,
		markerOffset: format.SmallSpareBadBlockOffset,
		sizes:        []int64{format.Size16MECC, format.Size64MECC},
	},
	GeometryBigBlock: {
		pageRaw:      format.RawPageSize,
		blockData:    format.BigBlockSize,
		blockRaw:     format.BigBlockRawSize,
		markerOffset: format.BigSpareBadBlockOffset,
		sizes:        []int64{format.Size64MECC, format.Size256MECC, format.Size512MECC},
	},
}

func (l layout) hasSpare() bool { return l.pageRaw > format.PageSize }

func (l layout) accepts(size int64) bool {
	for _, s := range l.sizes {
		if s == size {
			return true
		}
	}
	return false
}

// detectGeometry picks the geometry for an image of the given size. firstSpare
// is called only when the size alone is ambiguous and must return byte 0 of
// page 0's spare area.
func detectGeometry(size int64, firstSpare func() (byte, error)) (Geometry, error) {
	var candidates []Geometry
	for _, g := range []Geometry{GeometryRaw, GeometrySmallBlock, GeometryBigBlock} {
		if layouts[g].accepts(size) {
			candidates = append(candidates, g)
		}
	}
	switch len(candidates) {
	case 0:
		return GeometryAuto, types.Errorf(types.ErrKindInvalidImage,
			fmt.Sprintf("nand: unrecognized image size 0x%X", size), nil)
	case 1:
		return candidates[0], nil
	}

	// 64 MiB ECC dumps exist for both block sizes. A big-block spare carries
	// its marker at byte 0, which reads 0xFF on any good block 0; the
	// small-block spare starts with the (zero) block id instead.
	b, err := firstSpare()
	if err != nil {
		return GeometryAuto, err
	}
	if b == format.GoodBlockMarker {
		return GeometryBigBlock, nil
	}
	return GeometrySmallBlock, nil
}
