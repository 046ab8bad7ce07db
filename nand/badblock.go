package nand

import (
	"log/slog"

	"github.com/joshuapare/nandkit/internal/format"
	"github.com/joshuapare/nandkit/pkg/types"
)

// ProgressFunc is called after each block is scanned.
type ProgressFunc func(done, total int)

// ScanBadBlocks returns the blocks whose spare area carries a bad-block
// marker. An image without defects yields an empty DefectMap and no error;
// an image without spare data yields an Unsupported error.
func (r *Reader) ScanBadBlocks() (types.DefectMap, error) {
	return r.ScanBadBlocksProgress(nil)
}

// ScanBadBlocksProgress is ScanBadBlocks with a progress callback.
func (r *Reader) ScanBadBlocksProgress(progress ProgressFunc) (types.DefectMap, error) {
	dm := types.DefectMap{Blocks: []int{}, Offsets: []int64{}}
	if err := r.checkOpen(); err != nil {
		return dm, err
	}
	if !r.lay.hasSpare() {
		return dm, types.Errorf(types.ErrKindUnsupported, "nand: "+r.geo.String()+" image has no spare data", nil)
	}

	total := r.BlockCount()
	for b := 0; b < total; b++ {
		bad, err := r.blockMarkedBad(b)
		if err != nil {
			return types.DefectMap{}, err
		}
		if bad {
			dm.Blocks = append(dm.Blocks, b)
			dm.Offsets = append(dm.Offsets, int64(b)*int64(r.lay.blockRaw))
			r.log.Debug("nand: bad block", slog.Int("block", b))
		}
		if progress != nil {
			progress(b+1, total)
		}
	}
	return dm, nil
}

func (r *Reader) blockMarkedBad(b int) (bool, error) {
	for p := 0; p < format.BadBlockCheckPages; p++ {
		spare, err := r.readSpare(b, p)
		if err != nil {
			return false, err
		}
		if spare[r.lay.markerOffset] != format.GoodBlockMarker {
			return true, nil
		}
	}
	return false, nil
}

// BlockID returns the logical block id recorded in the spare area of the
// first page of block b.
func (r *Reader) BlockID(b int) (int, error) {
	if err := r.checkOpen(); err != nil {
		return 0, err
	}
	if err := r.checkBlock(b); err != nil {
		return 0, err
	}
	if !r.lay.hasSpare() {
		return 0, types.Errorf(types.ErrKindUnsupported, "nand: "+r.geo.String()+" image has no spare data", nil)
	}
	spare, err := r.readSpare(b, 0)
	if err != nil {
		return 0, err
	}
	if r.geo == GeometryBigBlock {
		off := format.BigSpareBlockIDOffset
		return int(spare[off])<<8 | int(spare[off+1]), nil
	}
	off := format.SmallSpareBlockIDOffset
	return (int(spare[off+1])<<8 | int(spare[off])) & format.BlockIDMask, nil
}
