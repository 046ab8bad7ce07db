package nand

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/joshuapare/nandkit/internal/format"
	"github.com/joshuapare/nandkit/internal/mmfile"
	"github.com/joshuapare/nandkit/pkg/types"
)

// Options configures a Reader.
type Options struct {
	// Geometry forces a layout; GeometryAuto detects it from the image.
	Geometry Geometry
	// Logger receives debug events. Nil disables logging.
	Logger *slog.Logger
}

// Reader is an open flash session.
type Reader struct {
	src    io.ReaderAt
	size   int64
	geo    Geometry
	lay    layout
	log    *slog.Logger
	unmap  func() error
	closed bool
}

// Open validates the image size against the known geometries and returns a
// Reader over src. src is borrowed, not owned: Close does not close it.
func Open(src io.ReaderAt, size int64, opts Options) (*Reader, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	geo := opts.Geometry
	if geo == GeometryAuto {
		var err error
		geo, err = detectGeometry(size, func() (byte, error) {
			var b [1]byte
			if _, err := src.ReadAt(b[:], format.PageSize); err != nil {
				return 0, types.Errorf(types.ErrKindInvalidImage, "nand: read first spare", err)
			}
			return b[0], nil
		})
		if err != nil {
			return nil, err
		}
	} else if l, ok := layouts[geo]; !ok || !l.accepts(size) {
		return nil, types.Errorf(types.ErrKindInvalidImage,
			fmt.Sprintf("nand: size 0x%X does not match geometry %s", size, geo), nil)
	}

	r := &Reader{
		src:  src,
		size: size,
		geo:  geo,
		lay:  layouts[geo],
		log:  log,
	}
	log.Debug("nand: opened image",
		slog.String("geometry", geo.String()),
		slog.Int64("size", size),
		slog.Int("blocks", r.BlockCount()))
	return r, nil
}

// OpenBytes opens an in-memory image.
func OpenBytes(b []byte, opts Options) (*Reader, error) {
	return Open(bytesReaderAt(b), int64(len(b)), opts)
}

// OpenFile maps the dump at path and opens it. The mapping is released by Close.
func OpenFile(path string, opts Options) (*Reader, error) {
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("open dump: %w", err)
	}
	r, err := OpenBytes(data, opts)
	if err != nil {
		if unmap != nil {
			_ = unmap()
		}
		return nil, err
	}
	r.unmap = unmap
	return r, nil
}

// Close ends the session. It is safe to call more than once.
func (r *Reader) Close() error {
	if r == nil || r.closed {
		return nil
	}
	r.closed = true
	r.src = nil
	if r.unmap != nil {
		err := r.unmap()
		r.unmap = nil
		return err
	}
	return nil
}

// Geometry returns the resolved image layout.
func (r *Reader) Geometry() Geometry { return r.geo }

// Size returns the stored image size in bytes.
func (r *Reader) Size() int64 { return r.size }

// BlockSize returns the data bytes per block.
func (r *Reader) BlockSize() int { return r.lay.blockData }

// BlockCount returns the number of blocks in the image.
func (r *Reader) BlockCount() int { return int(r.size / int64(r.lay.blockRaw)) }

// DataSize returns the size of the logical data space (spare stripped).
func (r *Reader) DataSize() int64 { return int64(r.BlockCount()) * int64(r.lay.blockData) }

// HasSpare reports whether the image stores spare data.
func (r *Reader) HasSpare() bool { return r.lay.hasSpare() }

func (r *Reader) checkOpen() error {
	if r == nil || r.closed {
		return errors.New("nand: reader is closed")
	}
	return nil
}

func (r *Reader) checkBlock(i int) error {
	if i < 0 || i >= r.BlockCount() {
		return types.Errorf(types.ErrKindOutOfRange,
			fmt.Sprintf("nand: block %d outside image of %d blocks", i, r.BlockCount()), nil)
	}
	return nil
}

// ReadBlockRaw returns block i exactly as stored, spare areas included.
func (r *Reader) ReadBlockRaw(i int) ([]byte, error) {
	if err := r.checkOpen(); err != nil {
		return nil, err
	}
	if err := r.checkBlock(i); err != nil {
		return nil, err
	}
	out := make([]byte, r.lay.blockRaw)
	if _, err := r.src.ReadAt(out, int64(i)*int64(r.lay.blockRaw)); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("nand: read block %d: %w", i, err)
	}
	return out, nil
}

// ReadBlock returns the data bytes of block i with spare areas removed.
func (r *Reader) ReadBlock(i int) ([]byte, error) {
	raw, err := r.ReadBlockRaw(i)
	if err != nil {
		return nil, err
	}
	if !r.lay.hasSpare() {
		return raw, nil
	}
	out := make([]byte, 0, r.lay.blockData)
	for p := 0; p+format.PageSize <= len(raw); p += r.lay.pageRaw {
		out = append(out, raw[p:p+format.PageSize]...)
	}
	return out, nil
}

// ReadAt reads len(p) bytes of the logical data space starting at off,
// following io.ReaderAt semantics.
func (r *Reader) ReadAt(p []byte, off int64) (int, error) {
	if err := r.checkOpen(); err != nil {
		return 0, err
	}
	if off < 0 {
		return 0, types.Errorf(types.ErrKindOutOfRange, "nand: negative offset", nil)
	}
	total := r.DataSize()
	n := 0
	for n < len(p) {
		cur := off + int64(n)
		if cur >= total {
			return n, io.EOF
		}
		page := cur / format.PageSize
		inPage := cur % format.PageSize
		chunk := min(int64(len(p)-n), format.PageSize-inPage)
		rawOff := page*int64(r.lay.pageRaw) + inPage
		m, err := r.src.ReadAt(p[n:n+int(chunk)], rawOff)
		n += m
		if err != nil && !(errors.Is(err, io.EOF) && int64(m) == chunk) {
			return n, err
		}
	}
	return n, nil
}

// ReadData returns n bytes of the logical data space starting at off. Unlike
// ReadAt, a short read is an OutOfRange error.
func (r *Reader) ReadData(off int64, n int) ([]byte, error) {
	if n < 0 || off < 0 || off+int64(n) > r.DataSize() {
		return nil, types.Errorf(types.ErrKindOutOfRange,
			fmt.Sprintf("nand: data range [0x%X,+0x%X) outside 0x%X bytes", off, n, r.DataSize()), nil)
	}
	out := make([]byte, n)
	if _, err := r.ReadAt(out, off); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return out, nil
}

// readSpare returns the spare area of page p of block b.
func (r *Reader) readSpare(b, p int) ([]byte, error) {
	spare := make([]byte, format.SpareSize)
	off := int64(b)*int64(r.lay.blockRaw) + int64(p)*int64(r.lay.pageRaw) + format.PageSize
	if _, err := r.src.ReadAt(spare, off); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("nand: read spare of block %d page %d: %w", b, p, err)
	}
	return spare, nil
}

// bytesReaderAt adapts a byte slice without copying it.
type bytesReaderAt []byte

func (b bytesReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, types.Errorf(types.ErrKindOutOfRange, "nand: negative offset", nil)
	}
	if off >= int64(len(b)) {
		return 0, io.EOF
	}
	n := copy(p, b[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
