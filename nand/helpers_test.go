package nand

import (
	"io"

	"github.com/joshuapare/nandkit/internal/format"
)

// fakeImage is a sparse flash image: pages that were never written read back
// as fill. It keeps multi-megabyte geometries cheap in tests.
type fakeImage struct {
	size    int64
	fill    byte
	pageRaw int
	pages   map[int64][]byte
}

func newFakeImage(size int64, geo Geometry, fill byte) *fakeImage {
	return &fakeImage{
		size:    size,
		fill:    fill,
		pageRaw: layouts[geo].pageRaw,
		pages:   make(map[int64][]byte),
	}
}

func (f *fakeImage) page(i int64) []byte {
	p, ok := f.pages[i]
	if !ok {
		p = make([]byte, f.pageRaw)
		for j := range p {
			p[j] = f.fill
		}
		f.pages[i] = p
	}
	return p
}

// writeData stores b at logical data offset off.
func (f *fakeImage) writeData(off int64, b []byte) {
	for len(b) > 0 {
		pg := off / format.PageSize
		in := int(off % format.PageSize)
		n := copy(f.page(pg)[in:format.PageSize], b)
		b = b[n:]
		off += int64(n)
	}
}

// setSpare sets one spare byte of the given page of the given block.
func (f *fakeImage) setSpare(block, pagesPerBlock, page, idx int, v byte) {
	f.page(int64(block*pagesPerBlock+page))[format.PageSize+idx] = v
}

func (f *fakeImage) ReadAt(p []byte, off int64) (int, error) {
	if off >= f.size {
		return 0, io.EOF
	}
	n := len(p)
	if off+int64(n) > f.size {
		n = int(f.size - off)
	}
	for done := 0; done < n; {
		cur := off + int64(done)
		pg := cur / int64(f.pageRaw)
		in := int(cur % int64(f.pageRaw))
		chunk := min(n-done, f.pageRaw-in)
		if src, ok := f.pages[pg]; ok {
			copy(p[done:done+chunk], src[in:])
		} else {
			for j := done; j < done+chunk; j++ {
				p[j] = f.fill
			}
		}
		done += chunk
	}
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
