package bitops

import (
	"fmt"
	"math"

	"github.com/joshuapare/nandkit/pkg/types"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}

// Range resolves the scan window [off, off+n) over b, with n <= 0 meaning
// "through the end of b". It fails with an OutOfRange error when the window
// does not fit.
func Range(b []byte, off, n int) ([]byte, error) {
	if off < 0 || off > len(b) {
		return nil, types.Errorf(types.ErrKindOutOfRange,
			fmt.Sprintf("bitops: offset %d outside buffer of %d bytes", off, len(b)), nil)
	}
	if n <= 0 {
		return b[off:], nil
	}
	w, ok := Slice(b, off, n)
	if !ok {
		return nil, types.Errorf(types.ErrKindOutOfRange,
			fmt.Sprintf("bitops: range [%d,+%d) exceeds buffer of %d bytes", off, n, len(b)), nil)
	}
	return w, nil
}
