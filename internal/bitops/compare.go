package bitops

import (
	"context"
	"log/slog"
)

// sameBacking reports whether a and b are the same slice header (same
// start, same length), the equivalent of reference identity.
func sameBacking(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return (a == nil) == (b == nil)
	}
	return &a[0] == &b[0]
}

// firstMismatch returns the first index below n at which a and b differ, or -1.
func firstMismatch(a, b []byte, n int) int {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}

// Equal reports whether a and b have the same length and contents. A nil
// buffer only equals another nil buffer.
func Equal(a, b []byte) bool {
	eq, _ := compare(a, b, true)
	return eq
}

// EqualPrefix compares a and b over the length of the shorter one and ignores
// any trailing bytes of the longer. Equality here says nothing about the
// tail; callers that need whole-buffer equality must use Equal.
func EqualPrefix(a, b []byte) bool {
	eq, _ := compare(a, b, false)
	return eq
}

// Compare is Equal when exact is set and EqualPrefix otherwise. When logger
// is non-nil the outcome is reported to it as a debug event after the
// comparison has finished; a nil logger makes Compare silent.
func Compare(a, b []byte, exact bool, logger *slog.Logger) bool {
	eq, idx := compare(a, b, exact)
	if logger != nil {
		attrs := []slog.Attr{
			slog.Bool("exact", exact),
			slog.Int("len_a", len(a)),
			slog.Int("len_b", len(b)),
			slog.Bool("equal", eq),
		}
		if idx >= 0 {
			attrs = append(attrs,
				slog.Int("index", idx),
				slog.Int("a", int(a[idx])),
				slog.Int("b", int(b[idx])),
			)
		}
		logger.LogAttrs(context.Background(), slog.LevelDebug, "bitops: compare", attrs...)
	}
	return eq
}

// compare returns the result and, for a content mismatch, the first
// differing index (-1 otherwise).
func compare(a, b []byte, exact bool) (bool, int) {
	if sameBacking(a, b) {
		return true, -1
	}
	if a == nil || b == nil {
		return false, -1
	}
	n := min(len(a), len(b))
	if exact && len(a) != len(b) {
		return false, -1
	}
	if idx := firstMismatch(a, b, n); idx >= 0 {
		return false, idx
	}
	return true, -1
}
