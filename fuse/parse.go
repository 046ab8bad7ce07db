package fuse

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joshuapare/nandkit/pkg/types"
)

// BinarySize is the size of a binary fuse bank.
const BinarySize = types.FuseLineCount * 8

// ParseBinary reads a 128-byte bank of big-endian lines.
func ParseBinary(b []byte) ([types.FuseLineCount]uint64, error) {
	var lines [types.FuseLineCount]uint64
	if len(b) != BinarySize {
		return lines, types.Errorf(types.ErrKindInvalidImage,
			fmt.Sprintf("fuse: binary bank is %d bytes, want %d", len(b), BinarySize), nil)
	}
	for i := range lines {
		lines[i] = binary.BigEndian.Uint64(b[i*8:])
	}
	return lines, nil
}

// ParseText reads a fuse dump in the usual text form:
//
//	fuseset 00: C0FFFFFFFFFFFFFF
//	fuseset 01: 0F0F0F0F0F0F0FF0
//
// Other lines are ignored and lines that never appear stay zero. A dump
// without any fuseset line yields DataNotFound.
func ParseText(r io.Reader) ([types.FuseLineCount]uint64, error) {
	var lines [types.FuseLineCount]uint64
	seen := 0
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		idx, val, ok, err := parseTextLine(sc.Text())
		if err != nil {
			return lines, fmt.Errorf("fuse: line %d: %w", n, err)
		}
		if !ok {
			continue
		}
		lines[idx] = val
		seen++
	}
	if err := sc.Err(); err != nil {
		return lines, fmt.Errorf("fuse: read: %w", err)
	}
	if seen == 0 {
		return lines, types.Errorf(types.ErrKindDataNotFound, "fuse: no fuseset lines", nil)
	}
	return lines, nil
}

func parseTextLine(s string) (int, uint64, bool, error) {
	s = strings.TrimSpace(s)
	const prefix = "fuseset"
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return 0, 0, false, nil
	}
	idxText, valText, found := strings.Cut(s[len(prefix):], ":")
	if !found {
		return 0, 0, false, types.Errorf(types.ErrKindInvalidImage, "missing ':' after fuseset index", nil)
	}
	idx, err := strconv.Atoi(strings.TrimSpace(idxText))
	if err != nil {
		return 0, 0, false, types.Errorf(types.ErrKindInvalidImage, "bad fuseset index", err)
	}
	if idx < 0 || idx >= types.FuseLineCount {
		return 0, 0, false, types.Errorf(types.ErrKindOutOfRange,
			fmt.Sprintf("fuseset index %d outside 0..%d", idx, types.FuseLineCount-1), nil)
	}
	valText = strings.TrimPrefix(strings.TrimSpace(valText), "0x")
	val, err := strconv.ParseUint(valText, 16, 64)
	if err != nil {
		return 0, 0, false, types.Errorf(types.ErrKindInvalidImage, "bad fuseset value", err)
	}
	return idx, val, true, nil
}
