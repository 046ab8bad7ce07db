package fuse

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/joshuapare/nandkit/internal/bitops"
	"github.com/joshuapare/nandkit/pkg/types"
)

// CPUKeySize is the length of a CPU key in bytes.
const CPUKeySize = 16

// cpuKeyLoMask selects the bits of the low half that take part in the
// weight check; the rest hold the key's own ECD bits.
const cpuKeyLoMask = 0xFFFFFFFFFF030000

// cpuKeyWeight is the Hamming weight every genuine key has.
const cpuKeyWeight = 53

// CPUKey assembles the key from its two halves.
func CPUKey(hi, lo uint64) [CPUKeySize]byte {
	var k [CPUKeySize]byte
	binary.BigEndian.PutUint64(k[:8], hi)
	binary.BigEndian.PutUint64(k[8:], lo)
	return k
}

// ValidCPUKey reports whether the key has the expected Hamming weight.
func ValidCPUKey(key [CPUKeySize]byte) bool {
	hi := binary.BigEndian.Uint64(key[:8])
	lo := binary.BigEndian.Uint64(key[8:])
	return bitops.CountSetBits(hi)+bitops.CountSetBits(lo&cpuKeyLoMask) == cpuKeyWeight
}

// ParseCPUKey decodes a 32 digit hex key.
func ParseCPUKey(s string) ([CPUKeySize]byte, error) {
	var k [CPUKeySize]byte
	s = strings.TrimSpace(s)
	if len(s) != 2*CPUKeySize {
		return k, types.Errorf(types.ErrKindInvalidImage,
			fmt.Sprintf("fuse: cpu key must be %d hex digits, got %d", 2*CPUKeySize, len(s)), nil)
	}
	if _, err := hex.Decode(k[:], []byte(s)); err != nil {
		return k, types.Errorf(types.ErrKindInvalidImage, "fuse: cpu key is not hex", err)
	}
	return k, nil
}

// FormatCPUKey renders the key as upper-case hex.
func FormatCPUKey(key [CPUKeySize]byte) string {
	return strings.ToUpper(hex.EncodeToString(key[:]))
}
