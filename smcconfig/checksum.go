package smcconfig

import (
	"encoding/binary"
	"fmt"

	"github.com/joshuapare/nandkit/internal/format"
	"github.com/joshuapare/nandkit/pkg/types"
)

// Checksum computes the record checksum: the complement of the 16-bit sum
// of every byte after the checksum field.
func Checksum(rec []byte) uint16 {
	var sum uint16
	for _, b := range rec[format.ConfigChecksumOffset+format.ConfigChecksumSize:] {
		sum += uint16(b)
	}
	return ^sum
}

// StoredChecksum returns the checksum field of rec.
func StoredChecksum(rec []byte) uint16 {
	return binary.BigEndian.Uint16(rec[format.ConfigChecksumOffset:])
}

// Seal recomputes and stores the checksum of rec in place.
func Seal(rec []byte) error {
	if err := checkSize(rec); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(rec[format.ConfigChecksumOffset:], Checksum(rec))
	return nil
}

// Verify checks the stored checksum against the computed one.
func Verify(rec []byte) error {
	if err := checkSize(rec); err != nil {
		return err
	}
	stored, computed := StoredChecksum(rec), Checksum(rec)
	if stored != computed {
		return types.Errorf(types.ErrKindChecksumMismatch,
			fmt.Sprintf("smcconfig: checksum stored=0x%04X computed=0x%04X", stored, computed), nil)
	}
	return nil
}

func checkSize(rec []byte) error {
	if len(rec) != format.ConfigSize {
		return types.Errorf(types.ErrKindInvalidImage,
			fmt.Sprintf("smcconfig: record is 0x%X bytes, want 0x%X", len(rec), format.ConfigSize), nil)
	}
	return nil
}
