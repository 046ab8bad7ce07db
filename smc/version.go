package smc

import (
	"fmt"

	"github.com/joshuapare/nandkit/internal/bitops"
	"github.com/joshuapare/nandkit/internal/format"
)

// boardRange maps a span of major version bytes to a motherboard revision.
type boardRange struct {
	lo, hi byte
	name   string
}

var boards = []boardRange{
	{0x10, 0x1F, "Xenon"},
	{0x20, 0x2F, "Zephyr"},
	{0x30, 0x3F, "Falcon"},
	{0x40, 0x4F, "Jasper"},
	{0x50, 0x5F, "Trinity"},
	{0x60, 0x6F, "Corona"},
	{0x70, 0x7F, "Winchester"},
}

// BoardName looks up the board for a major version byte.
func BoardName(major byte) string {
	for _, b := range boards {
		if major >= b.lo && major <= b.hi {
			return b.name
		}
	}
	return "Unknown"
}

func versionBytes(blob []byte) (byte, byte, error) {
	v, err := bitops.Range(blob, format.SMCMajorOffset, 2)
	if err != nil {
		return 0, 0, fmt.Errorf("smc: version: %w", err)
	}
	return v[0], v[1], nil
}

// DecodeVersion renders the firmware version as "major.minor".
func DecodeVersion(blob []byte) (string, error) {
	major, minor, err := versionBytes(blob)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d.%d", major, minor), nil
}

// DecodeBoard names the board revision the firmware was built for.
func DecodeBoard(blob []byte) (string, error) {
	major, _, err := versionBytes(blob)
	if err != nil {
		return "", err
	}
	return BoardName(major), nil
}
