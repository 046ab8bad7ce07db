package smcconfig

import "github.com/joshuapare/nandkit/pkg/types"

const unknown = "Unknown"

var dvdRegions = map[uint16]string{
	1: "Region 1 (US/Canada)",
	2: "Region 2 (Europe/Japan)",
	3: "Region 3 (Southeast Asia)",
	4: "Region 4 (Latin America/Oceania)",
	5: "Region 5 (Africa/Russia)",
	6: "Region 6 (China)",
	7: "Region 7 (Reserved)",
	8: "Region 8 (International)",
}

var gameRegions = map[uint16]string{
	0x00FF: "NTSC/US",
	0x01FE: "NTSC/Japan",
	0x01FF: "NTSC/Japan+China",
	0x01FC: "NTSC/Korea",
	0x0101: "NTSC/Hong Kong",
	0x02FE: "PAL/Europe",
	0x0201: "PAL/Australia",
	0x7FFF: "Devkit",
}

var videoRegions = map[uint16]string{
	0x01: "NTSC-M",
	0x02: "NTSC-J",
	0x03: "PAL-I",
	0x04: "PAL-M",
}

var resetCodes = map[byte]string{
	0x00: "None",
	0x01: "Power button",
	0x02: "Eject button",
	0x03: "Remote",
	0x04: "Kiosk",
	0x05: "Overheat",
	0x06: "Hardware error",
	0x07: "Software reboot",
	0x08: "Watchdog",
}

func lookup(table map[uint16]string, raw uint16) types.Region {
	name, ok := table[raw]
	if !ok {
		name = unknown
	}
	return types.Region{Raw: raw, Name: name}
}

// DVDRegion names a DVD region code.
func DVDRegion(raw uint16) types.Region { return lookup(dvdRegions, raw) }

// GameRegion names a game region code.
func GameRegion(raw uint16) types.Region { return lookup(gameRegions, raw) }

// VideoRegion names a video standard code.
func VideoRegion(raw uint16) types.Region { return lookup(videoRegions, raw) }

// Reset names a reset cause.
func Reset(raw byte) types.ResetCode {
	name, ok := resetCodes[raw]
	if !ok {
		name = unknown
	}
	return types.ResetCode{Raw: raw, Name: name}
}
