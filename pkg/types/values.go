package types

import "fmt"

// -----------------------------------------------------------------------------
// Fuses
// -----------------------------------------------------------------------------

// FuseLineCount is the number of 64-bit lines in a fuse bank.
const FuseLineCount = 16

// HardwareClass is the console class encoded in fuse line 1. Exactly one class
// applies to a decoded fuse set; ClassUnknown means no known pattern matched.
type HardwareClass int

const (
	ClassUnknown HardwareClass = iota
	ClassFatRetail
	ClassSlimRetail
	ClassDevkit
	ClassTestkit
)

func (c HardwareClass) String() string {
	switch c {
	case ClassFatRetail:
		return "Fat Retail"
	case ClassSlimRetail:
		return "Slim Retail"
	case ClassDevkit:
		return "Devkit"
	case ClassTestkit:
		return "Testkit"
	default:
		return "Unknown"
	}
}

// MarshalText renders the class by name.
func (c HardwareClass) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// EepromKeys holds the external encrypted-key material. It is only present
// when the fuse bank says the console uses it.
type EepromKeys struct {
	Key1  uint64 `json:"key1"`
	Key2  uint64 `json:"key2"`
	Hash1 uint64 `json:"hash1"`
	Hash2 uint64 `json:"hash2"`
}

// FuseSet is a decoded fuse bank. Lines is the verbatim input; every other
// field is derived from it.
type FuseSet struct {
	Lines       [FuseLineCount]uint64 `json:"lines"`
	CPUKey      [16]byte              `json:"-"`
	CPUKeyHex   string                `json:"cpu_key"`
	CPUKeyValid bool                  `json:"cpu_key_valid"`
	CBLDV       int                   `json:"cb_ldv"`
	CFLDV       int                   `json:"cf_ldv"`
	Class       HardwareClass         `json:"class"`
	Unlocked    bool                  `json:"unlocked"`
	UsesEeprom  bool                  `json:"uses_eeprom"`
	Eeprom      *EepromKeys           `json:"eeprom,omitempty"`
	Secure      bool                  `json:"secure"`
	Invalid     bool                  `json:"invalid"`
	ReservedOK  bool                  `json:"reserved_ok"`
}

func (f FuseSet) FatRetail() bool  { return f.Class == ClassFatRetail }
func (f FuseSet) SlimRetail() bool { return f.Class == ClassSlimRetail }
func (f FuseSet) Devkit() bool     { return f.Class == ClassDevkit }
func (f FuseSet) Testkit() bool    { return f.Class == ClassTestkit }

// -----------------------------------------------------------------------------
// SMC firmware
// -----------------------------------------------------------------------------

// SMCType is the firmware variant category.
type SMCType int

const (
	SMCUnknown SMCType = iota
	SMCRetail
	SMCGlitch
	SMCJtag
	SMCRJtag
	SMCCygnos
)

func (t SMCType) String() string {
	switch t {
	case SMCRetail:
		return "Retail"
	case SMCGlitch:
		return "Glitch"
	case SMCJtag:
		return "Jtag"
	case SMCRJtag:
		return "RJtag"
	case SMCCygnos:
		return "Cygnos"
	default:
		return "Unknown"
	}
}

// MarshalText renders the type by name.
func (t SMCType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// IsJTAG reports whether the category is one of the two JTAG-oriented ones.
func (t SMCType) IsJTAG() bool { return t == SMCJtag || t == SMCRJtag }

// SMCInfo is the decoded metadata of a (decrypted) SMC firmware blob.
type SMCInfo struct {
	Version       string   `json:"version"`
	Major         byte     `json:"major"`
	Minor         byte     `json:"minor"`
	Board         string   `json:"board"`
	Type          SMCType  `json:"type"`
	GlitchPatched bool     `json:"glitch_patched"`
	JTAGPatches   []string `json:"jtag_patches,omitempty"`
}

// -----------------------------------------------------------------------------
// SMC config
// -----------------------------------------------------------------------------

// Region is a small enumerated code with its rendering. Name is "Unknown"
// for unmapped values.
type Region struct {
	Raw  uint16 `json:"raw"`
	Name string `json:"name"`
}

func (r Region) String() string { return fmt.Sprintf("%s (0x%04X)", r.Name, r.Raw) }

// FanSpeed is a fan override setting.
type FanSpeed struct {
	Raw      byte `json:"raw"`
	Override bool `json:"override"`
	Percent  int  `json:"percent"`
}

func (f FanSpeed) String() string {
	if !f.Override {
		return "Auto"
	}
	return fmt.Sprintf("%d%%", f.Percent)
}

// Temperature is an 8.8 fixed point reading in degrees Celsius.
type Temperature struct {
	Raw     uint16  `json:"raw"`
	Celsius float64 `json:"celsius"`
}

// Fahrenheit converts the reading.
func (t Temperature) Fahrenheit() float64 { return t.Celsius*9/5 + 32 }

func (t Temperature) String() string {
	return fmt.Sprintf("%.1f°C (%.1f°F)", t.Celsius, t.Fahrenheit())
}

// ResetCode is the last reset cause.
type ResetCode struct {
	Raw  byte   `json:"raw"`
	Name string `json:"name"`
}

func (r ResetCode) String() string { return fmt.Sprintf("0x%02X", r.Raw) }

// Temperatures groups the current and maximum readings per subsystem.
type Temperatures struct {
	CPU    Temperature `json:"cpu"`
	CPUMax Temperature `json:"cpu_max"`
	GPU    Temperature `json:"gpu"`
	GPUMax Temperature `json:"gpu_max"`
	RAM    Temperature `json:"ram"`
	RAMMax Temperature `json:"ram_max"`
}

// ConfigBlock is a decoded SMC configuration record.
type ConfigBlock struct {
	Checksum    uint16       `json:"checksum"`
	DVDRegion   Region       `json:"dvd_region"`
	GameRegion  Region       `json:"game_region"`
	VideoRegion Region       `json:"video_region"`
	CPUFan      FanSpeed     `json:"cpu_fan"`
	GPUFan      FanSpeed     `json:"gpu_fan"`
	Temps       Temperatures `json:"temps"`
	MAC         string       `json:"mac"`
	ResetCode   ResetCode    `json:"reset_code"`
}

// -----------------------------------------------------------------------------
// Flash defects
// -----------------------------------------------------------------------------

// DefectMap lists the blocks of a flash image marked bad. An empty map is a
// normal result.
type DefectMap struct {
	Blocks  []int   `json:"blocks"`
	Offsets []int64 `json:"offsets"`
}

// Empty reports whether no bad blocks were found.
func (d DefectMap) Empty() bool { return len(d.Blocks) == 0 }
