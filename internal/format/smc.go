package format

// ============================================================================
// SMC firmware
// ============================================================================
const (
	// SMCSize is the expected length of an SMC firmware blob.
	SMCSize = 0x3000

	// SMCResetVectorOffset holds the reset vector opcode; stock images start
	// with an 8051 LJMP (0x02).
	SMCResetVectorOffset = 0x000
	SMCResetVectorLJMP   = 0x02

	// Version bytes.
	SMCMajorOffset = 0x101
	SMCMinorOffset = 0x102
)

// SMCKey seeds the keyless SMC obfuscation stream.
var SMCKey = [4]byte{0x42, 0x75, 0x4E, 0x79}

// Signatures identifying modified firmware. Each is searched anywhere in the
// decrypted blob.
var (
	SMCCygnosSignature = []byte{0x78, 0xBA, 0xB6, 0x00, 0xC3, 0x22, 0x8E, 0x02}
	SMCRJtagSignature  = []byte{0x78, 0xBA, 0xB6, 0x02, 0x02, 0x30, 0xD0, 0xC2}
	SMCJtagSignature   = []byte{0x78, 0xBA, 0xB6, 0x02, 0x02, 0x30, 0xB4, 0xD2}
	SMCGlitchSignature = []byte{0x05, 0x5F, 0xE5, 0x5F, 0xB4, 0x3C, 0x05, 0xC2}
)

// JTAG patch slots reported by the JTAG analysis, in report order.
var SMCJTAGPatches = []struct {
	Name      string
	Signature []byte
}{
	{"tms", []byte{0xD2, 0xB4, 0x00, 0x7E, 0x00}},
	{"tdi", []byte{0xD2, 0xB5, 0x00, 0x7F, 0x01}},
	{"hwinit", []byte{0x12, 0x25, 0x88, 0x80, 0xFE}},
	{"power", []byte{0xC2, 0x93, 0x22, 0x75, 0x9A}},
}

// ============================================================================
// SMC config record (big-endian)
// ============================================================================
const (
	ConfigSize = 0x100

	ConfigChecksumOffset = 0x00
	ConfigChecksumSize   = 2
	ConfigCPUFanOffset   = 0x10
	ConfigGPUFanOffset   = 0x11
	ConfigCPUTempOffset  = 0x20
	ConfigCPUMaxOffset   = 0x22
	ConfigGPUTempOffset  = 0x24
	ConfigGPUMaxOffset   = 0x26
	ConfigRAMTempOffset  = 0x28
	ConfigRAMMaxOffset   = 0x2A
	ConfigMACOffset      = 0x30
	ConfigMACSize        = 6
	ConfigDVDOffset      = 0x40
	ConfigGameOffset     = 0x42
	ConfigVideoOffset    = 0x44
	ConfigResetOffset    = 0x48

	// FanOverrideBit enables a fixed fan speed; the low bits are a percentage.
	FanOverrideBit = 0x80
	FanPercentMask = 0x7F
	TempFixedPoint = 256.0 // 8.8 fixed point
)
