package format

// ============================================================================
// Flash geometry
// ============================================================================
//
// Every image is a run of 512-byte pages. ECC dumps follow each page with a
// 16-byte spare area:
//
//	+--------------------+------------+
//	| data (0x200 bytes) | spare 0x10 |
//	+--------------------+------------+
//
// Small-block parts group 32 pages per block, big-block parts 256.
const (
	PageSize     = 0x200
	SpareSize    = 0x10
	RawPageSize  = PageSize + SpareSize // 0x210
	ECCSize      = 4                    // trailing EDC bytes in each spare
	ECCDataBytes = RawPageSize - ECCSize

	SmallBlockPages = 32
	BigBlockPages   = 256

	SmallBlockSize    = SmallBlockPages * PageSize    // 0x4000
	SmallBlockRawSize = SmallBlockPages * RawPageSize // 0x4200
	BigBlockSize      = BigBlockPages * PageSize      // 0x20000
	BigBlockRawSize   = BigBlockPages * RawPageSize   // 0x21000

	// RawBlockSize is the logical block used for dumps without spare data.
	RawBlockSize = SmallBlockSize
)

// Spare area layout (offsets within the 16-byte spare).
const (
	// Small-block: block id in bytes 0..1 (LE, 12 bits), marker at byte 5.
	SmallSpareBlockIDOffset  = 0x00
	SmallSpareBadBlockOffset = 0x05

	// Big-block: marker inline at byte 0, block id in bytes 1..2 (BE).
	BigSpareBadBlockOffset = 0x00
	BigSpareBlockIDOffset  = 0x01

	// GoodBlockMarker is the erased value of a healthy block's marker byte.
	GoodBlockMarker = 0xFF

	// BadBlockCheckPages is how many leading pages of a block carry a marker.
	BadBlockCheckPages = 2

	// BlockIDMask keeps the 12 significant bits of a small-block id.
	BlockIDMask = 0x0FFF
)

// Accepted image sizes, in bytes.
const (
	Size16M  = 0x1000000
	Size64M  = 0x4000000
	Size256M = 0x10000000
	Size512M = 0x20000000

	Size16MECC  = 0x1080000
	Size64MECC  = 0x4200000
	Size256MECC = 0x10800000
	Size512MECC = 0x21000000
)

// ============================================================================
// Flash header (data offset 0, big-endian)
// ============================================================================
//
//	Offset  Size  Description
//	------  ----  ------------------------------------------
//	 0x00    2    magic 0xFF4F
//	 0x02    2    build
//	 0x04    2    qfe
//	 0x06    2    flags
//	 0x08    4    bootloader entry offset
//	 0x0C    4    bootloader image size
//	 0x10   64    copyright string
//	 0x78    4    SMC length
//	 0x7C    4    SMC offset
const (
	HeaderMagic        = 0xFF4F
	HeaderMagicOffset  = 0x00
	HeaderBuildOffset  = 0x02
	HeaderQFEOffset    = 0x04
	HeaderFlagsOffset  = 0x06
	HeaderEntryOffset  = 0x08
	HeaderSizeOffset   = 0x0C
	HeaderCopyOffset   = 0x10
	HeaderCopySize     = 0x40
	HeaderSMCLenOffset = 0x78
	HeaderSMCOffOffset = 0x7C
	HeaderSize         = 0x80
)

// ============================================================================
// Fixed data-space locations
// ============================================================================
const (
	// VirtualFuseOffset is where glitch images keep a reconstructed fuse bank.
	VirtualFuseOffset = 0x95000
	VirtualFuseSize   = 16 * 8

	// VirtualFuseMagic is the first line every virtual fuse bank starts with.
	VirtualFuseMagic = 0xC0FFFFFFFFFFFFFF

	// SMC config record location for 16 MiB small-block parts and for
	// big-block parts.
	SMCConfigOffsetSmall = 0xF7C000
	SMCConfigOffsetBig   = 0x3BE0000
)

// LaunchIniSection opens the dashboard launch.ini text.
var LaunchIniSection = []byte("[QuickLaunch]")
