// Package testutil builds synthetic flash dumps for tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/nandkit/internal/format"
	"github.com/joshuapare/nandkit/smc"
	"github.com/joshuapare/nandkit/smcconfig"
)

// Dump is an in-memory small-block image with ECC spare areas. Every byte
// starts out erased (0xFF).
type Dump []byte

// NewDump returns an erased 16 MiB small-block dump.
func NewDump() Dump {
	return Dump(bytes.Repeat([]byte{0xFF}, format.Size16MECC))
}

// Write stores b at logical data offset off, skipping spare areas.
func (d Dump) Write(off int64, b []byte) {
	for len(b) > 0 {
		page, in := off/format.PageSize, off%format.PageSize
		raw := page*format.RawPageSize + in
		n := copy(d[raw:raw+format.PageSize-in], b)
		b = b[n:]
		off += int64(n)
	}
}

// MarkBad sets the bad-block marker on the first page of block.
func (d Dump) MarkBad(block int) {
	page := int64(block * format.SmallBlockPages)
	d[page*format.RawPageSize+format.PageSize+format.SmallSpareBadBlockOffset] = 0x00
}

// WriteHeader writes a flash header pointing at an SMC image.
func (d Dump) WriteHeader(build uint16, smcOff, smcLen uint32) {
	h := make([]byte, format.HeaderSize)
	binary.BigEndian.PutUint16(h[format.HeaderMagicOffset:], format.HeaderMagic)
	binary.BigEndian.PutUint16(h[format.HeaderBuildOffset:], build)
	copy(h[format.HeaderCopyOffset:], "(c) 2004-2011 test")
	binary.BigEndian.PutUint32(h[format.HeaderSMCLenOffset:], smcLen)
	binary.BigEndian.PutUint32(h[format.HeaderSMCOffOffset:], smcOff)
	d.Write(0, h)
}

// WriteVirtualFuses stores lines at the virtual fuse offset. Lines not given
// are zero.
func (d Dump) WriteVirtualFuses(lines ...uint64) {
	b := make([]byte, format.VirtualFuseSize)
	for i, l := range lines {
		binary.BigEndian.PutUint64(b[i*8:], l)
	}
	d.Write(format.VirtualFuseOffset, b)
}

// Firmware returns a plain SMC image with the given version bytes and any
// extra signatures laid out from 0x800 on.
func Firmware(major, minor byte, sigs ...[]byte) []byte {
	fw := make([]byte, format.SMCSize)
	fw[format.SMCResetVectorOffset] = format.SMCResetVectorLJMP
	fw[format.SMCMajorOffset] = major
	fw[format.SMCMinorOffset] = minor
	off := 0x800
	for _, s := range sigs {
		copy(fw[off:], s)
		off += len(s) + 0x10
	}
	return fw
}

// Fixture CPU key halves; together they pass the weight check.
const (
	CPUKeyHi  uint64 = 0xFFFFFFFFFFFFF800
	CPUKeyLo  uint64 = 0x000000000000FFFF
	CPUKeyHex        = "FFFFFFFFFFFFF800000000000000FFFF"
)

// FullDump returns a glitch-modded fat retail dump with every artifact the
// analyzers look for:
//
//   - header with build 1888 and an encrypted SMC at 0x1000 (v65.2, Jasper)
//   - virtual fuses with CB LDV 6
//   - an NTSC/US config record
//   - launch.ini at 0x100000
//   - block 9 marked bad
func FullDump(t testing.TB) Dump {
	t.Helper()
	d := NewDump()
	d.WriteHeader(1888, 0x1000, format.SMCSize)
	d.Write(0x1000, smc.Encrypt(Firmware(0x41, 0x02, format.SMCGlitchSignature)))
	d.WriteVirtualFuses(
		format.VirtualFuseMagic,
		0x0F0F0F0F0F0F0FF0,
		0xFFFFFF0000000000,
		CPUKeyHi, CPUKeyHi,
		CPUKeyLo, CPUKeyLo,
	)

	rec := make([]byte, format.ConfigSize)
	binary.BigEndian.PutUint16(rec[format.ConfigGameOffset:], 0x00FF)
	rec[format.ConfigVideoOffset] = 1
	if err := smcconfig.Seal(rec); err != nil {
		t.Fatalf("seal config: %v", err)
	}
	d.Write(format.SMCConfigOffsetSmall, rec)

	d.Write(0x100000, []byte("[QuickLaunch]\r\nDefault = Hdd:\\x.xex\r\n\x00"))
	d.MarkBad(9)
	return d
}

// WriteFile saves b under name in a fresh temp dir and returns its path.
func WriteFile(t testing.TB, name string, b []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
