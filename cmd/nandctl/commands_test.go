package main

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nandkit/internal/format"
	"github.com/joshuapare/nandkit/internal/testutil"
	"github.com/joshuapare/nandkit/nand"
	"github.com/joshuapare/nandkit/pkg/types"
	"github.com/joshuapare/nandkit/smc"
	"github.com/joshuapare/nandkit/smcconfig"
)

const fuseText = `fuseset 00: C0FFFFFFFFFFFFFF
fuseset 01: 0F0F0F0F0F0FF00F
fuseset 02: FFFF000000000000
fuseset 03: FFFFFFFFFFFFF800
fuseset 04: FFFFFFFFFFFFF800
fuseset 05: 000000000000FFFF
fuseset 06: 000000000000FFFF
fuseset 07: FF00000000000000
`

func TestFusesCommand(t *testing.T) {
	resetFlags(t)
	path := testutil.WriteFile(t, "fuses.txt", []byte(fuseText))

	out, err := captureOutput(t, func() error { return runFuses([]string{path}) })
	require.NoError(t, err)
	assert.Contains(t, out, "FFFFFFFFFFFFF800000000000000FFFF")
	assert.Contains(t, out, "Slim Retail")
	assert.Contains(t, out, "Dashboard 15572 & later is compatible")
	assert.Contains(t, out, "fuseset 07: FF00000000000000")
}

func TestFusesCommandBinaryJSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true
	b := make([]byte, 128)
	binary.BigEndian.PutUint64(b[8:], 0x0F0F0F0F0F0F0F0F)
	path := testutil.WriteFile(t, "fuses.bin", b)

	out, err := captureOutput(t, func() error { return runFuses([]string{path}) })
	require.NoError(t, err)
	m := decodeJSON(t, out)
	assert.Equal(t, "Devkit", m["class"])
	assert.Equal(t, "Unknown", m["compatibility"])
	assert.NotContains(t, m, "eeprom")
}

func TestCPUKeyCommand(t *testing.T) {
	resetFlags(t)
	path := testutil.WriteFile(t, "fuses.txt", []byte(fuseText))
	out, err := captureOutput(t, func() error { return runCPUKey([]string{path}) })
	require.NoError(t, err)
	assert.Equal(t, "FFFFFFFFFFFFF800000000000000FFFF\n", out)
}

func TestSMCCommand(t *testing.T) {
	resetFlags(t)
	fw := make([]byte, format.SMCSize)
	fw[0] = format.SMCResetVectorLJMP
	fw[format.SMCMajorOffset] = 0x12
	fw[format.SMCMinorOffset] = 0x51
	copy(fw[0x700:], format.SMCJtagSignature)
	copy(fw[0x900:], format.SMCJTAGPatches[2].Signature)
	path := testutil.WriteFile(t, "smc_enc.bin", smc.Encrypt(fw))
	smcOut = path + ".dec"

	out, err := captureOutput(t, func() error { return runSMC([]string{path}) })
	require.NoError(t, err)
	assert.Contains(t, out, "18.81")
	assert.Contains(t, out, "Xenon")
	assert.Contains(t, out, "Jtag")
	assert.Contains(t, out, "hwinit")

	dec, err := os.ReadFile(smcOut)
	require.NoError(t, err)
	assert.Equal(t, fw, dec)
}

func TestSMCConfigCommand(t *testing.T) {
	resetFlags(t)
	rec := make([]byte, format.ConfigSize)
	binary.BigEndian.PutUint16(rec[format.ConfigGameOffset:], 0x0201)
	binary.BigEndian.PutUint16(rec[format.ConfigCPUTempOffset:], 40<<8)
	rec[format.ConfigCPUFanOffset] = 0x80 | 30
	require.NoError(t, smcconfig.Seal(rec))
	path := testutil.WriteFile(t, "smc_config.bin", rec)

	out, err := captureOutput(t, func() error { return runSMCConfig([]string{path}) })
	require.NoError(t, err)
	assert.Contains(t, out, "PAL/Australia")
	assert.Contains(t, out, "40.0°C (104.0°F)")
	assert.Contains(t, out, "30%")

	rec[0x50] ^= 0xFF
	bad := testutil.WriteFile(t, "smc_config.bin", rec)
	_, err = captureOutput(t, func() error { return runSMCConfig([]string{bad}) })
	assert.ErrorIs(t, err, types.ErrChecksumMismatch)
}

func TestBadBlocksRawUnsupported(t *testing.T) {
	resetFlags(t)
	quiet = true
	path := testutil.WriteFile(t, "raw.bin", make([]byte, format.Size16M))
	_, err := captureOutput(t, func() error { return runBadBlocks([]string{path}) })
	assert.ErrorIs(t, err, types.ErrUnsupported)
}

func TestBadBlocksJSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true
	img := testutil.NewDump()
	img.MarkBad(3)
	path := testutil.WriteFile(t, "nand.bin", img)

	out, err := captureOutput(t, func() error { return runBadBlocks([]string{path}) })
	require.NoError(t, err)
	m := decodeJSON(t, out)
	assert.Equal(t, []any{float64(3)}, m["blocks"])
}

func TestInfoCommandReportsMissingSteps(t *testing.T) {
	resetFlags(t)
	path := testutil.WriteFile(t, "raw.bin", make([]byte, format.Size16M))
	out, err := captureOutput(t, func() error { return runInfo([]string{path}) })
	require.NoError(t, err)
	assert.Contains(t, out, "Raw, 1024 blocks")
	assert.Contains(t, out, "Not available")
	assert.Contains(t, out, "Unsupported")
}

func TestVersionCommandJSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true
	out, err := captureOutput(t, func() error {
		versionCmd.Run(versionCmd, nil)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "dev", decodeJSON(t, out)["version"])
}

func TestParseGeometry(t *testing.T) {
	tests := map[string]nand.Geometry{
		"":      nand.GeometryAuto,
		"auto":  nand.GeometryAuto,
		"RAW":   nand.GeometryRaw,
		"small": nand.GeometrySmallBlock,
		"big":   nand.GeometryBigBlock,
	}
	for in, want := range tests {
		got, err := parseGeometry(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parseGeometry("huge")
	assert.Error(t, err)
}

func TestInfoCommandFullDump(t *testing.T) {
	resetFlags(t)
	infoConcurrency = 3
	path := testutil.WriteFile(t, "nanddump.bin", testutil.FullDump(t))

	out, err := captureOutput(t, func() error { return runInfo([]string{path}) })
	require.NoError(t, err)
	assert.Contains(t, out, testutil.CPUKeyHex)
	assert.Contains(t, out, "Fat Retail")
	assert.Contains(t, out, "Dashboard 8498 -> 14699 Are compatible")
	assert.Contains(t, out, "Jasper")
	assert.Contains(t, out, "NTSC/US")
	assert.NotContains(t, out, "Not available")
}

func TestLaunchIniCommand(t *testing.T) {
	resetFlags(t)
	path := testutil.WriteFile(t, "nanddump.bin", testutil.FullDump(t))
	out, err := captureOutput(t, func() error { return runLaunchIni([]string{path}) })
	require.NoError(t, err)
	assert.Contains(t, out, "[QuickLaunch]")
	assert.Contains(t, out, "Default = Hdd:\\x.xex")
}

func TestFusesFromDump(t *testing.T) {
	resetFlags(t)
	path := testutil.WriteFile(t, "nanddump.bin", testutil.FullDump(t))
	out, err := captureOutput(t, func() error { return runCPUKey([]string{path}) })
	require.NoError(t, err)
	assert.Equal(t, testutil.CPUKeyHex+"\n", out)
}
