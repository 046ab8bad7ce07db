package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nandkit/compat"
	"github.com/joshuapare/nandkit/fuse"
	"github.com/joshuapare/nandkit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newFusesCmd())
}

func newFusesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fuses <dump|fuses.txt|fuses.bin>",
		Short: "Decode a fuse bank",
		Long: `The fuses command decodes the sixteen fuse lines of a console. The input is
a text fuse dump ("fuseset 00: ..."), a 128 byte binary bank, or a NAND
dump carrying virtual fuses.

Example:
  nandctl fuses fuses.txt
  nandctl fuses nanddump.bin --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFuses(args)
		},
	}
}

// loadFuses reads fuse lines from any of the accepted inputs.
func loadFuses(path string) ([types.FuseLineCount]uint64, error) {
	var lines [types.FuseLineCount]uint64
	size, err := fileSize(path)
	if err != nil {
		return lines, err
	}
	if size == fuse.BinarySize {
		b, err := os.ReadFile(path)
		if err != nil {
			return lines, err
		}
		return fuse.ParseBinary(b)
	}
	if r, err := openImage(path); err == nil {
		defer r.Close()
		return r.VirtualFuses()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return lines, err
	}
	return fuse.ParseText(bytes.NewReader(b))
}

func runFuses(args []string) error {
	lines, err := loadFuses(args[0])
	if err != nil {
		return fmt.Errorf("failed to read fuses: %w", err)
	}
	fs := fuse.Decode(lines)
	if jsonOut {
		return printJSON(struct {
			types.FuseSet
			Compatibility string `json:"compatibility"`
		}{fs, compat.ForFuses(fs)})
	}

	rows := [][]string{
		{"CPUKey:", fs.CPUKeyHex},
		{"CPUKey valid:", yesNo(fs.CPUKeyValid)},
		{"CF LDV:", fmt.Sprintf("%d", fs.CFLDV)},
		{"CB LDV:", fmt.Sprintf("%d", fs.CBLDV)},
	}
	if fs.FatRetail() || fs.SlimRetail() {
		rows = append(rows, []string{"Dashboard compatibility:", compat.ForFuses(fs)})
	}
	rows = append(rows,
		[]string{"FUSE type:", compat.FuseTypeName(fs.Class)},
		[]string{"Unlocked:", yesNo(fs.Unlocked)},
		[]string{"Uses eeprom:", yesNo(fs.UsesEeprom)})
	if e := fs.Eeprom; e != nil {
		rows = append(rows,
			[]string{"Eeprom key 1:", fmt.Sprintf("%016X", e.Key1)},
			[]string{"Eeprom key 2:", fmt.Sprintf("%016X", e.Key2)},
			[]string{"Eeprom hash 1:", fmt.Sprintf("%016X", e.Hash1)},
			[]string{"Eeprom hash 2:", fmt.Sprintf("%016X", e.Hash2)})
	}
	rows = append(rows,
		[]string{"Secure:", yesNo(fs.Secure)},
		[]string{"Not valid flag:", yesNo(fs.Invalid)},
		[]string{"Reserved OK:", yesNo(fs.ReservedOK)})
	renderFields(rows)

	printInfo("\nFuse lines:\n")
	for i, l := range fs.Lines {
		printInfo("fuseset %02d: %016X\n", i, l)
	}
	return nil
}
