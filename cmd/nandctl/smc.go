package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nandkit/internal/format"
	"github.com/joshuapare/nandkit/smc"
)

var smcOut string

func init() {
	cmd := &cobra.Command{
		Use:   "smc <dump|smc.bin>",
		Short: "Decode the SMC firmware",
		Long: `The smc command decodes the system management controller firmware from a
NAND dump or from a 0x3000 byte SMC image, encrypted or not. With --out
the decrypted firmware is written to a file.

Example:
  nandctl smc nanddump.bin
  nandctl smc smc_enc.bin --out smc_dec.bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSMC(args)
		},
	}
	cmd.Flags().StringVarP(&smcOut, "out", "o", "", "Write the decrypted firmware to this file")
	rootCmd.AddCommand(cmd)
}

// loadSMC returns the decrypted firmware from a dump or a bare SMC image.
func loadSMC(path string) ([]byte, error) {
	size, err := fileSize(path)
	if err != nil {
		return nil, err
	}
	var raw []byte
	if size == format.SMCSize {
		raw, err = os.ReadFile(path)
	} else {
		r, oerr := openImage(path)
		if oerr != nil {
			return nil, oerr
		}
		defer r.Close()
		raw, err = r.SMC()
	}
	if err != nil {
		return nil, err
	}
	if smc.LooksDecrypted(raw) {
		return raw, nil
	}
	printVerbose("Decrypting SMC\n")
	return smc.Decrypt(raw), nil
}

func runSMC(args []string) error {
	blob, err := loadSMC(args[0])
	if err != nil {
		return fmt.Errorf("failed to read SMC: %w", err)
	}
	info, err := smc.Decode(blob)
	if err != nil {
		return fmt.Errorf("failed to decode SMC: %w", err)
	}
	if smcOut != "" {
		if err := os.WriteFile(smcOut, blob, 0o644); err != nil {
			return err
		}
		printVerbose("Wrote %s\n", smcOut)
	}
	if jsonOut {
		return printJSON(info)
	}

	rows := [][]string{
		{"Version:", info.Version},
		{"Board:", info.Board},
		{"Type:", info.Type.String()},
		{"Glitch patched:", yesNo(info.GlitchPatched)},
	}
	if info.Type.IsJTAG() {
		patches := "none"
		if len(info.JTAGPatches) > 0 {
			patches = strings.Join(info.JTAGPatches, ", ")
		}
		rows = append(rows, []string{"JTAG patches:", patches})
	}
	renderFields(rows)
	return nil
}
