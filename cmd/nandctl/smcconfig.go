package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nandkit/internal/format"
	"github.com/joshuapare/nandkit/smcconfig"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "smcconfig <dump|smc_config.bin>",
		Short: "Decode the SMC config record",
		Long: `The smcconfig command decodes the SMC configuration record from a NAND
dump or from a bare 0x100 byte record. A record with a bad checksum is
reported as an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSMCConfig(args)
		},
	})
}

func loadSMCConfig(path string) ([]byte, error) {
	size, err := fileSize(path)
	if err != nil {
		return nil, err
	}
	if size == format.ConfigSize {
		return os.ReadFile(path)
	}
	r, err := openImage(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	printVerbose("Reading config at 0x%X\n", r.SMCConfigOffset())
	return r.SMCConfig()
}

func runSMCConfig(args []string) error {
	rec, err := loadSMCConfig(args[0])
	if err != nil {
		return fmt.Errorf("failed to read SMC config: %w", err)
	}
	cfg, err := smcconfig.Decode(rec)
	if err != nil {
		return fmt.Errorf("failed to decode SMC config: %w", err)
	}
	if jsonOut {
		return printJSON(cfg)
	}
	renderFields([][]string{
		{"Checksum:", fmt.Sprintf("0x%04X", cfg.Checksum)},
		{"DVD region:", cfg.DVDRegion.String()},
		{"Game region:", cfg.GameRegion.String()},
		{"Video region:", cfg.VideoRegion.String()},
		{"CPU fan:", cfg.CPUFan.String()},
		{"GPU fan:", cfg.GPUFan.String()},
		{"CPU temp:", cfg.Temps.CPU.String()},
		{"CPU max temp:", cfg.Temps.CPUMax.String()},
		{"GPU temp:", cfg.Temps.GPU.String()},
		{"GPU max temp:", cfg.Temps.GPUMax.String()},
		{"RAM temp:", cfg.Temps.RAM.String()},
		{"RAM max temp:", cfg.Temps.RAMMax.String()},
		{"MAC address:", cfg.MAC},
		{"Reset code:", fmt.Sprintf("%s (%s)", cfg.ResetCode, cfg.ResetCode.Name)},
	})
	return nil
}
