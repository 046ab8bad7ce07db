package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nandkit/fuse"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "cpukey <dump|fuses.txt|fuses.bin>",
		Short: "Print the CPU key and whether it is well formed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCPUKey(args)
		},
	})
}

func runCPUKey(args []string) error {
	lines, err := loadFuses(args[0])
	if err != nil {
		return fmt.Errorf("failed to read fuses: %w", err)
	}
	fs := fuse.Decode(lines)
	if jsonOut {
		return printJSON(map[string]any{"cpu_key": fs.CPUKeyHex, "valid": fs.CPUKeyValid})
	}
	if !fs.CPUKeyValid {
		printVerbose("Key fails the Hamming weight check\n")
	}
	printInfo("%s\n", fs.CPUKeyHex)
	return nil
}
