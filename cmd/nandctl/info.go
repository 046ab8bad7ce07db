package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nandkit/cmd/nandctl/logger"
	"github.com/joshuapare/nandkit/pkg/x360"
)

var (
	infoConcurrency int
	infoSkipScan    bool
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <dump>",
		Short: "Run every decoder over a NAND dump and summarize the results",
		Long: `The info command opens a NAND dump, detects its layout and runs every
analysis step: flash header, virtual fuses and CPU key, SMC firmware, SMC
config, bad block scan and launch.ini. Steps that find nothing are listed
at the end instead of failing the command.

Example:
  nandctl info nanddump.bin
  nandctl info nanddump.bin --json
  nandctl info nanddump.bin --skip-scan -j 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	cmd.Flags().IntVarP(&infoConcurrency, "jobs", "j", 1, "Number of analysis steps to run at once")
	cmd.Flags().BoolVar(&infoSkipScan, "skip-scan", false, "Skip the bad block scan")
	return cmd
}

func runInfo(args []string) error {
	path := args[0]
	geo, err := parseGeometry(geometry)
	if err != nil {
		return err
	}
	opts := x360.Options{Geometry: geo, Logger: logger.L, Concurrency: infoConcurrency}
	if infoSkipScan {
		opts.Skip = append(opts.Skip, x360.StepBadBlocks)
	}

	printVerbose("Analyzing dump: %s\n", path)
	rep, err := x360.AnalyzeFile(path, opts)
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", path, err)
	}

	if jsonOut {
		return printJSON(rep)
	}

	rows := [][]string{
		{"File:", path},
		{"Size:", formatSize(rep.Size)},
		{"Layout:", fmt.Sprintf("%s, %d blocks", rep.Geometry, rep.BlockCount)},
	}
	if h := rep.Header; h != nil {
		rows = append(rows,
			[]string{"Bootloader build:", fmt.Sprintf("%d", h.Build)},
			[]string{"Copyright:", h.Copyright})
	}
	if fs := rep.Fuses; fs != nil {
		rows = append(rows,
			[]string{"CPU key:", fmt.Sprintf("%s (valid: %s)", rep.CPUKey, yesNo(fs.CPUKeyValid))},
			[]string{"Fuse type:", fs.Class.String()},
			[]string{"CB LDV:", fmt.Sprintf("%d", fs.CBLDV)},
			[]string{"CF LDV:", fmt.Sprintf("%d", fs.CFLDV)},
			[]string{"Compatibility:", rep.Compatibility})
	}
	if s := rep.SMC; s != nil {
		rows = append(rows,
			[]string{"SMC version:", s.Version},
			[]string{"Board:", s.Board},
			[]string{"SMC type:", s.Type.String()})
	}
	if c := rep.SMCConfig; c != nil {
		rows = append(rows,
			[]string{"Game region:", c.GameRegion.String()},
			[]string{"MAC address:", c.MAC})
	}
	if bb := rep.BadBlocks; bb != nil {
		rows = append(rows, []string{"Bad blocks:", fmt.Sprintf("%d", len(bb.Blocks))})
	}
	if rep.LaunchIni != "" {
		rows = append(rows, []string{"launch.ini:", "present"})
	}
	renderFields(rows)

	if len(rep.Errors) > 0 && !quiet {
		printInfo("\nNot available:\n")
		table := newTable("Step", "Kind", "Reason")
		for _, e := range rep.Errors {
			table.Append([]string{e.Step, e.Kind.String(), e.Message})
		}
		table.Render()
	}
	return nil
}
