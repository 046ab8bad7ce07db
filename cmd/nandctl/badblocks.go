package main

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "badblocks <dump>",
		Short: "Scan a NAND dump for blocks marked bad",
		Long: `The badblocks command reads the spare area of every block and lists the
blocks carrying a bad block marker. Raw dumps without spare data cannot be
scanned.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBadBlocks(args)
		},
	})
}

func runBadBlocks(args []string) error {
	r, err := openImage(args[0])
	if err != nil {
		return err
	}
	defer r.Close()

	var progress func(done, total int)
	var bar *progressbar.ProgressBar
	if !quiet && !jsonOut {
		bar = progressbar.NewOptions(r.BlockCount(),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Scanning"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		progress = func(done, _ int) { _ = bar.Set(done) }
	}

	dm, err := r.ScanBadBlocksProgress(progress)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if jsonOut {
		return printJSON(dm)
	}
	if dm.Empty() {
		printInfo("No bad blocks found in %d blocks\n", r.BlockCount())
		return nil
	}
	table := newTable("Block", "Offset")
	for i, b := range dm.Blocks {
		table.Append([]string{fmt.Sprintf("0x%03X", b), fmt.Sprintf("0x%08X", dm.Offsets[i])})
	}
	if !quiet {
		table.Render()
	}
	printInfo("%d bad block(s)\n", len(dm.Blocks))
	return nil
}
