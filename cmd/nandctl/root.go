package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nandkit/cmd/nandctl/logger"
	"github.com/joshuapare/nandkit/nand"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	logDir   string
	geometry string
)

var rootCmd = &cobra.Command{
	Use:   "nandctl",
	Short: "Inspect Xbox 360 NAND dumps",
	Long: `nandctl reads raw flash dumps and the pieces commonly extracted from
them, and reports the security fuses, CPU key, SMC firmware and config,
bad blocks and launch.ini contents.

Every command accepts a full NAND dump. Commands that decode a single
artifact also accept that artifact on its own (a fuse dump, a 0x3000 byte
SMC image or a 0x100 byte SMC config record).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init(logger.Options{Verbose: verbose && !quiet, LogDir: logDir})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Also write JSON logs to this directory")
	rootCmd.PersistentFlags().
		StringVarP(&geometry, "geometry", "g", "auto", "Image layout: auto, raw, small or big")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func parseGeometry(s string) (nand.Geometry, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return nand.GeometryAuto, nil
	case "raw":
		return nand.GeometryRaw, nil
	case "small", "smallblock":
		return nand.GeometrySmallBlock, nil
	case "big", "bigblock":
		return nand.GeometryBigBlock, nil
	}
	return nand.GeometryAuto, fmt.Errorf("unknown geometry %q (want auto, raw, small or big)", s)
}

// openImage opens a NAND dump with the global geometry and logger.
func openImage(path string) (*nand.Reader, error) {
	geo, err := parseGeometry(geometry)
	if err != nil {
		return nil, err
	}
	printVerbose("Opening dump: %s\n", path)
	r, err := nand.OpenFile(path, nand.Options{Geometry: geo, Logger: logger.L})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return r, nil
}

// fileSize returns the size of path.
func fileSize(path string) (int64, error) {
	st, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return st.Size(), nil
}
