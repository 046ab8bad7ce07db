package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "launchini <dump>",
		Short: "Print the dashboard launch.ini stored in a NAND dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunchIni(args)
		},
	})
}

func runLaunchIni(args []string) error {
	r, err := openImage(args[0])
	if err != nil {
		return err
	}
	defer r.Close()

	text, err := r.LaunchIni()
	if err != nil {
		return fmt.Errorf("failed to read launch.ini: %w", err)
	}
	if jsonOut {
		return printJSON(map[string]string{"launch_ini": text})
	}
	printInfo("%s\n", text)
	return nil
}
