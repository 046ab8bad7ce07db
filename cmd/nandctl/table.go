package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
)

// newTable returns a borderless left-aligned table on stdout.
func newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	if len(header) > 0 {
		table.SetHeader(header)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	}
	return table
}

// renderFields prints label/value rows unless quiet.
func renderFields(rows [][]string) {
	if quiet {
		return
	}
	table := newTable()
	table.AppendBulk(rows)
	table.Render()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func formatSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d bytes", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}
