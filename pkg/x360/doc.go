/*
Package x360 runs every decoder in the module over one flash dump and
gathers the results into a single Report.

# Quick Start

	rep, err := x360.AnalyzeFile("nanddump.bin", x360.Options{})
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(rep.CPUKey, rep.Compatibility)

# Partial results

A dump is often incomplete: a retail image has no virtual fuses, a raw dump
has no spare area to scan, a wiped config block fails its checksum. Each of
those is recorded in Report.Errors under the name of the step that hit it
and the remaining steps still run. Only a source that cannot be opened as a
flash image at all makes Analyze return an error.

# Concurrency

Options.Concurrency > 1 runs the steps on a bounded worker group. Every
step only reads the image, so the result is the same either way.
*/
package x360
