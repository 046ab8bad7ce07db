package x360

import (
	"log/slog"

	"github.com/joshuapare/nandkit/nand"
)

// Step names used in Report.Errors and Options.Skip.
const (
	StepHeader    = "header"
	StepFuses     = "fuses"
	StepSMC       = "smc"
	StepSMCConfig = "smcconfig"
	StepBadBlocks = "badblocks"
	StepLaunchIni = "launchini"
)

// Steps lists every analysis step in report order.
var Steps = []string{StepHeader, StepFuses, StepSMC, StepSMCConfig, StepBadBlocks, StepLaunchIni}

// Options controls Analyze.
type Options struct {
	// Geometry forces an image layout. The zero value auto-detects.
	Geometry nand.Geometry

	// Logger receives debug events from every step. Nil disables logging.
	Logger *slog.Logger

	// Concurrency bounds how many steps run at once. Values below 2 run
	// the steps in order on the calling goroutine.
	Concurrency int

	// Skip names steps to leave out, e.g. StepBadBlocks on very large dumps.
	Skip []string

	// Progress, if set, receives bad-block scan progress.
	Progress nand.ProgressFunc
}

func (o Options) skipped(step string) bool {
	for _, s := range o.Skip {
		if s == step {
			return true
		}
	}
	return false
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
