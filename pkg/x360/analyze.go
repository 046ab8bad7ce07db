package x360

import (
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/nandkit/compat"
	"github.com/joshuapare/nandkit/fuse"
	"github.com/joshuapare/nandkit/nand"
	"github.com/joshuapare/nandkit/smc"
	"github.com/joshuapare/nandkit/smcconfig"
)

// Analyze opens src as a flash image and runs every step not listed in
// opts.Skip. It fails only when src is not a recognizable image.
func Analyze(src io.ReaderAt, size int64, opts Options) (*Report, error) {
	r, err := nand.Open(src, size, nand.Options{Geometry: opts.Geometry, Logger: opts.Logger})
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return analyze(r, opts), nil
}

// AnalyzeFile maps the dump at path and analyzes it.
func AnalyzeFile(path string, opts Options) (*Report, error) {
	r, err := nand.OpenFile(path, nand.Options{Geometry: opts.Geometry, Logger: opts.Logger})
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return analyze(r, opts), nil
}

// AnalyzeReader runs the steps over an already open session. The session
// stays open.
func AnalyzeReader(r *nand.Reader, opts Options) *Report {
	return analyze(r, opts)
}

func analyze(r *nand.Reader, opts Options) *Report {
	log := opts.logger()
	rep := &Report{
		Size:       r.Size(),
		Geometry:   r.Geometry(),
		BlockCount: r.BlockCount(),
	}

	steps := map[string]func() error{
		StepHeader: func() error {
			h, err := r.Header()
			if err == nil {
				rep.Header = &h
			}
			return err
		},
		StepFuses: func() error {
			lines, err := r.VirtualFuses()
			if err != nil {
				return err
			}
			fs := fuse.Decode(lines)
			rep.Fuses = &fs
			rep.CPUKey = fs.CPUKeyHex
			rep.Compatibility = compat.ForFuses(fs)
			return nil
		},
		StepSMC: func() error {
			raw, err := r.SMC()
			if err != nil {
				return err
			}
			info, err := smc.Decode(plainSMC(raw))
			if err != nil {
				return err
			}
			rep.SMC = &info
			return nil
		},
		StepSMCConfig: func() error {
			rec, err := r.SMCConfig()
			if err != nil {
				return err
			}
			cfg, err := smcconfig.Decode(rec)
			if err != nil {
				return err
			}
			rep.SMCConfig = &cfg
			return nil
		},
		StepBadBlocks: func() error {
			dm, err := r.ScanBadBlocksProgress(opts.Progress)
			if err != nil {
				return err
			}
			rep.BadBlocks = &dm
			return nil
		},
		StepLaunchIni: func() error {
			text, err := r.LaunchIni()
			if err == nil {
				rep.LaunchIni = text
			}
			return err
		},
	}

	run := func(name string) {
		start := time.Now()
		err := steps[name]()
		log.Debug("x360: step finished",
			slog.String("step", name),
			slog.Duration("elapsed", time.Since(start)),
			slog.Bool("ok", err == nil))
		if err != nil {
			rep.fail(name, err)
		}
	}

	if opts.Concurrency < 2 {
		for _, name := range Steps {
			if !opts.skipped(name) {
				run(name)
			}
		}
		return rep
	}

	var g errgroup.Group
	g.SetLimit(opts.Concurrency)
	for _, name := range Steps {
		if opts.skipped(name) {
			continue
		}
		g.Go(func() error {
			run(name)
			return nil
		})
	}
	_ = g.Wait()
	rep.sortErrors()
	return rep
}

// plainSMC returns the decrypted firmware whichever form the image stored.
func plainSMC(raw []byte) []byte {
	if smc.LooksDecrypted(raw) {
		return raw
	}
	return smc.Decrypt(raw)
}
