package x360

import (
	"errors"
	"sync"

	"github.com/joshuapare/nandkit/nand"
	"github.com/joshuapare/nandkit/pkg/types"
)

// StepError records why one analysis step produced nothing.
type StepError struct {
	Step    string        `json:"step"`
	Kind    types.ErrKind `json:"kind"`
	Message string        `json:"message"`
	err     error
}

func (e StepError) Error() string { return e.Step + ": " + e.Message }

// Unwrap exposes the underlying error for errors.Is.
func (e StepError) Unwrap() error { return e.err }

// Report is the combined result of every step. Fields of a step that failed
// or was skipped stay nil.
type Report struct {
	Size       int64         `json:"size"`
	Geometry   nand.Geometry `json:"geometry"`
	BlockCount int           `json:"block_count"`

	Header        *nand.Header       `json:"header,omitempty"`
	Fuses         *types.FuseSet     `json:"fuses,omitempty"`
	CPUKey        string             `json:"cpu_key,omitempty"`
	Compatibility string             `json:"compatibility,omitempty"`
	SMC           *types.SMCInfo     `json:"smc,omitempty"`
	SMCConfig     *types.ConfigBlock `json:"smc_config,omitempty"`
	BadBlocks     *types.DefectMap   `json:"bad_blocks,omitempty"`
	LaunchIni     string             `json:"launch_ini,omitempty"`

	Errors []StepError `json:"errors,omitempty"`

	mu sync.Mutex
}

// Err returns the recorded error for step, or nil.
func (r *Report) Err(step string) error {
	for _, e := range r.Errors {
		if e.Step == step {
			return e
		}
	}
	return nil
}

// OK reports whether every step that ran succeeded.
func (r *Report) OK() bool { return len(r.Errors) == 0 }

func (r *Report) fail(step string, err error) {
	se := StepError{Step: step, Kind: types.KindOf(err), Message: err.Error(), err: err}
	r.mu.Lock()
	r.Errors = append(r.Errors, se)
	r.mu.Unlock()
}

// sortErrors puts the recorded errors in step order so concurrent runs
// report the same way as sequential ones.
func (r *Report) sortErrors() {
	if len(r.Errors) < 2 {
		return
	}
	out := make([]StepError, 0, len(r.Errors))
	for _, s := range Steps {
		for _, e := range r.Errors {
			if e.Step == s {
				out = append(out, e)
			}
		}
	}
	r.Errors = out
}

// IsNotFound reports whether err means an optional artifact is absent.
func IsNotFound(err error) bool { return errors.Is(err, types.ErrDataNotFound) }
