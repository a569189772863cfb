// Package pipeline coordinates the compilation phases over a program tree.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"goa.design/clue/log"

	"minkc/internal/ir"
	"minkc/internal/lower"
	"minkc/internal/phase"
	"minkc/internal/typecheck"
)

// Options configure a pipeline run.
type Options struct {
	// DumpIR makes the print phase capture the listing of the finished tree.
	DumpIR bool
}

// Outcome carries what the phases produced.
type Outcome struct {
	// Phase is the last phase the tree reached.
	Phase phase.Phase
	// Lower reports the lowering traversal and rewrite counts.
	Lower lower.Stats
	// Listing is the captured listing; empty unless DumpIR was set.
	Listing string
}

// Pipeline runs the phases of phase.Order over one tree.
type Pipeline struct {
	opts Options
	id   string
}

// New creates a pipeline tagged with a fresh compile id.
func New(opts Options) *Pipeline {
	return &Pipeline{opts: opts, id: uuid.NewString()}
}

// ID returns the compile id the run's log entries are tagged with.
func (p *Pipeline) ID() string { return p.id }

// Run executes the phases in order over root. A phase error aborts the run
// and is returned wrapped with the phase name; the Outcome reports the last
// phase that completed.
func (p *Pipeline) Run(ctx context.Context, root *ir.Block) (Outcome, error) {
	out := Outcome{Phase: phase.PhaseBuilt}
	if root == nil {
		return out, errors.New("pipeline: nil root block")
	}
	for _, next := range phase.Order {
		if !phase.Advance(out.Phase, next) {
			return out, fmt.Errorf("pipeline: cannot advance from %s to %s", out.Phase, next)
		}
		start := time.Now()
		if err := p.runPhase(ctx, next, root, &out); err != nil {
			log.Error(ctx, err, log.KV{K: "phase", V: next.String()}, log.KV{K: "compile_id", V: p.id})
			return out, fmt.Errorf("phase %s: %w", next, err)
		}
		out.Phase = next
		log.Debug(ctx,
			log.KV{K: "msg", V: "phase done"},
			log.KV{K: "phase", V: next.String()},
			log.KV{K: "compile_id", V: p.id},
			log.KV{K: "elapsed", V: time.Since(start).String()},
		)
	}
	return out, nil
}

func (p *Pipeline) runPhase(ctx context.Context, ph phase.Phase, root *ir.Block, out *Outcome) error {
	switch ph {
	case phase.PhaseLowered:
		st, err := lower.Run(root)
		if err != nil {
			return err
		}
		out.Lower = st
		log.Debugf(ctx, "lowered in %d traversals (%d rewrites)", st.Traversals, st.Rewrites)
		return nil
	case phase.PhaseTypeChecked:
		return typecheck.Run(root)
	case phase.PhasePrinted:
		if p.opts.DumpIR {
			out.Listing = ir.Format(root)
		}
		return nil
	default:
		return fmt.Errorf("no runner for phase %s", ph)
	}
}
