// Package schedule is the placeholder for schedule propagation:
// vectorization width and parallelization metadata. No visit rules exist
// yet, and the pass does not allow undefined visits, so running it traps on
// the first node it dispatches. The trap is deliberate; filling in the
// rules later has to replace it knowingly.
package schedule

import (
	"errors"

	"minkc/internal/ir"
)

// Run walks root with the propagation stub. It always fails.
func Run(root *ir.Block) error {
	if root == nil {
		return errors.New("schedule: nil root block")
	}
	p := &propagator{Base: ir.Base{Pass: "schedule"}}
	_, err := ir.Visit(p, root)
	return err
}

type propagator struct {
	ir.Base
}
