// Package lower rewrites frontend statement forms into their lowered
// equivalents by repeated single-rewrite traversals.
package lower

import (
	"errors"
	"fmt"

	"minkc/internal/ir"
)

// Stats reports the work performed by one lowering run.
type Stats struct {
	// Traversals counts full walks from the root, the final clean walk
	// included.
	Traversals int
	// Rewrites counts frontend statements replaced. Each rewrite restarts
	// the walk, so a tree holding k frontend statements takes exactly k+1
	// traversals.
	Rewrites int
}

// Run lowers every frontend statement under root. Each walk rewrites the
// first Assign or FrontendPrint it reaches, splices the replacement into the
// owning block at the same position, and restarts from the root; the run
// converges when a walk completes without rewriting. Branch conditions and
// loop bounds are never rewritten. Running over an already-lowered tree is
// a no-op.
func Run(root *ir.Block) (Stats, error) {
	if root == nil {
		return Stats{}, errors.New("lower: nil root block")
	}
	l := &lowerer{}
	var st Stats
	for {
		st.Traversals++
		sig, err := ir.Visit(l, root)
		if err != nil {
			return st, fmt.Errorf("lower: %w", err)
		}
		if sig == ir.Continue {
			return st, nil
		}
		st.Rewrites++
	}
}

// lowerer performs the per-walk rewriting. It keeps one temporary-name
// allocator alive for the whole run, so restarts never reuse a name, and
// hands each pending replacement up to the owning block through the Restart
// signal.
type lowerer struct {
	temps   ir.Temps
	pending []ir.Stmt
}

func (l *lowerer) VisitBlock(b *ir.Block) (ir.Signal, error) {
	for i := 0; i < b.Len(); i++ {
		sig, err := ir.Visit(l, b.At(i))
		if err != nil {
			return ir.Continue, err
		}
		if sig == ir.Restart {
			if l.pending != nil {
				repl := l.pending
				l.pending = nil
				if err := b.ReplaceAt(i, repl...); err != nil {
					return ir.Continue, err
				}
			}
			return ir.Restart, nil
		}
	}
	return ir.Continue, nil
}

// VisitAssign flattens the right-hand side in produced form and finishes
// with a store of the last produced value. A bare identifier right-hand
// side materializes a load so the store always has a producing statement.
func (l *lowerer) VisitAssign(s *ir.AssignStmt) (ir.Signal, error) {
	f := ir.NewFlattener(&l.temps)
	last := ir.FlattenProduced(s.Rhs, f)
	l.pending = append(f.Out, &ir.LocalStoreStmt{Target: s.Target, Value: last})
	return ir.Restart, nil
}

// VisitFrontendPrint flattens the argument in value form; a bare identifier
// is referenced by the print directly, making the whole replacement a single
// statement.
func (l *lowerer) VisitFrontendPrint(s *ir.FrontendPrintStmt) (ir.Signal, error) {
	f := ir.NewFlattener(&l.temps)
	v := s.Arg.Flatten(f)
	l.pending = append(f.Out, &ir.PrintStmt{Typ: v.Type(), Value: v})
	return ir.Restart, nil
}

func (l *lowerer) VisitIf(s *ir.IfStmt) (ir.Signal, error)   { return ir.VisitIfBodies(l, s) }
func (l *lowerer) VisitFor(s *ir.ForStmt) (ir.Signal, error) { return ir.VisitForBody(l, s) }

// Already-lowered forms pass through untouched.
func (l *lowerer) VisitConst(*ir.ConstStmt) (ir.Signal, error)           { return ir.Continue, nil }
func (l *lowerer) VisitAlloca(*ir.AllocaStmt) (ir.Signal, error)         { return ir.Continue, nil }
func (l *lowerer) VisitBinaryOp(*ir.BinaryOpStmt) (ir.Signal, error)     { return ir.Continue, nil }
func (l *lowerer) VisitUnaryOp(*ir.UnaryOpStmt) (ir.Signal, error)       { return ir.Continue, nil }
func (l *lowerer) VisitLocalLoad(*ir.LocalLoadStmt) (ir.Signal, error)   { return ir.Continue, nil }
func (l *lowerer) VisitLocalStore(*ir.LocalStoreStmt) (ir.Signal, error) { return ir.Continue, nil }
func (l *lowerer) VisitPrint(*ir.PrintStmt) (ir.Signal, error)           { return ir.Continue, nil }
