// Package typecheck annotates result types that flattening left unknown.
// The pass is deliberately partial: it runs with undefined visits allowed,
// so statement kinds it has no rule for pass through silently and the pass
// completes on any tree, lowered or not.
package typecheck

import (
	"errors"
	"fmt"

	"minkc/internal/ir"
)

// Run fills in derivable result types under root. Operand types never
// promote: agreeing operands hand their type to the result, an integer
// constant operand adopts its partner's float type, and any other
// disagreement between known operand types is an error. Results whose
// operands are still unknown are left unknown.
func Run(root *ir.Block) error {
	if root == nil {
		return errors.New("typecheck: nil root block")
	}
	c := &checker{Base: ir.Base{Pass: "typecheck", AllowUndefined: true}}
	if _, err := ir.Visit(c, root); err != nil {
		return fmt.Errorf("typecheck: %w", err)
	}
	return nil
}

type checker struct {
	ir.Base
}

func (c *checker) VisitBlock(b *ir.Block) (ir.Signal, error) { return ir.VisitChildren(c, b) }
func (c *checker) VisitIf(s *ir.IfStmt) (ir.Signal, error)   { return ir.VisitIfBodies(c, s) }
func (c *checker) VisitFor(s *ir.ForStmt) (ir.Signal, error) { return ir.VisitForBody(c, s) }

func (c *checker) VisitBinaryOp(s *ir.BinaryOpStmt) (ir.Signal, error) {
	lt, rt := s.Left.Type(), s.Right.Type()
	switch {
	case lt == rt:
	case lt == ir.Unknown || rt == ir.Unknown:
		return ir.Continue, nil
	default:
		if retype(s.Left, rt) {
			lt = rt
		} else if !retype(s.Right, lt) {
			return ir.Continue, fmt.Errorf("%s operand types disagree: %s vs %s", s.Op, lt, rt)
		}
	}
	if s.Typ == ir.Unknown {
		s.Typ = lt
	}
	return ir.Continue, nil
}

func (c *checker) VisitUnaryOp(s *ir.UnaryOpStmt) (ir.Signal, error) {
	if s.Typ == ir.Unknown {
		s.Typ = s.X.Type()
	}
	return ir.Continue, nil
}

func (c *checker) VisitPrint(s *ir.PrintStmt) (ir.Signal, error) {
	if s.Typ == ir.Unknown {
		s.Typ = s.Value.Type()
	}
	return ir.Continue, nil
}

// retype adapts an integer constant operand to a float partner. Anything
// else, float literals included, keeps its type.
func retype(v ir.Value, t ir.DataType) bool {
	cs, ok := v.(*ir.ConstStmt)
	if !ok || cs.Typ != ir.Int32 || t != ir.Float32 {
		return false
	}
	cs.Typ = t
	return true
}
