package ir

import "fmt"

// Signal is the structural outcome of visiting a statement.
type Signal int

const (
	// Continue means the traversal may proceed.
	Continue Signal = iota
	// Restart means the tree was rewritten underneath the traversal, which
	// is now stale and must be restarted from the root.
	Restart
)

func (s Signal) String() string {
	if s == Restart {
		return "restart"
	}
	return "continue"
}

// Visitor handles each statement kind. Visit methods return the traversal
// outcome plus an error reserved for contract violations; errors are fatal
// to the pass.
type Visitor interface {
	VisitBlock(*Block) (Signal, error)
	VisitConst(*ConstStmt) (Signal, error)
	VisitAlloca(*AllocaStmt) (Signal, error)
	VisitBinaryOp(*BinaryOpStmt) (Signal, error)
	VisitUnaryOp(*UnaryOpStmt) (Signal, error)
	VisitLocalLoad(*LocalLoadStmt) (Signal, error)
	VisitLocalStore(*LocalStoreStmt) (Signal, error)
	VisitPrint(*PrintStmt) (Signal, error)
	VisitAssign(*AssignStmt) (Signal, error)
	VisitFrontendPrint(*FrontendPrintStmt) (Signal, error)
	VisitIf(*IfStmt) (Signal, error)
	VisitFor(*ForStmt) (Signal, error)
}

// Visit dispatches s to the matching method of v.
func Visit(v Visitor, s Stmt) (Signal, error) {
	switch n := s.(type) {
	case *Block:
		return v.VisitBlock(n)
	case *ConstStmt:
		return v.VisitConst(n)
	case *AllocaStmt:
		return v.VisitAlloca(n)
	case *BinaryOpStmt:
		return v.VisitBinaryOp(n)
	case *UnaryOpStmt:
		return v.VisitUnaryOp(n)
	case *LocalLoadStmt:
		return v.VisitLocalLoad(n)
	case *LocalStoreStmt:
		return v.VisitLocalStore(n)
	case *PrintStmt:
		return v.VisitPrint(n)
	case *AssignStmt:
		return v.VisitAssign(n)
	case *FrontendPrintStmt:
		return v.VisitFrontendPrint(n)
	case *IfStmt:
		return v.VisitIf(n)
	case *ForStmt:
		return v.VisitFor(n)
	case nil:
		return Continue, fmt.Errorf("ir: visit of nil statement")
	default:
		return Continue, fmt.Errorf("ir: no dispatch for %s statement", s.Kind())
	}
}

// VisitChildren visits every statement of b in sequence order, stopping at
// the first error or Restart.
func VisitChildren(v Visitor, b *Block) (Signal, error) {
	for _, s := range b.Stmts() {
		if sig, err := Visit(v, s); err != nil || sig == Restart {
			return sig, err
		}
	}
	return Continue, nil
}

// VisitIfBodies visits the then block and, when present, the else block.
func VisitIfBodies(v Visitor, s *IfStmt) (Signal, error) {
	if s.Then != nil {
		if sig, err := Visit(v, s.Then); err != nil || sig == Restart {
			return sig, err
		}
	}
	if s.Else != nil {
		if sig, err := Visit(v, s.Else); err != nil || sig == Restart {
			return sig, err
		}
	}
	return Continue, nil
}

// VisitForBody visits the loop body.
func VisitForBody(v Visitor, s *ForStmt) (Signal, error) {
	if s.Body == nil {
		return Continue, nil
	}
	return Visit(v, s.Body)
}

// Base provides a default arm for every statement kind. Passes embed it and
// override the kinds they understand; an unhandled kind is a contract error
// naming the pass and the kind, unless the pass allows undefined visits, in
// which case the arm is a silent no-op.
type Base struct {
	// Pass names the embedding pass in diagnostics.
	Pass string
	// AllowUndefined turns unhandled kinds into no-ops.
	AllowUndefined bool
}

func (b Base) undefined(k Kind) (Signal, error) {
	if b.AllowUndefined {
		return Continue, nil
	}
	pass := b.Pass
	if pass == "" {
		pass = "pass"
	}
	return Continue, fmt.Errorf("%s: no visit handler for %s statement", pass, k)
}

func (b Base) VisitBlock(*Block) (Signal, error)               { return b.undefined(KindBlock) }
func (b Base) VisitConst(*ConstStmt) (Signal, error)           { return b.undefined(KindConst) }
func (b Base) VisitAlloca(*AllocaStmt) (Signal, error)         { return b.undefined(KindAlloca) }
func (b Base) VisitBinaryOp(*BinaryOpStmt) (Signal, error)     { return b.undefined(KindBinaryOp) }
func (b Base) VisitUnaryOp(*UnaryOpStmt) (Signal, error)       { return b.undefined(KindUnaryOp) }
func (b Base) VisitLocalLoad(*LocalLoadStmt) (Signal, error)   { return b.undefined(KindLocalLoad) }
func (b Base) VisitLocalStore(*LocalStoreStmt) (Signal, error) { return b.undefined(KindLocalStore) }
func (b Base) VisitPrint(*PrintStmt) (Signal, error)           { return b.undefined(KindPrint) }
func (b Base) VisitAssign(*AssignStmt) (Signal, error)         { return b.undefined(KindAssign) }
func (b Base) VisitFrontendPrint(*FrontendPrintStmt) (Signal, error) {
	return b.undefined(KindFrontendPrint)
}
func (b Base) VisitIf(*IfStmt) (Signal, error)   { return b.undefined(KindIf) }
func (b Base) VisitFor(*ForStmt) (Signal, error) { return b.undefined(KindFor) }
