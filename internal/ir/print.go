package ir

import (
	"fmt"
	"io"
	"strings"
)

// Printer renders a statement tree as an indented listing, one line per
// simple statement and two spaces per nesting level. It handles every
// statement kind; writer errors abort the traversal.
type Printer struct {
	w      io.Writer
	indent int
}

// Fprint writes the listing for root to w.
func Fprint(w io.Writer, root *Block) error {
	p := &Printer{w: w, indent: -1}
	_, err := Visit(p, root)
	return err
}

// Format returns the listing for root.
func Format(root *Block) string {
	var b strings.Builder
	_ = Fprint(&b, root)
	return b.String()
}

func (p *Printer) line(format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
	return err
}

func (p *Printer) VisitBlock(b *Block) (Signal, error) {
	p.indent++
	defer func() { p.indent-- }()
	return VisitChildren(p, b)
}

func (p *Printer) VisitConst(s *ConstStmt) (Signal, error) {
	return Continue, p.line("%s %s = const %s", s.Typ, s.Result, s.Value)
}

func (p *Printer) VisitAlloca(s *AllocaStmt) (Signal, error) {
	return Continue, p.line("%s %s alloca", s.Type(), s.Name())
}

func (p *Printer) VisitBinaryOp(s *BinaryOpStmt) (Signal, error) {
	return Continue, p.line("%s %s = %s %s %s", s.Typ, s.Result, s.Op, s.Left.Name(), s.Right.Name())
}

func (p *Printer) VisitUnaryOp(s *UnaryOpStmt) (Signal, error) {
	return Continue, p.line("%s %s = %s %s", s.Typ, s.Result, s.Op, s.X.Name())
}

func (p *Printer) VisitLocalLoad(s *LocalLoadStmt) (Signal, error) {
	return Continue, p.line("%s = load %s", s.Result, s.Src.Name())
}

func (p *Printer) VisitLocalStore(s *LocalStoreStmt) (Signal, error) {
	return Continue, p.line("[store] %s = %s", s.Target.Name(), s.Value.Name())
}

func (p *Printer) VisitPrint(s *PrintStmt) (Signal, error) {
	return Continue, p.line("%s print %s", s.Typ, s.Value.Name())
}

func (p *Printer) VisitAssign(s *AssignStmt) (Signal, error) {
	return Continue, p.line("%s = %s", s.Target.Name(), s.Rhs)
}

func (p *Printer) VisitFrontendPrint(s *FrontendPrintStmt) (Signal, error) {
	return Continue, p.line("print %s", s.Arg)
}

func (p *Printer) VisitIf(s *IfStmt) (Signal, error) {
	if err := p.line("if %s {", s.Cond); err != nil {
		return Continue, err
	}
	if s.Then != nil {
		if sig, err := Visit(p, s.Then); err != nil || sig == Restart {
			return sig, err
		}
	}
	if s.Else != nil {
		if err := p.line("} else {"); err != nil {
			return Continue, err
		}
		if sig, err := Visit(p, s.Else); err != nil || sig == Restart {
			return sig, err
		}
	}
	return Continue, p.line("}")
}

func (p *Printer) VisitFor(s *ForStmt) (Signal, error) {
	if err := p.line("for %s in range(%s, %s) {", s.Var.Name(), s.Begin, s.End); err != nil {
		return Continue, err
	}
	if s.Body != nil {
		if sig, err := Visit(p, s.Body); err != nil || sig == Restart {
			return sig, err
		}
	}
	return Continue, p.line("}")
}
