package ir

import "fmt"

// Temps hands out fresh temporary value names. A single allocator must stay
// live for a whole lowering run so names are never reused, including across
// restarted traversals.
type Temps struct {
	n int
}

// Fresh returns the next unused temporary name.
func (t *Temps) Fresh() string {
	name := fmt.Sprintf("t%d", t.n)
	t.n++
	return name
}

// Flattener accumulates the statements produced while decomposing an
// expression tree into flat value-producing form.
type Flattener struct {
	Out   []Stmt
	Temps *Temps
}

// NewFlattener creates a flattener drawing names from t. A nil t gets a
// private allocator.
func NewFlattener(t *Temps) *Flattener {
	if t == nil {
		t = &Temps{}
	}
	return &Flattener{Temps: t}
}

func (f *Flattener) emit(s Stmt) {
	f.Out = append(f.Out, s)
}

// Flatten of an identifier emits nothing; the identifier stands for itself
// in operand position.
func (i Ident) Flatten(f *Flattener) Value {
	return i
}

func (e *ConstExpr) Flatten(f *Flattener) Value {
	s := &ConstStmt{Result: f.Temps.Fresh(), Typ: e.Typ, Value: e.Value}
	f.emit(s)
	return s
}

func (e *DeclExpr) Flatten(f *Flattener) Value {
	s := &AllocaStmt{Var: e.Var}
	f.emit(s)
	return s
}

// Flatten decomposes post-order: both operands first, then one BinaryOpStmt
// consuming their values. Repeated subtrees are re-emitted with fresh names;
// there is no deduplication and no folding.
func (e *BinaryExpr) Flatten(f *Flattener) Value {
	x := e.X.Flatten(f)
	y := e.Y.Flatten(f)
	s := &BinaryOpStmt{Result: f.Temps.Fresh(), Typ: jointType(x, y), Op: e.Op, Left: x, Right: y}
	f.emit(s)
	return s
}

func (e *UnaryExpr) Flatten(f *Flattener) Value {
	x := e.X.Flatten(f)
	s := &UnaryOpStmt{Result: f.Temps.Fresh(), Typ: x.Type(), Op: e.Op, X: x}
	f.emit(s)
	return s
}

// FlattenProduced flattens e and guarantees the result is a producing
// statement: an identifier-only expression, which flattens to nothing,
// materializes a LocalLoadStmt. This is the one source of load statements.
func FlattenProduced(e Expr, f *Flattener) Producer {
	v := e.Flatten(f)
	if id, ok := v.(Ident); ok {
		s := &LocalLoadStmt{Result: f.Temps.Fresh(), Src: id}
		f.emit(s)
		return s
	}
	return v.(Producer)
}

// jointType is the type of an operation over two operand values. Operand
// types are never promoted: disagreement yields Unknown.
func jointType(x, y Value) DataType {
	if x.Type() == y.Type() {
		return x.Type()
	}
	return Unknown
}
