package ir

import (
	"fmt"
	"strconv"
)

// ConstExpr is a literal constant. The literal carries its printable text;
// no arithmetic is ever performed on it.
type ConstExpr struct {
	Typ   DataType
	Value string
}

func (e *ConstExpr) exprNode()      {}
func (e *ConstExpr) String() string { return e.Value }

// Int creates an int32 literal.
func Int(v int) *ConstExpr {
	return &ConstExpr{Typ: Int32, Value: strconv.Itoa(v)}
}

// Float creates a float32 literal.
func Float(v float64) *ConstExpr {
	return &ConstExpr{Typ: Float32, Value: strconv.FormatFloat(v, 'g', -1, 32)}
}

// DeclExpr declares a typed variable. Flattening it materializes the
// variable's AllocaStmt.
type DeclExpr struct {
	Var Ident
}

func (e *DeclExpr) exprNode()      {}
func (e *DeclExpr) String() string { return e.Var.Name() }

// Decl creates a declaration of id.
func Decl(id Ident) *DeclExpr {
	return &DeclExpr{Var: id}
}

// BinaryExpr is a binary operation over two subtrees.
type BinaryExpr struct {
	Op Op
	X  Expr
	Y  Expr
}

func (e *BinaryExpr) exprNode() {}
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.X, e.Op, e.Y)
}

// UnaryExpr is a unary operation over one subtree.
type UnaryExpr struct {
	Op Op
	X  Expr
}

func (e *UnaryExpr) exprNode() {}
func (e *UnaryExpr) String() string {
	return fmt.Sprintf("(%s %s)", e.Op, e.X)
}

// Bin creates a binary operation node.
func Bin(op Op, x, y Expr) *BinaryExpr {
	return &BinaryExpr{Op: op, X: x, Y: y}
}

func Add(x, y Expr) *BinaryExpr { return Bin(OpAdd, x, y) }
func Sub(x, y Expr) *BinaryExpr { return Bin(OpSub, x, y) }
func Mul(x, y Expr) *BinaryExpr { return Bin(OpMul, x, y) }
func Div(x, y Expr) *BinaryExpr { return Bin(OpDiv, x, y) }
func Mod(x, y Expr) *BinaryExpr { return Bin(OpMod, x, y) }
func Lt(x, y Expr) *BinaryExpr  { return Bin(OpLt, x, y) }
func Le(x, y Expr) *BinaryExpr  { return Bin(OpLe, x, y) }
func Gt(x, y Expr) *BinaryExpr  { return Bin(OpGt, x, y) }
func Ge(x, y Expr) *BinaryExpr  { return Bin(OpGe, x, y) }
func Eq(x, y Expr) *BinaryExpr  { return Bin(OpEq, x, y) }
func Ne(x, y Expr) *BinaryExpr  { return Bin(OpNe, x, y) }

// Neg creates a negation node.
func Neg(x Expr) *UnaryExpr { return &UnaryExpr{Op: OpNeg, X: x} }
