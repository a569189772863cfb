package ir

// Kind identifies the concrete variant of a statement.
type Kind int

const (
	KindBlock Kind = iota
	KindConst
	KindAlloca
	KindBinaryOp
	KindUnaryOp
	KindLocalLoad
	KindLocalStore
	KindPrint
	KindAssign
	KindFrontendPrint
	KindIf
	KindFor
)

func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindConst:
		return "const"
	case KindAlloca:
		return "alloca"
	case KindBinaryOp:
		return "binary op"
	case KindUnaryOp:
		return "unary op"
	case KindLocalLoad:
		return "local load"
	case KindLocalStore:
		return "local store"
	case KindPrint:
		return "print"
	case KindAssign:
		return "assign"
	case KindFrontendPrint:
		return "frontend print"
	case KindIf:
		return "if"
	case KindFor:
		return "for"
	default:
		return "unknown"
	}
}

// Stmt is the base interface for all statements.
type Stmt interface {
	stmtNode()
	Kind() Kind
}

// Expr is the base interface for expression-tree nodes. Expression trees are
// immutable once built and may be shared between statements.
type Expr interface {
	exprNode()
	String() string
	Flatten(f *Flattener) Value
}

// Value is implemented by everything usable in an operand position: an
// identifier or a value-producing statement. Operands hold their producer
// directly rather than going through a symbol table.
type Value interface {
	Name() string
	Type() DataType
}

// Producer is a statement that defines a value.
type Producer interface {
	Stmt
	Value
}
