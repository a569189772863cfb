package ir

// DataType is the scalar type of a value.
type DataType int

const (
	Unknown DataType = iota
	Int32
	Float32
)

func (t DataType) String() string {
	switch t {
	case Int32:
		return "int32"
	case Float32:
		return "float32"
	default:
		return "unknown"
	}
}

// Op is an operator. The constant value is the printable symbol.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpMod Op = "%"
	OpLt  Op = "<"
	OpLe  Op = "<="
	OpGt  Op = ">"
	OpGe  Op = ">="
	OpEq  Op = "=="
	OpNe  Op = "!="

	// OpNeg is unary negation.
	OpNeg Op = "-"
)

// Ident is a named symbolic handle for a frontend variable or an SSA
// temporary. Identifiers are immutable; two identifiers denote the same
// entity exactly when their names are equal.
type Ident struct {
	name string
	typ  DataType
}

// NewIdent creates an identifier with a declared type.
func NewIdent(name string, t DataType) Ident {
	return Ident{name: name, typ: t}
}

func (i Ident) Name() string   { return i.name }
func (i Ident) Type() DataType { return i.typ }
func (i Ident) String() string { return i.name }

// Same reports whether both identifiers name the same entity.
func (i Ident) Same(o Ident) bool { return i.name == o.name }

func (i Ident) exprNode() {}
