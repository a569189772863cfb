package ir

// ConstStmt introduces a named constant value. The frontend builder never
// creates these; they exist only as flattening products.
type ConstStmt struct {
	Result string
	Typ    DataType
	Value  string
}

func (s *ConstStmt) stmtNode()      {}
func (s *ConstStmt) Kind() Kind     { return KindConst }
func (s *ConstStmt) Name() string   { return s.Result }
func (s *ConstStmt) Type() DataType { return s.Typ }

// AllocaStmt declares a frontend variable and reserves its storage slot.
type AllocaStmt struct {
	Var Ident
}

func (s *AllocaStmt) stmtNode()      {}
func (s *AllocaStmt) Kind() Kind     { return KindAlloca }
func (s *AllocaStmt) Name() string   { return s.Var.Name() }
func (s *AllocaStmt) Type() DataType { return s.Var.Type() }

// BinaryOpStmt performs a binary operation over two operand values.
type BinaryOpStmt struct {
	Result string
	Typ    DataType
	Op     Op
	Left   Value
	Right  Value
}

func (s *BinaryOpStmt) stmtNode()      {}
func (s *BinaryOpStmt) Kind() Kind     { return KindBinaryOp }
func (s *BinaryOpStmt) Name() string   { return s.Result }
func (s *BinaryOpStmt) Type() DataType { return s.Typ }

// UnaryOpStmt performs a unary operation over one operand value.
type UnaryOpStmt struct {
	Result string
	Typ    DataType
	Op     Op
	X      Value
}

func (s *UnaryOpStmt) stmtNode()      {}
func (s *UnaryOpStmt) Kind() Kind     { return KindUnaryOp }
func (s *UnaryOpStmt) Name() string   { return s.Result }
func (s *UnaryOpStmt) Type() DataType { return s.Typ }

// LocalLoadStmt reads the current value of a frontend variable.
type LocalLoadStmt struct {
	Result string
	Src    Ident
}

func (s *LocalLoadStmt) stmtNode()      {}
func (s *LocalLoadStmt) Kind() Kind     { return KindLocalLoad }
func (s *LocalLoadStmt) Name() string   { return s.Result }
func (s *LocalLoadStmt) Type() DataType { return s.Src.Type() }

// LocalStoreStmt writes a value into a frontend variable. It is the sole
// mutation form and names no new value.
type LocalStoreStmt struct {
	Target Ident
	Value  Value
}

func (s *LocalStoreStmt) stmtNode()  {}
func (s *LocalStoreStmt) Kind() Kind { return KindLocalStore }

// PrintStmt emits a single value. It is the lowered form of FrontendPrintStmt.
type PrintStmt struct {
	Typ   DataType
	Value Value
}

func (s *PrintStmt) stmtNode()  {}
func (s *PrintStmt) Kind() Kind { return KindPrint }

// AssignStmt assigns an unflattened expression to a frontend variable.
// Lowering rewrites it into flattening products plus a LocalStoreStmt.
type AssignStmt struct {
	Target Ident
	Rhs    Expr
}

func (s *AssignStmt) stmtNode()  {}
func (s *AssignStmt) Kind() Kind { return KindAssign }

// FrontendPrintStmt emits an unflattened expression. Lowering rewrites it
// into flattening products plus a PrintStmt.
type FrontendPrintStmt struct {
	Arg Expr
}

func (s *FrontendPrintStmt) stmtNode()  {}
func (s *FrontendPrintStmt) Kind() Kind { return KindFrontendPrint }

// IfStmt branches on a condition. The condition stays an expression tree;
// lowering never rewrites branch headers. Else may be nil.
type IfStmt struct {
	Cond Expr
	Then *Block
	Else *Block
}

func (s *IfStmt) stmtNode()  {}
func (s *IfStmt) Kind() Kind { return KindIf }

// ForStmt is a bounded loop over a half-open integer range. Begin and End
// stay expression trees; lowering never rewrites loop headers.
type ForStmt struct {
	Var   Ident
	Begin Expr
	End   Expr
	Body  *Block
}

func (s *ForStmt) stmtNode()  {}
func (s *ForStmt) Kind() Kind { return KindFor }
