// Package frontend builds statement trees in memory. A builder owns the
// root block and a cursor; If and For run caller closures with the cursor
// moved inside the body block they create.
package frontend

import "minkc/internal/ir"

// Builder constructs a program tree rooted at a single block.
type Builder struct {
	root *ir.Block
	cur  *ir.Block
}

// NewBuilder returns a builder over an empty root block.
func NewBuilder() *Builder {
	b := &Builder{root: ir.NewBlock()}
	b.cur = b.root
	return b
}

// Root returns the built tree.
func (b *Builder) Root() *ir.Block { return b.root }

// Var declares a typed variable by flattening a declaration expression into
// the current block and returns its identifier.
func (b *Builder) Var(t ir.DataType, name string) ir.Ident {
	id := ir.NewIdent(name, t)
	f := ir.NewFlattener(nil)
	ir.Decl(id).Flatten(f)
	b.cur.Append(f.Out...)
	return id
}

// Assign appends an assignment of rhs to target.
func (b *Builder) Assign(target ir.Ident, rhs ir.Expr) {
	b.cur.Append(&ir.AssignStmt{Target: target, Rhs: rhs})
}

// Print appends a frontend print of arg.
func (b *Builder) Print(arg ir.Expr) {
	b.cur.Append(&ir.FrontendPrintStmt{Arg: arg})
}

// If appends a conditional; its arms attach through the returned builder.
func (b *Builder) If(cond ir.Expr) *IfBuilder {
	s := &ir.IfStmt{Cond: cond}
	b.cur.Append(s)
	return &IfBuilder{owner: b, stmt: s}
}

// For appends a bounded loop with an int32 loop variable and runs body with
// the cursor inside the loop block.
func (b *Builder) For(name string, begin, end ir.Expr, body func(ir.Ident)) {
	v := ir.NewIdent(name, ir.Int32)
	s := &ir.ForStmt{Var: v, Begin: begin, End: end}
	b.cur.Append(s)
	s.Body = b.block(func() { body(v) })
}

// block runs fn with the cursor inside a fresh child of the current block,
// then restores the cursor.
func (b *Builder) block(fn func()) *ir.Block {
	child := b.cur.NewChild()
	prev := b.cur
	b.cur = child
	fn()
	b.cur = prev
	return child
}

// IfBuilder attaches arm bodies to an appended If statement.
type IfBuilder struct {
	owner *Builder
	stmt  *ir.IfStmt
}

// Then creates the true arm and runs body with the cursor inside it.
func (ib *IfBuilder) Then(body func()) *IfBuilder {
	ib.stmt.Then = ib.owner.block(body)
	return ib
}

// Else creates the false arm and runs body with the cursor inside it.
func (ib *IfBuilder) Else(body func()) *IfBuilder {
	ib.stmt.Else = ib.owner.block(body)
	return ib
}
