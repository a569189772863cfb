package ir

import "fmt"

// Block owns an ordered sequence of statements. It keeps a non-owning
// back-reference to the block containing it so nested code can navigate
// upward; the reference must never be used to extend a lifetime.
type Block struct {
	parent *Block
	stmts  []Stmt
}

// NewBlock creates an empty root block.
func NewBlock() *Block {
	return &Block{}
}

func (b *Block) stmtNode()  {}
func (b *Block) Kind() Kind { return KindBlock }

// Parent returns the enclosing block, or nil at the root.
func (b *Block) Parent() *Block { return b.parent }

// Root walks the parent chain to the outermost block.
func (b *Block) Root() *Block {
	r := b
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// NewChild creates an empty block parented to b. The child is not appended;
// it is meant to become the body of a statement owned by b.
func (b *Block) NewChild() *Block {
	return &Block{parent: b}
}

// Len returns the number of statements in the block.
func (b *Block) Len() int { return len(b.stmts) }

// At returns the statement at position i.
func (b *Block) At(i int) Stmt { return b.stmts[i] }

// Stmts returns the block's statement sequence. The slice is a live view;
// callers must not grow or reorder it directly.
func (b *Block) Stmts() []Stmt { return b.stmts }

// Append adds statements to the end of the block, adopting any child blocks
// they own.
func (b *Block) Append(stmts ...Stmt) {
	for _, s := range stmts {
		b.adopt(s)
	}
	b.stmts = append(b.stmts, stmts...)
}

// ReplaceAt splices the replacement sequence in place of the statement at
// position i, preserving the order of everything around it.
func (b *Block) ReplaceAt(i int, with ...Stmt) error {
	if i < 0 || i >= len(b.stmts) {
		return fmt.Errorf("ir: replace position %d out of range [0,%d)", i, len(b.stmts))
	}
	out := make([]Stmt, 0, len(b.stmts)-1+len(with))
	out = append(out, b.stmts[:i]...)
	out = append(out, with...)
	out = append(out, b.stmts[i+1:]...)
	b.stmts = out
	for _, s := range with {
		b.adopt(s)
	}
	return nil
}

// Replace locates old by identity and splices the replacement sequence in
// its place. Replacing a statement the block does not contain is a contract
// violation.
func (b *Block) Replace(old Stmt, with ...Stmt) error {
	for i, s := range b.stmts {
		if s == old {
			return b.ReplaceAt(i, with...)
		}
	}
	return fmt.Errorf("ir: replaced %s statement is not in the block", old.Kind())
}

// adopt points the child blocks owned by s back at b.
func (b *Block) adopt(s Stmt) {
	switch n := s.(type) {
	case *Block:
		n.parent = b
	case *IfStmt:
		if n.Then != nil {
			n.Then.parent = b
		}
		if n.Else != nil {
			n.Else.parent = b
		}
	case *ForStmt:
		if n.Body != nil {
			n.Body.parent = b
		}
	}
}
