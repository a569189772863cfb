package frontend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"minkc/internal/ir"
	"minkc/internal/lower"
)

func collectKinds(b *ir.Block) []ir.Kind {
	var kinds []ir.Kind
	for _, s := range b.Stmts() {
		kinds = append(kinds, s.Kind())
		switch n := s.(type) {
		case *ir.IfStmt:
			if n.Then != nil {
				kinds = append(kinds, collectKinds(n.Then)...)
			}
			if n.Else != nil {
				kinds = append(kinds, collectKinds(n.Else)...)
			}
		case *ir.ForStmt:
			if n.Body != nil {
				kinds = append(kinds, collectKinds(n.Body)...)
			}
		}
	}
	return kinds
}

func TestBuilderVarDeclares(t *testing.T) {
	b := NewBuilder()
	a := b.Var(ir.Float32, "a")

	require.Equal(t, "a", a.Name())
	require.Equal(t, ir.Float32, a.Type())
	require.Equal(t, "float32 a alloca\n", ir.Format(b.Root()))
}

func TestBuilderAssignAndPrintForms(t *testing.T) {
	b := NewBuilder()
	a := b.Var(ir.Float32, "a")
	v := b.Var(ir.Float32, "b")
	b.Assign(a, ir.Add(a, v))
	b.Print(ir.Add(a, v))

	require.Equal(t, strings.Join([]string{
		"float32 a alloca",
		"float32 b alloca",
		"a = (a + b)",
		"print (a + b)",
		"",
	}, "\n"), ir.Format(b.Root()))
}

func TestBuilderBranchArms(t *testing.T) {
	b := NewBuilder()
	a := b.Var(ir.Float32, "a")
	v := b.Var(ir.Float32, "b")
	b.If(ir.Lt(a, ir.Int(500))).Then(func() { b.Print(v) }).Else(func() { b.Print(a) })

	require.Equal(t, strings.Join([]string{
		"float32 a alloca",
		"float32 b alloca",
		"if (a < 500) {",
		"  print b",
		"} else {",
		"  print a",
		"}",
		"",
	}, "\n"), ir.Format(b.Root()))
}

func TestBuilderThenOnlyBranch(t *testing.T) {
	b := NewBuilder()
	a := b.Var(ir.Float32, "a")
	b.If(ir.Gt(a, ir.Int(5))).Then(func() { b.Print(a) })

	require.Equal(t, strings.Join([]string{
		"float32 a alloca",
		"if (a > 5) {",
		"  print a",
		"}",
		"",
	}, "\n"), ir.Format(b.Root()))
}

func TestBuilderLoopVar(t *testing.T) {
	b := NewBuilder()
	var got ir.Ident
	b.For("i", ir.Int(0), ir.Int(100), func(i ir.Ident) {
		got = i
		b.Print(i)
	})

	require.Equal(t, "i", got.Name())
	require.Equal(t, ir.Int32, got.Type())
	require.Equal(t, strings.Join([]string{
		"for i in range(0, 100) {",
		"  print i",
		"}",
		"",
	}, "\n"), ir.Format(b.Root()))
}

func TestBuilderCursorRestoredAfterBodies(t *testing.T) {
	b := NewBuilder()
	v := b.Var(ir.Float32, "b")
	b.For("i", ir.Int(0), ir.Int(100), func(i ir.Ident) {
		b.For("j", ir.Int(0), ir.Int(200), func(j ir.Ident) {
			b.Print(ir.Add(i, j))
		})
	})
	b.Print(v)

	require.Equal(t, strings.Join([]string{
		"float32 b alloca",
		"for i in range(0, 100) {",
		"  for j in range(0, 200) {",
		"    print (i + j)",
		"  }",
		"}",
		"print b",
		"",
	}, "\n"), ir.Format(b.Root()))
}

func TestBuilderBodiesShareRoot(t *testing.T) {
	b := NewBuilder()
	a := b.Var(ir.Float32, "a")
	b.If(ir.Lt(a, ir.Int(1))).Then(func() {}).Else(func() {})
	b.For("i", ir.Int(0), ir.Int(10), func(ir.Ident) {})

	ifStmt := b.Root().At(1).(*ir.IfStmt)
	require.Same(t, b.Root(), ifStmt.Then.Parent())
	require.Same(t, b.Root(), ifStmt.Else.Parent())

	forStmt := b.Root().At(2).(*ir.ForStmt)
	require.Same(t, b.Root(), forStmt.Body.Parent())
	require.Same(t, b.Root(), forStmt.Body.Root())
}

func TestBuilderEmitsOnlyFrontendKinds(t *testing.T) {
	b := NewBuilder()
	a := b.Var(ir.Float32, "a")
	v := b.Var(ir.Float32, "b")
	b.Assign(a, ir.Add(a, v))
	b.Print(a)
	b.If(ir.Lt(a, ir.Int(500))).Then(func() { b.Assign(v, ir.Add(v, ir.Int(1))) })
	b.For("i", ir.Int(0), ir.Int(100), func(i ir.Ident) { b.Print(i) })

	allowed := map[ir.Kind]bool{
		ir.KindAlloca:        true,
		ir.KindAssign:        true,
		ir.KindFrontendPrint: true,
		ir.KindIf:            true,
		ir.KindFor:           true,
	}
	for _, k := range collectKinds(b.Root()) {
		require.True(t, allowed[k], "unexpected %s statement", k)
	}
}

func TestBuilderTreeLowersCleanly(t *testing.T) {
	b := NewBuilder()
	a := b.Var(ir.Float32, "a")
	v := b.Var(ir.Float32, "b")
	b.Assign(a, ir.Add(a, v))

	st, err := lower.Run(b.Root())
	require.NoError(t, err)
	require.Equal(t, lower.Stats{Traversals: 2, Rewrites: 1}, st)
	require.Equal(t, strings.Join([]string{
		"float32 a alloca",
		"float32 b alloca",
		"float32 t0 = + a b",
		"[store] a = t0",
		"",
	}, "\n"), ir.Format(b.Root()))
}
