package ir

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrinterLineTemplates(t *testing.T) {
	a := NewIdent("a", Float32)
	b := NewIdent("b", Float32)

	bin := &BinaryOpStmt{Result: "t0", Typ: Float32, Op: OpAdd, Left: a, Right: b}
	root := NewBlock()
	root.Append(
		&AllocaStmt{Var: a},
		&ConstStmt{Result: "t3", Typ: Int32, Value: "500"},
		bin,
		&UnaryOpStmt{Result: "t1", Typ: Float32, Op: OpNeg, X: a},
		&LocalLoadStmt{Result: "t2", Src: b},
		&LocalStoreStmt{Target: a, Value: bin},
		&PrintStmt{Typ: Float32, Value: a},
		&AssignStmt{Target: a, Rhs: Add(a, b)},
		&FrontendPrintStmt{Arg: a},
	)

	want := strings.Join([]string{
		"float32 a alloca",
		"int32 t3 = const 500",
		"float32 t0 = + a b",
		"float32 t1 = - a",
		"t2 = load b",
		"[store] a = t0",
		"float32 print a",
		"a = (a + b)",
		"print a",
		"",
	}, "\n")
	require.Equal(t, want, Format(root))
}

func TestPrinterIndentsNestedBodies(t *testing.T) {
	a := NewIdent("a", Float32)
	b := NewIdent("b", Float32)
	i := NewIdent("i", Int32)
	j := NewIdent("j", Int32)

	root := NewBlock()

	thenB := root.NewChild()
	thenB.Append(&PrintStmt{Typ: Float32, Value: a})
	elseB := root.NewChild()
	elseB.Append(&PrintStmt{Typ: Float32, Value: b})
	root.Append(&IfStmt{Cond: Lt(a, Int(500)), Then: thenB, Else: elseB})

	outer := root.NewChild()
	root.Append(&ForStmt{Var: i, Begin: Int(0), End: Int(100), Body: outer})
	inner := outer.NewChild()
	outer.Append(&ForStmt{Var: j, Begin: Int(0), End: Int(200), Body: inner})
	inner.Append(&PrintStmt{Typ: Int32, Value: j})

	want := strings.Join([]string{
		"if (a < 500) {",
		"  float32 print a",
		"} else {",
		"  float32 print b",
		"}",
		"for i in range(0, 100) {",
		"  for j in range(0, 200) {",
		"    int32 print j",
		"  }",
		"}",
		"",
	}, "\n")
	require.Equal(t, want, Format(root))
}

func TestPrinterOmitsElseWhenAbsent(t *testing.T) {
	a := NewIdent("a", Float32)
	root := NewBlock()
	thenB := root.NewChild()
	thenB.Append(&PrintStmt{Typ: Float32, Value: a})
	root.Append(&IfStmt{Cond: Gt(a, Int(5)), Then: thenB})

	want := strings.Join([]string{
		"if (a > 5) {",
		"  float32 print a",
		"}",
		"",
	}, "\n")
	require.Equal(t, want, Format(root))

	require.NotContains(t, Format(root), "else")
}

func TestPrinterHandlesEmptyBlock(t *testing.T) {
	require.Equal(t, "", Format(NewBlock()))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestFprintPropagatesWriteErrors(t *testing.T) {
	root := NewBlock()
	root.Append(&FrontendPrintStmt{Arg: Int(1)})

	err := Fprint(failWriter{}, root)
	require.Error(t, err)
	require.Contains(t, err.Error(), "sink closed")
}
