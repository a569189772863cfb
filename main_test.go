package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"minkc/internal/compiler"
	"minkc/internal/frontend"
	"minkc/internal/ir"
	"minkc/internal/lower"
)

func TestTaskRegistry(t *testing.T) {
	require.Contains(t, tasks, "ast")
	require.NotNil(t, tasks["ast"])
	require.Equal(t, []string{"ast"}, taskNames())
}

func TestASTDemoBeforeLowering(t *testing.T) {
	b := frontend.NewBuilder()
	buildASTDemo(b)

	want := strings.Join([]string{
		"float32 a alloca",
		"float32 b alloca",
		"int32 p alloca",
		"int32 q alloca",
		"a = (a + b)",
		"p = (p + q)",
		"print a",
		"if (a < 500) {",
		"  print b",
		"} else {",
		"  print a",
		"}",
		"if (a > 5) {",
		"  b = ((b + 1) / 3)",
		"  b = (b * 3)",
		"} else {",
		"  b = (b + 2)",
		"  b = (b - 4)",
		"}",
		"for i in range(0, 100) {",
		"  for j in range(0, 200) {",
		"    print (i + j)",
		"  }",
		"}",
		"print b",
		"",
	}, "\n")
	require.Equal(t, want, ir.Format(b.Root()))
}

func TestASTDemoCompiles(t *testing.T) {
	res := compiler.Compile(context.Background(), compiler.Options{
		Build:  buildASTDemo,
		DumpIR: true,
	})

	require.True(t, res.Success)
	require.NoError(t, res.Err)
	require.Equal(t, lower.Stats{Traversals: 12, Rewrites: 11}, res.Stats)

	want := strings.Join([]string{
		"float32 a alloca",
		"float32 b alloca",
		"int32 p alloca",
		"int32 q alloca",
		"float32 t0 = + a b",
		"[store] a = t0",
		"int32 t1 = + p q",
		"[store] p = t1",
		"float32 print a",
		"if (a < 500) {",
		"  float32 print b",
		"} else {",
		"  float32 print a",
		"}",
		"if (a > 5) {",
		"  float32 t2 = const 1",
		"  float32 t3 = + b t2",
		"  float32 t4 = const 3",
		"  float32 t5 = / t3 t4",
		"  [store] b = t5",
		"  float32 t6 = const 3",
		"  float32 t7 = * b t6",
		"  [store] b = t7",
		"} else {",
		"  float32 t8 = const 2",
		"  float32 t9 = + b t8",
		"  [store] b = t9",
		"  float32 t10 = const 4",
		"  float32 t11 = - b t10",
		"  [store] b = t11",
		"}",
		"for i in range(0, 100) {",
		"  for j in range(0, 200) {",
		"    int32 t12 = + i j",
		"    int32 print t12",
		"  }",
		"}",
		"float32 print b",
		"",
	}, "\n")
	require.Equal(t, want, res.Listing)
}
