package main

import (
	"sort"

	"minkc/internal/frontend"
	"minkc/internal/ir"
)

// tasks maps demo program names to their builder callbacks. Tasks register
// themselves at init time.
var tasks = map[string]func(*frontend.Builder){}

func registerTask(name string, build func(*frontend.Builder)) {
	tasks[name] = build
}

func taskNames() []string {
	names := make([]string, 0, len(tasks))
	for name := range tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	registerTask("ast", buildASTDemo)
}

// buildASTDemo constructs the canonical demo program: float and integer
// arithmetic, branches on comparisons, nested counted loops, and prints.
func buildASTDemo(b *frontend.Builder) {
	a := b.Var(ir.Float32, "a")
	v := b.Var(ir.Float32, "b")
	p := b.Var(ir.Int32, "p")
	q := b.Var(ir.Int32, "q")

	b.Assign(a, ir.Add(a, v))
	b.Assign(p, ir.Add(p, q))

	b.Print(a)

	b.If(ir.Lt(a, ir.Int(500))).
		Then(func() { b.Print(v) }).
		Else(func() { b.Print(a) })

	b.If(ir.Gt(a, ir.Int(5))).
		Then(func() {
			b.Assign(v, ir.Div(ir.Add(v, ir.Int(1)), ir.Int(3)))
			b.Assign(v, ir.Mul(v, ir.Int(3)))
		}).
		Else(func() {
			b.Assign(v, ir.Add(v, ir.Int(2)))
			b.Assign(v, ir.Sub(v, ir.Int(4)))
		})

	b.For("i", ir.Int(0), ir.Int(100), func(i ir.Ident) {
		b.For("j", ir.Int(0), ir.Int(200), func(j ir.Ident) {
			b.Print(ir.Add(i, j))
		})
	})

	b.Print(v)
}
