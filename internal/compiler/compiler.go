// Package compiler is the top-level entry point: it builds a program tree
// through a caller-supplied callback and runs the phase pipeline over it.
package compiler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"goa.design/clue/log"
	"gopkg.in/yaml.v3"

	"minkc/internal/frontend"
	"minkc/internal/ir"
	"minkc/internal/lower"
	"minkc/internal/pipeline"
)

// Options for a compilation run.
type Options struct {
	// Build constructs the program; it runs against a fresh builder.
	Build func(*frontend.Builder) `yaml:"-"`
	// Debug enables debug logging in the CLI.
	Debug bool `yaml:"debug"`
	// DumpIR captures the listing of the compiled tree in the Result.
	DumpIR bool `yaml:"dump_ir"`
	// JSONLogs forces JSON log output in the CLI.
	JSONLogs bool `yaml:"json"`
	// DebugOnCrash recovers pipeline panics into a failed Result with the
	// panic value and stack trace logged. When unset, panics propagate.
	DebugOnCrash bool `yaml:"debug_on_crash"`
}

// Result of a compilation run.
type Result struct {
	// Success reports whether every phase completed.
	Success bool
	// Root is the program tree, rewritten in place by the phases.
	Root *ir.Block
	// Listing is the captured listing when IR dumping was requested.
	Listing string
	// Stats carries the lowering traversal and rewrite counts.
	Stats lower.Stats
	// Err is the phase error that stopped the run, if any.
	Err error
}

// LoadOptions reads options from a YAML config file. The file covers the
// same fields as the CLI flags; in the CLI, flag values win over file
// values.
func LoadOptions(path string) (Options, error) {
	var opts Options
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("compiler: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("compiler: parse config %s: %w", path, err)
	}
	return opts, nil
}

// Compile builds the program and runs the pipeline over it.
func Compile(ctx context.Context, opts Options) (res Result) {
	if opts.Build == nil {
		return Result{Err: errors.New("compiler: no build callback")}
	}
	if opts.DebugOnCrash {
		defer func() {
			if r := recover(); r != nil {
				err := fmt.Errorf("compiler: panic: %v", r)
				log.Error(ctx, err, log.KV{K: "stack", V: string(debug.Stack())})
				res = Result{Err: err}
			}
		}()
	}

	b := frontend.NewBuilder()
	opts.Build(b)
	root := b.Root()

	p := pipeline.New(pipeline.Options{DumpIR: opts.DumpIR})
	log.Debugf(ctx, "compile %s starting", p.ID())
	out, err := p.Run(ctx, root)
	if err != nil {
		return Result{Root: root, Stats: out.Lower, Err: err}
	}
	return Result{Success: true, Root: root, Listing: out.Listing, Stats: out.Lower}
}
