package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"goa.design/clue/log"

	"minkc/colors"
	"minkc/internal/compiler"
)

const version = "0.1.0"

func main() {
	// Define flags
	taskName := flag.String("task", "ast", "Demo program to compile")
	configPath := flag.String("config", "", "YAML config file")
	debug := flag.Bool("d", false, "Enable debug output")
	showVersion := flag.Bool("v", false, "Show version")
	flag.BoolVar(debug, "debug", false, "Enable debug output")
	flag.BoolVar(showVersion, "version", false, "Show version")
	dumpIR := flag.Bool("dump-ir", true, "Print the lowered listing")
	jsonLogs := flag.Bool("json", false, "Force JSON log output")
	debugOnCrash := flag.Bool("debug-on-crash", false, "Recover compiler panics into a failed result")

	flag.Parse()

	// Handle version
	if *showVersion {
		fmt.Printf("minkc compiler version %s\n", version)
		os.Exit(0)
	}

	opts := compiler.Options{
		Debug:        *debug,
		DumpIR:       *dumpIR,
		JSONLogs:     *jsonLogs,
		DebugOnCrash: *debugOnCrash,
	}
	if *configPath != "" {
		fileOpts, err := compiler.LoadOptions(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		// Start from the file, then let explicitly set flags win.
		opts = fileOpts
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "d", "debug":
				opts.Debug = *debug
			case "dump-ir":
				opts.DumpIR = *dumpIR
			case "json":
				opts.JSONLogs = *jsonLogs
			case "debug-on-crash":
				opts.DebugOnCrash = *debugOnCrash
			}
		})
	}

	build, ok := tasks[*taskName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown task %q\n\nRegistered tasks:\n", *taskName)
		for _, name := range taskNames() {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		os.Exit(1)
	}
	opts.Build = build

	format := log.FormatJSON
	if log.IsTerminal() && !opts.JSONLogs {
		format = log.FormatTerminal
	}
	ctx := log.Context(context.Background(), log.WithFormat(format))
	if opts.Debug {
		ctx = log.Context(ctx, log.WithDebug())
		log.Debugf(ctx, "debug logs enabled")
	}

	res := compiler.Compile(ctx, opts)
	if !res.Success {
		colors.RED.Fprintf(os.Stderr, "✗ compilation failed: %v\n", res.Err)
		os.Exit(1)
	}

	if res.Listing != "" {
		fmt.Print(res.Listing)
	}
	colors.GREEN.Printf("✓ compilation successful (%d traversals, %d rewrites)\n",
		res.Stats.Traversals, res.Stats.Rewrites)
}
