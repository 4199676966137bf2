package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUsage marks malformed command lines.
var ErrUsage = errors.New("invalid usage")

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	if slices.Contains(os.Args, "-v") || slices.Contains(os.Args, "--verbose") {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command in args[1] and returns the exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]
	var err error

	switch cmd {
	case "render":
		var flags *renderFlags
		var positional []string
		if flags, positional, err = parseRenderFlags(rest, env.Stderr); err == nil {
			err = runRender(ctx, positional, flags, env)
		}
	case "analyze":
		var flags *analyzeFlags
		var positional []string
		if flags, positional, err = parseAnalyzeFlags(rest, env.Stderr); err == nil {
			err = runAnalyze(ctx, positional, flags, env)
		}
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "report2docx %s\n", Version)
	case "help", "-h", "--help":
		runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
