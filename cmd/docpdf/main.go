package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS for containers before sizing the pool.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(os.Args, DefaultEnv()))
}

// run dispatches to a subcommand and returns an exit code.
func run(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[1] {
	case "convert":
		return runConvertCmd(args[2:], env)
	case "serve":
		return runServeCmd(args[2:], env)
	case "doctor":
		return runDoctorCmd(args[2:], env)
	case "version":
		fmt.Fprintf(env.Stdout, "docpdf %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		printUsage(env.Stdout)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[1])
		printUsage(env.Stderr)
		return ExitUsage
	}
}
