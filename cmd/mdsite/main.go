package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches args to a command and returns the process exit code.
// args[0] is the program name.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	command, rest := args[1], args[2:]

	var err error
	switch command {
	case "serve":
		ctx, stop := notifyContext(context.Background())
		defer stop()
		err = runServe(ctx, rest, env)
	case "routes":
		err = runRoutes(rest, env)
	case "config":
		err = runConfig(rest, env)
	case "optimize-css":
		err = runOptimizeCSS(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "mdsite %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", command)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "mdsite %s: %v\n", command, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
