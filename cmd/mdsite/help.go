package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve         Compile the site and serve it over HTTP")
	fmt.Fprintln(w, "  routes        Compile the site and list its routes")
	fmt.Fprintln(w, "  config        Print the resolved configuration")
	fmt.Fprintln(w, "  optimize-css  Minify the stylesheets of the static directory in place")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdsite help <command>' for details on a specific command.")
}

// printSiteFlags prints the flags shared by every site command.
func printSiteFlags(w io.Writer) {
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "      --address <host:port>    Socket address to listen on (default 0.0.0.0:80)")
	fmt.Fprintln(w, "      --assets-dir <dir>       Directory holding md/ and static/ (default assets)")
	fmt.Fprintln(w, "      --max-inline-size <n>    Largest CSS/SVG file inlined, in bytes (default 12288)")
	fmt.Fprintln(w, "      --disable-preload        Do not send Link preload headers")
	fmt.Fprintln(w, "      --enable-inline-css      Inline small stylesheets")
	fmt.Fprintln(w, "      --enable-inline-svg      Inline small local SVG images")
	fmt.Fprintln(w, "      --workers <n>            Pages compiled in parallel, 0 = auto (default 1)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path (env: MDSITE_CONFIG)")
	fmt.Fprintln(w, "                               Every site flag can be set as MDSITE_<KEY>,")
	fmt.Fprintln(w, "                               e.g. MDSITE_ASSETS_DIR=site")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show debug output")
	fmt.Fprintln(w, "      --log-format <s>         Log format: text, json")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compile every page under <assets-dir>/md and serve the site.")
	fmt.Fprintln(w, "Other paths are served from <assets-dir>/static.")
	fmt.Fprintln(w, "The server stops gracefully on SIGINT or SIGTERM.")
	fmt.Fprintln(w)
	printSiteFlags(w)
}

// printRoutesUsage prints usage for the routes command.
func printRoutesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite routes [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compile the site and list each route with its size and Link headers.")
	fmt.Fprintln(w)
	printSiteFlags(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration resolved from defaults, config file,")
	fmt.Fprintln(w, "environment, and flags, as YAML.")
	fmt.Fprintln(w)
	printSiteFlags(w)
}

// printOptimizeCSSUsage prints usage for the optimize-css command.
func printOptimizeCSSUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite optimize-css [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Minify every *.css file directly under <assets-dir>/static in place")
	fmt.Fprintln(w, "and print \"name before > after (saved%)\" for each.")
	fmt.Fprintln(w)
	printSiteFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "serve":
		printServeUsage(env.Stdout)
	case "routes":
		printRoutesUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "optimize-css":
		printOptimizeCSSUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdsite version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdsite help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
