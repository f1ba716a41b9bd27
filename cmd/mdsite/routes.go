package main

import (
	"fmt"
	"text/tabwriter"
)

// runRoutes compiles the site and lists every route with its body size
// and Link header values, without serving anything.
func runRoutes(args []string, env *Environment) error {
	cmd, err := parseCommand("routes", args, printRoutesUsage, env)
	if err != nil {
		return err
	}
	cfg, logger, err := cmd.prepare(env)
	if err != nil {
		return err
	}

	routes, err := compileSite(cfg, logger)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(env.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROUTE\tBYTES\tLINK")
	for _, r := range routes.Routes() {
		links := r.Header().Values("Link")
		first := "-"
		if len(links) > 0 {
			first = links[0]
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Path(), r.Header().Get("Content-Length"), first)
		if len(links) > 1 {
			for _, link := range links[1:] {
				fmt.Fprintf(tw, "\t\t%s\n", link)
			}
		}
	}
	return tw.Flush()
}
