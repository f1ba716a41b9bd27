package main

import (
	"fmt"

	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// runConfig prints the resolved configuration as YAML.
func runConfig(args []string, env *Environment) error {
	cmd, err := parseCommand("config", args, printConfigUsage, env)
	if err != nil {
		return err
	}
	cfg, _, err := cmd.prepare(env)
	if err != nil {
		return err
	}

	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}
