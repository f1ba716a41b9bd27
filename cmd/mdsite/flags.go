package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/hints"
)

// configEnvVar names the config file when --config is not given.
const configEnvVar = config.EnvPrefix + "_CONFIG"

// Log output formats accepted by --log-format.
const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	logFormat string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
	fs.StringVar(&f.logFormat, "log-format", logFormatText, "log format: text, json")
}

// command is a parsed command line: common flags, the viper instance the
// site flags are bound to, and remaining positional arguments.
type command struct {
	common commonFlags
	viper  *viper.Viper
	args   []string
}

// parseCommand parses args for the named command. Every command accepts
// the common flags and one flag per configuration key.
func parseCommand(name string, args []string, usage func(io.Writer), env *Environment) (*command, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	c := &command{viper: config.NewViper()}
	addCommonFlags(fs, &c.common)
	if err := config.BindFlags(c.viper, fs); err != nil {
		return nil, err
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage(env.Stdout)
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if c.common.quiet && c.common.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}

	c.args = fs.Args()
	return c, nil
}

// loadConfig resolves the site configuration: defaults, then the config
// file from --config or MDSITE_CONFIG, then MDSITE_* variables and flags.
func (c *command) loadConfig(env *Environment) (*config.Config, error) {
	name := c.common.config
	if name == "" {
		name = env.Getenv(configEnvVar)
	}
	if name != "" {
		if err := config.MergeFile(c.viper, name); err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				err = withHint(err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, err
		}
	}
	return config.New(c.viper)
}

// prepare rejects positional arguments, then builds the command logger
// and resolves the configuration.
func (c *command) prepare(env *Environment) (*config.Config, *logrus.Logger, error) {
	if len(c.args) > 0 {
		return nil, nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, c.args[0])
	}
	logger, err := newLogger(env.Stderr, c.common)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := c.loadConfig(env)
	if err != nil {
		return nil, nil, err
	}
	logger.WithFields(logrus.Fields{
		"address":    cfg.Address,
		"assets_dir": cfg.AssetsDir,
	}).Debug("configuration loaded")
	return cfg, logger, nil
}
