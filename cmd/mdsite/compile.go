package main

import (
	"github.com/sirupsen/logrus"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
)

// compileSite compiles the site under cfg.AssetsDir.
func compileSite(cfg *config.Config, logger logrus.FieldLogger) (*mdsite.RouteTable, error) {
	compiler, err := mdsite.NewCompiler(cfg, mdsite.WithLogger(logger))
	if err != nil {
		return nil, withHint(err, compileHint(err, cfg))
	}
	routes, err := compiler.Compile()
	if err != nil {
		return nil, withHint(err, compileHint(err, cfg))
	}
	return routes, nil
}
