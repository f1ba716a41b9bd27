package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path"
	"path/filepath"
	"strconv"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// cssResult is the outcome of minifying one stylesheet.
type cssResult struct {
	name   string
	before int
	after  int
}

// saved returns the size reduction in percent, rounded to two decimals.
func (r cssResult) saved() float64 {
	if r.before == 0 {
		return 0
	}
	return math.Round(float64(r.before-r.after)/float64(r.before)*10000) / 100
}

func (r cssResult) String() string {
	return fmt.Sprintf("%s %d > %d (%s%%)", r.name, r.before, r.after,
		strconv.FormatFloat(r.saved(), 'f', -1, 64))
}

// runOptimizeCSS minifies every stylesheet directly under the static
// directory in place.
func runOptimizeCSS(args []string, env *Environment) error {
	cmd, err := parseCommand("optimize-css", args, printOptimizeCSSUsage, env)
	if err != nil {
		return err
	}
	cfg, logger, err := cmd.prepare(env)
	if err != nil {
		return err
	}

	static, err := assets.NewDirFS(cfg.StaticDir)
	if err != nil {
		return withHint(err, hints.ForAssetsDir(cfg.AssetsDir))
	}
	index, err := assets.BuildIndex(static, ".")
	if err != nil {
		return err
	}

	for _, name := range index.Names() {
		if path.Ext(name) != ".css" {
			continue
		}
		result, err := optimizeCSS(filepath.Join(cfg.StaticDir, name))
		if err != nil {
			return err
		}
		result.name = name
		logger.WithField("file", name).Debug("optimized stylesheet")
		if !cmd.common.quiet {
			fmt.Fprintln(env.Stdout, result)
		}
	}
	return nil
}

// optimizeCSS minifies the stylesheet at file. The file is only
// rewritten when minification changed it.
func optimizeCSS(file string) (cssResult, error) {
	src, err := os.ReadFile(file) // #nosec G304 -- path comes from the static directory listing
	if err != nil {
		return cssResult{}, fmt.Errorf("%w: %w", mdsite.ErrRead, err)
	}
	out, err := pipeline.MinifyCSS(src)
	if err != nil {
		return cssResult{}, fmt.Errorf("%s: %w", filepath.Base(file), err)
	}
	if !bytes.Equal(src, out) {
		if err := fileutil.WriteFileAtomic(file, out); err != nil {
			return cssResult{}, fmt.Errorf("%w: %s: %w", ErrWrite, file, err)
		}
	}
	return cssResult{before: len(src), after: len(out)}, nil
}
