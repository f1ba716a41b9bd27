package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage  = errors.New("invalid usage")
	ErrListen = errors.New("failed to listen")
	ErrServe  = errors.New("server failed")
	ErrWrite  = errors.New("failed to write file")
)

// withHint appends hint to the message of err. The chain is preserved.
func withHint(err error, hint string) error {
	if err == nil || hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// compileHint returns the hint for a compilation failure under cfg.
func compileHint(err error, cfg *config.Config) string {
	switch {
	case errors.Is(err, mdsite.ErrInvalidUTF8):
		return hints.ForInvalidUTF8()
	case errors.Is(err, mdsite.ErrSVGAnchorNotFound):
		return hints.ForSVGAnchor()
	case errors.Is(err, mdsite.ErrInvalidAssetsDir),
		errors.Is(err, mdsite.ErrIndex) && errors.Is(err, fs.ErrNotExist):
		return hints.ForAssetsDir(cfg.AssetsDir)
	case cfg.EnableInlineCSS && errors.Is(err, mdsite.ErrRead) && errors.Is(err, fs.ErrNotExist) &&
		!fileutil.FileExists(filepath.Join(cfg.StaticDir, pipeline.DefaultStylesheet)):
		return hints.ForMissingStylesheet(cfg.StaticDir)
	}
	return ""
}
