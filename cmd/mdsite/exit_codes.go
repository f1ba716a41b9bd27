package main

import (
	"errors"
	"io/fs"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
)

// Exit codes for the mdsite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, arguments, or configuration
	ExitIO      = 3 // Unreadable assets, unwritable files, listen failures
	ExitCompile = 4 // Site content that cannot be compiled
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content errors (exit 4)
	if errors.Is(err, mdsite.ErrInvalidUTF8) ||
		errors.Is(err, mdsite.ErrImagePath) ||
		errors.Is(err, mdsite.ErrCSSParse) ||
		errors.Is(err, mdsite.ErrSVGAnchorNotFound) ||
		errors.Is(err, mdsite.ErrHeaderValue) ||
		errors.Is(err, mdsite.ErrRender) ||
		errors.Is(err, mdsite.ErrMinify) {
		return ExitCompile
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfig) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, mdsite.ErrRead) ||
		errors.Is(err, mdsite.ErrIndex) ||
		errors.Is(err, mdsite.ErrInvalidAssetsDir) ||
		errors.Is(err, ErrListen) ||
		errors.Is(err, ErrWrite) {
		return ExitIO
	}

	return ExitGeneral
}
