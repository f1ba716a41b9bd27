package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger creates the command logger writing to w. Info is the default
// level; --verbose lowers it to debug and --quiet raises it to error.
func newLogger(w io.Writer, f commonFlags) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)

	switch f.logFormat {
	case logFormatText, "":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case logFormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("%w: unknown log format %q (want %s or %s)", ErrUsage, f.logFormat, logFormatText, logFormatJSON)
	}

	switch {
	case f.verbose:
		logger.SetLevel(logrus.DebugLevel)
	case f.quiet:
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger, nil
}
