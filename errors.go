package mdsite

import (
	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Sentinel errors returned by compilation. Use errors.Is to match them.
var (
	// I/O errors. The underlying fs error stays in the chain, so
	// errors.Is(err, fs.ErrNotExist) works as well.
	ErrRead  = pipeline.ErrRead
	ErrIndex = assets.ErrIndex

	// Decoding errors.
	ErrInvalidUTF8 = pipeline.ErrInvalidUTF8
	ErrImagePath   = pipeline.ErrImagePath

	// Content errors.
	ErrCSSParse          = pipeline.ErrCSSParse
	ErrSVGAnchorNotFound = pipeline.ErrSVGAnchorNotFound
	ErrHeaderValue       = pipeline.ErrHeaderValue
	ErrRender            = pipeline.ErrRender
	ErrMinify            = pipeline.ErrMinify

	// Configuration errors.
	ErrConfig           = config.ErrConfig
	ErrInvalidAssetsDir = assets.ErrInvalidBasePath
)
