package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrIndex indicates an asset directory could not be listed.
	ErrIndex = errors.New("failed to index directory")

	// ErrInvalidAssetPath indicates an asset path is empty, contains
	// backslashes or NUL bytes, or escapes the static directory.
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")
)
