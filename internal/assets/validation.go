package assets

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// ValidateAssetPath checks that p, a slash-separated path relative to the
// static directory, names a file inside it. Returns ErrInvalidAssetPath if
// the path is empty, contains backslashes or NUL bytes, or uses ".." to
// climb out of the directory.
func ValidateAssetPath(p string) error {
	if p == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidAssetPath)
	}
	if strings.ContainsAny(p, "\\\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetPath, p)
	}
	if !fs.ValidPath(path.Clean(p)) {
		return fmt.Errorf("%w: %q escapes static directory", ErrInvalidAssetPath, p)
	}
	return nil
}
