package pipeline

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// readText reads name as trimmed UTF-8 text, tagging I/O failures with ErrRead.
func readText(fsys fs.FS, name string) (string, error) {
	text, err := fileutil.ReadText(fsys, name)
	if err != nil {
		if errors.Is(err, fileutil.ErrInvalidUTF8) {
			return "", err
		}
		return "", fmt.Errorf("%w: %s: %w", ErrRead, name, err)
	}
	return text, nil
}

// fileSize returns the size of name, tagging failures with ErrRead.
func fileSize(fsys fs.FS, name string) (int64, error) {
	size, err := fileutil.Size(fsys, name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrRead, name, err)
	}
	return size, nil
}
