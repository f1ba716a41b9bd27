package assets

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
)

// Index is the set of regular file names found directly under a directory,
// the static directory or the markdown directory.
// It is built once and read-only afterwards.
type Index map[string]struct{}

// BuildIndex lists dir in fsys and records every direct child that is a
// regular file. Symlinks are followed; subdirectories are skipped.
func BuildIndex(fsys fs.FS, dir string) (Index, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrIndex, dir, err)
	}

	idx := make(Index, len(entries))
	for _, entry := range entries {
		regular, err := isRegular(fsys, dir, entry)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrIndex, entry.Name(), err)
		}
		if regular {
			idx[entry.Name()] = struct{}{}
		}
	}

	return idx, nil
}

func isRegular(fsys fs.FS, dir string, entry fs.DirEntry) (bool, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.Type().IsRegular(), nil
	}

	info, err := fs.Stat(fsys, path.Join(dir, entry.Name()))
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// Contains reports whether name is an indexed file.
func (idx Index) Contains(name string) bool {
	_, ok := idx[name]
	return ok
}

// Names returns the indexed file names in lexical order.
func (idx Index) Names() []string {
	names := make([]string, 0, len(idx))
	for name := range idx {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
