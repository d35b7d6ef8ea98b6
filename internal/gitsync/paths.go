package gitsync

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	serrors "github.com/raiment-studios/sea-git-sync/internal/errors"
)

// matchPaths walks root and returns the relative paths of regular files
// matching any of the doublestar patterns. The .git directory and the
// sync bookkeeping files are always excluded.
func matchPaths(root string, patterns []string) ([]string, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w: %q", serrors.ErrInvalidPathPattern, pattern)
		}
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if isBookkeepingFile(rel) {
			return nil
		}
		rel = filepath.ToSlash(rel)
		for _, pattern := range patterns {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				files = append(files, rel)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return files, nil
}

func isBookkeepingFile(rel string) bool {
	switch filepath.Base(rel) {
	case SnapshotFile, HistoryFile:
		return true
	}
	return strings.HasPrefix(rel, ".git"+string(filepath.Separator))
}
