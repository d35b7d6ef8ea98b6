package gitsync

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	serrors "github.com/raiment-studios/sea-git-sync/internal/errors"
)

// SnapshotFile holds the packed .git directory between syncs.
const SnapshotFile = ".git-sync-snapshot.tar.gz"

// createSnapshot packs gitDir into a compressed archive at snapshotPath.
func createSnapshot(gitDir, snapshotPath string) error {
	parent := filepath.Dir(gitDir)
	name := filepath.Base(gitDir)

	args := []string{"-czf", snapshotPath}
	if parent != "" && parent != "." {
		args = append(args, "-C", parent)
	}
	args = append(args, name)
	return runCommand("tar", args...)
}

// extractSnapshot unpacks the snapshot archive into targetDir, dropping
// the leading path component so the contents land directly in targetDir.
func extractSnapshot(snapshotPath, targetDir string) error {
	err := runCommand("tar", "-xzf", snapshotPath, "-C", targetDir, "--strip-components=1")
	if err != nil {
		return fmt.Errorf("%w: %v", serrors.ErrSnapshotCorrupt, err)
	}
	return nil
}

// snapshotSize returns the human-readable size of the snapshot file,
// or "" if it cannot be determined. The size is worth surfacing because
// the archive can grow abnormally large without `git gc`.
func snapshotSize(snapshotPath string) string {
	out, err := exec.Command("du", "-h", snapshotPath).Output()
	if err != nil {
		return ""
	}
	fields := strings.Fields(string(out))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// ensureCleanDir creates dir, removing any previous contents.
func ensureCleanDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing existing directory %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}
