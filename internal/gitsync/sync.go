package gitsync

import (
	"fmt"
	"os"
	"path/filepath"

	serrors "github.com/raiment-studios/sea-git-sync/internal/errors"
)

// Options configures a sync run.
type Options struct {
	// Remote is the URL of the repository to publish to.
	Remote string

	// Branch is the remote branch to pull from and push to.
	Branch string

	// Message is the commit message for local changes.
	Message string

	// Paths restricts staging to files matching these doublestar
	// patterns. Empty means stage everything.
	Paths []string
}

// Result describes the outcome of a sync run.
type Result struct {
	// Pushed reports whether the push succeeded and the snapshot was
	// refreshed.
	Pushed bool

	// FilesAdded is the number of files staged when path filters were
	// used; -1 when everything was staged with `git add .`.
	FilesAdded int

	// SnapshotSize is the human-readable size of the refreshed
	// snapshot, when known.
	SnapshotSize string
}

// Sync publishes the current directory to the remote repository.
//
// The first run clones the remote to seed the snapshot. Every run then
// unpacks the snapshot into a temporary .git directory, stages and
// commits local changes, pulls, pushes, and (on push success) garbage
// collects and repacks the snapshot. The .git directory is removed
// again at the end so the tree stays a plain directory.
//
// Returns ErrNoRemote when opts.Remote is empty, and wraps
// ErrGitCommandFailed / ErrSnapshotCorrupt for the failure modes of the
// underlying tools.
func Sync(opts Options) (*Result, error) {
	if opts.Remote == "" {
		return nil, serrors.ErrNoRemote
	}

	if _, err := os.Stat(SnapshotFile); os.IsNotExist(err) {
		status("#39C", "No snapshot found, creating initial clone...")
		if err := createInitialSnapshot(opts.Remote); err != nil {
			return nil, err
		}
	}

	status("#39C", "Syncing changes to remote repository...")

	if _, err := os.Stat(".git"); os.IsNotExist(err) {
		if err := ensureCleanDir(".git"); err != nil {
			return nil, err
		}
		if err := extractSnapshot(SnapshotFile, ".git"); err != nil {
			return nil, err
		}
	}

	// The unpacked .git directory is now authoritative.
	if err := os.Remove(SnapshotFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("removing snapshot: %w", err)
	}
	if err := git("ls-files"); err != nil {
		return nil, err
	}

	result := &Result{FilesAdded: -1}
	if err := stageChanges(opts.Paths, result); err != nil {
		return nil, err
	}
	if err := git("commit", "-m", opts.Message); err != nil {
		return nil, err
	}
	if err := git("pull", opts.Remote, opts.Branch); err != nil {
		return nil, err
	}

	if err := git("push", opts.Remote, opts.Branch); err == nil {
		status("#39C", "Push successful, updating snapshot...")
		if err := git("gc", "--aggressive", "--prune=now"); err != nil {
			return nil, err
		}
		if err := createSnapshot(".git", SnapshotFile); err != nil {
			return nil, err
		}
		result.Pushed = true
		result.SnapshotSize = snapshotSize(SnapshotFile)
	} else {
		fmt.Fprintln(os.Stderr, "Push failed, not updating snapshot")
	}

	if err := os.RemoveAll(".git"); err != nil {
		return nil, fmt.Errorf("cleaning up .git directory: %w", err)
	}

	recordHistory(HistoryEntry{
		Remote:       opts.Remote,
		Branch:       opts.Branch,
		Message:      opts.Message,
		Pushed:       result.Pushed,
		FilesAdded:   result.FilesAdded,
		SnapshotSize: result.SnapshotSize,
	})
	return result, nil
}

// stageChanges stages everything, or only the files matching the
// configured path patterns.
func stageChanges(patterns []string, result *Result) error {
	if len(patterns) == 0 {
		return git("add", ".")
	}

	files, err := matchPaths(".", patterns)
	if err != nil {
		return err
	}
	result.FilesAdded = len(files)
	if len(files) == 0 {
		status("warn", "No files matched the configured paths")
		return nil
	}
	return git(append([]string{"add", "--"}, files...)...)
}

// createInitialSnapshot clones the remote into a scratch directory and
// packs its .git into the snapshot file.
func createInitialSnapshot(remote string) error {
	const tempDir = "git-remote"
	if err := ensureCleanDir(tempDir); err != nil {
		return err
	}

	if err := runCommandInDir(tempDir, "git", "clone", remote, "."); err != nil {
		return err
	}
	if err := createSnapshot(filepath.Join(tempDir, ".git"), SnapshotFile); err != nil {
		return err
	}
	return os.RemoveAll(tempDir)
}
