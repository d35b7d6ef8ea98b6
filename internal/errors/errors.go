package errors

import "errors"

// Command errors indicate failures running external tools.
var (
	// ErrGitCommandFailed indicates a git invocation exited non-zero.
	ErrGitCommandFailed = errors.New("git command failed")

	// ErrCommandFailed indicates a non-git external command exited non-zero.
	ErrCommandFailed = errors.New("command failed")

	// ErrGitNotFound indicates the git binary is not on PATH.
	ErrGitNotFound = errors.New("git executable not found")
)

// Sync state errors indicate issues with the snapshot or remote setup.
var (
	// ErrNoRemote indicates no remote URL was provided by flag or config.
	ErrNoRemote = errors.New("no remote repository configured")

	// ErrSnapshotCorrupt indicates the snapshot could not be extracted.
	ErrSnapshotCorrupt = errors.New("snapshot archive is corrupt")
)

// Config errors indicate issues with sea-git-sync.toml.
var (
	// ErrInvalidConfig indicates the configuration file is malformed.
	ErrInvalidConfig = errors.New("configuration file is invalid")

	// ErrInvalidPathPattern indicates a path filter pattern does not parse.
	ErrInvalidPathPattern = errors.New("invalid path pattern")
)
