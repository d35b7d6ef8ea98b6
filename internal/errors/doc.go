// Package errors defines sentinel errors shared across sea-git-sync.
//
// Wrap these with fmt.Errorf("...: %w", err) to add context, and test
// for them with errors.Is at the CLI layer to choose user-facing
// messages without string matching.
package errors
