// Package logger provides leveled logging for sea-git-sync commands.
//
// Verbosity is controlled by two flags:
//
//   - --verbose: shows info messages
//   - --debug: shows debug messages
//
// Warnings and errors always print to stderr. Commands create a logger
// in their PersistentPreRun and pass it down.
package logger
