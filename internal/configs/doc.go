// Package configs loads and saves the optional sea-git-sync.toml file.
//
// The file lives in the directory being synced and provides defaults
// for the sync command plus custom color aliases for console output:
//
//	[sync]
//	remote  = "git@github.com:acme/out.git"
//	branch  = "main"
//	message = "Sync changes"
//	paths   = ["src/**", "docs/**.md"]
//
//	[colors]
//	brand = "#39C"
//	dim   = "555"
//
// A missing file is not an error; every field has a flag or built-in
// default.
package configs
