// Package gitsync publishes the current directory to an external git
// repository without keeping a permanent .git directory in the tree.
//
// Between runs the git metadata lives in a compressed snapshot file
// (.git-sync-snapshot.tar.gz). Each sync unpacks the snapshot, stages
// and commits local changes, pulls and pushes against the remote, and
// repacks the snapshot on a successful push. The directory itself stays
// a plain subtree of its monorepo.
//
// All external work is done by shelling out to the user's own git, tar,
// and du binaries, so credentials, hooks, and git configuration behave
// exactly as they do on the command line. Every command is echoed
// through the console engine before it runs.
package gitsync
