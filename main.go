package main

import (
	"fmt"
	"os"

	"github.com/raiment-studios/sea-git-sync/cmd"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sea-git-sync",
	Short: "🌊 sea-git-sync - Publish monorepo subdirectories to external git repositories.",
	Long: `sea-git-sync publishes a subdirectory of a monorepo to an external git
repository without keeping a permanent .git directory in the subtree.

Between runs the git metadata is packed into a compressed snapshot file,
so the subtree stays a plain directory inside the monorepo. Each sync
unpacks the snapshot, commits and pushes local changes, and repacks it.

Usage:
  sea-git-sync <command> [flags]

Available Commands:
  sync       Sync the current directory to a remote repository
  history    Show past sync runs for this directory
  colors     Show the console color palette
  version    Show version information

Run 'sea-git-sync help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Run 'sea-git-sync --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.SyncCmd)
	rootCmd.AddCommand(cmd.HistoryCmd)
	rootCmd.AddCommand(cmd.ColorsCmd)
	rootCmd.AddCommand(cmd.VersionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
