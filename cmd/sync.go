package cmd

import (
	"errors"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/raiment-studios/sea-git-sync/internal/console"
	serrors "github.com/raiment-studios/sea-git-sync/internal/errors"
	"github.com/raiment-studios/sea-git-sync/internal/gitsync"
	logger "github.com/raiment-studios/sea-git-sync/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	syncRemote  string
	syncBranch  string
	syncMessage string
	syncPaths   []string
	syncQuiet   bool
)

// SyncCmd syncs the current directory to the configured remote.
var SyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the current directory to a remote git repository",
	Long: `Publishes the current directory to an external git repository.

The git metadata is kept in a compressed snapshot file between runs, so
the directory itself stays a plain subtree of its monorepo. The first
sync clones the remote to seed the snapshot; later syncs unpack it,
commit and push local changes, and repack it.

Defaults for --remote, --branch, --message, and --path can be set in
sea-git-sync.toml in the directory being synced.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		opts := gitsync.Options{
			Remote:  syncRemote,
			Branch:  syncBranch,
			Message: syncMessage,
			Paths:   syncPaths,
		}
		if opts.Remote == "" {
			opts.Remote = config.Sync.Remote
		}
		if config.Sync.Branch != "" && !cmd.Flags().Changed("branch") {
			opts.Branch = config.Sync.Branch
		}
		if config.Sync.Message != "" && !cmd.Flags().Changed("message") {
			opts.Message = config.Sync.Message
		}
		if len(opts.Paths) == 0 {
			opts.Paths = config.Sync.Paths
		}

		console.Println("#39C", "🌊 [sea-git-sync](#39C) [v%s](#829)", version)
		console.Println("#39C", "%s", strings.Repeat("[~](#CCF)[~](#CCC)", 32))

		if syncQuiet {
			gitsync.SetOutput(io.Discard)
			spinner, cleanup := startSpinner("Syncing to remote repository...", verbose)
			defer cleanup()

			result, err := gitsync.Sync(opts)
			spinner.FinalMSG = syncFinalMessage(result, err)
			if err != nil {
				Logger.Errorf("sync failed: %v", err)
			}
			return err
		}

		result, err := gitsync.Sync(opts)
		if err != nil {
			if errors.Is(err, serrors.ErrNoRemote) {
				console.Println("error", "No remote configured. Pass [--remote](opt) or set it in [sea-git-sync.toml](filename).")
				return err
			}
			return Logger.ErrorfAndReturn("sync failed: %v", err)
		}

		if result.Pushed {
			console.Println("#1C3", "✔ Sync completed successfully!")
			if result.SnapshotSize != "" {
				console.Println("txt", "Snapshot size: [%s](key)", result.SnapshotSize)
			}
		} else {
			console.Println("warn", "Sync finished, but the push did not succeed.")
		}
		return nil
	},
}

// syncFinalMessage builds the spinner's final line for quiet mode.
func syncFinalMessage(result *gitsync.Result, err error) string {
	if err != nil {
		return color.RedString("✗") + " Sync failed: " + err.Error()
	}
	if !result.Pushed {
		return color.YellowString("⚠") + " Sync finished, but the push did not succeed"
	}
	msg := color.GreenString("✔") + " Sync completed successfully!"
	if result.SnapshotSize != "" {
		msg += " " + color.CyanString("(snapshot %s)", result.SnapshotSize)
	}
	return msg
}

func init() {
	SyncCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	SyncCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	SyncCmd.Flags().StringVar(&syncRemote, "remote", "", "remote repository URL")
	SyncCmd.Flags().StringVar(&syncBranch, "branch", "main", "remote branch to pull from and push to")
	SyncCmd.Flags().StringVar(&syncMessage, "message", "Sync changes", "commit message for local changes")
	SyncCmd.Flags().StringArrayVar(&syncPaths, "path", nil, "restrict staging to files matching this pattern (repeatable)")
	SyncCmd.Flags().BoolVarP(&syncQuiet, "quiet", "q", false, "hide command output and show a spinner instead")
}
