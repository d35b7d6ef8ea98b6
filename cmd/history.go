package cmd

import (
	"github.com/raiment-studios/sea-git-sync/internal/console"
	"github.com/raiment-studios/sea-git-sync/internal/gitsync"
	"github.com/spf13/cobra"
)

// HistoryCmd lists past sync runs recorded in the history log.
var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past sync runs for this directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(); err != nil {
			return err
		}

		entries, err := gitsync.ReadHistory()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			console.Println("txt", "No sync history recorded yet.")
			return nil
		}

		for _, entry := range entries {
			status := "[✔](success)"
			if !entry.Pushed {
				status = "[✗](error)"
			}
			line := status + " [" + entry.Timestamp + "](555) [" + entry.Branch + "](key) " + entry.Message
			if entry.SnapshotSize != "" {
				line += " [(" + entry.SnapshotSize + ")](success_dim)"
			}
			console.Println("txt", "%s", line)
		}
		console.Println("txt", "[%d](number) runs recorded", len(entries))
		return nil
	},
}
