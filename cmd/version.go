package cmd

import (
	"github.com/common-nighthawk/go-figure"
	"github.com/raiment-studios/sea-git-sync/internal/console"
	"github.com/spf13/cobra"
)

const version = "0.1.2"

// VersionCmd prints version information with an ASCII banner.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		banner := figure.NewColorFigure("sea-git-sync", "", "cyan", true)
		banner.Print()
		console.Println("txt", "version [v%s](#829)", version)
	},
}
