package cmd

import (
	"os"
	"path/filepath"

	"github.com/raiment-studios/sea-git-sync/internal/console"
	"github.com/spf13/cobra"
)

// ColorsCmd previews the console color palette. It doubles as a quick
// check that the terminal renders 24-bit color.
var ColorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Show the console color palette",
	Long: `Prints every registered color alias rendered in its own color,
including any custom aliases from sea-git-sync.toml, followed by a few
samples of tag syntax.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(); err != nil {
			return err
		}

		console.Println("h1", "Registered aliases")
		for _, name := range console.RegisteredColors() {
			label := name
			if label == "" {
				label = "(empty)"
			}
			console.Println("txt", "  [%s](%s)", label, name)
		}

		console.Println("h1", "Samples")
		console.Println("txt", "  hex        [#39C](#39C) [ed552b](ed552b)")
		console.Println("txt", "  named      [goldenrod](goldenrod) [rebeccapurple](rebeccapurple)")
		console.Println("txt", "  number     [1234567](number)")
		console.Println("txt", "  filename   [%s](filename)", configSamplePath())
		return nil
	},
}

// configSamplePath returns a path under the working directory so the
// sample shows the "." abbreviation.
func configSamplePath() string {
	cwd, err := os.Getwd()
	if err != nil || cwd == "" {
		return "sea-git-sync.toml"
	}
	return filepath.Join(cwd, "sea-git-sync.toml")
}
