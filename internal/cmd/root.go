package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/five82/lrrview/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "lrrview",
	Short: "Browse LRR motif prediction results",
	Long: `lrrview is a terminal browser for LRR motif prediction results.

It pages through the sequences in a results artifact, shows the detected
motifs of the selected sequence as a table and highlights the residues that
fall inside confident motif windows.

The results location comes from --results, then the config file, then
./results.js. Local paths and http(s) URLs are both accepted.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBrowse,
}

var (
	configPath  string
	resultsPath string
	prefsPath   string
	pageSize    int
)

// Execute runs the root command with ctx attached for cancellation.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default is $HOME/.config/lrrview/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&resultsPath, "results", "r", "", "results file or URL (overrides config)")

	rootCmd.Flags().IntVarP(&pageSize, "page-size", "n", 0, "sequences per page (overrides saved preference)")
	rootCmd.Flags().StringVar(&prefsPath, "prefs", "", "preferences file (default is $HOME/.config/lrrview/prefs.toml)")
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	return app.Run(cmd.Context(), app.Options{
		ConfigPath: configPath,
		PrefsPath:  prefsPath,
		Results:    resultsPath,
		PageSize:   pageSize,
	})
}
