package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/lrrview/internal/config"
	"github.com/five82/lrrview/internal/results"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print a plain-text motif report",
	Long: `Print every sequence in the results artifact followed by its motifs,
sorted by offset, without starting the TUI.

Examples:
  # Report for the configured results file
  lrrview print

  # Report for a remote run, showing 20 residues per motif
  lrrview print --results https://host/run1/results.js --width 20`,
	Args: cobra.NoArgs,
	RunE: runPrint,
}

var printWidth int

func init() {
	rootCmd.AddCommand(printCmd)

	printCmd.Flags().IntVarP(&printWidth, "width", "w", results.MotifWidth, "residues shown per motif")
}

func runPrint(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	location := cfg.Results
	if resultsPath != "" {
		location = config.ResolveResults(resultsPath)
	}

	records, err := results.NewSource().Fetch(cmd.Context(), location)
	if err != nil {
		return err
	}
	return results.WriteText(cmd.OutOrStdout(), records, printWidth)
}
