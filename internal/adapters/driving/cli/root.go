// Package cli implements the cobra command surface for teirank.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/archivlab/teirank/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "teirank",
	Short: "Rank persons by how often TEI documents reference them",
	Long: `teirank links person references in a collection of TEI-XML documents
to canonical identity records in a JSON reference dataset and reports
the most referenced persons.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default ~/.teirank/config.toml)")
}

// Execute runs the root command. It returns the command error so the
// caller can map it to a non-zero exit status.
func Execute() error {
	return rootCmd.Execute()
}
