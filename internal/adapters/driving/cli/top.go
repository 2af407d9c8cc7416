package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	configfile "github.com/archivlab/teirank/internal/adapters/driven/config/file"
	"github.com/archivlab/teirank/internal/connectors/filesystem"
	"github.com/archivlab/teirank/internal/core/services"
	"github.com/archivlab/teirank/internal/extractors/tei"
	"github.com/archivlab/teirank/internal/logger"
)

var (
	topDataDir string
	topDataset string
	topPattern string
	topStrict  bool
)

var topCmd = &cobra.Command{
	Use:   "top [n]",
	Short: "Report the n most referenced persons",
	Long: `Counts person references (persName/@ref) across all TEI documents in
the data directory, resolves them against the reference dataset and
prints the top n persons, one per line.

Without an argument, or with a non-positive one, n falls back to the
configured default. Documents that fail to parse are skipped with a
warning unless --strict is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTop,
}

func init() {
	topCmd.Flags().StringVar(&topDataDir, "data-dir", "", "directory containing the TEI documents and the dataset")
	topCmd.Flags().StringVar(&topDataset, "dataset", "", "dataset filename within the data directory")
	topCmd.Flags().StringVar(&topPattern, "pattern", "", "glob selecting the TEI documents")
	topCmd.Flags().BoolVar(&topStrict, "strict", false, "abort on the first unparseable document instead of skipping it")
	rootCmd.AddCommand(topCmd)
}

func runTop(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	n := cfg.Report.Top
	if len(args) == 1 {
		requested, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("top count must be an integer, got %q", args[0])
		}
		// Non-positive requests fall back to the configured default.
		if requested > 0 {
			n = requested
		}
	}

	dataDir := cfg.Data.Dir
	if cmd.Flags().Changed("data-dir") {
		dataDir = topDataDir
	}
	dataset := cfg.Data.DatasetFile
	if cmd.Flags().Changed("dataset") {
		dataset = topDataset
	}
	pattern := cfg.Data.Pattern
	if cmd.Flags().Changed("pattern") {
		pattern = topPattern
	}

	loader := filesystem.New(pattern)
	extractor := tei.New(topStrict)
	service := services.NewRankService(loader, extractor)

	report, err := service.Run(cmd.Context(), dataDir, dataset, n)
	if err != nil {
		return err
	}

	for _, id := range report.Unresolved {
		logger.Warn("unresolved reference %s: no matching person record", id)
	}

	renderReport(cmd, report)
	return nil
}

// loadConfig resolves the config file location and loads it. When no
// home directory can be determined the built-in defaults apply.
func loadConfig() (configfile.Config, error) {
	path := configFlag
	if path == "" {
		defaultPath, err := configfile.DefaultPath()
		if err != nil {
			logger.Debug("no home directory, using built-in defaults: %v", err)
			return configfile.Default(), nil
		}
		path = defaultPath
	}
	return configfile.Load(path)
}

// renderReport prints the header and one line per ranked entry. The
// header states the requested n even when fewer persons resolved.
func renderReport(cmd *cobra.Command, report *services.Report) {
	cmd.Printf("Die %d am häufigsten referenzierten Personen sind:\n", report.RequestedN)
	for _, entry := range report.Entries {
		cmd.Printf("%s (%s) - %d Referenzen\n", entry.Name, entry.ID, entry.Count)
	}
}
