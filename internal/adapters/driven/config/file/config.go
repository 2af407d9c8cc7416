package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/archivlab/teirank/internal/core/domain"
)

// Built-in defaults, used when neither flag nor config file sets a value.
const (
	DefaultDataDir     = "data"
	DefaultDatasetFile = "persons.json"
	DefaultPattern     = "*-1.xml"
	DefaultTop         = 10
)

// Config holds the teirank settings read from the TOML config file.
type Config struct {
	Data   DataConfig   `toml:"data"`
	Report ReportConfig `toml:"report"`
}

// DataConfig describes where the source documents and the reference
// dataset live.
type DataConfig struct {
	// Dir is the directory holding the TEI files and the dataset.
	Dir string `toml:"dir"`

	// DatasetFile is the dataset filename, resolved relative to Dir.
	DatasetFile string `toml:"dataset_file"`

	// Pattern is the glob selecting the source documents within Dir.
	Pattern string `toml:"pattern"`
}

// ReportConfig controls the rendered report.
type ReportConfig struct {
	// Top is the default number of ranked persons to report when the
	// command line does not request one.
	Top int `toml:"top"`
}

// Default returns a config populated with the built-in defaults.
func Default() Config {
	return Config{
		Data: DataConfig{
			Dir:         DefaultDataDir,
			DatasetFile: DefaultDatasetFile,
			Pattern:     DefaultPattern,
		},
		Report: ReportConfig{
			Top: DefaultTop,
		},
	}
}

// DefaultPath returns the default config file location,
// ~/.teirank/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".teirank", "config.toml"), nil
}

// Load reads the config file at path, layering its values over the
// built-in defaults. A missing file is not an error and returns the
// defaults; a present but unparseable file is.
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, domain.ErrMalformedData)
	}

	// Empty values in the file mean "keep the default".
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = DefaultDataDir
	}
	if cfg.Data.DatasetFile == "" {
		cfg.Data.DatasetFile = DefaultDatasetFile
	}
	if cfg.Data.Pattern == "" {
		cfg.Data.Pattern = DefaultPattern
	}
	if cfg.Report.Top <= 0 {
		cfg.Report.Top = DefaultTop
	}

	return cfg, nil
}
