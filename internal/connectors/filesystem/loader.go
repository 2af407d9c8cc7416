// Package filesystem implements the document Loader against a local
// directory. It enumerates the TEI source files matching a naming
// pattern and parses the JSON reference dataset.
package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/archivlab/teirank/internal/core/domain"
	"github.com/archivlab/teirank/internal/core/ports/driven"
	"github.com/archivlab/teirank/internal/logger"
)

// DefaultPattern matches the TEI source files of a collection. Only
// the first-edition files carry person references.
const DefaultPattern = "*-1.xml"

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// Loader reads source documents and the reference dataset from a
// local directory. Access is strictly read-only.
type Loader struct {
	pattern string
}

// New creates a filesystem loader. An empty pattern falls back to
// DefaultPattern.
func New(pattern string) *Loader {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &Loader{pattern: pattern}
}

// Pattern returns the glob pattern used to select source documents.
func (l *Loader) Pattern() string {
	return l.pattern
}

// Load reads every source document in dataDir matching the pattern and
// the person records from datasetFile (resolved relative to dataDir).
// The file list is materialised eagerly; iteration terminates by
// exhausting it.
func (l *Loader) Load(ctx context.Context, dataDir, datasetFile string) ([]domain.SourceDocument, []domain.PersonRecord, error) {
	if _, err := os.Stat(dataDir); err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("data directory %s: %w", dataDir, domain.ErrNotFound)
		}
		return nil, nil, fmt.Errorf("stat data directory %s: %w", dataDir, err)
	}

	docs, err := l.loadDocuments(ctx, dataDir)
	if err != nil {
		return nil, nil, err
	}

	records, err := loadDataset(filepath.Join(dataDir, datasetFile))
	if err != nil {
		return nil, nil, err
	}

	return docs, records, nil
}

// loadDocuments reads all matching files in dataDir. Zero matches is
// fatal: a ranking over an empty corpus is meaningless.
func (l *Loader) loadDocuments(ctx context.Context, dataDir string) ([]domain.SourceDocument, error) {
	matches, err := filepath.Glob(filepath.Join(dataDir, l.pattern))
	if err != nil {
		return nil, fmt.Errorf("bad document pattern %q: %w", l.pattern, domain.ErrInvalidInput)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no documents matching %q in %s: %w", l.pattern, dataDir, domain.ErrNotFound)
	}

	docs := make([]domain.SourceDocument, 0, len(matches))
	for _, path := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read document %s: %w", path, err)
		}

		docs = append(docs, domain.SourceDocument{
			ID:      uuid.New().String(),
			Path:    path,
			Content: string(content),
		})
	}

	logger.Debug("loaded %d documents from %s", len(docs), dataDir)
	return docs, nil
}

// loadDataset parses the JSON reference dataset and validates its
// structural invariants: every record carries an ID and a name, and
// IDs are unique across the dataset.
func loadDataset(path string) ([]domain.PersonRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("dataset %s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	var records []domain.PersonRecord
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, domain.ErrMalformedData)
	}

	// Uniqueness is checked on the canonical prefix: that is the key
	// the resolver joins on, so two records colliding there would make
	// the join ambiguous.
	seen := make(map[domain.CanonicalID]struct{}, len(records))
	for i, record := range records {
		if record.ID == "" {
			return nil, fmt.Errorf("dataset %s: record %d has no ID: %w", path, i, domain.ErrMalformedData)
		}
		if record.Name == "" {
			return nil, fmt.Errorf("dataset %s: record %s has no name: %w", path, record.ID, domain.ErrMalformedData)
		}
		if _, ok := seen[record.Canonical()]; ok {
			return nil, fmt.Errorf("dataset %s: duplicate ID %s: %w", path, record.ID, domain.ErrMalformedData)
		}
		seen[record.Canonical()] = struct{}{}
	}

	logger.Debug("loaded %d person records from %s", len(records), path)
	return records, nil
}
