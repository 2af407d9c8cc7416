package driven

import (
	"context"

	"github.com/archivlab/teirank/internal/core/domain"
)

// Loader reads the full set of source documents and the reference
// dataset from storage. It performs no parsing of document content.
type Loader interface {
	// Load returns the contents of every source document in dataDir
	// matching the configured naming pattern, plus the parsed person
	// records from the dataset file.
	//
	// Returns an error wrapping domain.ErrNotFound when the dataset
	// file or the directory is missing, or when no documents match.
	// Returns an error wrapping domain.ErrMalformedData when the
	// dataset cannot be parsed into valid person records.
	Load(ctx context.Context, dataDir, datasetFile string) ([]domain.SourceDocument, []domain.PersonRecord, error)
}
