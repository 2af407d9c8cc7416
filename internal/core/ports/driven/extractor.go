package driven

import (
	"context"

	"github.com/archivlab/teirank/internal/core/domain"
)

// Extractor parses source documents and counts person references.
type Extractor interface {
	// Extract returns the accumulated reference counts across all
	// documents. In strict mode an error wrapping
	// domain.ErrMalformedDocument aborts the run on the first
	// unparseable document; otherwise such documents are skipped.
	Extract(ctx context.Context, docs []domain.SourceDocument) (domain.ReferenceCount, error)
}
