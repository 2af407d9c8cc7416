// Package tei extracts person references from TEI-XML documents.
//
// A person reference is a persName element in the TEI namespace
// carrying a ref attribute, e.g.
//
//	<tei:persName ref="P000123456">Rudolf</tei:persName>
//
// Only the canonical prefix of the ref value is significant; see
// domain.Canonicalize.
package tei

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/archivlab/teirank/internal/core/domain"
	"github.com/archivlab/teirank/internal/core/ports/driven"
	"github.com/archivlab/teirank/internal/logger"
)

// Namespace is the TEI P5 namespace source documents declare.
const Namespace = "http://www.tei-c.org/ns/1.0"

// elementName is the local name of person-reference elements. The
// match is case-sensitive: persname or PersName are not references.
const elementName = "persName"

// refAttribute carries the person identifier on a reference element.
const refAttribute = "ref"

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor counts person references across TEI documents.
type Extractor struct {
	strict bool
}

// New creates a TEI extractor. In strict mode the first unparseable
// document aborts the run; otherwise unparseable documents are skipped
// with a warning and extraction continues.
func New(strict bool) *Extractor {
	return &Extractor{strict: strict}
}

// Strict reports whether the extractor aborts on malformed documents.
func (e *Extractor) Strict() bool {
	return e.strict
}

// Extract parses each document and accumulates reference counts.
// Extraction of a single document is a pure function from text to a
// partial count mapping; partial mappings are merged by summation, so
// a document that fails to parse contributes nothing.
func (e *Extractor) Extract(ctx context.Context, docs []domain.SourceDocument) (domain.ReferenceCount, error) {
	counts := make(domain.ReferenceCount)

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		partial, err := extractDocument(doc.Content)
		if err != nil {
			if e.strict {
				return nil, fmt.Errorf("document %s: %w", doc.Path, err)
			}
			logger.Warn("skipping document %s (%s): %v", doc.Path, doc.ID, err)
			continue
		}

		counts.Merge(partial)
	}

	logger.Debug("extracted %d distinct references from %d documents", len(counts), len(docs))
	return counts, nil
}

// extractDocument counts the references in a single document. The
// whole element tree is walked via the token stream, so references are
// found regardless of nesting depth. Elements without a ref attribute,
// or with an empty one, are skipped.
func extractDocument(content string) (domain.ReferenceCount, error) {
	counts := make(domain.ReferenceCount)
	decoder := xml.NewDecoder(strings.NewReader(content))

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse TEI: %w", domain.ErrMalformedDocument)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Space != Namespace || start.Name.Local != elementName {
			continue
		}

		if ref := refValue(start); ref != "" {
			counts.Add(domain.Canonicalize(ref))
		}
	}

	return counts, nil
}

// refValue returns the value of the ref attribute, or "" when absent.
func refValue(start xml.StartElement) string {
	for _, attr := range start.Attr {
		if attr.Name.Local == refAttribute && attr.Name.Space == "" {
			return attr.Value
		}
	}
	return ""
}
