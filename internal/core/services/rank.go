package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/archivlab/teirank/internal/core/domain"
	"github.com/archivlab/teirank/internal/core/ports/driven"
	"github.com/archivlab/teirank/internal/logger"
)

// Report is the result of one pipeline run.
type Report struct {
	// RequestedN is the top-N the caller asked for. The number of
	// entries may be smaller when fewer persons resolve.
	RequestedN int

	// Entries are the ranked persons, at most RequestedN of them.
	Entries []domain.RankedEntry

	// Unresolved lists referenced CanonicalIDs with no matching
	// dataset record, sorted for deterministic reporting. They are
	// excluded from Entries.
	Unresolved []domain.CanonicalID

	// DocumentCount is the number of source documents loaded.
	DocumentCount int
}

// RankService orchestrates the ranking pipeline: load all documents
// and the dataset, extract reference counts, resolve them against the
// dataset and rank by frequency.
type RankService struct {
	loader    driven.Loader
	extractor driven.Extractor
}

// NewRankService creates a rank service with the given ports.
func NewRankService(loader driven.Loader, extractor driven.Extractor) *RankService {
	return &RankService{
		loader:    loader,
		extractor: extractor,
	}
}

// Run executes the full pipeline and returns the top-n report.
// n must be positive; callers apply their default before calling.
func (s *RankService) Run(ctx context.Context, dataDir, datasetFile string, n int) (*Report, error) {
	if n <= 0 {
		return nil, fmt.Errorf("top-n must be positive, got %d: %w", n, domain.ErrInvalidInput)
	}

	logger.Section("Load")
	docs, records, err := s.loader.Load(ctx, dataDir, datasetFile)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	logger.Section("Extract")
	counts, err := s.extractor.Extract(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	logger.Section("Resolve")
	entries, unresolved := Top(counts, records, n)

	return &Report{
		RequestedN:    n,
		Entries:       entries,
		Unresolved:    unresolved,
		DocumentCount: len(docs),
	}, nil
}

// Top joins reference counts against the dataset and returns the n
// most referenced persons, plus the CanonicalIDs that matched no
// record. The lookup is built once, so the join is linear in the
// number of distinct references.
//
// Ordering: count descending, ties broken by CanonicalID ascending.
// The tie-break makes the output independent of map iteration order.
// Fewer than n resolvable persons returns all of them; n = 0 returns
// an empty slice.
func Top(counts domain.ReferenceCount, records []domain.PersonRecord, n int) ([]domain.RankedEntry, []domain.CanonicalID) {
	byID := make(map[domain.CanonicalID]domain.PersonRecord, len(records))
	for _, record := range records {
		byID[record.Canonical()] = record
	}

	entries := make([]domain.RankedEntry, 0, len(counts))
	var unresolved []domain.CanonicalID

	for id, count := range counts {
		record, ok := byID[id]
		if !ok {
			unresolved = append(unresolved, id)
			continue
		}
		entries = append(entries, domain.RankedEntry{
			Name:  record.Name,
			ID:    record.ID,
			Count: count,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return domain.Canonicalize(entries[i].ID) < domain.Canonicalize(entries[j].ID)
	})
	sort.Slice(unresolved, func(i, j int) bool {
		return unresolved[i] < unresolved[j]
	})

	if n < 0 {
		n = 0
	}
	if n < len(entries) {
		entries = entries[:n]
	}

	return entries, unresolved
}
