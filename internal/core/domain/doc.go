// Package domain defines the core business entities for teirank.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SourceDocument: The raw text of one TEI source file
//   - PersonRecord: One entry from the reference dataset
//   - ReferenceCount: Occurrence counts keyed by CanonicalID
//   - RankedEntry: A resolved (name, ID, count) ranking entry
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
