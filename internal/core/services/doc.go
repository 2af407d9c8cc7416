// Package services implements the ranking pipeline on top of the
// driven ports. Services contain the core business logic: joining
// reference counts against the dataset, ordering, truncation, and the
// loader → extractor → resolver orchestration.
//
// Services are pure Go with no external dependencies beyond the ports.
package services
