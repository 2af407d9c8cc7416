package domain

// SourceDocument is the raw text of one TEI source file. It is owned
// by the loader until handed to the extractor and is not retained
// after extraction.
type SourceDocument struct {
	// ID is a unique identifier assigned at load time, used in
	// diagnostics when a document cannot be parsed.
	ID string

	// Path is the filesystem location the content was read from.
	Path string

	// Content is the full textual content of the file.
	Content string
}
