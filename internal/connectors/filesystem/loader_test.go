package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archivlab/teirank/internal/core/domain"
	"github.com/archivlab/teirank/internal/core/ports/driven"
)

const datasetFile = "persons.json"

// writeFixture writes content into dir under name.
func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
}

func TestNew(t *testing.T) {
	t.Run("uses default pattern when empty", func(t *testing.T) {
		loader := New("")

		require.NotNil(t, loader)
		assert.Equal(t, DefaultPattern, loader.Pattern())
	})

	t.Run("keeps explicit pattern", func(t *testing.T) {
		loader := New("*.xml")

		assert.Equal(t, "*.xml", loader.Pattern())
	})

	t.Run("implements Loader interface", func(t *testing.T) {
		var _ driven.Loader = New("")
	})
}

func TestLoad_ReadsMatchingDocumentsAndDataset(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a-1.xml", "<TEI>a</TEI>")
	writeFixture(t, dir, "b-1.xml", "<TEI>b</TEI>")
	writeFixture(t, dir, "notes.txt", "not a document")
	writeFixture(t, dir, "b-2.xml", "<TEI>second edition</TEI>")
	writeFixture(t, dir, datasetFile, `[{"ID": "P00012345", "name": "Rudolf"}]`)

	loader := New("")
	docs, records, err := loader.Load(context.Background(), dir, datasetFile)

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "<TEI>a</TEI>", docs[0].Content)
	assert.Equal(t, filepath.Join(dir, "a-1.xml"), docs[0].Path)
	assert.NotEmpty(t, docs[0].ID)
	assert.NotEqual(t, docs[0].ID, docs[1].ID)

	require.Len(t, records, 1)
	assert.Equal(t, domain.PersonRecord{ID: "P00012345", Name: "Rudolf"}, records[0])
}

func TestLoad_MissingDirectory(t *testing.T) {
	loader := New("")

	_, _, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "gone"), datasetFile)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoad_NoMatchingDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, datasetFile, `[]`)

	loader := New("")
	_, _, err := loader.Load(context.Background(), dir, datasetFile)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoad_MissingDataset(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a-1.xml", "<TEI/>")

	loader := New("")
	_, _, err := loader.Load(context.Background(), dir, datasetFile)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, datasetFile)
}

func TestLoad_MalformedDataset(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid JSON", content: `{not json`},
		{name: "not a sequence", content: `{"ID": "P00012345", "name": "Rudolf"}`},
		{name: "record without ID", content: `[{"name": "Rudolf"}]`},
		{name: "record without name", content: `[{"ID": "P00012345"}]`},
		{name: "duplicate IDs", content: `[{"ID": "P00012345", "name": "Rudolf"}, {"ID": "P00012345", "name": "Doppel"}]`},
		{name: "duplicate canonical prefix", content: `[{"ID": "P000123456", "name": "Rudolf"}, {"ID": "P000123457", "name": "Doppel"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFixture(t, dir, "a-1.xml", "<TEI/>")
			writeFixture(t, dir, datasetFile, tt.content)

			loader := New("")
			_, _, err := loader.Load(context.Background(), dir, datasetFile)

			assert.ErrorIs(t, err, domain.ErrMalformedData)
		})
	}
}

func TestLoad_EmptyDatasetIsValid(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a-1.xml", "<TEI/>")
	writeFixture(t, dir, datasetFile, `[]`)

	loader := New("")
	docs, records, err := loader.Load(context.Background(), dir, datasetFile)

	require.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Empty(t, records)
}

func TestLoad_CustomPattern(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a-1.xml", "<TEI>a</TEI>")
	writeFixture(t, dir, "b-2.xml", "<TEI>b</TEI>")
	writeFixture(t, dir, datasetFile, `[]`)

	loader := New("*-2.xml")
	docs, _, err := loader.Load(context.Background(), dir, datasetFile)

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "<TEI>b</TEI>", docs[0].Content)
}

func TestLoad_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a-1.xml", "<TEI/>")
	writeFixture(t, dir, datasetFile, `[]`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := New("")
	_, _, err := loader.Load(ctx, dir, datasetFile)

	assert.ErrorIs(t, err, context.Canceled)
}
