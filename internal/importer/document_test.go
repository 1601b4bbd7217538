package importer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flipword/api/internal/exporter"
	"github.com/flipword/api/internal/seed"
)

func TestReadDocument_RoundTrip(t *testing.T) {
	doc := seed.Topics()

	for _, ext := range []string{"json", "yaml"} {
		t.Run(ext, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, exporter.Write(&buf, ext, doc))

			path := filepath.Join(t.TempDir(), "topics."+ext)
			require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

			got, err := ReadDocument(path)
			require.NoError(t, err)
			assert.Equal(t, doc, got)
		})
	}
}

func TestReadDocument_Errors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"topics":`), 0o644))
	_, err := ReadDocument(bad)
	assert.ErrorContains(t, err, "failed to parse")

	txt := filepath.Join(dir, "topics.txt")
	require.NoError(t, os.WriteFile(txt, []byte(`{}`), 0o644))
	_, err = ReadDocument(txt)
	assert.ErrorContains(t, err, "unsupported document type")

	_, err = ReadDocument(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
