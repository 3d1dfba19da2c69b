package dataset

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("data", "transactions.manifest.json"),
		ManifestPath(filepath.Join("data", "transactions.csv")))
}

func TestManifest_RoundTrip(t *testing.T) {
	m := NewManifest(1500, 42)
	_, err := uuid.Parse(m.DatasetID)
	require.NoError(t, err, "dataset ID must be a uuid")
	assert.Equal(t, Columns, m.Columns)

	path := filepath.Join(t.TempDir(), "transactions.manifest.json")
	require.NoError(t, m.Write(path))

	got, err := ReadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, m.DatasetID, got.DatasetID)
	assert.Equal(t, 1500, got.Rows)
	assert.Equal(t, int64(42), got.Seed)
}
