package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Manifest records how a dataset file was produced. The generator writes it
// next to the CSV so the dashboard can report provenance without rescanning.
type Manifest struct {
	DatasetID   string    `json:"dataset_id"`
	Rows        int       `json:"rows"`
	Seed        int64     `json:"seed"`
	Columns     []string  `json:"columns"`
	GeneratedAt time.Time `json:"generated_at"`
}

// NewManifest builds a manifest for a freshly generated dataset.
func NewManifest(rows int, seed int64) Manifest {
	return Manifest{
		DatasetID:   uuid.NewString(),
		Rows:        rows,
		Seed:        seed,
		Columns:     Columns,
		GeneratedAt: time.Now().UTC(),
	}
}

// ManifestPath returns the manifest location for a given CSV path,
// e.g. data/transactions.csv -> data/transactions.manifest.json.
func ManifestPath(csvPath string) string {
	base := strings.TrimSuffix(filepath.Base(csvPath), filepath.Ext(csvPath))
	return filepath.Join(filepath.Dir(csvPath), base+".manifest.json")
}

// Write stores the manifest as indented JSON at path.
func (m Manifest) Write(path string) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// ReadManifest loads a manifest from path.
func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	b, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	return m, json.Unmarshal(b, &m)
}
