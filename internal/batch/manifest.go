package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Manifest describes one batch run.
type Manifest struct {
	RunID    string          `json:"run_id"`
	Created  time.Time       `json:"created"`
	Format   string          `json:"format"`
	Rendered int             `json:"rendered"`
	Failed   int             `json:"failed"`
	Frames   []ManifestEntry `json:"frames"`
}

// ManifestEntry represents one frame in the output manifest.
// Image paths are relative to the manifest's directory.
type ManifestEntry struct {
	Name      string  `json:"name"`
	Source    string  `json:"source"`
	Image     string  `json:"image,omitempty"`
	Preview   string  `json:"preview,omitempty"`
	Error     string  `json:"error,omitempty"`
	ElapsedMS float64 `json:"elapsed_ms"`
}

// NewManifest summarizes results under a fresh run ID.
func NewManifest(cfg Config, results []Result) Manifest {
	m := Manifest{
		RunID:   uuid.NewString(),
		Created: time.Now().UTC(),
		Format:  string(cfg.Format),
		Frames:  make([]ManifestEntry, len(results)),
	}
	for i, r := range results {
		if r.Success {
			m.Rendered++
		} else {
			m.Failed++
		}
		m.Frames[i] = ManifestEntry{
			Name:      r.Name,
			Source:    r.Source,
			Image:     relativeTo(cfg.OutputDir, r.Image),
			Preview:   relativeTo(cfg.OutputDir, r.Preview),
			Error:     r.Error,
			ElapsedMS: float64(r.Elapsed.Microseconds()) / 1000,
		}
	}
	return m
}

// WriteManifest writes the manifest as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func relativeTo(dir, path string) string {
	if path == "" || dir == "" {
		return path
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
