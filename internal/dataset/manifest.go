package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Rishi4227/epos-data-pipeline/internal/genconfig"
	"github.com/google/uuid"
)

// Manifest describes one generation run. The QA and load stages read it to
// learn the run's constraints without access to the original config.
type Manifest struct {
	RunID        string    `json:"run_id"`
	Seed         int64     `json:"seed"`
	GeneratedAt  time.Time `json:"generated_at"`
	Transactions int       `json:"transactions"`
	Locations    int       `json:"locations"`
	Products     int       `json:"products"`
	Employees    int       `json:"employees"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	OpenHour     int       `json:"open_hour"`
	CloseHour    int       `json:"close_hour"`
}

// NewManifest stamps a fresh manifest for a run of the given config
func NewManifest(cfg *genconfig.Config) Manifest {
	return Manifest{
		RunID:        uuid.NewString(),
		Seed:         cfg.Seed,
		GeneratedAt:  time.Now().UTC(),
		Transactions: cfg.Transactions,
		Locations:    cfg.Locations,
		Products:     cfg.Products,
		Employees:    cfg.Employees,
		StartDate:    cfg.StartDate,
		EndDate:      cfg.EndDate,
		OpenHour:     cfg.OpenHour,
		CloseHour:    cfg.CloseHour,
	}
}

// WriteManifest persists the manifest as pretty-printed JSON
func (s *Store) WriteManifest(m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(s.dir, ManifestFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ManifestFile, err)
	}

	return nil
}

// ReadManifest loads the manifest of a previously written dataset
func (s *Store) ReadManifest() (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ManifestFile, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal manifest: %w", err)
	}

	return &m, nil
}
