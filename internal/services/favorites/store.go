package favorites

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"airwave/internal/domain"
)

// Store persists favorites as a flat JSON file. Current files hold full
// station records; files written by older versions hold a bare array of
// station ids and still load.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load() ([]domain.Station, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read favorites file %s: %w", s.path, err)
	}

	var stations []domain.Station
	if err := json.Unmarshal(content, &stations); err == nil {
		return stations, nil
	}

	var legacyIDs []string
	if err := json.Unmarshal(content, &legacyIDs); err != nil {
		return nil, fmt.Errorf("failed to parse favorites file %s: %w", s.path, err)
	}
	stations = make([]domain.Station, 0, len(legacyIDs))
	for _, id := range legacyIDs {
		// Legacy files carry ids only; the id doubles as the display
		// name until the station is re-favorited from a search result.
		stations = append(stations, domain.Station{ID: id, Name: id})
	}
	return stations, nil
}

func (s *Store) Save(stations []domain.Station) error {
	if parent := filepath.Dir(s.path); parent != "." {
		if err := os.MkdirAll(parent, 0755); err != nil {
			return fmt.Errorf("failed to create favorites directory %s: %w", parent, err)
		}
	}

	if stations == nil {
		stations = []domain.Station{}
	}
	body, err := json.MarshalIndent(stations, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize favorites: %w", err)
	}
	if err := os.WriteFile(s.path, body, 0644); err != nil {
		return fmt.Errorf("failed to write favorites file %s: %w", s.path, err)
	}
	return nil
}
