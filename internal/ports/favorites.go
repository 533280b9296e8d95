package ports

import "airwave/internal/domain"

// FavoritesStore persists the favorites list. Load returns an empty list
// when nothing has been saved yet.
type FavoritesStore interface {
	Load() ([]domain.Station, error)
	Save(stations []domain.Station) error
}
