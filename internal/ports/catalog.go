package ports

import "airwave/internal/domain"

// StationCatalog searches a station catalog and returns stations already
// ordered per the query's sort field.
type StationCatalog interface {
	Search(query domain.SearchQuery) ([]domain.Station, error)
}
