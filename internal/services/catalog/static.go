package catalog

import (
	"airwave/internal/domain"
)

// Static serves a fixed in-memory station list. It is the fallback when no
// remote catalog is configured, and the test double of choice.
type Static struct {
	stations []domain.Station
}

func NewStatic(stations []domain.Station) *Static {
	return &Static{stations: stations}
}

func (c *Static) Search(query domain.SearchQuery) ([]domain.Station, error) {
	matched := make([]domain.Station, 0, len(c.stations))
	for _, station := range c.stations {
		if station.MatchesQuery(query.Text) && station.MatchesFilters(query.Filters) {
			matched = append(matched, station)
		}
	}

	domain.SortStations(matched, query.Sort)
	if query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}
	return matched, nil
}

// DefaultStations is the built-in list used when running without a remote
// catalog.
func DefaultStations() []domain.Station {
	return []domain.Station{
		{
			ID:        "bbc-world-service",
			Name:      "BBC World Service",
			StreamURL: "http://stream.live.vc.bbcmedia.co.uk/bbc_world_service",
			Homepage:  "https://www.bbc.co.uk/worldserviceradio",
			Tags:      []string{"news", "world"},
			Country:   "United Kingdom",
			Language:  "English",
			Codec:     "MP3",
			Bitrate:   128,
			Votes:     500,
			Clicks:    2000,
		},
		{
			ID:        "npr",
			Name:      "NPR",
			StreamURL: "https://npr-ice.streamguys1.com/live.mp3",
			Homepage:  "https://www.npr.org",
			Tags:      []string{"news", "talk"},
			Country:   "United States",
			Language:  "English",
			Codec:     "MP3",
			Bitrate:   128,
			Votes:     700,
			Clicks:    3000,
		},
		{
			ID:        "soma-groove",
			Name:      "SomaFM Groove Salad",
			StreamURL: "https://ice2.somafm.com/groovesalad-128-mp3",
			Homepage:  "https://somafm.com/groovesalad/",
			Tags:      []string{"ambient", "electronic"},
			Country:   "United States",
			Language:  "English",
			Codec:     "MP3",
			Bitrate:   128,
			Votes:     900,
			Clicks:    4000,
		},
	}
}
