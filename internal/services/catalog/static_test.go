package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airwave/internal/domain"
)

func TestStaticSearchFiltersAndSorts(t *testing.T) {
	static := NewStatic(DefaultStations())

	stations, err := static.Search(domain.SearchQuery{Sort: domain.SortVotes, Limit: 10})
	require.NoError(t, err)
	require.Len(t, stations, 3)
	assert.Equal(t, "SomaFM Groove Salad", stations[0].Name)
	assert.Equal(t, "NPR", stations[1].Name)
	assert.Equal(t, "BBC World Service", stations[2].Name)

	stations, err = static.Search(domain.SearchQuery{Text: "npr", Limit: 10})
	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, "NPR", stations[0].Name)

	stations, err = static.Search(domain.SearchQuery{
		Filters: domain.StationFilters{Tag: "ambient"},
		Limit:   10,
	})
	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, "soma-groove", stations[0].ID)
}

func TestStaticSearchAppliesLimit(t *testing.T) {
	static := NewStatic(DefaultStations())

	stations, err := static.Search(domain.SearchQuery{Sort: domain.SortName, Limit: 2})
	require.NoError(t, err)
	require.Len(t, stations, 2)
	assert.Equal(t, "BBC World Service", stations[0].Name)
	assert.Equal(t, "NPR", stations[1].Name)
}

func TestStaticSearchNoMatches(t *testing.T) {
	static := NewStatic(DefaultStations())

	stations, err := static.Search(domain.SearchQuery{Text: "does not exist", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, stations)
}

func TestDefaultStationsAreUsable(t *testing.T) {
	for _, s := range DefaultStations() {
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.StreamURL)
	}
}
