package catalog

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airwave/internal/domain"
)

func browserAgainst(t *testing.T, handler http.HandlerFunc) *RadioBrowser {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewRadioBrowser(Options{
		BaseURL:     server.URL,
		Retries:     2,
		BackoffUnit: time.Millisecond,
	})
}

func TestRadioBrowserSearchParams(t *testing.T) {
	var captured string
	browser := browserAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.RawQuery
		w.Write([]byte("[]"))
	})

	_, err := browser.Search(domain.SearchQuery{
		Text: "jazz",
		Filters: domain.StationFilters{
			Country:    "France",
			Tag:        "smooth",
			MinBitrate: 128,
		},
		Sort:  domain.SortClicks,
		Limit: 25,
	})
	require.NoError(t, err)

	assert.Contains(t, captured, "hidebroken=true")
	assert.Contains(t, captured, "name=jazz")
	assert.Contains(t, captured, "country=France")
	assert.Contains(t, captured, "tag=smooth")
	assert.Contains(t, captured, "bitrateMin=128")
	assert.Contains(t, captured, "order=clickcount")
	assert.Contains(t, captured, "reverse=true")
	assert.Contains(t, captured, "limit=25")
}

func TestRadioBrowserRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	browser := browserAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"stationuuid":"a","name":"Alpha","url":"http://a/stream"}]`))
	})

	stations, err := browser.Search(domain.SearchQuery{Limit: 10})
	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, "Alpha", stations[0].Name)
	assert.Equal(t, int32(2), calls.Load())
}

func TestRadioBrowserDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	browser := browserAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := browser.Search(domain.SearchQuery{Limit: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Equal(t, int32(1), calls.Load())
}

func TestRadioBrowserExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	browser := browserAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := browser.Search(domain.SearchQuery{Limit: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, int32(3), calls.Load())
}

func TestRadioBrowserDecodesPermissively(t *testing.T) {
	browser := browserAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"stationuuid":"a","name":"","url_resolved":"http://a/stream","tags":"news, talk ,,"},
			{"stationuuid":"b","name":"No Stream","url_resolved":"","url":""},
			{"stationuuid":"c","name":"Fallback","url_resolved":"","url":"http://c/stream"}
		]`))
	})

	stations, err := browser.Search(domain.SearchQuery{Limit: 10})
	require.NoError(t, err)
	require.Len(t, stations, 2, "record without any stream URL is dropped")

	byID := map[string]domain.Station{}
	for _, s := range stations {
		byID[s.ID] = s
	}
	assert.Equal(t, "(unnamed station)", byID["a"].Name)
	assert.Equal(t, []string{"news", "talk"}, byID["a"].Tags)
	assert.Equal(t, "http://c/stream", byID["c"].StreamURL)
}

func TestRadioBrowserRejectsMalformedBody(t *testing.T) {
	var calls atomic.Int32
	browser := browserAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"not":"an array"}`))
	})

	_, err := browser.Search(domain.SearchQuery{Limit: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding station catalog response")
	assert.Equal(t, int32(1), calls.Load(), "decode failures are not retried")
}

func TestRadioBrowserAppliesNameTieBreak(t *testing.T) {
	browser := browserAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"stationuuid":"z","name":"Zulu","url":"http://z","votes":10},
			{"stationuuid":"a","name":"alpha","url":"http://a","votes":10},
			{"stationuuid":"m","name":"Mike","url":"http://m","votes":20}
		]`))
	})

	stations, err := browser.Search(domain.SearchQuery{Sort: domain.SortVotes, Limit: 10})
	require.NoError(t, err)
	require.Len(t, stations, 3)
	assert.Equal(t, "Mike", stations[0].Name)
	assert.Equal(t, "alpha", stations[1].Name, "equal votes break ties by case-insensitive name")
	assert.Equal(t, "Zulu", stations[2].Name)
}

func TestNewRadioBrowserDefaults(t *testing.T) {
	browser := NewRadioBrowser(Options{})
	assert.Equal(t, DefaultBaseURL, browser.baseURL)
	assert.Equal(t, defaultRetries, browser.retries)
	assert.Equal(t, defaultBackoffUnit, browser.backoff)

	browser = NewRadioBrowser(Options{BaseURL: "http://example.com/api/"})
	assert.Equal(t, "http://example.com/api", browser.baseURL)
}
