package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"airwave/internal/domain"
	"airwave/internal/logger"
)

const (
	DefaultBaseURL = "https://de1.api.radio-browser.info"

	defaultTimeout     = 3 * time.Second
	defaultRetries     = 2
	defaultBackoffUnit = 250 * time.Millisecond
)

type Options struct {
	BaseURL     string
	Timeout     time.Duration
	Retries     int           // extra attempts after the first
	BackoffUnit time.Duration // sleep between attempts grows linearly by this unit
	HTTP        *http.Client  // injectable for tests
}

// RadioBrowser queries the radio-browser.info station search API. Transport
// failures and 5xx responses are retried with linearly increasing backoff;
// 4xx responses and successes never are.
type RadioBrowser struct {
	client  *http.Client
	baseURL string
	retries int
	backoff time.Duration
}

func NewRadioBrowser(opts Options) *RadioBrowser {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	retries := opts.Retries
	if retries < 0 {
		retries = defaultRetries
	}
	backoff := opts.BackoffUnit
	if backoff <= 0 {
		backoff = defaultBackoffUnit
	}
	client := opts.HTTP
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &RadioBrowser{client: client, baseURL: baseURL, retries: retries, backoff: backoff}
}

func (c *RadioBrowser) Search(query domain.SearchQuery) ([]domain.Station, error) {
	requestURL := c.baseURL + "/json/stations/search?" + searchParams(query).Encode()

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * c.backoff)
		}

		stations, retryable, err := c.fetch(requestURL, query.Sort)
		if err == nil {
			return stations, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
		logger.Log.Warn().Err(err).Int("attempt", attempt+1).Msg("station search attempt failed")
	}
	return nil, fmt.Errorf("station search failed after %d attempts: %w", c.retries+1, lastErr)
}

func (c *RadioBrowser) fetch(requestURL string, sortBy domain.StationSort) (stations []domain.Station, retryable bool, err error) {
	resp, err := c.client.Get(requestURL)
	if err != nil {
		return nil, true, fmt.Errorf("station catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("station catalog returned status %d", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, false, fmt.Errorf("station catalog returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("reading station catalog response: %w", err)
	}

	var records []apiStation
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, false, fmt.Errorf("decoding station catalog response: %w", err)
	}

	stations = make([]domain.Station, 0, len(records))
	for _, record := range records {
		station, ok := record.toStation()
		if !ok {
			logger.Log.Debug().Str("uuid", record.StationUUID).Msg("dropping catalog record without a stream URL")
			continue
		}
		stations = append(stations, station)
	}

	// The API already honors order/reverse; re-applying locally adds the
	// name tie-break the API does not guarantee.
	domain.SortStations(stations, sortBy)
	return stations, false, nil
}

func searchParams(query domain.SearchQuery) url.Values {
	params := url.Values{}
	params.Set("hidebroken", "true")
	params.Set("limit", strconv.Itoa(query.Limit))
	params.Set("order", query.Sort.APIOrder())
	params.Set("reverse", strconv.FormatBool(query.Sort.Descending()))

	if text := strings.TrimSpace(query.Text); text != "" {
		params.Set("name", text)
	}
	if query.Filters.Country != "" {
		params.Set("country", query.Filters.Country)
	}
	if query.Filters.Language != "" {
		params.Set("language", query.Filters.Language)
	}
	if query.Filters.Tag != "" {
		params.Set("tag", query.Filters.Tag)
	}
	if query.Filters.Codec != "" {
		params.Set("codec", query.Filters.Codec)
	}
	if query.Filters.MinBitrate > 0 {
		params.Set("bitrateMin", strconv.Itoa(query.Filters.MinBitrate))
	}
	return params
}

type apiStation struct {
	StationUUID string `json:"stationuuid"`
	Name        string `json:"name"`
	URLResolved string `json:"url_resolved"`
	URL         string `json:"url"`
	Homepage    string `json:"homepage"`
	Tags        string `json:"tags"`
	Country     string `json:"country"`
	Language    string `json:"language"`
	Codec       string `json:"codec"`
	Bitrate     int    `json:"bitrate"`
	Votes       int    `json:"votes"`
	ClickCount  int    `json:"clickcount"`
}

// toStation decodes permissively: a blank name becomes a placeholder and a
// record with no usable stream URL is dropped rather than failing the search.
func (r apiStation) toStation() (domain.Station, bool) {
	stream := strings.TrimSpace(r.URLResolved)
	if stream == "" {
		stream = strings.TrimSpace(r.URL)
	}
	if stream == "" {
		return domain.Station{}, false
	}

	name := strings.TrimSpace(r.Name)
	if name == "" {
		name = "(unnamed station)"
	}

	var tags []string
	for _, tag := range strings.Split(r.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return domain.Station{
		ID:        r.StationUUID,
		Name:      name,
		StreamURL: stream,
		Homepage:  r.Homepage,
		Tags:      tags,
		Country:   r.Country,
		Language:  r.Language,
		Codec:     r.Codec,
		Bitrate:   r.Bitrate,
		Votes:     r.Votes,
		Clicks:    r.ClickCount,
	}, true
}
