package domain

import (
	"sort"
	"strconv"
	"strings"
)

// Station is a named network audio stream plus the catalog metadata used for
// filtering and sorting. Stations are compared by ID for favorite membership.
type Station struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	StreamURL string   `json:"stream_url"`
	Homepage  string   `json:"homepage,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Country   string   `json:"country,omitempty"`
	Language  string   `json:"language,omitempty"`
	Codec     string   `json:"codec,omitempty"`
	Bitrate   int      `json:"bitrate,omitempty"`
	Votes     int      `json:"votes,omitempty"`
	Clicks    int      `json:"clicks,omitempty"`
}

// MatchesQuery reports whether the station name or one of its tags contains
// the query as a case-insensitive substring. An empty query matches.
func (s Station) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(s.Name), q) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// MatchesFilters reports whether the station satisfies every active filter.
func (s Station) MatchesFilters(f StationFilters) bool {
	contains := func(field, want string) bool {
		return want == "" || strings.Contains(strings.ToLower(field), strings.ToLower(want))
	}
	if !contains(s.Country, f.Country) || !contains(s.Language, f.Language) || !contains(s.Codec, f.Codec) {
		return false
	}
	if f.Tag != "" {
		found := false
		for _, tag := range s.Tags {
			if strings.Contains(strings.ToLower(tag), strings.ToLower(f.Tag)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.MinBitrate > 0 && s.Bitrate < f.MinBitrate {
		return false
	}
	return true
}

// StationFilters narrows a catalog search. Zero values mean "unset".
type StationFilters struct {
	Country    string
	Language   string
	Tag        string
	Codec      string
	MinBitrate int
}

func (f StationFilters) IsEmpty() bool {
	return f == StationFilters{}
}

func (f StationFilters) String() string {
	var parts []string
	add := func(key, value string) {
		if value != "" {
			parts = append(parts, key+"="+value)
		}
	}
	add("country", f.Country)
	add("language", f.Language)
	add("tag", f.Tag)
	add("codec", f.Codec)
	if f.MinBitrate > 0 {
		parts = append(parts, "min_bitrate="+strconv.Itoa(f.MinBitrate))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

// StationSort selects the catalog ordering. Name sorts ascending, every other
// field descending, with ties broken by name ascending.
type StationSort int

const (
	SortVotes StationSort = iota
	SortName
	SortClicks
	SortBitrate
)

func (s StationSort) String() string {
	switch s {
	case SortName:
		return "name"
	case SortClicks:
		return "clicks"
	case SortBitrate:
		return "bitrate"
	default:
		return "votes"
	}
}

// APIOrder maps the sort to the radio-browser "order" parameter.
func (s StationSort) APIOrder() string {
	if s == SortClicks {
		return "clickcount"
	}
	return s.String()
}

func (s StationSort) Descending() bool {
	return s != SortName
}

// ParseSort accepts the four sort field names, case-insensitively.
func ParseSort(value string) (StationSort, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "name":
		return SortName, nil
	case "votes":
		return SortVotes, nil
	case "clicks":
		return SortClicks, nil
	case "bitrate":
		return SortBitrate, nil
	default:
		return SortVotes, &ParseError{Msg: "invalid sort '" + value + "' (expected name, votes, clicks, bitrate)"}
	}
}

// SortStations orders stations in place. Both catalog backends rely on this
// single function so their tie-break behavior cannot diverge.
func SortStations(stations []Station, by StationSort) {
	sort.SliceStable(stations, func(i, j int) bool {
		a, b := stations[i], stations[j]
		var less, equal bool
		switch by {
		case SortName:
			return nameLess(a, b)
		case SortClicks:
			less, equal = a.Clicks > b.Clicks, a.Clicks == b.Clicks
		case SortBitrate:
			less, equal = a.Bitrate > b.Bitrate, a.Bitrate == b.Bitrate
		default:
			less, equal = a.Votes > b.Votes, a.Votes == b.Votes
		}
		if equal {
			return nameLess(a, b)
		}
		return less
	})
}

func nameLess(a, b Station) bool {
	return strings.ToLower(a.Name) < strings.ToLower(b.Name)
}

// SearchQuery is built fresh for every catalog search.
type SearchQuery struct {
	Text    string
	Filters StationFilters
	Sort    StationSort
	Limit   int
}

const DefaultSearchLimit = 50

func NewSearchQuery(text string, filters StationFilters, sort StationSort) SearchQuery {
	return SearchQuery{Text: text, Filters: filters, Sort: sort, Limit: DefaultSearchLimit}
}
