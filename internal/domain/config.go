package domain

import (
	"fmt"
	"strings"
	"time"
)

// PlaybackMode selects which control channel drives the external player.
type PlaybackMode string

const (
	PlaybackProcess PlaybackMode = "process"
	PlaybackRC      PlaybackMode = "rc"
	PlaybackHTTP    PlaybackMode = "http"
)

func ParsePlaybackMode(value string) (PlaybackMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "process":
		return PlaybackProcess, nil
	case "rc":
		return PlaybackRC, nil
	case "http":
		return PlaybackHTTP, nil
	default:
		return "", fmt.Errorf("invalid playback mode %q (expected process, rc or http)", value)
	}
}

// Config is built once at startup from the config file merged with AIRWAVE_*
// environment overrides, then passed into constructors. Core logic never
// reads the environment directly.
type Config struct {
	Playback      PlaybackConfig
	Catalog       CatalogConfig
	Defaults      DefaultsConfig
	FavoritesPath string
}

type PlaybackConfig struct {
	Mode         PlaybackMode
	Program      string // process mode: player binary
	HTTPBase     string
	HTTPPassword string
	RCHost       string
	RCPort       int
}

type CatalogConfig struct {
	BaseURL string
	Timeout time.Duration
	Retries int
	Limit   int
}

type DefaultsConfig struct {
	Sort    StationSort
	Filters StationFilters
}
