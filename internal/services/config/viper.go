package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"airwave/internal/domain"
	"airwave/internal/logger"
	"airwave/internal/ports"
)

// ViperConfigService reads the config file (default
// $XDG_CONFIG_HOME/airwave/config.yml) and merges AIRWAVE_* environment
// overrides on top, e.g. AIRWAVE_PLAYBACK_MODE or AIRWAVE_CATALOG_BASE_URL.
type ViperConfigService struct {
	path string // explicit config file, empty for the default locations
}

func NewViperConfigService(path string) ports.ConfigService {
	return &ViperConfigService{path: path}
}

func (s *ViperConfigService) Load() (domain.Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")

	if s.path != "" {
		v.SetConfigFile(s.path)
	} else if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "airwave"))
		v.AddConfigPath(".")
	} else {
		logger.Log.Warn().Err(err).Msg("could not find user config directory, using current directory")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("AIRWAVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if s.path != "" || !errors.As(err, &notFound) {
			return domain.Config{}, fmt.Errorf("reading config: %w", err)
		}
		logger.Log.Info().Msg("no config file found, using defaults")
	}

	return buildConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("playback.mode", string(domain.PlaybackProcess))
	v.SetDefault("playback.program", "cvlc")
	v.SetDefault("playback.http_base", "http://127.0.0.1:8080")
	v.SetDefault("playback.http_password", "")
	v.SetDefault("playback.rc_host", "127.0.0.1")
	v.SetDefault("playback.rc_port", 4212)

	v.SetDefault("catalog.base_url", "https://de1.api.radio-browser.info")
	v.SetDefault("catalog.timeout_ms", 3000)
	v.SetDefault("catalog.retries", 2)
	v.SetDefault("catalog.limit", domain.DefaultSearchLimit)

	v.SetDefault("defaults.sort", "votes")
	v.SetDefault("defaults.filter_country", "")
	v.SetDefault("defaults.filter_language", "")
	v.SetDefault("defaults.filter_tag", "")
	v.SetDefault("defaults.filter_codec", "")
	v.SetDefault("defaults.filter_min_bitrate", 0)

	v.SetDefault("favorites.path", "")
}

func buildConfig(v *viper.Viper) (domain.Config, error) {
	mode, err := domain.ParsePlaybackMode(v.GetString("playback.mode"))
	if err != nil {
		return domain.Config{}, fmt.Errorf("playback.mode: %w", err)
	}
	sort, err := domain.ParseSort(v.GetString("defaults.sort"))
	if err != nil {
		return domain.Config{}, fmt.Errorf("defaults.sort: %w", err)
	}
	minBitrate := v.GetInt("defaults.filter_min_bitrate")
	if minBitrate < 0 {
		return domain.Config{}, fmt.Errorf("defaults.filter_min_bitrate must be ≥ 0 (got %d)", minBitrate)
	}

	favoritesPath := v.GetString("favorites.path")
	if favoritesPath == "" {
		favoritesPath, err = defaultFavoritesPath()
		if err != nil {
			return domain.Config{}, err
		}
	}

	return domain.Config{
		Playback: domain.PlaybackConfig{
			Mode:         mode,
			Program:      v.GetString("playback.program"),
			HTTPBase:     v.GetString("playback.http_base"),
			HTTPPassword: v.GetString("playback.http_password"),
			RCHost:       v.GetString("playback.rc_host"),
			RCPort:       v.GetInt("playback.rc_port"),
		},
		Catalog: domain.CatalogConfig{
			BaseURL: v.GetString("catalog.base_url"),
			Timeout: time.Duration(v.GetInt("catalog.timeout_ms")) * time.Millisecond,
			Retries: v.GetInt("catalog.retries"),
			Limit:   v.GetInt("catalog.limit"),
		},
		Defaults: domain.DefaultsConfig{
			Sort: sort,
			Filters: domain.StationFilters{
				Country:    v.GetString("defaults.filter_country"),
				Language:   v.GetString("defaults.filter_language"),
				Tag:        v.GetString("defaults.filter_tag"),
				Codec:      v.GetString("defaults.filter_codec"),
				MinBitrate: minBitrate,
			},
		},
		FavoritesPath: favoritesPath,
	}, nil
}

func defaultFavoritesPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate user config directory for favorites: %w", err)
	}
	return filepath.Join(configDir, "airwave", "favorites.json"), nil
}
