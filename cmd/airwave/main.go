package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"airwave/internal/app"
	"airwave/internal/domain"
	"airwave/internal/logger"
	"airwave/internal/ports"
	"airwave/internal/services/catalog"
	"airwave/internal/services/config"
	"airwave/internal/services/favorites"
	"airwave/internal/services/playback"
	"airwave/internal/ui"
)

var version = "0.4.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "airwave",
	Short: "Browse and play internet radio stations from the terminal",
	Long: `airwave is a terminal client for the radio-browser.info station
catalog. It drives a local or remote VLC instance for playback and keeps a
favorites list under your user config directory.`,
	// Startup errors are reported by us; cobra only needs to exit non-zero.
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(`{{printf "airwave version %s\n" .Version}}`)
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/airwave/config.yml)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewViperConfigService(cfgFile).Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	controller := buildController(cfg.Playback)
	// Shutdown must run on every exit path so no player process or
	// connection is orphaned, including panics unwinding through here.
	defer func() {
		if err := controller.Shutdown(); err != nil {
			logger.Log.Error().Err(err).Msg("playback shutdown on exit failed")
		}
	}()

	session, err := app.New(controller, favorites.NewStore(cfg.FavoritesPath), buildCatalog(cfg.Catalog),
		app.Defaults{Sort: cfg.Defaults.Sort, Filters: cfg.Defaults.Filters}, cfg.Catalog.Limit)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	return ui.Run(session)
}

func buildController(cfg domain.PlaybackConfig) ports.PlaybackController {
	switch cfg.Mode {
	case domain.PlaybackHTTP:
		return playback.NewHTTPController(cfg.HTTPBase, cfg.HTTPPassword)
	case domain.PlaybackRC:
		return playback.NewRCController(cfg.RCHost, cfg.RCPort)
	default:
		return playback.NewProcessController(cfg.Program)
	}
}

func buildCatalog(cfg domain.CatalogConfig) ports.StationCatalog {
	if cfg.BaseURL == "static" {
		return catalog.NewStatic(catalog.DefaultStations())
	}
	return catalog.NewRadioBrowser(catalog.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Retries: cfg.Retries,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
