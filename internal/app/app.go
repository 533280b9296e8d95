package app

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"airwave/internal/domain"
	"airwave/internal/logger"
	"airwave/internal/ports"
)

// Focus is the input surface currently receiving keystrokes.
type Focus int

const (
	FocusSearch Focus = iota
	FocusSlash
	FocusPalette
)

func (f Focus) String() string {
	switch f {
	case FocusSlash:
		return "Slash"
	case FocusPalette:
		return "Palette"
	default:
		return "Search"
	}
}

// ResultsSource is the list the selection index currently indexes into.
type ResultsSource int

const (
	SourceStations ResultsSource = iota
	SourceFavorites
)

type Defaults struct {
	Sort    domain.StationSort
	Filters domain.StationFilters
}

// App owns all mutable session state and dispatches commands to the playback
// controller, the station catalog, and the favorites store. Every action
// ends by writing StatusMessage. It is synchronous: one input event is fully
// processed before the next is accepted.
type App struct {
	Running       bool
	StatusMessage string
	SelectedIndex int
	Focus         Focus
	Source        ResultsSource
	SearchInput   string
	SlashInput    string
	PaletteInput  string
	PaletteCursor int

	focusBeforePalette Focus
	stations           []domain.Station
	favorites          []domain.Station
	filters            domain.StationFilters
	sort               domain.StationSort
	limit              int
	searchDirty        bool
	nowPlaying         *domain.Station
	paletteItems       []domain.PaletteItem

	playback ports.PlaybackController
	catalog  ports.StationCatalog
	favStore ports.FavoritesStore
}

// New loads favorites, runs the initial catalog search, and returns a ready
// session. A favorites load failure is a startup failure; an initial search
// failure only degrades the status line.
func New(playback ports.PlaybackController, favStore ports.FavoritesStore, catalog ports.StationCatalog, defaults Defaults, limit int) (*App, error) {
	favorites, err := favStore.Load()
	if err != nil {
		return nil, fmt.Errorf("load favorites on startup: %w", err)
	}
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}

	a := &App{
		Running:       true,
		StatusMessage: "Ready",
		favorites:     favorites,
		filters:       defaults.Filters,
		sort:          defaults.Sort,
		limit:         limit,
		paletteItems:  defaultPaletteItems(),
		playback:      playback,
		catalog:       catalog,
		favStore:      favStore,
	}

	if err := a.refreshStations(); err != nil {
		a.StatusMessage = fmt.Sprintf("Station discovery unavailable: %v", err)
	} else {
		a.StatusMessage = fmt.Sprintf("Loaded %d stations", len(a.stations))
	}
	return a, nil
}

// VisibleStations is the list the selection applies to: the last search
// result or the favorites collection.
func (a *App) VisibleStations() []domain.Station {
	if a.Source == SourceFavorites {
		return a.favorites
	}
	return a.stations
}

func (a *App) SelectedStation() *domain.Station {
	visible := a.VisibleStations()
	if a.SelectedIndex < 0 || a.SelectedIndex >= len(visible) {
		return nil
	}
	station := visible[a.SelectedIndex]
	return &station
}

func (a *App) NowPlaying() *domain.Station        { return a.nowPlaying }
func (a *App) PlaybackState() ports.PlaybackState { return a.playback.State() }
func (a *App) Sort() domain.StationSort           { return a.sort }
func (a *App) Filters() domain.StationFilters     { return a.filters }
func (a *App) Favorites() []domain.Station        { return a.favorites }
func (a *App) PaletteItems() []domain.PaletteItem { return a.paletteItems }

func (a *App) IsFavorite(station domain.Station) bool {
	for _, fav := range a.favorites {
		if fav.ID == station.ID {
			return true
		}
	}
	return false
}

// PaletteResults ranks the palette menu against the palette input.
func (a *App) PaletteResults() []domain.PaletteItem {
	return domain.FuzzyFilter(a.paletteItems, a.PaletteInput)
}

// SetInput replaces the buffer for the given focus. Edits to the search
// buffer mark it dirty so the next submit re-runs the search.
func (a *App) SetInput(focus Focus, value string) {
	switch focus {
	case FocusSearch:
		if value != a.SearchInput {
			a.searchDirty = true
		}
		a.SearchInput = value
	case FocusSlash:
		a.SlashInput = value
	case FocusPalette:
		if value != a.PaletteInput {
			a.PaletteCursor = 0
		}
		a.PaletteInput = value
	}
}

// ToggleFocus advances through the Search → Slash → Palette ring.
func (a *App) ToggleFocus() {
	switch a.Focus {
	case FocusSearch:
		a.setFocus(FocusSlash)
	case FocusSlash:
		a.setFocus(FocusPalette)
	default:
		a.setFocus(FocusSearch)
	}
}

func (a *App) ToggleFocusBackward() {
	switch a.Focus {
	case FocusSearch:
		a.setFocus(FocusPalette)
	case FocusSlash:
		a.setFocus(FocusSearch)
	default:
		a.setFocus(FocusSlash)
	}
}

// TogglePalette opens the palette, remembering the prior focus so closing
// restores it.
func (a *App) TogglePalette() {
	if a.Focus == FocusPalette {
		a.Focus = a.focusBeforePalette
		a.PaletteInput = ""
		a.PaletteCursor = 0
		a.StatusMessage = "Focus: " + a.Focus.String()
		return
	}
	a.focusBeforePalette = a.Focus
	a.Focus = FocusPalette
	a.PaletteCursor = 0
	a.StatusMessage = "Focus: Palette"
}

// CloseOverlays dismisses the palette, restoring the prior focus.
func (a *App) CloseOverlays() {
	if a.Focus != FocusPalette {
		return
	}
	a.Focus = a.focusBeforePalette
	a.PaletteInput = ""
	a.PaletteCursor = 0
	a.StatusMessage = "Focus: " + a.Focus.String()
}

// OpenSlashInput focuses the command line, seeding the leading slash.
func (a *App) OpenSlashInput() {
	if a.Focus == FocusPalette {
		a.CloseOverlays()
	}
	a.Focus = FocusSlash
	if a.SlashInput == "" {
		a.SlashInput = "/"
	}
}

// SelectNext moves the selection down, wrapping around. With the palette
// open it moves the palette cursor instead. No-op on an empty list.
func (a *App) SelectNext() {
	if a.Focus == FocusPalette {
		if n := len(a.PaletteResults()); n > 0 {
			a.PaletteCursor = (a.PaletteCursor + 1) % n
		}
		return
	}
	if n := len(a.VisibleStations()); n > 0 {
		a.SelectedIndex = (a.SelectedIndex + 1) % n
	}
}

func (a *App) SelectPrevious() {
	if a.Focus == FocusPalette {
		if n := len(a.PaletteResults()); n > 0 {
			a.PaletteCursor = (a.PaletteCursor - 1 + n) % n
		}
		return
	}
	if n := len(a.VisibleStations()); n > 0 {
		a.SelectedIndex = (a.SelectedIndex - 1 + n) % n
	}
}

// Submit processes the focused buffer. All recoverable errors are converted
// to a status message here; nothing past startup terminates the session.
func (a *App) Submit() {
	if err := a.submit(); err != nil {
		a.StatusMessage = "Error: " + err.Error()
	}
}

func (a *App) submit() error {
	switch a.Focus {
	case FocusSearch:
		if a.searchDirty {
			a.Source = SourceStations
			if err := a.refreshStations(); err != nil {
				return err
			}
			a.StatusMessage = fmt.Sprintf("Search refreshed (%d results, sort=%s)", len(a.stations), a.sort)
			return nil
		}
		// Unchanged search text: submit acts as "play selected".
		return a.Execute(domain.Command{Kind: domain.CmdPlay})
	case FocusSlash:
		input := a.SlashInput
		a.SlashInput = ""
		command, err := domain.ParseCommand(input)
		if err != nil {
			return err
		}
		return a.Execute(command)
	default:
		results := a.PaletteResults()
		if len(results) == 0 {
			return fmt.Errorf("no command matched palette input")
		}
		cursor := a.PaletteCursor
		if cursor < 0 || cursor >= len(results) {
			cursor = 0
		}
		selected := results[cursor]
		a.Focus = a.focusBeforePalette
		a.PaletteInput = ""
		a.PaletteCursor = 0
		return a.executePaletteAction(selected.Action)
	}
}

func (a *App) executePaletteAction(action string) error {
	switch action {
	case "play":
		return a.Execute(domain.Command{Kind: domain.CmdPlay})
	case "stop":
		return a.Execute(domain.Command{Kind: domain.CmdStop})
	case "pause":
		return a.Execute(domain.Command{Kind: domain.CmdPause})
	case "resume":
		return a.Execute(domain.Command{Kind: domain.CmdResume})
	case "favorite":
		return a.Execute(domain.Command{Kind: domain.CmdFavorite})
	case "unfavorite":
		return a.Execute(domain.Command{Kind: domain.CmdUnfavorite})
	case "favorites":
		return a.Execute(domain.Command{Kind: domain.CmdFavorites})
	case "clear-filters":
		return a.Execute(domain.Command{Kind: domain.CmdClearFilters})
	case "sort-name":
		return a.Execute(domain.Command{Kind: domain.CmdSort, Sort: domain.SortName})
	case "sort-votes":
		return a.Execute(domain.Command{Kind: domain.CmdSort, Sort: domain.SortVotes})
	case "sort-clicks":
		return a.Execute(domain.Command{Kind: domain.CmdSort, Sort: domain.SortClicks})
	case "sort-bitrate":
		return a.Execute(domain.Command{Kind: domain.CmdSort, Sort: domain.SortBitrate})
	case "copy-url":
		return a.CopySelectedURL()
	case "help":
		return a.Execute(domain.Command{Kind: domain.CmdHelp})
	case "quit":
		return a.Execute(domain.Command{Kind: domain.CmdQuit})
	default:
		return fmt.Errorf("unsupported palette action: %s", action)
	}
}

// Execute dispatches a parsed command. Controller failures become status
// messages; target resolution and persistence failures are returned and
// surfaced by Submit.
func (a *App) Execute(command domain.Command) error {
	switch command.Kind {
	case domain.CmdPlay:
		station, err := a.resolvePlayTarget(command.Target)
		if err != nil {
			return err
		}
		if err := a.playback.Play(station.StreamURL); err != nil {
			a.StatusMessage = fmt.Sprintf("Playback play failed: %v", err)
			return nil
		}
		a.nowPlaying = station
		a.StatusMessage = "Playing " + station.Name

	case domain.CmdStop:
		if err := a.playback.Stop(); err != nil {
			a.StatusMessage = fmt.Sprintf("Playback stop failed: %v", err)
			return nil
		}
		a.nowPlaying = nil
		a.StatusMessage = "Playback stopped"

	case domain.CmdPause:
		if err := a.playback.Pause(); err != nil {
			a.StatusMessage = fmt.Sprintf("Playback pause failed: %v", err)
			return nil
		}
		a.StatusMessage = "Playback paused"

	case domain.CmdResume:
		if err := a.playback.Resume(); err != nil {
			a.StatusMessage = fmt.Sprintf("Playback resume failed: %v", err)
			return nil
		}
		a.StatusMessage = "Playback resumed"

	case domain.CmdVolume:
		if err := a.playback.SetVolume(command.Volume); err != nil {
			a.StatusMessage = fmt.Sprintf("Volume change failed: %v", err)
			return nil
		}
		a.StatusMessage = fmt.Sprintf("Volume set to %d%%", command.Volume)

	case domain.CmdSearch:
		a.SearchInput = command.Text
		a.Source = SourceStations
		if err := a.refreshStations(); err != nil {
			return err
		}
		a.StatusMessage = fmt.Sprintf("Search applied (%d results)", len(a.stations))

	case domain.CmdFilter:
		a.filters = command.Filters
		a.Source = SourceStations
		if err := a.refreshStations(); err != nil {
			return err
		}
		a.StatusMessage = fmt.Sprintf("Filters applied (%d results)", len(a.stations))

	case domain.CmdClearFilters:
		a.filters = domain.StationFilters{}
		a.Source = SourceStations
		if err := a.refreshStations(); err != nil {
			return err
		}
		a.StatusMessage = fmt.Sprintf("Filters cleared (%d results)", len(a.stations))

	case domain.CmdSort:
		a.sort = command.Sort
		a.Source = SourceStations
		if err := a.refreshStations(); err != nil {
			return err
		}
		a.StatusMessage = fmt.Sprintf("Sort applied: %s (%d results)", a.sort, len(a.stations))

	case domain.CmdFavorites:
		a.Source = SourceFavorites
		a.clampSelection()
		a.StatusMessage = fmt.Sprintf("Showing %d favorites", len(a.favorites))

	case domain.CmdFavorite:
		station := a.SelectedStation()
		if station == nil {
			return fmt.Errorf("no station selected")
		}
		if !a.IsFavorite(*station) {
			a.favorites = append(a.favorites, *station)
			if err := a.favStore.Save(a.favorites); err != nil {
				return err
			}
		}
		a.StatusMessage = "Favorited " + station.Name

	case domain.CmdUnfavorite:
		station := a.SelectedStation()
		if station == nil {
			return fmt.Errorf("no station selected")
		}
		kept := a.favorites[:0]
		for _, fav := range a.favorites {
			if fav.ID != station.ID {
				kept = append(kept, fav)
			}
		}
		a.favorites = kept
		if err := a.favStore.Save(a.favorites); err != nil {
			return err
		}
		a.clampSelection()
		a.StatusMessage = "Unfavorited " + station.Name

	case domain.CmdQuit:
		err := a.playback.Shutdown()
		a.Running = false
		if err != nil {
			a.StatusMessage = fmt.Sprintf("Shutdown failed: %v", err)
			return nil
		}
		a.StatusMessage = "Goodbye"

	case domain.CmdHelp:
		a.StatusMessage = "Commands: /play /stop /pause /resume /volume /search /filter /clear-filters /sort /favorites /fav /unfav /quit"
	}

	return nil
}

// resolvePlayTarget picks a station from the currently visible list.
func (a *App) resolvePlayTarget(target domain.PlayTarget) (*domain.Station, error) {
	visible := a.VisibleStations()
	switch target.Kind {
	case domain.PlayIndex:
		if len(visible) == 0 {
			return nil, fmt.Errorf("station list is empty")
		}
		if target.Index < 1 || target.Index > len(visible) {
			return nil, fmt.Errorf("play index %d out of range (valid: 1-%d)", target.Index, len(visible))
		}
		station := visible[target.Index-1]
		return &station, nil
	case domain.PlayQuery:
		needle := strings.ToLower(target.Query)
		for _, station := range visible {
			if strings.Contains(strings.ToLower(station.Name), needle) {
				match := station
				return &match, nil
			}
		}
		return nil, fmt.Errorf("no station matching %q", target.Query)
	default:
		station := a.SelectedStation()
		if station == nil {
			return nil, fmt.Errorf("no station selected")
		}
		return station, nil
	}
}

// ToggleSelectedFavorite favorites the selected station, or unfavorites it
// if it already is one.
func (a *App) ToggleSelectedFavorite() error {
	station := a.SelectedStation()
	if station == nil {
		return fmt.Errorf("no station selected")
	}
	if a.IsFavorite(*station) {
		return a.Execute(domain.Command{Kind: domain.CmdUnfavorite})
	}
	return a.Execute(domain.Command{Kind: domain.CmdFavorite})
}

// PauseOrResume toggles between the playing and paused states.
func (a *App) PauseOrResume() error {
	switch a.playback.State() {
	case ports.StatePlaying:
		return a.Execute(domain.Command{Kind: domain.CmdPause})
	case ports.StatePaused:
		return a.Execute(domain.Command{Kind: domain.CmdResume})
	default:
		return fmt.Errorf("nothing is playing")
	}
}

func (a *App) StopPlayback() error {
	return a.Execute(domain.Command{Kind: domain.CmdStop})
}

func (a *App) RequestQuit() {
	if err := a.Execute(domain.Command{Kind: domain.CmdQuit}); err != nil {
		a.StatusMessage = "Error: " + err.Error()
	}
}

// CopySelectedURL puts the selected station's stream URL on the clipboard.
func (a *App) CopySelectedURL() error {
	station := a.SelectedStation()
	if station == nil {
		return fmt.Errorf("no station selected")
	}
	if err := clipboard.WriteAll(station.StreamURL); err != nil {
		return fmt.Errorf("copy stream URL: %w", err)
	}
	a.StatusMessage = "Copied stream URL for " + station.Name
	return nil
}

func (a *App) refreshStations() error {
	query := domain.SearchQuery{
		Text:    a.SearchInput,
		Filters: a.filters,
		Sort:    a.sort,
		Limit:   a.limit,
	}
	stations, err := a.catalog.Search(query)
	if err != nil {
		logger.Log.Warn().Err(err).Str("query", a.SearchInput).Msg("catalog search failed")
		return fmt.Errorf("search failed (query=%q, sort=%s): %w", a.SearchInput, a.sort, err)
	}

	a.stations = stations
	a.searchDirty = false
	if a.SelectedIndex >= len(a.VisibleStations()) {
		a.SelectedIndex = 0
	}
	return nil
}

func (a *App) clampSelection() {
	if n := len(a.VisibleStations()); a.SelectedIndex >= n {
		if n == 0 {
			a.SelectedIndex = 0
		} else {
			a.SelectedIndex = n - 1
		}
	}
}

func (a *App) setFocus(focus Focus) {
	a.Focus = focus
	if focus != FocusPalette {
		a.focusBeforePalette = focus
	}
	a.StatusMessage = "Focus: " + focus.String()
}

func defaultPaletteItems() []domain.PaletteItem {
	return []domain.PaletteItem{
		{Label: "Play selected station", Action: "play"},
		{Label: "Stop playback", Action: "stop"},
		{Label: "Pause playback", Action: "pause"},
		{Label: "Resume playback", Action: "resume"},
		{Label: "Favorite selected station", Action: "favorite"},
		{Label: "Unfavorite selected station", Action: "unfavorite"},
		{Label: "Show favorites", Action: "favorites"},
		{Label: "Clear filters", Action: "clear-filters"},
		{Label: "Sort by name", Action: "sort-name"},
		{Label: "Sort by votes", Action: "sort-votes"},
		{Label: "Sort by clicks", Action: "sort-clicks"},
		{Label: "Sort by bitrate", Action: "sort-bitrate"},
		{Label: "Copy stream URL", Action: "copy-url"},
		{Label: "Show help", Action: "help"},
		{Label: "Quit airwave", Action: "quit"},
	}
}
