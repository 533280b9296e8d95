package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"airwave/internal/app"
)

const (
	minWidth  = 60
	minHeight = 14
)

// Model is the bubbletea shell around the orchestrator. All session state
// lives in *app.App; the model only holds the widgets and window geometry.
type Model struct {
	app           *app.App
	width, height int
	searchInput   textinput.Model
	slashInput    textinput.Model
	paletteInput  textinput.Model
	styles        Styles
}

func NewModel(a *app.App) Model {
	styles := DefaultStyles()

	search := textinput.New()
	search.Placeholder = "jazz, news, lofi..."
	search.Prompt = "Search: "
	search.CharLimit = 120
	search.Focus()

	slash := textinput.New()
	slash.Placeholder = "/play selected"
	slash.Prompt = "Command: "
	slash.CharLimit = 120

	palette := textinput.New()
	palette.Placeholder = "type to filter actions"
	palette.Prompt = "> "
	palette.CharLimit = 60

	return Model{
		app:          a,
		searchInput:  search,
		slashInput:   slash,
		paletteInput: palette,
		styles:       styles,
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.app.RequestQuit()
		return m, tea.Quit

	case "ctrl+p":
		m.app.TogglePalette()
		m.syncInputs()
		return m, nil

	case "esc":
		m.app.CloseOverlays()
		m.syncInputs()
		return m, nil

	case "tab":
		m.app.ToggleFocus()
		m.syncInputs()
		return m, nil

	case "shift+tab":
		m.app.ToggleFocusBackward()
		m.syncInputs()
		return m, nil

	case "up":
		m.app.SelectPrevious()
		return m, nil

	case "down":
		m.app.SelectNext()
		return m, nil

	case "enter":
		m.app.Submit()
		m.syncInputs()
		if !m.app.Running {
			return m, tea.Quit
		}
		return m, nil

	case "ctrl+f":
		m.reportErr(m.app.ToggleSelectedFavorite())
		return m, nil

	case "ctrl+y":
		m.reportErr(m.app.CopySelectedURL())
		return m, nil

	case "ctrl+s":
		m.reportErr(m.app.StopPlayback())
		return m, nil

	case "ctrl+r":
		m.reportErr(m.app.PauseOrResume())
		return m, nil

	case "/":
		if m.app.Focus == app.FocusSearch && m.app.SearchInput == "" {
			m.app.OpenSlashInput()
			m.syncInputs()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.app.Focus {
	case app.FocusSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.app.SetInput(app.FocusSearch, m.searchInput.Value())
	case app.FocusSlash:
		m.slashInput, cmd = m.slashInput.Update(msg)
		m.app.SetInput(app.FocusSlash, m.slashInput.Value())
	case app.FocusPalette:
		m.paletteInput, cmd = m.paletteInput.Update(msg)
		m.app.SetInput(app.FocusPalette, m.paletteInput.Value())
	}
	return m, cmd
}

// reportErr routes key-shortcut failures into the status line, the same
// place command failures land.
func (m *Model) reportErr(err error) {
	if err != nil {
		m.app.StatusMessage = "Error: " + err.Error()
	}
}

// syncInputs realigns widget contents and focus with the orchestrator after
// an action may have changed either.
func (m *Model) syncInputs() {
	m.searchInput.SetValue(m.app.SearchInput)
	m.slashInput.SetValue(m.app.SlashInput)
	m.paletteInput.SetValue(m.app.PaletteInput)

	m.searchInput.Blur()
	m.slashInput.Blur()
	m.paletteInput.Blur()
	switch m.app.Focus {
	case app.FocusSearch:
		m.searchInput.Focus()
		m.searchInput.CursorEnd()
	case app.FocusSlash:
		m.slashInput.Focus()
		m.slashInput.CursorEnd()
	case app.FocusPalette:
		m.paletteInput.Focus()
		m.paletteInput.CursorEnd()
	}
}

// Run drives the program until the user quits.
func Run(a *app.App) error {
	program := tea.NewProgram(NewModel(a), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("terminal ui failed: %w", err)
	}
	return nil
}
