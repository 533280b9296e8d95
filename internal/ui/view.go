package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"airwave/internal/app"
	"airwave/internal/domain"
)

func (m Model) View() string {
	if m.width < minWidth || m.height < minHeight {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			"Terminal too small for airwave")
	}

	innerWidth := m.width - m.styles.App.GetHorizontalFrameSize()
	contentWidth := innerWidth - m.styles.Box.GetHorizontalFrameSize()

	header := m.renderHeader(contentWidth)
	inputPanel := m.styles.Box.Width(innerWidth).Render(m.renderInput())
	statusBar := m.renderStatus(innerWidth)
	help := m.styles.Help.Width(innerWidth).Render(
		"tab focus · enter submit · ↑/↓ select · ctrl+p palette · ctrl+f fav · ctrl+y copy url · ctrl+s stop · ctrl+r pause/resume · ctrl+c quit")

	fixedRows := lipgloss.Height(header) + lipgloss.Height(inputPanel) + lipgloss.Height(statusBar) + lipgloss.Height(help)
	listHeight := m.height - m.styles.App.GetVerticalFrameSize() - fixedRows - m.styles.Box.GetVerticalFrameSize()
	if listHeight < 3 {
		listHeight = 3
	}

	var body string
	if m.app.Focus == app.FocusPalette {
		body = m.renderPalette(contentWidth, listHeight)
	} else {
		body = m.renderStationList(contentWidth, listHeight)
	}
	listPanel := m.styles.Box.Width(innerWidth).Height(listHeight).Render(body)

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		listPanel,
		inputPanel,
		statusBar,
		help,
	))
}

func (m Model) renderHeader(width int) string {
	title := m.styles.Title.Render("airwave")
	state := m.app.PlaybackState().String()
	if station := m.app.NowPlaying(); station != nil {
		state += " · " + m.styles.NowPlaying.Render("♪ "+station.Name)
	}
	gap := width - lipgloss.Width(title) - lipgloss.Width(state)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + state
}

func (m Model) renderStationList(width, height int) string {
	stations := m.app.VisibleStations()
	if len(stations) == 0 {
		if m.app.Source == app.SourceFavorites {
			return m.styles.Dim.Render("No favorites yet. Press ctrl+f on a station to add one.")
		}
		return m.styles.Dim.Render("No stations. Type a search and press enter.")
	}

	start, end := viewportRange(m.app.SelectedIndex, len(stations), height)
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, m.renderStationRow(i, stations[i], width))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderStationRow(index int, station domain.Station, width int) string {
	style := m.styles.ListNormal
	pointer := "  "
	if index == m.app.SelectedIndex {
		style = m.styles.ListSelected
		pointer = m.styles.ListPointer.String()
	}

	marker := "  "
	if m.app.IsFavorite(station) {
		marker = m.styles.Favorite.Render("★ ")
	}

	meta := stationMeta(station)
	line := fmt.Sprintf("%2d. %s", index+1, station.Name)
	avail := width - lipgloss.Width(pointer) - lipgloss.Width(marker)
	if meta != "" && avail > len(line)+len(meta)+3 {
		line += strings.Repeat(" ", avail-runewidth.StringWidth(line)-runewidth.StringWidth(meta)) + meta
	}
	line = runewidth.Truncate(line, avail, "…")

	return pointer + marker + style.Render(line)
}

func stationMeta(station domain.Station) string {
	var parts []string
	if station.Country != "" {
		parts = append(parts, station.Country)
	}
	if station.Codec != "" {
		parts = append(parts, station.Codec)
	}
	if station.Bitrate > 0 {
		parts = append(parts, fmt.Sprintf("%dk", station.Bitrate))
	}
	if station.Votes > 0 {
		parts = append(parts, fmt.Sprintf("%d votes", station.Votes))
	}
	return strings.Join(parts, " · ")
}

func (m Model) renderPalette(width, height int) string {
	rows := []string{m.paletteInput.View()}
	results := m.app.PaletteResults()
	if len(results) == 0 {
		rows = append(rows, m.styles.Dim.Render("no matching actions"))
	}
	for i, item := range results {
		if i >= height-1 {
			break
		}
		style := m.styles.ListNormal
		pointer := "  "
		if i == m.app.PaletteCursor {
			style = m.styles.ListSelected
			pointer = m.styles.ListPointer.String()
		}
		rows = append(rows, pointer+style.Render(runewidth.Truncate(item.Label, width-2, "…")))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderInput() string {
	if m.app.Focus == app.FocusSlash {
		return m.slashInput.View()
	}
	return m.searchInput.View()
}

func (m Model) renderStatus(width int) string {
	style := m.styles.Status
	if strings.HasPrefix(m.app.StatusMessage, "Error:") {
		style = m.styles.StatusError
	}

	source := "stations"
	if m.app.Source == app.SourceFavorites {
		source = "favorites"
	}
	right := fmt.Sprintf("focus=%s · list=%s · sort=%s · filters=%s",
		strings.ToLower(m.app.Focus.String()), source, m.app.Sort(), m.app.Filters())

	left := style.Render(runewidth.Truncate(m.app.StatusMessage, width-lipgloss.Width(right)-2, "…"))
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + m.styles.Dim.Render(right)
}

// viewportRange keeps the selected row visible inside a window of the given
// height.
func viewportRange(selected, total, height int) (start, end int) {
	if total <= height {
		return 0, total
	}
	start = selected - height/2
	if start < 0 {
		start = 0
	}
	end = start + height
	if end > total {
		end = total
		start = end - height
	}
	return start, end
}
