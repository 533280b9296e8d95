package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	App          lipgloss.Style
	Box          lipgloss.Style
	Title        lipgloss.Style
	ListNormal   lipgloss.Style
	ListSelected lipgloss.Style
	ListPointer  lipgloss.Style
	Favorite     lipgloss.Style
	NowPlaying   lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	Help         lipgloss.Style
	Dim          lipgloss.Style
}

func DefaultStyles() Styles {
	s := Styles{}
	s.App = lipgloss.NewStyle().Padding(0, 1)
	s.Box = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).Padding(0, 1)
	s.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	s.ListNormal = lipgloss.NewStyle()
	s.ListSelected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	s.ListPointer = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).SetString("> ")
	s.Favorite = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	s.NowPlaying = lipgloss.NewStyle().Foreground(lipgloss.Color("84"))
	s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	s.StatusError = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	s.Help = lipgloss.NewStyle().Faint(true)
	s.Dim = lipgloss.NewStyle().Faint(true)
	return s
}
