package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paletteMenu() []PaletteItem {
	return []PaletteItem{
		{Label: "Play selected station", Action: "play"},
		{Label: "Pause playback", Action: "pause"},
		{Label: "Stop playback", Action: "stop"},
		{Label: "Quit airwave", Action: "quit"},
	}
}

func TestFuzzyFilterEmptyQueryReturnsOriginalOrder(t *testing.T) {
	items := paletteMenu()
	got := FuzzyFilter(items, "")
	assert.Equal(t, items, got)

	got = FuzzyFilter(items, "   ")
	assert.Equal(t, items, got)
}

func TestFuzzyFilterDropsNonMatches(t *testing.T) {
	got := FuzzyFilter(paletteMenu(), "playback")
	require.Len(t, got, 2)
	for _, item := range got {
		assert.Contains(t, item.Label, "playback")
	}
}

func TestFuzzyFilterRanksExactishMatchesFirst(t *testing.T) {
	got := FuzzyFilter(paletteMenu(), "quit")
	require.NotEmpty(t, got)
	assert.Equal(t, "quit", got[0].Action)
}

func TestFuzzyFilterIsCaseAndAccentInsensitive(t *testing.T) {
	items := []PaletteItem{{Label: "Música clásica", Action: "classical"}}
	got := FuzzyFilter(items, "musica")
	require.Len(t, got, 1)
	assert.Equal(t, "classical", got[0].Action)

	got = FuzzyFilter(items, "MUSICA")
	require.Len(t, got, 1)
}

func TestFuzzyFilterNoMatchesReturnsEmpty(t *testing.T) {
	got := FuzzyFilter(paletteMenu(), "zzzzzz")
	assert.Empty(t, got)
}

func TestFuzzyFilterDeterministic(t *testing.T) {
	first := FuzzyFilter(paletteMenu(), "pla")
	second := FuzzyFilter(paletteMenu(), "pla")
	assert.Equal(t, first, second)
}
