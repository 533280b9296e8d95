package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommandPlayTargets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  PlayTarget
	}{
		{"bare play selects", "/play", PlayTarget{Kind: PlaySelected}},
		{"explicit selected", "/play selected", PlayTarget{Kind: PlaySelected}},
		{"positive index", "/play 3", PlayTarget{Kind: PlayIndex, Index: 3}},
		{"text becomes query", "/play groove salad", PlayTarget{Kind: PlayQuery, Query: "groove salad"}},
		{"negative number is a query", "/play -2", PlayTarget{Kind: PlayQuery, Query: "-2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.input)
			require.NoError(t, err)
			assert.Equal(t, CmdPlay, cmd.Kind)
			assert.Equal(t, tt.want, cmd.Target)
		})
	}
}

func TestParseCommandPlayIndexZero(t *testing.T) {
	_, err := ParseCommand("/play 0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index must be ≥ 1")
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"missing marker", "play", "must start with '/'"},
		{"empty command", "/", "empty command"},
		{"unknown verb", "/dance", "unknown command: dance"},
		{"search without query", "/search", "usage: /search"},
		{"filter without args", "/filter", "usage: /filter"},
		{"filter bad shape", "/filter country", "key=value"},
		{"filter double equals", "/filter tag=a=b", "key=value"},
		{"filter empty value", "/filter country=", "needs a value"},
		{"filter unknown key", "/filter mood=calm", `unknown filter key "mood"`},
		{"filter bitrate not a number", "/filter min_bitrate=abc", "min_bitrate must be an integer"},
		{"filter bitrate negative", "/filter min_bitrate=-1", "min_bitrate must be an integer"},
		{"sort missing field", "/sort", "usage: /sort"},
		{"sort extra tokens", "/sort name votes", "usage: /sort"},
		{"sort unknown field", "/sort listeners", "invalid sort"},
		{"volume missing", "/volume", "usage: /volume"},
		{"volume extra tokens", "/volume 10 20", "single value"},
		{"volume not a number", "/volume loud", "must be an integer"},
		{"volume negative", "/volume -5", "cannot be negative"},
		{"volume above range", "/volume 101", "0 and 100"},
		{"stop with args", "/stop now", "takes no arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCommand(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParseCommandSuccesses(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"/stop", Command{Kind: CmdStop}},
		{"/pause", Command{Kind: CmdPause}},
		{"/resume", Command{Kind: CmdResume}},
		{"/search lofi beats", Command{Kind: CmdSearch, Text: "lofi beats"}},
		{"/clear-filters", Command{Kind: CmdClearFilters}},
		{"/sort BITRATE", Command{Kind: CmdSort, Sort: SortBitrate}},
		{"/favorites", Command{Kind: CmdFavorites}},
		{"/fav", Command{Kind: CmdFavorite}},
		{"/favorite", Command{Kind: CmdFavorite}},
		{"/unfav", Command{Kind: CmdUnfavorite}},
		{"/unfavorite", Command{Kind: CmdUnfavorite}},
		{"/volume 35", Command{Kind: CmdVolume, Volume: 35}},
		{"/volume 0", Command{Kind: CmdVolume, Volume: 0}},
		{"/volume 100", Command{Kind: CmdVolume, Volume: 100}},
		{"/quit", Command{Kind: CmdQuit}},
		{"/q", Command{Kind: CmdQuit}},
		{"/help", Command{Kind: CmdHelp}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, err := ParseCommand(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd)
		})
	}
}

func TestParseCommandFilterValues(t *testing.T) {
	cmd, err := ParseCommand("/filter country=US language=english tag=jazz codec=mp3 min_bitrate=192")
	require.NoError(t, err)
	assert.Equal(t, CmdFilter, cmd.Kind)
	assert.Equal(t, StationFilters{
		Country:    "US",
		Language:   "english",
		Tag:        "jazz",
		Codec:      "mp3",
		MinBitrate: 192,
	}, cmd.Filters)
}

func TestParseCommandIsIdempotent(t *testing.T) {
	for _, input := range []string{"/play 2", "/filter tag=jazz", "/volume 50", "/nonsense"} {
		first, firstErr := ParseCommand(input)
		second, secondErr := ParseCommand(input)
		assert.Equal(t, first, second)
		if firstErr == nil {
			assert.NoError(t, secondErr)
		} else {
			assert.EqualError(t, secondErr, firstErr.Error())
		}
	}
}
