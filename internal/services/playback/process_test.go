package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airwave/internal/ports"
)

func TestProcessControllerMissingBinaryIsActionable(t *testing.T) {
	c := NewProcessController("definitely-not-a-player-binary")

	err := c.Play("https://example.com/radio.mp3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found on PATH")
	assert.Contains(t, err.Error(), "install VLC")
	assert.Equal(t, ports.StateStopped, c.State())
}

func TestProcessControllerShutdownWithoutProcessIsNoop(t *testing.T) {
	c := NewProcessController("")
	require.NoError(t, c.Shutdown())
	require.NoError(t, c.Shutdown())
	assert.Equal(t, ports.StateStopped, c.State())
}

func TestProcessControllerCommandsRequireRunningProcess(t *testing.T) {
	c := NewProcessController("")
	c.state = ports.StatePlaying

	err := c.Pause()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not running")
}

func TestValidateStreamURL(t *testing.T) {
	require.NoError(t, validateStreamURL("https://example.com/radio.mp3"))

	tests := map[string]string{
		"embedded newline":       "https://a\nstop",
		"carriage return":        "https://a\rb",
		"leading whitespace":     " https://example.com",
		"trailing whitespace":    "https://example.com ",
		"embedded control bytes": "https://a\x00b",
	}
	for name, url := range tests {
		t.Run(name, func(t *testing.T) {
			err := validateStreamURL(url)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid stream URL characters detected")
		})
	}
}

func TestProcessControllerPlayValidatesBeforeSpawning(t *testing.T) {
	c := NewProcessController("definitely-not-a-player-binary")

	err := c.Play("https://a\nquit")
	require.Error(t, err)
	// Validation failure, not a spawn failure: the binary was never looked up.
	assert.NotContains(t, err.Error(), "not found on PATH")
	assert.Equal(t, ports.StateStopped, c.State())
}
