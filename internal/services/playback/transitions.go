package playback

import (
	"errors"
	"fmt"

	"airwave/internal/ports"
)

var (
	ErrAlreadyStopped = errors.New("playback is already stopped; start a stream first with /play")
	ErrNotPlaying     = errors.New("no stream is currently playing; start playback first")
	ErrNotPaused      = errors.New("playback is not paused; pause first or use /play")
)

// session holds the guarded playback state machine shared by every backend.
// Guard checks run before any I/O, so an invalid transition never reaches
// the player.
type session struct {
	state ports.PlaybackState
}

func (s *session) State() ports.PlaybackState { return s.state }

func (s *session) guardStop() error {
	if s.state == ports.StateStopped {
		return fmt.Errorf("cannot stop: %w", ErrAlreadyStopped)
	}
	return nil
}

func (s *session) guardPause() error {
	if s.state != ports.StatePlaying {
		return fmt.Errorf("cannot pause: %w", ErrNotPlaying)
	}
	return nil
}

func (s *session) guardResume() error {
	if s.state != ports.StatePaused {
		return fmt.Errorf("cannot resume: %w", ErrNotPaused)
	}
	return nil
}

// vlcVolume converts a 0-100 percentage to VLC's 0-512 scale, where 256 is
// nominal 100%.
func vlcVolume(percent int) int {
	return (percent*256 + 50) / 100
}

func validVolume(percent int) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("volume %d out of range (expected 0-100)", percent)
	}
	return nil
}
