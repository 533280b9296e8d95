package ports

// PlaybackState is the single source of truth for the playback controller.
// It only changes after the corresponding controller operation succeeds.
type PlaybackState int

const (
	StateStopped PlaybackState = iota
	StatePlaying
	StatePaused
)

func (s PlaybackState) String() string {
	switch s {
	case StatePlaying:
		return "PLAYING"
	case StatePaused:
		return "PAUSED"
	default:
		return "STOPPED"
	}
}

// PlaybackController commands the external media player over one of the
// interchangeable control channels (HTTP endpoint, TCP line protocol, or a
// child process pipe). Invalid transitions fail before any I/O is attempted.
type PlaybackController interface {
	Play(streamURL string) error
	SetVolume(percent int) error
	Stop() error
	Pause() error
	Resume() error
	Shutdown() error
	State() PlaybackState
}
