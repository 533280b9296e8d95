package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

var Log zerolog.Logger

// The TUI owns stdout, so logs go to a file under the user config dir.
func init() {
	var sink io.Writer = io.Discard

	if configDir, err := os.UserConfigDir(); err == nil {
		dir := filepath.Join(configDir, "airwave")
		if err := os.MkdirAll(dir, 0755); err == nil {
			logPath := filepath.Join(dir, "airwave.log")
			if file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
				sink = file
			}
		}
	}

	Log = zerolog.New(sink).With().Timestamp().Logger()
}
