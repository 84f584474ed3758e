// Package logging builds the zerolog logger shared by the alert store and
// the demo command.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a logger at the given level writing to path. Empty or unknown
// levels mean info. An empty path discards output, since the terminal belongs
// to the TUI. The returned closer releases the file.
func New(level, path string) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if path == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	logger := zerolog.New(f).Level(lvl).With().
		Timestamp().
		Str("component", "uikit").
		Logger()
	return logger, f, nil
}
