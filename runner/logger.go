package runner

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NewLogger builds the run logger from the logging settings. Every entry
// carries the run id.
func NewLogger(config *Config, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	w := out
	if config.LogFormat == "text" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}
