package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the root logger every component derives from. Development gets
// the human console writer, everything else emits JSON lines.
func New(appName, environment string, development bool) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var l zerolog.Logger
	if development {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		l = zerolog.New(os.Stdout)
	}

	return l.With().
		Timestamp().
		Str("app", appName).
		Str("env", environment).
		Logger()
}
