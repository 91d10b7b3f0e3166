// Package logging configures the zerolog sink used across the seeder.
// Runs log a human-readable stream to stderr and a structured JSON stream
// to a log file; per-submission detail lives only in the file.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Options control sink construction.
type Options struct {
	// FilePath receives the JSON stream. Empty disables the file sink.
	FilePath string
	// Level is one of trace, debug, info, warn, error. Defaults to info.
	Level string
	// NoConsole suppresses the stderr console writer (used by tests).
	NoConsole bool
}

// New builds the run logger. A file sink that cannot be opened is a fatal
// setup error: the run must not start half-observed.
func New(opts Options) (zerolog.Logger, func(), error) {
	var writers []io.Writer
	closer := func() {}

	if !opts.NoConsole {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if opts.FilePath != "" {
		f, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closer, err
		}
		writers = append(writers, f)
		closer = func() { _ = f.Close() }
	}

	if len(writers) == 0 {
		return zerolog.Nop(), closer, nil
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(parseLevel(opts.Level)).
		With().Timestamp().Logger()
	return logger, closer, nil
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
