// Package logging sets up the debug logger. The game draws to the
// terminal, so log output goes to a file instead of stderr; when no
// log file is configured every call is a no-op.
package logging

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Open returns a logger writing to path. An empty path disables
// logging entirely. The returned closer is nil when logging is
// disabled.
func Open(path string) (zerolog.Logger, func() error, error) {
	if path == "" {
		return zerolog.Nop(), nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, f.Close, nil
}
