package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/smokyabdulrahman/hijri-calendar/internal/display"
)

// setupLogging points the global zerolog logger at w. Terminals get the
// human-readable console format, everything else gets JSON lines.
func setupLogging(w io.Writer, level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)

	out := w
	if f, ok := w.(*os.File); ok && display.IsTerminal(f) {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.TimeOnly,
			NoColor:    !display.Enabled(),
		}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return nil
}
