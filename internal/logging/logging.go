// Package logging configures the debug logger.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w when debug is enabled,
// otherwise a disabled logger.
func New(w io.Writer, debug bool) zerolog.Logger {
	if !debug {
		return zerolog.Nop()
	}

	consoleWriter := zerolog.NewConsoleWriter()
	consoleWriter.Out = w
	consoleWriter.TimeFormat = time.DateTime

	return zerolog.New(consoleWriter).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}
