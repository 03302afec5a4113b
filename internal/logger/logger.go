// Package logger provides configured zerolog loggers for the chargify tools.
package logger

import (
	"io"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

var marshalOnce sync.Once

type stackTracer interface{ StackTrace() pkgerrors.StackTrace }

// configureErrorMarshalers makes zerolog render pkg/errors stacks, attaching
// one to plain errors when .Stack() is requested.
func configureErrorMarshalers() {
	marshalOnce.Do(func() {
		zerolog.ErrorStackMarshaler = func(err error) interface{} {
			if _, ok := err.(stackTracer); !ok {
				err = pkgerrors.WithStack(err)
			}
			return zpkgerrors.MarshalStack(err)
		}
	})
}

// New returns a JSON logger on w tagged with serviceName, for log shippers.
// Call sites should use .Stack() on error events to include stacks.
func New(w io.Writer, serviceName string, debug bool) zerolog.Logger {
	configureErrorMarshalers()
	return zerolog.New(w).Level(level(debug)).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}

// NewConsole returns a human-readable logger for command line use. Debug
// lowers the level to debug; otherwise only info and above are written.
func NewConsole(w io.Writer, debug bool) zerolog.Logger {
	configureErrorMarshalers()
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}).Level(level(debug)).With().Timestamp().Logger()
}

func level(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
