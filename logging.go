package chargify

import (
	"strings"

	"github.com/rs/zerolog"
)

// restyLogger routes resty's internal messages to zerolog.
type restyLogger struct{ l zerolog.Logger }

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.l.Error().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.l.Warn().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.l.Debug().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}
