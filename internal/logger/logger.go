// Package logger provides a configured zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

// Format selects the log encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// New returns a JSON logger on stdout for long-running services.
// Call sites should use .Stack() on error events to include stacks.
func New(serviceName string) zerolog.Logger {
	return NewWriter(serviceName, FormatJSON, os.Stdout)
}

// NewWriter returns a logger writing to w in the given format.
func NewWriter(serviceName string, format Format, w io.Writer) zerolog.Logger {
	installStackMarshalers()
	if format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}

// Setup builds a logger, applies the global level and installs it as log.Logger.
func Setup(serviceName, level string, format Format, w io.Writer) zerolog.Logger {
	zerolog.SetGlobalLevel(ParseLevel(level))
	l := NewWriter(serviceName, format, w)
	log.Logger = l
	return l
}

// ParseLevel maps debug|info|warn|error to a zerolog level; anything else is info.
func ParseLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// installStackMarshalers makes zerolog render github.com/pkg/errors stacks and
// attach one to plain errors logged with .Stack().
func installStackMarshalers() {
	type stackTracer interface{ StackTrace() pkgerrors.StackTrace }
	zerolog.ErrorStackMarshaler = func(err error) interface{} {
		if _, ok := err.(stackTracer); !ok {
			err = pkgerrors.WithStack(err)
		}
		return zpkgerrors.MarshalStack(err)
	}
}
