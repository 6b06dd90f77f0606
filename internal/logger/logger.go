// Package logger provides verbose logging for runoff.
// When verbose mode is enabled via the --verbose flag, load and derivation
// steps are printed to stderr so a user can see which rows were kept,
// rejected or collapsed.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	log               = build(os.Stderr, false)
)

// build returns a console logger writing to w. Quiet loggers are disabled.
func build(w io.Writer, v bool) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
		FormatLevel: func(i any) string {
			return "[" + strings.ToUpper(fmt.Sprint(i)) + "]"
		},
	}
	level := zerolog.Disabled
	if v {
		level = zerolog.DebugLevel
	}
	return zerolog.New(cw).Level(level)
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	log = build(output, v)
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	log = build(w, verbose)
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	l := current()
	l.Debug().Msgf(format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	l := current()
	l.Info().Msgf(format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	l := current()
	l.Warn().Msgf(format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	l := current()
	l.Info().Msg("=== " + name + " ===")
}

// Elapsed logs how long a step took. Use with defer:
//
//	defer logger.Elapsed("load expenditures", time.Now())
func Elapsed(step string, start time.Time) {
	l := current()
	d := time.Since(start).Round(time.Millisecond)
	l.Debug().Dur("took", d).Msgf("%s took %s", step, d)
}
