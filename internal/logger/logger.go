package logger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Logger provides structured logging tagged with the emitting component
type Logger interface {
	Info(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Debug(component string, message string, fields map[string]interface{})
}

// ParseLevel maps a configuration value onto a zerolog level.
func ParseLevel(value string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", value)
	}
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Info(component string, message string, fields map[string]interface{})    {}
func (NopLogger) Error(component string, err error, fields map[string]interface{})        {}
func (NopLogger) Warning(component string, message string, fields map[string]interface{}) {}
func (NopLogger) Debug(component string, message string, fields map[string]interface{})   {}

// Nop returns a logger that discards all output.
func Nop() Logger {
	return NopLogger{}
}
