// Package envconfig reads numgo settings from environment variables.
package envconfig

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pppp606/numgo/internal/ndarray"
)

// DefaultDType returns the dtype used when a creation function is not given one.
// Configurable via NUMGO_DTYPE (default: float64).
func DefaultDType() ndarray.DataType {
	if s := Var("NUMGO_DTYPE"); s != "" {
		dt, err := ndarray.ParseDataType(s)
		if err != nil {
			slog.Warn("invalid environment variable, using default", "key", "NUMGO_DTYPE", "value", s, "default", ndarray.Float64)
			return ndarray.Float64
		}
		return dt
	}
	return ndarray.Float64
}

// Seed returns the seed for Random. Zero means a non-deterministic source.
// Configurable via NUMGO_SEED.
func Seed() int64 {
	if s := Var("NUMGO_SEED"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			slog.Warn("invalid environment variable, using default", "key", "NUMGO_SEED", "value", s, "default", 0)
			return 0
		}
		return n
	}
	return 0
}

// Debug reports whether NUMGO_DEBUG is set to a true value.
func Debug() bool {
	b, _ := strconv.ParseBool(Var("NUMGO_DEBUG"))
	return b
}

// LogLevel returns the log level: debug when NUMGO_DEBUG is set, info otherwise.
func LogLevel() slog.Level {
	if Debug() {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Var returns an environment variable stripped of whitespace and quotes.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// EnvVar describes one configuration variable.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every configuration variable with its current value.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"NUMGO_DTYPE": {"NUMGO_DTYPE", DefaultDType(), "Default dtype for new arrays (default: float64)"},
		"NUMGO_SEED":  {"NUMGO_SEED", Seed(), "Seed for random arrays (default: 0, non-deterministic)"},
		"NUMGO_DEBUG": {"NUMGO_DEBUG", LogLevel(), "Show additional debug information (e.g. NUMGO_DEBUG=1)"},
	}
}
