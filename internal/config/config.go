package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	LOG_LEVEL_ENV_VAR = "SUBSTRATE_LOG_LEVEL"

	DEFAULT_LOG_LEVEL = zerolog.InfoLevel
)

var (
	FORCE_COLOR           bool
	TRUECOLOR_COLORTERM   bool
	TERM_256COLOR_CAPABLE bool
	NO_COLOR              bool
	SHOULD_COLORIZE       bool

	// set if SHOULD_COLORIZE
	DARK_BACKGROUND = true

	LOG_LEVEL = DEFAULT_LOG_LEVEL
)

func init() {
	targetSpecificInit()

	LOG_LEVEL = ParseLogLevel(os.Getenv(LOG_LEVEL_ENV_VAR))
}

// ParseLogLevel parses a zerolog level name, an empty or invalid name results in DEFAULT_LOG_LEVEL.
func ParseLogLevel(s string) zerolog.Level {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return DEFAULT_LOG_LEVEL
	}

	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return DEFAULT_LOG_LEVEL
	}
	return level
}

func isTruthyEnvValue(s string) bool {
	return len(s) != 0 && s != "false" && s != "0"
}
