package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DebugEnabled returns true if debug output was requested via WH_DEBUG or
// the global level is debug or lower.
func DebugEnabled() bool {
	return os.Getenv("WH_DEBUG") != "" || zerolog.GlobalLevel() <= zerolog.DebugLevel
}

// Debugf logs a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...any) {
	if DebugEnabled() {
		log.Logger.Log().Str(zerolog.LevelFieldName, "debug").Msgf(format, args...)
	}
}

// Debugln logs its arguments as one debug message only if debug mode is enabled
func Debugln(args ...any) {
	if DebugEnabled() {
		log.Logger.Log().Str(zerolog.LevelFieldName, "debug").Msg(sprintln(args...))
	}
}
