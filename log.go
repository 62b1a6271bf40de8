package teamcheck

import (
	"io"

	"github.com/hashicorp/logutils"
)

const DefaultLogLevel = "info"

var LogLevels = []logutils.LogLevel{"trace", "debug", "info", "warn", "error"}

func validLogLevel(level string) bool {
	for _, l := range LogLevels {
		if string(l) == level {
			return true
		}
	}
	return false
}

// NewLogFilter returns a writer for log.SetOutput that drops lines prefixed
// with a level lower than level.
func NewLogFilter(level string, w io.Writer) *logutils.LevelFilter {
	return &logutils.LevelFilter{
		Levels:   LogLevels,
		MinLevel: logutils.LogLevel(level),
		Writer:   w,
	}
}
