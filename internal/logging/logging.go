package logging

import (
	"io"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var logLevelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
}

// Level parses a level name, falling back to warn for unknown names.
func Level(level string) zerolog.Level {
	if l, ok := logLevelMatches[strings.ToUpper(level)]; ok {
		return l
	}
	return zerolog.WarnLevel
}

// New returns a logger writing to w. Terminals get the human readable console
// format, anything else gets JSON lines.
func New(w io.Writer, level string) zerolog.Logger {
	if isTerminalAttached(w) {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "2006-01-02 15:04:05",
		}
	}
	return zerolog.New(w).Level(Level(level)).With().Timestamp().Logger()
}

func isTerminalAttached(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) && runtime.GOOS != "windows"
}
