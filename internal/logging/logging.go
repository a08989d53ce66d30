// Package logging configures the process-wide golog logger the ffview
// packages log through.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/kataras/golog"
	"github.com/mattn/go-isatty"
)

// Time formats: a short clock on a terminal, full timestamps otherwise.
const (
	terminalTimeFormat = "15:04:05"
	fileTimeFormat     = "2006-01-02T15:04:05.000Z07:00"
)

var levels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"error":   true,
	"fatal":   true,
	"disable": true,
}

var (
	mu         sync.Mutex
	components = map[string]*golog.Logger{}
)

// Child returns the logger for a component, e.g. Child("[player]").
// golog children copy their parent's level when created, so loggers handed
// out here are kept and updated by every later Setup.
func Child(prefix string) *golog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := components[prefix]; ok {
		return l
	}
	l := golog.Child(prefix)
	components[prefix] = l
	return l
}

// Setup points golog.Default and every component logger at w with the
// given level.
func Setup(level string, w io.Writer) error {
	level = strings.ToLower(strings.TrimSpace(level))
	if !levels[level] {
		return fmt.Errorf("logging: unknown level %q", level)
	}

	timeFormat := fileTimeFormat
	if IsTerminal(w) {
		timeFormat = terminalTimeFormat
	}

	// Children share the default Printer, so output follows SetOutput.
	golog.SetOutput(w)
	golog.SetLevel(level)
	golog.SetTimeFormat(timeFormat)

	mu.Lock()
	defer mu.Unlock()
	for _, l := range components {
		l.SetLevel(level)
		l.SetTimeFormat(timeFormat)
	}
	return nil
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
