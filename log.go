//go:build !ios && !android && (amd64 || arm64)

package ffview

import (
	"fmt"
	"strings"

	"github.com/obinnaokechukwu/ffview/avutil"
)

// LogLevel represents FFmpeg log levels.
type LogLevel int32

// Log level constants matching FFmpeg's AV_LOG_* values.
const (
	LogQuiet   LogLevel = -8 // Print no output
	LogPanic   LogLevel = 0  // Something went really wrong, crash
	LogFatal   LogLevel = 8  // Something went wrong, exit now
	LogError   LogLevel = 16 // Something went wrong, recovery possible
	LogWarning LogLevel = 24 // Something unexpected but recovery possible
	LogInfo    LogLevel = 32 // Standard information
	LogVerbose LogLevel = 40 // Detailed information
	LogDebug   LogLevel = 48 // Stuff for debugging
	LogTrace   LogLevel = 56 // Extremely verbose debugging
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch {
	case l <= LogQuiet:
		return "quiet"
	case l <= LogPanic:
		return "panic"
	case l <= LogFatal:
		return "fatal"
	case l <= LogError:
		return "error"
	case l <= LogWarning:
		return "warning"
	case l <= LogInfo:
		return "info"
	case l <= LogVerbose:
		return "verbose"
	case l <= LogDebug:
		return "debug"
	default:
		return "trace"
	}
}

// ParseLogLevel maps a level name ("quiet", "error", "warning", ...) to a LogLevel.
// "warn" is accepted as an alias of "warning".
func ParseLogLevel(name string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "quiet":
		return LogQuiet, nil
	case "panic":
		return LogPanic, nil
	case "fatal":
		return LogFatal, nil
	case "error":
		return LogError, nil
	case "warning", "warn":
		return LogWarning, nil
	case "info":
		return LogInfo, nil
	case "verbose":
		return LogVerbose, nil
	case "debug":
		return LogDebug, nil
	case "trace":
		return LogTrace, nil
	}
	return LogQuiet, fmt.Errorf("ffview: unknown FFmpeg log level %q", name)
}

// SetLogLevel sets how much FFmpeg itself prints to stderr.
func SetLogLevel(level LogLevel) error {
	if err := Init(); err != nil {
		return err
	}
	return avutil.SetLogLevel(int32(level))
}

// GetLogLevel returns FFmpeg's current log level.
func GetLogLevel() LogLevel {
	return LogLevel(avutil.GetLogLevel())
}
