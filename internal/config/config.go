// Package config provides configuration loading for the ffview command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for ffview.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Window   WindowConfig   `yaml:"window"`
	Playback PlaybackConfig `yaml:"playback"`
	Decoder  DecoderConfig  `yaml:"decoder"`
	Dump     DumpConfig     `yaml:"dump"`
}

// LogConfig sets application and FFmpeg verbosity.
type LogConfig struct {
	Level       string `yaml:"level"`        // debug, info, warn, error, disable
	FFmpegLevel string `yaml:"ffmpeg_level"` // quiet, error, warning, info, verbose, debug
}

// WindowConfig describes the playback window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Fit    bool   `yaml:"fit"`
}

// PlaybackConfig controls the render loop.
type PlaybackConfig struct {
	HoldLastFrame bool `yaml:"hold_last_frame"`
}

// DecoderConfig is passed to ffview.Open.
type DecoderConfig struct {
	SkipUnsupportedStreams bool   `yaml:"skip_unsupported_streams"`
	Format                 string `yaml:"format"`
}

// DumpConfig controls the dump command.
type DumpConfig struct {
	Format string `yaml:"format"` // png or bmp
	Width  int    `yaml:"width"`  // 0 keeps the source size
	Label  bool   `yaml:"label"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Log: LogConfig{
			Level:       "info",
			FFmpegLevel: "error",
		},
		Window: WindowConfig{
			Title:  "ffview",
			Width:  640,
			Height: 480,
			Fit:    true,
		},
		Playback: PlaybackConfig{
			HoldLastFrame: true,
		},
		Dump: DumpConfig{
			Format: "png",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path or a missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

var (
	logLevels    = []string{"debug", "info", "warn", "error", "fatal", "disable"}
	ffmpegLevels = []string{"quiet", "panic", "fatal", "error", "warning", "warn", "info", "verbose", "debug", "trace"}
	dumpFormats  = []string{"png", "bmp"}
)

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	var errs []error
	if !oneOf(c.Log.Level, logLevels) {
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	if !oneOf(c.Log.FFmpegLevel, ffmpegLevels) {
		errs = append(errs, fmt.Errorf("log.ffmpeg_level: unknown level %q", c.Log.FFmpegLevel))
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window: negative size %dx%d", c.Window.Width, c.Window.Height))
	}
	if !oneOf(c.Dump.Format, dumpFormats) {
		errs = append(errs, fmt.Errorf("dump.format: unsupported format %q", c.Dump.Format))
	}
	if c.Dump.Width < 0 {
		errs = append(errs, fmt.Errorf("dump.width: negative width %d", c.Dump.Width))
	}
	return errors.Join(errs...)
}

func oneOf(v string, set []string) bool {
	v = strings.ToLower(v)
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
