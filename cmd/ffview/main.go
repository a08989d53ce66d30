// Command ffview plays, dumps and inspects the video stream of media files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/obinnaokechukwu/ffview"
	"github.com/obinnaokechukwu/ffview/internal/config"
	"github.com/obinnaokechukwu/ffview/internal/logging"
)

var version = "dev"

var logger = logging.Child("[ffview]")

func init() {
	// SDL wants every call on the thread that initialised it.
	runtime.LockOSThread()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "ffview",
		Usage:   l10n.T("Decode and display the video stream of a media file"),
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   l10n.T("YAML configuration file"),
				EnvVars: []string{"FFVIEW_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   l10n.T("Log level (debug, info, warn, error, disable)"),
			},
		},
		Commands: []*cli.Command{
			playCommand(),
			patternCommand(),
			dumpCommand(),
			probeCommand(),
			versionCommand(),
		},
	}
}

// setup loads the configuration, applies the global flags and configures
// logging for both the application and FFmpeg.
func setup(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", l10n.T("Invalid configuration"), err)
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if err := logging.Setup(cfg.Log.Level, os.Stderr); err != nil {
		return cfg, err
	}

	level, err := ffview.ParseLogLevel(cfg.Log.FFmpegLevel)
	if err != nil {
		return cfg, err
	}
	if err := ffview.SetLogLevel(level); err != nil {
		// Reported again, with context, by whatever needs FFmpeg.
		logger.Debugf("FFmpeg log level not applied: %v", err)
	}
	return cfg, nil
}

// requireFile returns the single FILE argument.
func requireFile(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("%s: ffview %s %s", l10n.T("Usage"), c.Command.Name, c.Command.ArgsUsage)
	}
	return c.Args().First(), nil
}

func openOptions(c *cli.Context, cfg config.Config) []ffview.Option {
	skip := cfg.Decoder.SkipUnsupportedStreams
	if c.IsSet("skip-unsupported") {
		skip = c.Bool("skip-unsupported")
	}
	format := cfg.Decoder.Format
	if c.IsSet("format") {
		format = c.String("format")
	}

	opts := []ffview.Option{ffview.WithLogger(logging.Child("[decoder]"))}
	if skip {
		opts = append(opts, ffview.WithSkipUnsupportedStreams())
	}
	if format != "" {
		opts = append(opts, ffview.WithInputFormat(format))
	}
	return opts
}

func decoderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "skip-unsupported",
			Usage: l10n.T("Ignore streams without a decoder instead of failing"),
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: l10n.T("Force the input container format (e.g. mp4, matroska)"),
		},
	}
}
