package main

import (
	"path/filepath"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/obinnaokechukwu/ffview"
	"github.com/obinnaokechukwu/ffview/display"
	"github.com/obinnaokechukwu/ffview/internal/config"
	"github.com/obinnaokechukwu/ffview/player"
)

func windowFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "title", Usage: l10n.T("Window title")},
		&cli.IntFlag{Name: "width", Usage: l10n.T("Window width in pixels")},
		&cli.IntFlag{Name: "height", Usage: l10n.T("Window height in pixels")},
		&cli.BoolFlag{Name: "fit", Usage: l10n.T("Scale frames to the window keeping aspect ratio")},
	}
}

func windowConfig(c *cli.Context, cfg config.WindowConfig) display.Config {
	if c.IsSet("title") {
		cfg.Title = c.String("title")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("fit") {
		cfg.Fit = c.Bool("fit")
	}
	return display.Config{Title: cfg.Title, Width: cfg.Width, Height: cfg.Height, Fit: cfg.Fit}
}

func playCommand() *cli.Command {
	flags := append(windowFlags(),
		&cli.BoolFlag{
			Name:  "exit-at-end",
			Usage: l10n.T("Close the window when the video ends"),
		},
	)
	return &cli.Command{
		Name:      "play",
		Usage:     l10n.T("Play the video stream of FILE in a window"),
		ArgsUsage: "FILE",
		Flags:     append(flags, decoderFlags()...),
		Action:    play,
	}
}

func play(c *cli.Context) error {
	path, err := requireFile(c)
	if err != nil {
		return err
	}
	cfg, err := setup(c)
	if err != nil {
		return err
	}

	src, err := ffview.Open(path, openOptions(c, cfg)...)
	if err != nil {
		return err
	}
	defer src.Close()

	wcfg := windowConfig(c, cfg.Window)
	if !c.IsSet("title") {
		wcfg.Title = filepath.Base(path)
	}
	win, err := display.Open(wcfg, src.Width(), src.Height())
	if err != nil {
		return err
	}
	defer win.Close()

	hold := cfg.Playback.HoldLastFrame && !c.Bool("exit-at-end")
	stats, err := player.Run(c.Context, src, win, player.Options{HoldLastFrame: hold})
	logger.Info(l10n.F("Played %d frames", stats.Frames))
	return err
}

// Pattern size when the window config leaves it to the frame size.
const (
	defaultPatternWidth  = 640
	defaultPatternHeight = 480
)

// patternSize picks the pattern's frame size from the window size. A zero
// window size means "use the frame size", which the pattern does not have.
func patternSize(cfg display.Config) (int, int) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return defaultPatternWidth, defaultPatternHeight
	}
	return cfg.Width, cfg.Height
}

func patternCommand() *cli.Command {
	return &cli.Command{
		Name:  "pattern",
		Usage: l10n.T("Show a generated test pattern"),
		Flags: windowFlags(),
		Action: func(c *cli.Context) error {
			cfg, err := setup(c)
			if err != nil {
				return err
			}

			wcfg := windowConfig(c, cfg.Window)
			w, h := patternSize(wcfg)
			src := player.NewPattern(w, h)
			win, err := display.Open(wcfg, src.Width(), src.Height())
			if err != nil {
				return err
			}
			defer win.Close()

			_, err = player.Run(c.Context, src, win, player.Options{})
			return err
		},
	}
}
