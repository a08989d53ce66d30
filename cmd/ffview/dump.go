package main

import (
	"fmt"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/obinnaokechukwu/ffview"
	"github.com/obinnaokechukwu/ffview/internal/snapshot"
	"github.com/obinnaokechukwu/ffview/player"
)

func dumpCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "out",
			Aliases:  []string{"o"},
			Usage:    l10n.T("Output directory"),
			Required: true,
		},
		&cli.StringFlag{Name: "image-format", Usage: l10n.T("Image format (png or bmp)")},
		&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Usage: l10n.T("Stop after N frames (0 = all)")},
		&cli.IntFlag{Name: "scale-width", Usage: l10n.T("Scale frames to this width")},
		&cli.BoolFlag{Name: "label", Usage: l10n.T("Stamp the frame number on each image")},
	}
	return &cli.Command{
		Name:      "dump",
		Usage:     l10n.T("Write the frames of FILE as images"),
		ArgsUsage: "FILE",
		Flags:     append(flags, decoderFlags()...),
		Action:    dump,
	}
}

func dump(c *cli.Context) error {
	path, err := requireFile(c)
	if err != nil {
		return err
	}
	cfg, err := setup(c)
	if err != nil {
		return err
	}
	if c.Int("limit") < 0 {
		return fmt.Errorf("%s: %d", l10n.T("Invalid frame limit"), c.Int("limit"))
	}

	opts := snapshot.Options{Format: cfg.Dump.Format, Width: cfg.Dump.Width, Label: cfg.Dump.Label}
	if c.IsSet("image-format") {
		opts.Format = c.String("image-format")
	}
	if c.IsSet("scale-width") {
		opts.Width = c.Int("scale-width")
	}
	if c.IsSet("label") {
		opts.Label = c.Bool("label")
	}

	src, err := ffview.Open(path, openOptions(c, cfg)...)
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := snapshot.New(c.String("out"), src.Width(), src.Height(), opts)
	if err != nil {
		return err
	}
	defer out.Close()

	stats, err := player.Run(c.Context, src, out, player.Options{MaxFrames: c.Int("limit")})
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, l10n.F("Wrote %d frames to %s", stats.Frames, c.String("out")))
	return nil
}
