package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/obinnaokechukwu/ffview"
	"github.com/obinnaokechukwu/ffview/internal/mp4probe"
)

func probeCommand() *cli.Command {
	return &cli.Command{
		Name:      "probe",
		Usage:     l10n.T("Describe the video stream of FILE"),
		ArgsUsage: "FILE",
		Flags:     decoderFlags(),
		Action:    probe,
	}
}

func probe(c *cli.Context) error {
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
	info := src.Stream()
	src.Close()

	w := c.App.Writer
	fmt.Fprintf(w, "%s: %s\n", l10n.T("Video stream"), info)
	fmt.Fprintf(w, "%s: %s\n", l10n.T("Time base"), info.TimeBase)

	// Container-level details are only available for MP4 files.
	mp4, err := mp4probe.Probe(path)
	if err != nil {
		logger.Debugf("not an MP4 file: %v", err)
		return nil
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TRACK\tHANDLER\tENTRY\tSIZE\tSAMPLES\tTIMESCALE")
	for _, t := range mp4.Tracks {
		size := "-"
		if t.Width > 0 {
			size = fmt.Sprintf("%dx%d", t.Width, t.Height)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\n", t.ID, t.Handler, t.SampleEntry, size, t.SampleCount, t.Timescale)
	}
	if mp4.Fragmented {
		fmt.Fprintln(tw, l10n.T("(fragmented)"))
	}
	return tw.Flush()
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "ffmpeg-version",
		Usage: l10n.T("Show the versions of the loaded FFmpeg libraries"),
		Action: func(c *cli.Context) error {
			if err := ffview.Init(); err != nil {
				return err
			}
			v := ffview.Version()
			w := c.App.Writer
			fmt.Fprintf(w, "libavutil   %s\n", ffview.FormatVersion(v.AVUtil))
			fmt.Fprintf(w, "libavcodec  %s\n", ffview.FormatVersion(v.AVCodec))
			fmt.Fprintf(w, "libavformat %s\n", ffview.FormatVersion(v.AVFormat))
			fmt.Fprintf(w, "libswscale  %s\n", ffview.FormatVersion(v.SWScale))
			return nil
		},
	}
}
