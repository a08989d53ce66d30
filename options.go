//go:build !ios && !android && (amd64 || arm64)

package ffview

import "github.com/kataras/golog"

// Options configures Open.
type Options struct {
	// SkipUnsupportedStreams ignores streams ahead of the video stream whose
	// codec has no decoder instead of failing with ErrDecoderNotFound.
	SkipUnsupportedStreams bool

	// InputFormat forces a demuxer by short name ("mp4", "matroska", ...).
	// Empty lets FFmpeg probe the input.
	InputFormat string

	// Logger receives pipeline diagnostics. Defaults to a child of golog.Default.
	Logger *golog.Logger
}

// Option is a functional option for Open.
type Option func(*Options)

// WithSkipUnsupportedStreams makes Open skip streams that have no decoder.
func WithSkipUnsupportedStreams() Option {
	return func(o *Options) {
		o.SkipUnsupportedStreams = true
	}
}

// WithInputFormat forces the demuxer used to open the input.
func WithInputFormat(name string) Option {
	return func(o *Options) {
		o.InputFormat = name
	}
}

// WithLogger sets the logger used by the FrameSource.
func WithLogger(l *golog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
