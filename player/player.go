// Package player drives a frame source into a presentation sink, one decoded
// frame per redraw.
package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/obinnaokechukwu/ffview"
	"github.com/obinnaokechukwu/ffview/internal/logging"
)

var logger = logging.Child("[player]")

// Source produces RGB0 frames of a fixed size. *ffview.FrameSource implements it.
type Source interface {
	Width() int
	Height() int
	ReadFrame(buf []byte) error
}

// Sink shows frames.
type Sink interface {
	// Present displays one Width*Height*4 byte RGB0 frame.
	Present(frame []byte) error
	// PollEvents processes pending input, blocking for the next event when
	// wait is true. It returns false once the user asked to quit.
	PollEvents(wait bool) bool
	Close() error
}

// Options tunes Run.
type Options struct {
	// HoldLastFrame keeps the final frame on screen after the source ends,
	// until the user quits. Otherwise Run returns at end of stream.
	HoldLastFrame bool
	// MaxFrames stops reading after this many frames. Zero means no limit.
	MaxFrames int
}

// Stats summarises a Run.
type Stats struct {
	Frames int
}

// Run reads frames from src and presents them on sink until the source
// ends, the user quits or ctx is cancelled. End of stream and user quit are
// not errors. Run does not close the sink.
func Run(ctx context.Context, src Source, sink Sink, opts Options) (Stats, error) {
	var stats Stats

	w, h := src.Width(), src.Height()
	if w <= 0 || h <= 0 {
		return stats, fmt.Errorf("player: invalid frame size %dx%d", w, h)
	}
	buf := make([]byte, w*h*ffview.BytesPerPixel)

	for {
		if err := ctx.Err(); err != nil {
			logger.Debugf("stopped after %d frames: %v", stats.Frames, err)
			return stats, nil
		}
		if !sink.PollEvents(false) {
			logger.Debugf("quit after %d frames", stats.Frames)
			return stats, nil
		}
		if opts.MaxFrames > 0 && stats.Frames >= opts.MaxFrames {
			break
		}

		err := src.ReadFrame(buf)
		if errors.Is(err, ffview.ErrEndOfStream) {
			break
		}
		if err != nil {
			return stats, err
		}
		if err := sink.Present(buf); err != nil {
			return stats, fmt.Errorf("player: present frame %d: %w", stats.Frames, err)
		}
		stats.Frames++
	}

	logger.Infof("source finished after %d frames", stats.Frames)
	if !opts.HoldLastFrame {
		return stats, nil
	}

	// Keep the window responsive without spinning until the user closes it.
	for ctx.Err() == nil {
		if !sink.PollEvents(true) {
			break
		}
	}
	return stats, nil
}
