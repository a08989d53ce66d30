package ffview

import (
	"errors"
	"fmt"
)

// Errors returned by Open and FrameSource. FFmpeg failures wrap both the
// sentinel and the underlying *avutil.Error, so errors.Is and errors.As both
// work on them.
var (
	// ErrNotLoaded indicates the FFmpeg shared libraries could not be loaded.
	ErrNotLoaded = errors.New("ffview: FFmpeg libraries not loaded")

	// ErrOpen indicates the container could not be opened or parsed.
	ErrOpen = errors.New("ffview: cannot open input")

	// ErrDecoderNotFound indicates a stream uses a codec with no decoder in
	// the loaded FFmpeg build.
	ErrDecoderNotFound = errors.New("ffview: decoder not found")

	// ErrNoVideoStream indicates the container has no decodable video stream.
	ErrNoVideoStream = errors.New("ffview: no video stream")

	// ErrDecoderInit indicates the decoder could not be set up.
	ErrDecoderInit = errors.New("ffview: decoder initialization failed")

	// ErrDecode indicates reading or decoding failed mid-stream.
	ErrDecode = errors.New("ffview: decode failed")

	// ErrEndOfStream is returned by ReadFrame once every frame has been delivered.
	ErrEndOfStream = errors.New("ffview: end of stream")

	// ErrBufferSize indicates the destination buffer is not Width*Height*4 bytes.
	ErrBufferSize = errors.New("ffview: wrong frame buffer size")

	// ErrClosed indicates the FrameSource has been closed.
	ErrClosed = errors.New("ffview: frame source is closed")
)

// wrap attaches cause to a sentinel. A nil cause yields the sentinel itself.
func wrap(kind, cause error) error {
	if cause == nil {
		return kind
	}
	return fmt.Errorf("%w: %w", kind, cause)
}
