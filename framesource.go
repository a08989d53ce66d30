//go:build !ios && !android && (amd64 || arm64)

package ffview

import (
	"errors"
	"fmt"

	"github.com/kataras/golog"
	"github.com/obinnaokechukwu/ffview/avcodec"
	"github.com/obinnaokechukwu/ffview/avformat"
	"github.com/obinnaokechukwu/ffview/avutil"
	"github.com/obinnaokechukwu/ffview/internal/logging"
)

// FrameSource decodes the first video stream of a media file into RGB0 frames.
//
// A FrameSource is not safe for concurrent use.
type FrameSource struct {
	log *golog.Logger

	formatCtx avformat.FormatContext
	codecCtx  avcodec.Context
	packet    avcodec.Packet
	frame     avutil.Frame
	scaler    *scaler

	stream      StreamInfo
	streamIndex int
	width       int
	height      int

	draining bool // container exhausted, decoder flushed
	eos      bool
	closed   bool
}

// Open opens path and prepares its first video stream for decoding.
//
// Streams are checked for a decoder in container order up to the first
// video stream. By default a stream without one ahead of it fails the whole
// Open with ErrDecoderNotFound; pass WithSkipUnsupportedStreams to ignore
// such streams instead. Streams after the video stream are not inspected.
func Open(path string, options ...Option) (*FrameSource, error) {
	opts := Options{}
	for _, opt := range options {
		opt(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Child("[ffview]")
	}

	if err := Init(); err != nil {
		return nil, err
	}

	s := &FrameSource{
		log:         opts.Logger,
		streamIndex: -1,
	}

	ok := false
	defer func() {
		if !ok {
			s.release()
		}
	}()

	var inputFormat avformat.InputFormat
	if opts.InputFormat != "" {
		inputFormat = avformat.FindInputFormat(opts.InputFormat)
		if inputFormat == nil {
			return nil, fmt.Errorf("%w: unknown input format %q", ErrOpen, opts.InputFormat)
		}
	}

	if err := avformat.OpenInput(&s.formatCtx, path, inputFormat); err != nil {
		return nil, wrap(ErrOpen, err)
	}
	if err := avformat.FindStreamInfo(s.formatCtx); err != nil {
		return nil, wrap(ErrOpen, err)
	}
	s.log.Debugf("opened %s (%s, %d streams)", path, avformat.GetFormatName(s.formatCtx), avformat.GetNumStreams(s.formatCtx))

	codec, err := s.selectStream(opts.SkipUnsupportedStreams)
	if err != nil {
		return nil, err
	}

	if err := s.openDecoder(codec); err != nil {
		return nil, err
	}

	s.scaler, err = newScaler(s.width, s.height)
	if err != nil {
		return nil, wrap(ErrDecoderInit, err)
	}

	s.packet = avcodec.PacketAlloc()
	s.frame = avutil.FrameAlloc()
	if s.packet == nil || s.frame == nil {
		return nil, fmt.Errorf("%w: cannot allocate packet or frame", ErrDecoderInit)
	}

	s.log.Infof("decoding stream %s", s.stream)
	ok = true
	return s, nil
}

// selectStream resolves decoders in container order and binds the first
// video stream that has one.
func (s *FrameSource) selectStream(skipUnsupported bool) (avcodec.Codec, error) {
	var chosen avcodec.Codec

	for i := 0; i < avformat.GetNumStreams(s.formatCtx) && chosen == nil; i++ {
		par := avformat.GetStreamCodecPar(avformat.GetStream(s.formatCtx, i))
		id := avformat.GetCodecParCodecID(par)
		kind := avformat.GetCodecParType(par)

		codec := avcodec.FindDecoder(id)
		if codec == nil {
			if !skipUnsupported {
				return nil, fmt.Errorf("%w: stream %d (%s, codec %q)", ErrDecoderNotFound, i, kind, avcodec.CodecName(id))
			}
			s.log.Debugf("skipping stream %d (%s): no decoder for %q", i, kind, avcodec.CodecName(id))
			continue
		}

		if kind == avutil.MediaTypeVideo {
			chosen = codec
			s.streamIndex = i
		}
	}

	if chosen == nil {
		return nil, ErrNoVideoStream
	}

	s.stream = streamInfo(s.formatCtx, s.streamIndex)
	if err := checkCodedSize(s.stream); err != nil {
		return nil, err
	}
	s.width = s.stream.Width
	s.height = s.stream.Height
	return chosen, nil
}

// checkCodedSize rejects streams whose parameters carry no usable frame size.
func checkCodedSize(info StreamInfo) error {
	if info.Width <= 0 || info.Height <= 0 {
		return fmt.Errorf("%w: stream %d has no coded size (%dx%d)", ErrDecoderInit, info.Index, info.Width, info.Height)
	}
	return nil
}

func (s *FrameSource) openDecoder(codec avcodec.Codec) error {
	s.codecCtx = avcodec.AllocContext3(codec)
	if s.codecCtx == nil {
		return fmt.Errorf("%w: cannot allocate codec context", ErrDecoderInit)
	}

	par := avformat.GetStreamCodecPar(avformat.GetStream(s.formatCtx, s.streamIndex))
	if err := avcodec.ParametersToContext(s.codecCtx, par); err != nil {
		return wrap(ErrDecoderInit, err)
	}
	if err := avcodec.Open2(s.codecCtx, codec); err != nil {
		return wrap(ErrDecoderInit, err)
	}
	return nil
}

// Width returns the coded width of the video stream.
func (s *FrameSource) Width() int { return s.width }

// Height returns the coded height of the video stream.
func (s *FrameSource) Height() int { return s.height }

// StreamIndex returns the container index of the decoded stream.
func (s *FrameSource) StreamIndex() int { return s.streamIndex }

// Stream describes the decoded stream.
func (s *FrameSource) Stream() StreamInfo { return s.stream }

// FrameSize returns the buffer size ReadFrame expects.
func (s *FrameSource) FrameSize() int {
	return s.width * s.height * BytesPerPixel
}

// ReadFrame decodes the next frame into buf, which must be exactly
// FrameSize() bytes. Every byte of buf is written on success.
//
// Once the container and the decoder are both exhausted ReadFrame returns
// ErrEndOfStream, on this and every later call.
func (s *FrameSource) ReadFrame(buf []byte) error {
	if s.closed {
		return ErrClosed
	}
	if len(buf) != s.FrameSize() {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSize, len(buf), s.FrameSize())
	}
	if s.eos {
		return ErrEndOfStream
	}

	for {
		// Drain before feeding: the decoder may still hold frames from the
		// previous packet.
		err := avcodec.ReceiveFrame(s.codecCtx, s.frame)
		switch {
		case err == nil:
			err = s.scaler.convert(s.frame, buf)
			avutil.FrameUnref(s.frame)
			if err != nil {
				return wrap(ErrDecode, err)
			}
			return nil
		case avutil.IsEOF(err):
			s.eos = true
			s.log.Debugf("stream %d: end of stream", s.streamIndex)
			return ErrEndOfStream
		case !avutil.IsAgain(err):
			return wrap(ErrDecode, err)
		case s.draining:
			// A flushed decoder never asks for more input.
			s.eos = true
			return ErrEndOfStream
		}

		if err := s.feed(); err != nil {
			return err
		}
	}
}

// feed submits the next packet of the selected stream, or starts draining
// the decoder when the container runs out.
func (s *FrameSource) feed() error {
	for {
		err := avformat.ReadFrame(s.formatCtx, s.packet)
		if avutil.IsEOF(err) {
			s.draining = true
			if err := avcodec.SendPacket(s.codecCtx, nil); err != nil {
				return wrap(ErrDecode, err)
			}
			return nil
		}
		if err != nil {
			return wrap(ErrDecode, err)
		}

		if int(avcodec.GetPacketStreamIndex(s.packet)) != s.streamIndex {
			avcodec.PacketUnref(s.packet)
			continue
		}

		err = avcodec.SendPacket(s.codecCtx, s.packet)
		avcodec.PacketUnref(s.packet)
		if err != nil {
			return wrap(ErrDecode, err)
		}
		return nil
	}
}

// Close releases every FFmpeg resource. It is safe to call more than once.
func (s *FrameSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.release()
	return nil
}

// release frees whatever has been acquired so far: scaler, container,
// decoder, packet, then frame. Used by Close and by the failure paths of
// Open.
func (s *FrameSource) release() {
	if s.scaler != nil {
		s.scaler.release()
		s.scaler = nil
	}
	if s.formatCtx != nil {
		avformat.CloseInput(&s.formatCtx)
	}
	if s.codecCtx != nil {
		avcodec.FreeContext(&s.codecCtx)
	}
	if s.packet != nil {
		avcodec.PacketFree(&s.packet)
	}
	if s.frame != nil {
		avutil.FrameFree(&s.frame)
	}
}

// IsEndOfStream reports whether err marks the benign end of a stream.
func IsEndOfStream(err error) bool {
	return errors.Is(err, ErrEndOfStream)
}
