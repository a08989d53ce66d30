//go:build !ios && !android && (amd64 || arm64)

package ffview

import (
	"fmt"

	"github.com/obinnaokechukwu/ffview/avcodec"
	"github.com/obinnaokechukwu/ffview/avformat"
	"github.com/obinnaokechukwu/ffview/avutil"
)

// StreamInfo describes the video stream a FrameSource decodes.
type StreamInfo struct {
	Index       int
	CodecID     avcodec.CodecID
	CodecName   string
	Width       int
	Height      int
	PixelFormat string          // FFmpeg name of the coded pixel format
	TimeBase    avutil.Rational // Unit of packet timestamps
	FrameRate   avutil.Rational // Average frame rate; zero if unknown
	Frames      int64           // Declared by the container; 0 if unknown
}

// String renders a one-line summary such as "#0 h264 320x240 yuv420p 30.00fps".
func (s StreamInfo) String() string {
	out := fmt.Sprintf("#%d %s %dx%d", s.Index, s.CodecName, s.Width, s.Height)
	if s.PixelFormat != "" {
		out += " " + s.PixelFormat
	}
	if !s.FrameRate.IsZero() {
		out += fmt.Sprintf(" %.2ffps", s.FrameRate.Float64())
	}
	if s.Frames > 0 {
		out += fmt.Sprintf(" %d frames", s.Frames)
	}
	return out
}

// streamInfo reads the parameters of stream i in fmtCtx.
func streamInfo(fmtCtx avformat.FormatContext, i int) StreamInfo {
	stream := avformat.GetStream(fmtCtx, i)
	par := avformat.GetStreamCodecPar(stream)
	id := avformat.GetCodecParCodecID(par)

	return StreamInfo{
		Index:       i,
		CodecID:     id,
		CodecName:   avcodec.CodecName(id),
		Width:       int(avformat.GetCodecParWidth(par)),
		Height:      int(avformat.GetCodecParHeight(par)),
		PixelFormat: avutil.PixelFormatName(avutil.PixelFormat(avformat.GetCodecParFormat(par))),
		TimeBase:    avformat.GetStreamTimeBase(stream),
		FrameRate:   avformat.GetStreamAvgFrameRate(stream),
		Frames:      avformat.GetStreamNbFrames(stream),
	}
}
