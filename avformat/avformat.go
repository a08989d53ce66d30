//go:build !ios && !android && (amd64 || arm64)

// Package avformat provides the libavformat bindings for demuxing: opening
// containers, walking their streams and reading packets.
package avformat

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/ffview/avcodec"
	"github.com/obinnaokechukwu/ffview/avutil"
	"github.com/obinnaokechukwu/ffview/internal/bindings"
)

// FormatContext is an opaque FFmpeg AVFormatContext pointer.
type FormatContext = unsafe.Pointer

// InputFormat is an opaque FFmpeg AVInputFormat pointer.
type InputFormat = unsafe.Pointer

// Stream is an opaque FFmpeg AVStream pointer.
type Stream = unsafe.Pointer

// Function bindings
var (
	avformatOpenInput      func(ctx *unsafe.Pointer, url string, fmt, options unsafe.Pointer) int32
	avformatCloseInput     func(ctx *unsafe.Pointer)
	avformatFindStreamInfo func(ctx unsafe.Pointer, options unsafe.Pointer) int32
	avFindInputFormat      func(shortName string) unsafe.Pointer
	avReadFrame            func(ctx, pkt unsafe.Pointer) int32

	bindingsRegistered bool
)

func init() {
	registerBindings()
}

func registerBindings() {
	if bindingsRegistered {
		return
	}

	if err := bindings.Load(); err != nil {
		return
	}

	lib := bindings.LibAVFormat()
	if lib == 0 {
		return
	}

	purego.RegisterLibFunc(&avformatOpenInput, lib, "avformat_open_input")
	purego.RegisterLibFunc(&avformatCloseInput, lib, "avformat_close_input")
	purego.RegisterLibFunc(&avformatFindStreamInfo, lib, "avformat_find_stream_info")
	purego.RegisterLibFunc(&avFindInputFormat, lib, "av_find_input_format")
	purego.RegisterLibFunc(&avReadFrame, lib, "av_read_frame")

	bindingsRegistered = true
}

// OpenInput opens url and reads the container header. A nil format lets
// FFmpeg probe the input. On failure *ctx is left nil.
func OpenInput(ctx *FormatContext, url string, format InputFormat) error {
	if avformatOpenInput == nil {
		return bindings.ErrNotLoaded
	}
	ret := avformatOpenInput(ctx, url, format, nil)
	runtime.KeepAlive(url)
	if ret < 0 {
		return avutil.NewError(ret, "avformat_open_input")
	}
	return nil
}

// CloseInput closes an input opened with OpenInput and sets *ctx to nil.
func CloseInput(ctx *FormatContext) {
	if ctx == nil || *ctx == nil || avformatCloseInput == nil {
		return
	}
	avformatCloseInput(ctx)
	*ctx = nil
}

// FindStreamInfo reads packets to fill in stream parameters the header lacks.
func FindStreamInfo(ctx FormatContext) error {
	if avformatFindStreamInfo == nil {
		return bindings.ErrNotLoaded
	}
	ret := avformatFindStreamInfo(ctx, nil)
	if ret < 0 {
		return avutil.NewError(ret, "avformat_find_stream_info")
	}
	return nil
}

// FindInputFormat looks up a demuxer by short name ("mp4", "matroska", ...).
// Returns nil if no such demuxer is registered.
func FindInputFormat(name string) InputFormat {
	if avFindInputFormat == nil || name == "" {
		return nil
	}
	f := avFindInputFormat(name)
	runtime.KeepAlive(name)
	return f
}

// ReadFrame reads the next packet of any stream into pkt.
// End of input comes back as an *avutil.Error for which avutil.IsEOF is true.
func ReadFrame(ctx FormatContext, pkt avcodec.Packet) error {
	if avReadFrame == nil {
		return bindings.ErrNotLoaded
	}
	ret := avReadFrame(ctx, pkt)
	if ret < 0 {
		return avutil.NewError(ret, "av_read_frame")
	}
	return nil
}

// AVFormatContext field offsets (FFmpeg 6.x/7.x).
const (
	offsetFmtCtxIFormat   = 8  // const AVInputFormat *iformat
	offsetFmtCtxNbStreams = 44 // unsigned int nb_streams
	offsetFmtCtxStreams   = 48 // AVStream **streams
	offsetInputFormatName = 0  // const char *name
)

// GetNumStreams returns the number of streams in the container.
func GetNumStreams(ctx FormatContext) int {
	if ctx == nil {
		return 0
	}
	return int(*(*uint32)(unsafe.Add(ctx, offsetFmtCtxNbStreams)))
}

// GetStream returns stream i, or nil if out of range.
func GetStream(ctx FormatContext, i int) Stream {
	if ctx == nil || i < 0 || i >= GetNumStreams(ctx) {
		return nil
	}
	streams := *(*unsafe.Pointer)(unsafe.Add(ctx, offsetFmtCtxStreams))
	if streams == nil {
		return nil
	}
	return *(*unsafe.Pointer)(unsafe.Add(streams, uintptr(i)*unsafe.Sizeof(uintptr(0))))
}

// GetFormatName returns the short name of the demuxer that opened ctx.
func GetFormatName(ctx FormatContext) string {
	if ctx == nil {
		return ""
	}
	iformat := *(*unsafe.Pointer)(unsafe.Add(ctx, offsetFmtCtxIFormat))
	if iformat == nil {
		return ""
	}
	return goString(*(*unsafe.Pointer)(unsafe.Add(iformat, offsetInputFormatName)))
}

// AVStream field offsets (FFmpeg 6.x/7.x).
const (
	offsetStreamIndex        = 8  // int index
	offsetStreamCodecPar     = 16 // AVCodecParameters *codecpar
	offsetStreamTimeBase     = 32 // AVRational time_base
	offsetStreamNbFrames     = 56 // int64_t nb_frames
	offsetStreamAvgFrameRate = 88 // AVRational avg_frame_rate
)

// GetStreamIndex returns the stream's index in its container.
func GetStreamIndex(stream Stream) int32 {
	if stream == nil {
		return -1
	}
	return *(*int32)(unsafe.Add(stream, offsetStreamIndex))
}

// GetStreamCodecPar returns the stream's codec parameters.
func GetStreamCodecPar(stream Stream) avcodec.Parameters {
	if stream == nil {
		return nil
	}
	return *(*unsafe.Pointer)(unsafe.Add(stream, offsetStreamCodecPar))
}

// GetStreamTimeBase returns the unit of the stream's timestamps.
func GetStreamTimeBase(stream Stream) avutil.Rational {
	if stream == nil {
		return avutil.Rational{}
	}
	return *(*avutil.Rational)(unsafe.Add(stream, offsetStreamTimeBase))
}

// GetStreamAvgFrameRate returns the stream's average frame rate; zero if unknown.
func GetStreamAvgFrameRate(stream Stream) avutil.Rational {
	if stream == nil {
		return avutil.Rational{}
	}
	return *(*avutil.Rational)(unsafe.Add(stream, offsetStreamAvgFrameRate))
}

// GetStreamNbFrames returns the frame count the container declares, or 0.
func GetStreamNbFrames(stream Stream) int64 {
	if stream == nil {
		return 0
	}
	return *(*int64)(unsafe.Add(stream, offsetStreamNbFrames))
}

// AVCodecParameters field offsets.
const (
	offsetParCodecType = 0  // enum AVMediaType codec_type
	offsetParCodecID   = 4  // enum AVCodecID codec_id
	offsetParFormat    = 28 // int format
	offsetParWidth     = 56 // int width
	offsetParHeight    = 60 // int height
)

// GetCodecParType returns the media type of the stream.
func GetCodecParType(par avcodec.Parameters) avutil.MediaType {
	if par == nil {
		return avutil.MediaTypeUnknown
	}
	return avutil.MediaType(*(*int32)(unsafe.Add(par, offsetParCodecType)))
}

// GetCodecParCodecID returns the codec ID of the stream.
func GetCodecParCodecID(par avcodec.Parameters) avcodec.CodecID {
	if par == nil {
		return avcodec.CodecIDNone
	}
	return avcodec.CodecID(*(*int32)(unsafe.Add(par, offsetParCodecID)))
}

// GetCodecParFormat returns the pixel (video) or sample (audio) format.
func GetCodecParFormat(par avcodec.Parameters) int32 {
	if par == nil {
		return -1
	}
	return *(*int32)(unsafe.Add(par, offsetParFormat))
}

// GetCodecParWidth returns the coded width of a video stream.
func GetCodecParWidth(par avcodec.Parameters) int32 {
	if par == nil {
		return 0
	}
	return *(*int32)(unsafe.Add(par, offsetParWidth))
}

// GetCodecParHeight returns the coded height of a video stream.
func GetCodecParHeight(par avcodec.Parameters) int32 {
	if par == nil {
		return 0
	}
	return *(*int32)(unsafe.Add(par, offsetParHeight))
}

func goString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}
