//go:build !ios && !android && (amd64 || arm64)

// Package avutil provides the libavutil bindings the frame pipeline relies on:
// frame allocation and field access, error strings, pixel format lookup and
// the global log level.
package avutil

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/ffview/internal/bindings"
)

// Frame is an opaque FFmpeg AVFrame pointer.
type Frame = unsafe.Pointer

// Function bindings - registered in init()
var (
	avFrameAlloc     func() unsafe.Pointer
	avFrameFree      func(frame *unsafe.Pointer)
	avFrameUnref     func(frame unsafe.Pointer)
	avFrameGetBuffer func(frame unsafe.Pointer, align int32) int32

	avMalloc func(size uintptr) unsafe.Pointer
	avFree   func(ptr unsafe.Pointer)

	avStrerror func(errnum int32, errbuf unsafe.Pointer, errbufSize uintptr) int32

	avGetPixFmt     func(name string) int32
	avGetPixFmtName func(pixFmt int32) string

	avLogSetLevel func(level int32)
	avLogGetLevel func() int32

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
		return // calls report ErrNotLoaded
	}

	lib := bindings.LibAVUtil()
	if lib == 0 {
		return
	}

	purego.RegisterLibFunc(&avFrameAlloc, lib, "av_frame_alloc")
	purego.RegisterLibFunc(&avFrameFree, lib, "av_frame_free")
	purego.RegisterLibFunc(&avFrameUnref, lib, "av_frame_unref")
	purego.RegisterLibFunc(&avFrameGetBuffer, lib, "av_frame_get_buffer")

	purego.RegisterLibFunc(&avMalloc, lib, "av_malloc")
	purego.RegisterLibFunc(&avFree, lib, "av_free")

	purego.RegisterLibFunc(&avStrerror, lib, "av_strerror")

	purego.RegisterLibFunc(&avGetPixFmt, lib, "av_get_pix_fmt")
	purego.RegisterLibFunc(&avGetPixFmtName, lib, "av_get_pix_fmt_name")

	purego.RegisterLibFunc(&avLogSetLevel, lib, "av_log_set_level")
	purego.RegisterLibFunc(&avLogGetLevel, lib, "av_log_get_level")

	bindingsRegistered = true
}

// FrameAlloc allocates an AVFrame. Free it with FrameFree.
func FrameAlloc() Frame {
	if avFrameAlloc == nil {
		return nil
	}
	return avFrameAlloc()
}

// FrameFree frees an AVFrame and sets the pointer to nil.
// Safe to call with a nil frame.
func FrameFree(frame *Frame) {
	if frame == nil || *frame == nil || avFrameFree == nil {
		return
	}
	avFrameFree(frame)
	*frame = nil
}

// FrameUnref drops every buffer referenced by frame and resets its fields.
func FrameUnref(frame Frame) {
	if frame == nil || avFrameUnref == nil {
		return
	}
	avFrameUnref(frame)
}

// FrameGetBuffer allocates data planes for a frame whose format, width and
// height are already set.
func FrameGetBuffer(frame Frame, align int32) error {
	if avFrameGetBuffer == nil {
		return bindings.ErrNotLoaded
	}
	if ret := avFrameGetBuffer(frame, align); ret < 0 {
		return NewError(ret, "av_frame_get_buffer")
	}
	return nil
}

// AVFrame struct field offsets (FFmpeg 6.x / avutil 58.x).
const (
	offsetData     = 0   // uint8_t *data[8]
	offsetLinesize = 64  // int linesize[8]
	offsetWidth    = 104 // int width
	offsetHeight   = 108 // int height
	offsetFormat   = 116 // int format
)

// GetFrameWidth returns the width of the frame.
func GetFrameWidth(frame Frame) int32 {
	if frame == nil {
		return 0
	}
	return *(*int32)(unsafe.Add(frame, offsetWidth))
}

// SetFrameWidth sets the width of the frame.
func SetFrameWidth(frame Frame, width int32) {
	if frame == nil {
		return
	}
	*(*int32)(unsafe.Add(frame, offsetWidth)) = width
}

// GetFrameHeight returns the height of the frame.
func GetFrameHeight(frame Frame) int32 {
	if frame == nil {
		return 0
	}
	return *(*int32)(unsafe.Add(frame, offsetHeight))
}

// SetFrameHeight sets the height of the frame.
func SetFrameHeight(frame Frame, height int32) {
	if frame == nil {
		return
	}
	*(*int32)(unsafe.Add(frame, offsetHeight)) = height
}

// GetFrameFormat returns the frame's pixel format as a raw enum value.
func GetFrameFormat(frame Frame) int32 {
	if frame == nil {
		return -1
	}
	return *(*int32)(unsafe.Add(frame, offsetFormat))
}

// SetFrameFormat sets the frame's pixel format.
func SetFrameFormat(frame Frame, format int32) {
	if frame == nil {
		return
	}
	*(*int32)(unsafe.Add(frame, offsetFormat)) = format
}

// GetFrameData returns pointers to all data planes.
func GetFrameData(frame Frame) [8]unsafe.Pointer {
	if frame == nil {
		return [8]unsafe.Pointer{}
	}
	return *(*[8]unsafe.Pointer)(unsafe.Add(frame, offsetData))
}

// GetFrameLinesize returns the line sizes for all planes.
func GetFrameLinesize(frame Frame) [8]int32 {
	if frame == nil {
		return [8]int32{}
	}
	return *(*[8]int32)(unsafe.Add(frame, offsetLinesize))
}

// Malloc allocates memory with FFmpeg's allocator.
func Malloc(size uintptr) unsafe.Pointer {
	if avMalloc == nil {
		return nil
	}
	return avMalloc(size)
}

// Free releases memory obtained from Malloc.
func Free(ptr unsafe.Pointer) {
	if ptr == nil || avFree == nil {
		return
	}
	avFree(ptr)
}

// ErrorString returns FFmpeg's description of an error code.
func ErrorString(errnum int32) string {
	if avStrerror == nil {
		return "unknown error (FFmpeg not loaded)"
	}

	buf := make([]byte, 256)
	avStrerror(errnum, unsafe.Pointer(&buf[0]), uintptr(len(buf)))
	runtime.KeepAlive(buf)

	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

// PixelFormatByName resolves an FFmpeg pixel format name such as "rgb0".
// Returns PixelFormatNone if the name is unknown.
func PixelFormatByName(name string) PixelFormat {
	if avGetPixFmt == nil {
		return PixelFormatNone
	}
	pf := avGetPixFmt(name)
	runtime.KeepAlive(name)
	return PixelFormat(pf)
}

// PixelFormatName returns FFmpeg's short name for a pixel format, or "" if unknown.
func PixelFormatName(pf PixelFormat) string {
	if avGetPixFmtName == nil || pf == PixelFormatNone {
		return ""
	}
	return avGetPixFmtName(int32(pf))
}

// SetLogLevel sets FFmpeg's global log level (AV_LOG_* value).
func SetLogLevel(level int32) error {
	if avLogSetLevel == nil {
		return bindings.ErrNotLoaded
	}
	avLogSetLevel(level)
	return nil
}

// GetLogLevel returns FFmpeg's global log level.
func GetLogLevel() int32 {
	if avLogGetLevel == nil {
		return 0
	}
	return avLogGetLevel()
}
