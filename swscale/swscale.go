//go:build !ios && !android && (amd64 || arm64)

// Package swscale provides the libswscale bindings used to convert decoded
// frames into packed RGB.
package swscale

import (
	"errors"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/ffview/avutil"
	"github.com/obinnaokechukwu/ffview/internal/bindings"
)

// Context is an opaque SwsContext pointer.
type Context = unsafe.Pointer

// Scaling algorithm flags
const (
	FlagFastBilinear = 1    // Fast bilinear scaling
	FlagBilinear     = 2    // Bilinear scaling
	FlagBicubic      = 4    // Bicubic scaling
	FlagPoint        = 0x10 // Nearest neighbor (point sampling)
	FlagArea         = 0x20 // Area averaging
	FlagLanczos      = 0x200
)

// errNoContext is returned by ScaleFrame when called without a context.
var errNoContext = errors.New("swscale: nil context")

// Function bindings
var (
	swsGetContext     func(srcW, srcH, srcFormat, dstW, dstH, dstFormat, flags int32, srcFilter, dstFilter, param unsafe.Pointer) unsafe.Pointer
	swsScale          func(ctx, srcSlice, srcStride unsafe.Pointer, srcSliceY, srcSliceH int32, dst, dstStride unsafe.Pointer) int32
	swsFreeContext    func(ctx unsafe.Pointer)
	swsScaleFrame     func(ctx, dst, src unsafe.Pointer) int32
	swsIsSupportedIn  func(format int32) int32
	swsIsSupportedOut func(format int32) int32

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

	lib := bindings.LibSWScale()
	if lib == 0 {
		return
	}

	purego.RegisterLibFunc(&swsGetContext, lib, "sws_getContext")
	purego.RegisterLibFunc(&swsScale, lib, "sws_scale")
	purego.RegisterLibFunc(&swsFreeContext, lib, "sws_freeContext")
	purego.RegisterLibFunc(&swsIsSupportedIn, lib, "sws_isSupportedInput")
	purego.RegisterLibFunc(&swsIsSupportedOut, lib, "sws_isSupportedOutput")

	// sws_scale_frame arrived with FFmpeg 5.0
	bindings.RegisterOptional(&swsScaleFrame, lib, "sws_scale_frame")

	bindingsRegistered = true
}

// GetContext creates a context converting srcW x srcH frames in srcFormat
// to dstW x dstH frames in dstFormat. Returns nil if swscale rejects the
// combination.
func GetContext(srcW, srcH int, srcFormat avutil.PixelFormat, dstW, dstH int, dstFormat avutil.PixelFormat, flags int32) Context {
	if swsGetContext == nil {
		return nil
	}
	return swsGetContext(
		int32(srcW), int32(srcH), int32(srcFormat),
		int32(dstW), int32(dstH), int32(dstFormat),
		flags,
		nil, nil, nil,
	)
}

// FreeContext frees a scaling context.
// Safe to call with nil.
func FreeContext(ctx Context) {
	if ctx == nil || swsFreeContext == nil {
		return
	}
	swsFreeContext(ctx)
}

// ScaleFrame converts src into dst. dst must already carry buffers in the
// format and size the context was created for.
func ScaleFrame(ctx Context, dst, src avutil.Frame) error {
	if ctx == nil {
		return errNoContext
	}

	if swsScaleFrame != nil {
		if ret := swsScaleFrame(ctx, dst, src); ret < 0 {
			return avutil.NewError(ret, "sws_scale_frame")
		}
		return nil
	}

	if swsScale == nil {
		return bindings.ErrNotLoaded
	}

	// The plane arrays only hold FFmpeg-owned pointers.
	srcData := avutil.GetFrameData(src)
	srcLinesize := avutil.GetFrameLinesize(src)
	dstData := avutil.GetFrameData(dst)
	dstLinesize := avutil.GetFrameLinesize(dst)

	ret := swsScale(ctx,
		unsafe.Pointer(&srcData), unsafe.Pointer(&srcLinesize),
		0, avutil.GetFrameHeight(src),
		unsafe.Pointer(&dstData), unsafe.Pointer(&dstLinesize),
	)
	if ret < 0 {
		return avutil.NewError(ret, "sws_scale")
	}
	return nil
}

// IsSupportedInput returns true if the pixel format is supported as input.
func IsSupportedInput(format avutil.PixelFormat) bool {
	if swsIsSupportedIn == nil {
		return false
	}
	return swsIsSupportedIn(int32(format)) > 0
}

// IsSupportedOutput returns true if the pixel format is supported as output.
func IsSupportedOutput(format avutil.PixelFormat) bool {
	if swsIsSupportedOut == nil {
		return false
	}
	return swsIsSupportedOut(int32(format)) > 0
}
