//go:build !ios && !android && (amd64 || arm64)

package ffview

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/obinnaokechukwu/ffview/avutil"
	"github.com/obinnaokechukwu/ffview/swscale"
)

// scaler converts decoded frames of any pixel format into packed RGB0 at the
// stream's coded size. The swscale context is built on the first frame and
// rebuilt only when the decoder changes its output format or size.
type scaler struct {
	width  int
	height int
	rgb0   avutil.PixelFormat

	ctx    swscale.Context
	srcFmt avutil.PixelFormat
	srcW   int
	srcH   int

	dst avutil.Frame // FFmpeg-owned RGB0 staging frame
}

func newScaler(width, height int) (*scaler, error) {
	// rgb0 moved around the pixel format enum between FFmpeg releases.
	rgb0 := avutil.PixelFormatByName("rgb0")
	if rgb0 == avutil.PixelFormatNone {
		return nil, errors.New("rgb0 pixel format not available")
	}
	return &scaler{width: width, height: height, rgb0: rgb0}, nil
}

func (sc *scaler) setup(src avutil.Frame) error {
	srcFmt := avutil.PixelFormat(avutil.GetFrameFormat(src))
	srcW := int(avutil.GetFrameWidth(src))
	srcH := int(avutil.GetFrameHeight(src))

	if sc.ctx != nil && srcFmt == sc.srcFmt && srcW == sc.srcW && srcH == sc.srcH {
		return nil
	}
	swscale.FreeContext(sc.ctx)
	sc.ctx = nil

	if !swscale.IsSupportedInput(srcFmt) {
		return fmt.Errorf("unsupported source pixel format %q", avutil.PixelFormatName(srcFmt))
	}
	sc.ctx = swscale.GetContext(srcW, srcH, srcFmt, sc.width, sc.height, sc.rgb0, swscale.FlagBilinear)
	if sc.ctx == nil {
		return fmt.Errorf("cannot convert %s %dx%d to rgb0 %dx%d",
			avutil.PixelFormatName(srcFmt), srcW, srcH, sc.width, sc.height)
	}
	sc.srcFmt, sc.srcW, sc.srcH = srcFmt, srcW, srcH

	if sc.dst == nil {
		sc.dst = avutil.FrameAlloc()
		if sc.dst == nil {
			return errors.New("cannot allocate rgb0 frame")
		}
		avutil.SetFrameWidth(sc.dst, int32(sc.width))
		avutil.SetFrameHeight(sc.dst, int32(sc.height))
		avutil.SetFrameFormat(sc.dst, int32(sc.rgb0))
		if err := avutil.FrameGetBuffer(sc.dst, 0); err != nil {
			avutil.FrameFree(&sc.dst)
			return err
		}
	}
	return nil
}

// convert writes src into buf as tightly packed rows of width*4 bytes.
func (sc *scaler) convert(src avutil.Frame, buf []byte) error {
	if err := sc.setup(src); err != nil {
		return err
	}
	if err := swscale.ScaleFrame(sc.ctx, sc.dst, src); err != nil {
		return err
	}

	data := avutil.GetFrameData(sc.dst)[0]
	linesize := int(avutil.GetFrameLinesize(sc.dst)[0])
	row := sc.width * BytesPerPixel
	for y := 0; y < sc.height; y++ {
		line := unsafe.Slice((*byte)(unsafe.Add(data, y*linesize)), row)
		copy(buf[y*row:(y+1)*row], line)
	}
	return nil
}

func (sc *scaler) release() {
	swscale.FreeContext(sc.ctx)
	sc.ctx = nil
	avutil.FrameFree(&sc.dst)
}
