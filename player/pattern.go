package player

import "github.com/obinnaokechukwu/ffview"

// Pattern is a Source that never ends and always yields the same test card:
// red rises left to right, green rises top to bottom and blue forms an 8x8
// checkerboard. The padding byte is zero.
type Pattern struct {
	width  int
	height int
}

// NewPattern returns a width x height Pattern.
func NewPattern(width, height int) *Pattern {
	return &Pattern{width: width, height: height}
}

// Width returns the pattern width.
func (p *Pattern) Width() int { return p.width }

// Height returns the pattern height.
func (p *Pattern) Height() int { return p.height }

// ReadFrame paints the pattern into buf.
func (p *Pattern) ReadFrame(buf []byte) error {
	if len(buf) != p.width*p.height*ffview.BytesPerPixel {
		return ffview.ErrBufferSize
	}

	i := 0
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			buf[i] = ramp(x, p.width)
			buf[i+1] = ramp(y, p.height)
			if (x/8+y/8)%2 == 0 {
				buf[i+2] = 0xFF
			} else {
				buf[i+2] = 0
			}
			buf[i+3] = 0
			i += ffview.BytesPerPixel
		}
	}
	return nil
}

// ramp maps v in [0, n) onto [0, 255].
func ramp(v, n int) byte {
	if n <= 1 {
		return 0
	}
	return byte(v * 255 / (n - 1))
}
