// Package snapshot writes presented frames to numbered image files. It is
// the headless counterpart of the display window.
package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/obinnaokechukwu/ffview/internal/logging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

var logger = logging.Child("[snapshot]")

// Supported output formats.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// Options tunes a Writer.
type Options struct {
	Format string // FormatPNG (default) or FormatBMP
	// Width scales every frame to this width keeping the aspect ratio.
	// Zero keeps the source size.
	Width int
	// Label stamps the frame number in the top-left corner.
	Label bool
}

// Writer is a player.Sink that saves each frame as dir/frame-NNNNNN.<ext>.
type Writer struct {
	dir    string
	width  int
	height int
	opts   Options
	count  int
}

// New prepares dir for width x height RGB0 frames.
func New(dir string, width, height int, opts Options) (*Writer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("snapshot: invalid frame size %dx%d", width, height)
	}
	opts.Format = strings.ToLower(opts.Format)
	switch opts.Format {
	case "":
		opts.Format = FormatPNG
	case FormatPNG, FormatBMP:
	default:
		return nil, fmt.Errorf("snapshot: unsupported format %q", opts.Format)
	}
	if opts.Width < 0 {
		return nil, fmt.Errorf("snapshot: negative width %d", opts.Width)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("snapshot: create output dir: %w", err)
	}
	return &Writer{dir: dir, width: width, height: height, opts: opts}, nil
}

// Path returns the file name used for frame n (zero based).
func (w *Writer) Path(n int) string {
	return filepath.Join(w.dir, fmt.Sprintf("frame-%06d.%s", n, w.opts.Format))
}

// Count returns the number of frames written so far.
func (w *Writer) Count() int { return w.count }

// Present encodes frame to the next file.
func (w *Writer) Present(frame []byte) error {
	img, err := toRGBA(frame, w.width, w.height)
	if err != nil {
		return err
	}
	if w.opts.Width > 0 && w.opts.Width != w.width {
		img = scale(img, w.opts.Width)
	}
	if w.opts.Label {
		stamp(img, w.count)
	}

	path := w.Path(w.count)
	if err := writeImage(path, img, w.opts.Format); err != nil {
		return err
	}
	logger.Debugf("wrote %s", path)
	w.count++
	return nil
}

// PollEvents always reports that playback may continue.
func (w *Writer) PollEvents(bool) bool { return true }

// Close is a no-op; every file is complete once Present returns.
func (w *Writer) Close() error { return nil }

// toRGBA copies an RGB0 frame into an opaque RGBA image.
func toRGBA(frame []byte, width, height int) (*image.RGBA, error) {
	if len(frame) != width*height*4 {
		return nil, fmt.Errorf("snapshot: got %d bytes, want %d", len(frame), width*height*4)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, frame)
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}
	return img, nil
}

func scale(src *image.RGBA, width int) *image.RGBA {
	b := src.Bounds()
	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// stamp draws the frame number on a dark box in the top-left corner.
func stamp(img *image.RGBA, n int) {
	dc := gg.NewContextForRGBA(img)
	label := fmt.Sprintf("%06d", n)
	tw, th := dc.MeasureString(label)

	dc.SetRGBA(0, 0, 0, 0.6)
	dc.DrawRectangle(0, 0, tw+8, th+8)
	dc.Fill()
	dc.SetRGB(1, 1, 1)
	dc.DrawString(label, 4, th+4)
}

func writeImage(path string, img image.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}

	switch format {
	case FormatBMP:
		err = bmp.Encode(f, img)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	return f.Close()
}
