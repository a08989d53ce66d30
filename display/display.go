// Package display shows RGB0 frames in an SDL2 window through a streaming
// texture. SDL must be driven from the main OS thread; callers lock it with
// runtime.LockOSThread before Open.
package display

import (
	"fmt"
	"unsafe"

	"github.com/obinnaokechukwu/ffview"
	"github.com/obinnaokechukwu/ffview/internal/logging"
	"github.com/veandco/go-sdl2/sdl"
)

var logger = logging.Child("[display]")

// waitTimeout bounds a blocking PollEvents so the caller can notice
// cancellation.
const waitTimeout = 100 // ms

// Config describes the window.
type Config struct {
	Title  string
	Width  int // Window size; zero uses the frame size
	Height int
	// Fit scales frames to the window keeping their aspect ratio. Otherwise
	// frames are drawn at native size in the top-left corner.
	Fit bool
}

// Window is a player.Sink backed by an SDL window.
type Window struct {
	cfg      Config
	frameW   int
	frameH   int
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	closed   bool
}

// Open initialises SDL video and creates a window with a frameW x frameH
// streaming texture.
func Open(cfg Config, frameW, frameH int) (*Window, error) {
	if frameW <= 0 || frameH <= 0 {
		return nil, fmt.Errorf("display: invalid frame size %dx%d", frameW, frameH)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = frameW, frameH
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("display: init SDL: %w", err)
	}
	w := &Window{cfg: cfg, frameW: frameW, frameH: frameH}

	ok := false
	defer func() {
		if !ok {
			w.Close()
		}
	}()

	var flags uint32 = sdl.WINDOW_SHOWN
	if cfg.Fit {
		flags |= sdl.WINDOW_RESIZABLE
	}
	var err error
	w.window, err = sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		return nil, fmt.Errorf("display: create window: %w", err)
	}

	w.renderer, err = sdl.CreateRenderer(w.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		logger.Warnf("accelerated renderer unavailable, using software: %v", err)
		w.renderer, err = sdl.CreateRenderer(w.window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			return nil, fmt.Errorf("display: create renderer: %w", err)
		}
	}

	// RGBA32 is R, G, B, A in memory order on every platform, matching RGB0.
	w.texture, err = w.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA32),
		sdl.TEXTUREACCESS_STREAMING, int32(frameW), int32(frameH))
	if err != nil {
		return nil, fmt.Errorf("display: create texture: %w", err)
	}
	// The fourth byte is padding, not alpha.
	if err := w.texture.SetBlendMode(sdl.BLENDMODE_NONE); err != nil {
		return nil, fmt.Errorf("display: texture blend mode: %w", err)
	}

	logger.Debugf("window %dx%d, texture %dx%d, fit=%v", cfg.Width, cfg.Height, frameW, frameH, cfg.Fit)
	ok = true
	return w, nil
}

// Present uploads frame and draws it as a single quad.
func (w *Window) Present(frame []byte) error {
	if w.closed {
		return fmt.Errorf("display: window closed")
	}
	pitch := w.frameW * ffview.BytesPerPixel
	if len(frame) != pitch*w.frameH {
		return fmt.Errorf("%w: got %d bytes, want %d", ffview.ErrBufferSize, len(frame), pitch*w.frameH)
	}

	if err := w.texture.Update(nil, unsafe.Pointer(&frame[0]), pitch); err != nil {
		return fmt.Errorf("display: update texture: %w", err)
	}

	outW, outH, err := w.renderer.GetOutputSize()
	if err != nil {
		return fmt.Errorf("display: output size: %w", err)
	}
	dst := placement(int(outW), int(outH), w.frameW, w.frameH, w.cfg.Fit)

	if err := w.renderer.SetDrawColor(0, 0, 0, 0xFF); err != nil {
		return err
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}
	rect := sdl.Rect{X: int32(dst.x), Y: int32(dst.y), W: int32(dst.w), H: int32(dst.h)}
	if err := w.renderer.Copy(w.texture, nil, &rect); err != nil {
		return fmt.Errorf("display: copy texture: %w", err)
	}
	w.renderer.Present()
	return nil
}

// PollEvents drains pending SDL events. With wait set it first blocks for
// up to waitTimeout milliseconds. It returns false once the window was
// closed or Escape pressed.
func (w *Window) PollEvents(wait bool) bool {
	if wait {
		if ev := sdl.WaitEventTimeout(waitTimeout); ev != nil && isQuit(ev) {
			return false
		}
	}
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if isQuit(ev) {
			return false
		}
	}
	return true
}

func isQuit(ev sdl.Event) bool {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return true
	case *sdl.WindowEvent:
		return e.Event == sdl.WINDOWEVENT_CLOSE
	case *sdl.KeyboardEvent:
		return e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE
	}
	return false
}

// Close destroys the texture, renderer and window and shuts SDL down.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.texture != nil {
		w.texture.Destroy()
		w.texture = nil
	}
	if w.renderer != nil {
		w.renderer.Destroy()
		w.renderer = nil
	}
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	sdl.Quit()
	return nil
}

type rect struct{ x, y, w, h int }

// placement returns where a frameW x frameH frame lands in an outW x outH
// output: centred and scaled to fit when fit is set, else at the origin
// unscaled.
func placement(outW, outH, frameW, frameH int, fit bool) rect {
	if !fit || frameW <= 0 || frameH <= 0 {
		return rect{0, 0, frameW, frameH}
	}

	scale := float64(outW) / float64(frameW)
	if s := float64(outH) / float64(frameH); s < scale {
		scale = s
	}
	w := int(float64(frameW) * scale)
	h := int(float64(frameH) * scale)
	return rect{(outW - w) / 2, (outH - h) / 2, w, h}
}
