package display

import (
	"testing"
)

func TestPlacement(t *testing.T) {
	tests := []struct {
		name           string
		outW, outH     int
		frameW, frameH int
		fit            bool
		want           rect
	}{
		{"native", 800, 600, 320, 240, false, rect{0, 0, 320, 240}},
		{"exact fit", 640, 480, 320, 240, true, rect{0, 0, 640, 480}},
		{"pillarbox", 1000, 480, 320, 240, true, rect{180, 0, 640, 480}},
		{"letterbox", 640, 600, 320, 240, true, rect{0, 60, 640, 480}},
		{"shrink", 160, 160, 320, 240, true, rect{0, 20, 160, 120}},
		{"empty frame", 640, 480, 0, 0, true, rect{0, 0, 0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := placement(tc.outW, tc.outH, tc.frameW, tc.frameH, tc.fit)
			if got != tc.want {
				t.Errorf("placement = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestOpenInvalidSize(t *testing.T) {
	if _, err := Open(Config{Title: "test"}, 0, 240); err == nil {
		t.Fatal("expected an error for a zero-width frame")
	}
}

// Runs against SDL's offscreen dummy driver; skipped where SDL cannot start.
func TestWindowLifecycle(t *testing.T) {
	t.Setenv("SDL_VIDEODRIVER", "dummy")

	w, err := Open(Config{Title: "ffview test", Fit: true}, 32, 16)
	if err != nil {
		t.Skipf("SDL unavailable: %v", err)
	}

	frame := make([]byte, 32*16*4)
	for i := range frame {
		frame[i] = byte(i)
	}
	if err := w.Present(frame); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if err := w.Present(frame[:10]); err == nil {
		t.Error("Present accepted a short frame")
	}
	if !w.PollEvents(false) {
		t.Error("PollEvents reported quit without user input")
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if err := w.Present(frame); err == nil {
		t.Error("Present after Close should fail")
	}
}
