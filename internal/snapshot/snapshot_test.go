package snapshot

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

// frame returns a w x h RGB0 frame whose pixel (x, y) is (x, y, x+y, 0).
func frame(w, h int) []byte {
	buf := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			buf[i] = byte(x)
			buf[i+1] = byte(y)
			buf[i+2] = byte(x + y)
		}
	}
	return buf
}

func decode(t *testing.T, path string, dec func(f *os.File) (image.Image, error)) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := dec(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func TestWritePNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	w, err := New(dir, 8, 4, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := w.Present(frame(8, 4)); err != nil {
			t.Fatalf("Present: %v", err)
		}
	}
	if w.Count() != 3 {
		t.Errorf("Count = %d, want 3", w.Count())
	}
	if filepath.Base(w.Path(2)) != "frame-000002.png" {
		t.Errorf("Path(2) = %s", w.Path(2))
	}

	img := decode(t, w.Path(1), func(f *os.File) (image.Image, error) { return png.Decode(f) })
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Fatalf("size = %v", b)
	}
	r, g, b, a := img.At(5, 3).RGBA()
	if r>>8 != 5 || g>>8 != 3 || b>>8 != 8 || a>>8 != 0xFF {
		t.Errorf("pixel (5,3) = %d,%d,%d,%d", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestWriteBMP(t *testing.T) {
	w, err := New(t.TempDir(), 6, 6, Options{Format: "BMP"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Present(frame(6, 6)); err != nil {
		t.Fatalf("Present: %v", err)
	}

	img := decode(t, w.Path(0), func(f *os.File) (image.Image, error) { return bmp.Decode(f) })
	r, g, b, _ := img.At(2, 4).RGBA()
	if r>>8 != 2 || g>>8 != 4 || b>>8 != 6 {
		t.Errorf("pixel (2,4) = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestScaledAndLabelled(t *testing.T) {
	w, err := New(t.TempDir(), 64, 32, Options{Width: 32, Label: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Present(frame(64, 32)); err != nil {
		t.Fatalf("Present: %v", err)
	}

	img := decode(t, w.Path(0), func(f *os.File) (image.Image, error) { return png.Decode(f) })
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("scaled size = %v, want 32x16", b)
	}
}

func TestOptionsValidation(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		w, h int
		opts Options
	}{
		{"zero size", 0, 4, Options{}},
		{"bad format", 4, 4, Options{Format: "gif"}},
		{"negative width", 4, 4, Options{Width: -1}},
	}
	for _, tc := range tests {
		if _, err := New(dir, tc.w, tc.h, tc.opts); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestPresentWrongSize(t *testing.T) {
	w, err := New(t.TempDir(), 4, 4, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Present(make([]byte, 10)); err == nil {
		t.Fatal("expected an error for a short frame")
	}
	if w.Count() != 0 {
		t.Errorf("Count = %d after a failed Present", w.Count())
	}
	if !w.PollEvents(true) {
		t.Error("PollEvents should never ask to quit")
	}
}
