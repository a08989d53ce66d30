//go:build !ios && !android && (amd64 || arm64)

package ffview

import (
	"errors"
	"fmt"
	"testing"
)

func TestVersion(t *testing.T) {
	skipIfNoFFmpeg(t)

	v := Version()
	for name, ver := range map[string]uint32{
		"avutil":   v.AVUtil,
		"avcodec":  v.AVCodec,
		"avformat": v.AVFormat,
		"swscale":  v.SWScale,
	} {
		if ver == 0 {
			t.Errorf("%s version is 0", name)
		}
	}
	if !IsLoaded() {
		t.Error("IsLoaded should be true after Init")
	}
}

func TestFormatVersion(t *testing.T) {
	if got := FormatVersion(60<<16 | 31<<8 | 102); got != "60.31.102" {
		t.Errorf("FormatVersion = %q", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"quiet", LogQuiet},
		{"error", LogError},
		{"warn", LogWarning},
		{"Warning", LogWarning},
		{" info ", LogInfo},
		{"debug", LogDebug},
	}
	for _, tc := range tests {
		got, err := ParseLogLevel(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseLogLevel(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
		if got.String() != tc.want.String() {
			t.Errorf("String mismatch for %q", tc.in)
		}
	}
	if _, err := ParseLogLevel("loud"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestSetLogLevel(t *testing.T) {
	skipIfNoFFmpeg(t)
	prev := GetLogLevel()
	defer SetLogLevel(prev)

	if err := SetLogLevel(LogError); err != nil {
		t.Fatalf("SetLogLevel: %v", err)
	}
	if GetLogLevel() != LogError {
		t.Errorf("GetLogLevel = %v, want error", GetLogLevel())
	}
}

func TestWrap(t *testing.T) {
	if wrap(ErrDecode, nil) != ErrDecode {
		t.Error("nil cause should return the sentinel")
	}
	cause := errors.New("boom")
	err := wrap(ErrDecode, cause)
	if !errors.Is(err, ErrDecode) || !errors.Is(err, cause) {
		t.Errorf("wrapped error lost a link: %v", err)
	}
	if !IsEndOfStream(fmt.Errorf("loop: %w", ErrEndOfStream)) {
		t.Error("IsEndOfStream should see through wrapping")
	}
}
