//go:build !ios && !android && (amd64 || arm64)

package platform

import (
	"runtime"
	"testing"
)

func TestFormatLibraryName(t *testing.T) {
	tests := []struct {
		name    string
		version int
		want    map[string]string
	}{
		{
			name:    "avcodec",
			version: 60,
			want: map[string]string{
				"darwin":  "libavcodec.60.dylib",
				"windows": "avcodec-60.dll",
				"linux":   "libavcodec.so.60",
			},
		},
		{
			name:    "swscale",
			version: 0,
			want: map[string]string{
				"darwin":  "libswscale.dylib",
				"windows": "swscale.dll",
				"linux":   "libswscale.so",
			},
		},
	}

	for _, tc := range tests {
		want, ok := tc.want[runtime.GOOS]
		if !ok {
			continue
		}
		if got := FormatLibraryName(tc.name, tc.version); got != want {
			t.Errorf("FormatLibraryName(%q, %d) = %q, want %q", tc.name, tc.version, got, want)
		}
	}
}

func TestLibraryPrefix(t *testing.T) {
	switch runtime.GOOS {
	case "windows":
		if LibraryPrefix != "" {
			t.Errorf("expected empty prefix on Windows, got %s", LibraryPrefix)
		}
	default:
		if LibraryPrefix != "lib" {
			t.Errorf("expected 'lib' prefix, got %s", LibraryPrefix)
		}
	}
}
