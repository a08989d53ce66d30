//go:build !ios && !android && (amd64 || arm64)

package ffview

import (
	"fmt"

	"github.com/obinnaokechukwu/ffview/internal/bindings"
)

// Init loads the FFmpeg libraries. Open calls it, but calling it up front
// reports a missing FFmpeg installation before any file is touched.
// It is safe to call multiple times.
func Init() error {
	if err := bindings.Load(); err != nil {
		return wrap(ErrNotLoaded, err)
	}
	return nil
}

// IsLoaded returns true if FFmpeg libraries have been successfully loaded.
func IsLoaded() bool {
	return bindings.IsLoaded()
}

// Versions holds the loaded library versions, packed as major<<16 | minor<<8 | micro.
type Versions struct {
	AVUtil   uint32
	AVCodec  uint32
	AVFormat uint32
	SWScale  uint32
}

// Version returns FFmpeg library versions. All zero before Init.
func Version() Versions {
	return Versions{
		AVUtil:   bindings.AVUtilVersion(),
		AVCodec:  bindings.AVCodecVersion(),
		AVFormat: bindings.AVFormatVersion(),
		SWScale:  bindings.SWScaleVersion(),
	}
}

// FormatVersion renders a packed library version as "major.minor.micro".
func FormatVersion(v uint32) string {
	return fmt.Sprintf("%d.%d.%d", v>>16, (v>>8)&0xFF, v&0xFF)
}
