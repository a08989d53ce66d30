//go:build !ios && !android && (amd64 || arm64)

package avutil

// PixelFormat represents FFmpeg pixel formats.
type PixelFormat int32

// Pixel formats with stable enum values across FFmpeg 4-7. Formats further down
// the enum (rgb0 and friends) moved between releases; resolve those with
// PixelFormatByName.
const (
	PixelFormatNone     PixelFormat = -1
	PixelFormatYUV420P  PixelFormat = 0  // Planar YUV 4:2:0
	PixelFormatYUYV422  PixelFormat = 1  // Packed YUV 4:2:2
	PixelFormatRGB24    PixelFormat = 2  // Packed RGB 8:8:8
	PixelFormatBGR24    PixelFormat = 3  // Packed BGR 8:8:8
	PixelFormatYUV422P  PixelFormat = 4  // Planar YUV 4:2:2
	PixelFormatYUV444P  PixelFormat = 5  // Planar YUV 4:4:4
	PixelFormatGray8    PixelFormat = 8  // 8-bit grayscale
	PixelFormatPAL8     PixelFormat = 11 // 8-bit palette
	PixelFormatYUVJ420P PixelFormat = 12 // Planar YUV 4:2:0, full range
	PixelFormatNV12     PixelFormat = 23 // Planar YUV 4:2:0, UV interleaved
	PixelFormatRGBA     PixelFormat = 26 // Packed RGBA 8:8:8:8
	PixelFormatBGRA     PixelFormat = 28 // Packed BGRA 8:8:8:8
)

// MediaType represents FFmpeg media types.
type MediaType int32

const (
	MediaTypeUnknown    MediaType = -1
	MediaTypeVideo      MediaType = 0
	MediaTypeAudio      MediaType = 1
	MediaTypeData       MediaType = 2
	MediaTypeSubtitle   MediaType = 3
	MediaTypeAttachment MediaType = 4
)

// String returns the FFmpeg name of the media type.
func (m MediaType) String() string {
	switch m {
	case MediaTypeVideo:
		return "video"
	case MediaTypeAudio:
		return "audio"
	case MediaTypeData:
		return "data"
	case MediaTypeSubtitle:
		return "subtitle"
	case MediaTypeAttachment:
		return "attachment"
	default:
		return "unknown"
	}
}
