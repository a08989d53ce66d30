//go:build !ios && !android && (amd64 || arm64)

package avcodec

// CodecID represents FFmpeg codec identifiers.
type CodecID int32

// Codec IDs that show up in the fixtures and the probe output.
const (
	CodecIDNone       CodecID = 0
	CodecIDMPEG1VIDEO CodecID = 1
	CodecIDMPEG2VIDEO CodecID = 2
	CodecIDMJPEG      CodecID = 7
	CodecIDMPEG4      CodecID = 12
	CodecIDRAWVIDEO   CodecID = 13
	CodecIDH264       CodecID = 27
	CodecIDPNG        CodecID = 61
	CodecIDVP8        CodecID = 139
	CodecIDVP9        CodecID = 167
	CodecIDHEVC       CodecID = 173
	CodecIDAV1        CodecID = 225

	CodecIDPCMS16LE CodecID = 0x10000
	CodecIDMP2      CodecID = 0x15000
	CodecIDMP3      CodecID = 0x15001
	CodecIDAAC      CodecID = 0x15002
	CodecIDFLAC     CodecID = 0x1500c
	CodecIDOPUS     CodecID = 0x1503c
)
