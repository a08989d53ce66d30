//go:build !ios && !android && (amd64 || arm64)

package avutil

import (
	"errors"
	"fmt"
	"syscall"
)

// FFmpeg error codes (AVERROR values) the decode loop distinguishes.
const (
	AVERROR_EOF         int32 = -541478725             // End of file
	AVERROR_EAGAIN      int32 = -int32(syscall.EAGAIN) // Resource temporarily unavailable
	AVERROR_ENOENT      int32 = -int32(syscall.ENOENT) // No such file or directory
	AVERROR_INVALIDDATA int32 = -1094995529            // Invalid data found when processing input
)

// Error is a failed FFmpeg call.
type Error struct {
	Code    int32  // Raw FFmpeg error code
	Message string // av_strerror text
	Op      string // FFmpeg function that failed
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("ffmpeg %s: %s (code %d)", e.Op, e.Message, e.Code)
}

// NewError wraps a negative FFmpeg return code. Returns nil if code >= 0.
func NewError(code int32, op string) error {
	if code >= 0 {
		return nil
	}
	return &Error{
		Code:    code,
		Message: ErrorString(code),
		Op:      op,
	}
}

// IsEOF reports whether err carries AVERROR_EOF.
func IsEOF(err error) bool {
	return Code(err) == AVERROR_EOF
}

// IsAgain reports whether err carries AVERROR(EAGAIN), FFmpeg's "feed more input".
func IsAgain(err error) bool {
	return Code(err) == AVERROR_EAGAIN
}

// Code returns the FFmpeg error code from err, or 0 if err is not an *Error.
func Code(err error) int32 {
	var ffErr *Error
	if errors.As(err, &ffErr) {
		return ffErr.Code
	}
	return 0
}
