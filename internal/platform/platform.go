//go:build !ios && !android && (amd64 || arm64)

// Package platform knows how shared libraries are named on each operating system.
package platform

import (
	"fmt"
	"runtime"
)

// LibraryExtension is the file extension for shared libraries on this platform.
var LibraryExtension string

// LibraryPrefix is the prefix for shared library names on this platform.
var LibraryPrefix string

func init() {
	switch runtime.GOOS {
	case "darwin":
		LibraryExtension = ".dylib"
		LibraryPrefix = "lib"
	case "windows":
		LibraryExtension = ".dll"
		LibraryPrefix = ""
	default: // linux, freebsd, etc.
		LibraryExtension = ".so"
		LibraryPrefix = "lib"
	}
}

// FormatLibraryName returns the platform-specific library filename.
// A zero version yields the unversioned name.
//
//   - Linux:   FormatLibraryName("swscale", 7) -> "libswscale.so.7"
//   - macOS:   FormatLibraryName("swscale", 7) -> "libswscale.7.dylib"
//   - Windows: FormatLibraryName("swscale", 7) -> "swscale-7.dll"
func FormatLibraryName(name string, version int) string {
	base := LibraryPrefix + name
	if version <= 0 {
		return base + LibraryExtension
	}
	switch runtime.GOOS {
	case "darwin":
		return fmt.Sprintf("%s.%d%s", base, version, LibraryExtension)
	case "windows":
		return fmt.Sprintf("%s-%d%s", base, version, LibraryExtension)
	default:
		return fmt.Sprintf("%s%s.%d", base, LibraryExtension, version)
	}
}
