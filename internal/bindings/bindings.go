//go:build !ios && !android && (amd64 || arm64)

// Package bindings loads the FFmpeg shared libraries ffview needs and hands out
// their purego handles to the low-level binding packages.
package bindings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/ffview/internal/platform"
)

// ErrNotLoaded is returned when FFmpeg functions are called before Load succeeded.
var ErrNotLoaded = errors.New("ffview: FFmpeg libraries not loaded; call ffview.Init() first")

// ErrLibraryNotFound is returned when a required FFmpeg library cannot be found.
var ErrLibraryNotFound = errors.New("ffview: FFmpeg library not found")

// EnvLibraryPath names a directory searched before the platform defaults.
const EnvLibraryPath = "FFVIEW_FFMPEG_PATH"

// library describes one FFmpeg shared object and the sonames we accept for it.
type library struct {
	name     string
	versions []int
	version  string // version symbol
	handle   uintptr
	vfn      func() uint32
}

// Libraries are listed in dependency order; avutil must be opened first.
var (
	libAVUtil   = &library{name: "avutil", versions: []int{59, 58, 57, 56}, version: "avutil_version"}
	libAVCodec  = &library{name: "avcodec", versions: []int{61, 60, 59, 58}, version: "avcodec_version"}
	libAVFormat = &library{name: "avformat", versions: []int{61, 60, 59, 58}, version: "avformat_version"}
	libSWScale  = &library{name: "swscale", versions: []int{8, 7, 6, 5}, version: "swscale_version"}

	libraries = []*library{libAVUtil, libAVCodec, libAVFormat, libSWScale}

	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// IsLoaded returns true if FFmpeg libraries have been successfully loaded.
func IsLoaded() bool {
	return loaded
}

// Load opens every FFmpeg library and registers the version functions.
// It is safe to call multiple times; only the first call does any work.
func Load() error {
	loadOnce.Do(func() {
		loadErr = doLoad()
		loaded = loadErr == nil
	})
	return loadErr
}

func doLoad() error {
	for _, lib := range libraries {
		handle, err := openLibrary(lib.name, lib.versions)
		if err != nil {
			return fmt.Errorf("loading lib%s: %w", lib.name, err)
		}
		lib.handle = handle
		purego.RegisterLibFunc(&lib.vfn, handle, lib.version)
	}
	return nil
}

// openLibrary tries versioned names in every search directory, then lets the
// dynamic loader resolve bare names.
func openLibrary(name string, versions []int) (uintptr, error) {
	candidates := make([]string, 0, len(versions)+1)
	for _, ver := range versions {
		candidates = append(candidates, platform.FormatLibraryName(name, ver))
	}
	candidates = append(candidates, platform.FormatLibraryName(name, 0))

	for _, dir := range LibrarySearchPaths() {
		for _, file := range candidates {
			if handle, err := dlopen(filepath.Join(dir, file)); err == nil {
				return handle, nil
			}
		}
	}
	for _, file := range candidates {
		if handle, err := dlopen(file); err == nil {
			return handle, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
}

// dlopen uses RTLD_GLOBAL: the FFmpeg libraries resolve symbols across each other.
func dlopen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

// LibrarySearchPaths returns the directories searched for FFmpeg libraries,
// most specific first.
func LibrarySearchPaths() []string {
	var paths []string
	if dir := os.Getenv(EnvLibraryPath); dir != "" {
		paths = append(paths, filepath.SplitList(dir)...)
	}

	switch runtime.GOOS {
	case "linux", "freebsd":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/local/lib",
			"/usr/lib",
			"/lib/x86_64-linux-gnu",
			"/lib",
		)
	case "darwin":
		if dyldPath := os.Getenv("DYLD_LIBRARY_PATH"); dyldPath != "" {
			paths = append(paths, filepath.SplitList(dyldPath)...)
		}
		paths = append(paths,
			"/opt/homebrew/lib",
			"/usr/local/lib",
			"/opt/homebrew/opt/ffmpeg/lib",
			"/usr/local/opt/ffmpeg/lib",
		)
	case "windows":
		if exe, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Dir(exe))
		}
		if winPath := os.Getenv("PATH"); winPath != "" {
			paths = append(paths, filepath.SplitList(winPath)...)
		}
		paths = append(paths,
			"C:\\ffmpeg\\bin",
			"C:\\Program Files\\ffmpeg\\bin",
		)
	}
	return paths
}

func (l *library) ver() uint32 {
	if !loaded || l.vfn == nil {
		return 0
	}
	return l.vfn()
}

// AVUtilVersion returns the avutil library version, or 0 before Load.
func AVUtilVersion() uint32 { return libAVUtil.ver() }

// AVCodecVersion returns the avcodec library version, or 0 before Load.
func AVCodecVersion() uint32 { return libAVCodec.ver() }

// AVFormatVersion returns the avformat library version, or 0 before Load.
func AVFormatVersion() uint32 { return libAVFormat.ver() }

// SWScaleVersion returns the swscale library version, or 0 before Load.
func SWScaleVersion() uint32 { return libSWScale.ver() }

// LibAVUtil returns the avutil library handle.
func LibAVUtil() uintptr { return libAVUtil.handle }

// LibAVCodec returns the avcodec library handle.
func LibAVCodec() uintptr { return libAVCodec.handle }

// LibAVFormat returns the avformat library handle.
func LibAVFormat() uintptr { return libAVFormat.handle }

// LibSWScale returns the swscale library handle.
func LibSWScale() uintptr { return libSWScale.handle }

// RegisterOptional registers fn from handle, leaving fptr nil when the symbol
// is missing from this FFmpeg build.
func RegisterOptional(fptr any, handle uintptr, name string) {
	defer func() { _ = recover() }()
	purego.RegisterLibFunc(fptr, handle, name)
}
