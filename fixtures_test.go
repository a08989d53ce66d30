//go:build !ios && !android && (amd64 || arm64)

package ffview

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var ffmpegAvailable bool

func TestMain(m *testing.M) {
	if err := Init(); err == nil {
		ffmpegAvailable = true
	}
	os.Exit(m.Run())
}

func skipIfNoFFmpeg(t *testing.T) {
	t.Helper()
	if !ffmpegAvailable {
		t.Skip("FFmpeg not available")
	}
}

const (
	fixtureWidth  = 320
	fixtureHeight = 240
	fixtureFrames = 30
)

// runFFmpeg writes name in a temp dir with the ffmpeg CLI, skipping the test
// when the CLI is missing or fails.
func runFFmpeg(t *testing.T, name string, args ...string) string {
	t.Helper()
	skipIfNoFFmpeg(t)

	out := filepath.Join(t.TempDir(), name)
	full := append([]string{"-y", "-loglevel", "error"}, args...)
	full = append(full, out)
	if err := exec.Command("ffmpeg", full...).Run(); err != nil {
		t.Skipf("ffmpeg not available or failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Skipf("fixture not created: %v", err)
	}
	return out
}

// createTestVideo makes a 1 second 320x240 30fps mpeg4 clip with an aac track.
func createTestVideo(t *testing.T) string {
	t.Helper()
	return runFFmpeg(t, "clip.mp4",
		"-f", "lavfi", "-i", "testsrc=duration=1:size=320x240:rate=30",
		"-f", "lavfi", "-i", "sine=frequency=440:duration=1",
		"-c:v", "mpeg4", "-q:v", "2", "-pix_fmt", "yuv420p",
		"-c:a", "aac",
	)
}

func createAudioOnly(t *testing.T) string {
	t.Helper()
	return runFFmpeg(t, "tone.m4a",
		"-f", "lavfi", "-i", "sine=frequency=440:duration=1",
		"-c:a", "aac",
	)
}

// createWithAttachment makes a Matroska file whose second stream, after the
// video, is an attachment of unknown type, which no decoder handles.
func createWithAttachment(t *testing.T) string {
	t.Helper()
	skipIfNoFFmpeg(t)

	blob := filepath.Join(t.TempDir(), "blob.bin")
	if err := os.WriteFile(blob, []byte("not a codec"), 0o644); err != nil {
		t.Fatal(err)
	}
	return runFFmpeg(t, "attached.mkv",
		"-f", "lavfi", "-i", "testsrc=duration=1:size=320x240:rate=30",
		"-c:v", "mpeg4", "-pix_fmt", "yuv420p",
		"-attach", blob, "-metadata:s:t", "mimetype=application/x-ffview-test",
	)
}

// createTrailingTimecode makes a QuickTime file with a tmcd data track after
// the video, as cameras write them. FFmpeg has no decoder for tmcd.
func createTrailingTimecode(t *testing.T) string {
	t.Helper()
	return runFFmpeg(t, "timecode.mov",
		"-f", "lavfi", "-i", "testsrc=duration=1:size=320x240:rate=30",
		"-c:v", "mpeg4", "-pix_fmt", "yuv420p",
		"-timecode", "01:00:00:00",
	)
}

// createLeadingTimecode remuxes createTrailingTimecode so that the tmcd
// track comes first and the video second.
func createLeadingTimecode(t *testing.T) string {
	t.Helper()
	src := createTrailingTimecode(t)
	return runFFmpeg(t, "leading.mov",
		"-i", src,
		"-map", "0:d", "-map", "0:v",
		"-c", "copy", "-write_tmcd", "0",
	)
}

// createTruncated writes a faststart clip, so the index survives, and cuts
// off the second half of its sample data.
func createTruncated(t *testing.T) string {
	t.Helper()
	path := runFFmpeg(t, "truncated.mp4",
		"-f", "lavfi", "-i", "testsrc=duration=1:size=320x240:rate=30",
		"-c:v", "mpeg4", "-q:v", "2", "-pix_fmt", "yuv420p",
		"-movflags", "+faststart",
	)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Truncate(path, info.Size()/2); err != nil {
		t.Fatal(err)
	}
	return path
}

func createTextFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.mp4")
	if err := os.WriteFile(path, []byte("this is not a media file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
