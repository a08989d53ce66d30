package mp4probe

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/Eyevinn/mp4ff/av1"
	"github.com/Eyevinn/mp4ff/mp4"
)

// buildFragmented writes ftyp, moov and one fragment holding n video samples.
func buildFragmented(t *testing.T, width, height uint16, n int) []byte {
	t.Helper()

	const timescale = 30000
	init := mp4.CreateEmptyInit()
	init.AddEmptyTrack(timescale, "video", "und")
	trak := init.Moov.Trak

	av1C := &mp4.Av1CBox{CodecConfRec: av1.CodecConfRec{
		Version:            1,
		SeqLevelIdx0:       8,
		ChromaSubsamplingX: 1,
		ChromaSubsamplingY: 1,
	}}
	trak.Mdia.Minf.Stbl.Stsd.AddChild(mp4.CreateVisualSampleEntryBox("av01", width, height, av1C))
	trak.Tkhd.Width = mp4.Fixed32(uint32(width) << 16)
	trak.Tkhd.Height = mp4.Fixed32(uint32(height) << 16)

	frag, err := mp4.CreateFragment(1, trak.Tkhd.TrackID)
	if err != nil {
		t.Fatalf("create fragment: %v", err)
	}
	for i := 0; i < n; i++ {
		data := []byte{0x12, 0x00, byte(i)}
		frag.AddFullSample(mp4.FullSample{
			Sample: mp4.Sample{
				Flags: mp4.SyncSampleFlags,
				Size:  uint32(len(data)),
				Dur:   1000,
			},
			DecodeTime: uint64(i) * 1000,
			Data:       data,
		})
	}

	var buf bytes.Buffer
	ftyp := mp4.NewFtyp("isom", 0x200, []string{"isom", "iso6", "av01"})
	if err := ftyp.Encode(&buf); err != nil {
		t.Fatalf("encode ftyp: %v", err)
	}
	if err := init.Moov.Encode(&buf); err != nil {
		t.Fatalf("encode moov: %v", err)
	}
	if err := frag.Encode(&buf); err != nil {
		t.Fatalf("encode fragment: %v", err)
	}
	return buf.Bytes()
}

func TestProbeFragmented(t *testing.T) {
	data := buildFragmented(t, 64, 48, 5)

	info, err := ProbeReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ProbeReader: %v", err)
	}
	if !info.Fragmented {
		t.Error("expected a fragmented file")
	}

	v := info.Video()
	if v == nil {
		t.Fatal("no video track")
	}
	if v.Handler != "vide" || v.SampleEntry != "av01" {
		t.Errorf("handler/entry = %q/%q, want vide/av01", v.Handler, v.SampleEntry)
	}
	if v.Width != 64 || v.Height != 48 {
		t.Errorf("size = %dx%d, want 64x48", v.Width, v.Height)
	}
	if v.SampleCount != 5 {
		t.Errorf("SampleCount = %d, want 5", v.SampleCount)
	}
	if v.Timescale != 30000 {
		t.Errorf("Timescale = %d, want 30000", v.Timescale)
	}
}

func TestProbeNoMovie(t *testing.T) {
	var buf bytes.Buffer
	if err := mp4.NewFtyp("isom", 0x200, []string{"isom"}).Encode(&buf); err != nil {
		t.Fatalf("encode ftyp: %v", err)
	}

	_, err := ProbeReader(bytes.NewReader(buf.Bytes()))
	if !errors.Is(err, ErrNoMovie) {
		t.Fatalf("err = %v, want ErrNoMovie", err)
	}
}

func TestProbeMissingFile(t *testing.T) {
	if _, err := Probe(filepath.Join(t.TempDir(), "missing.mp4")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestVideoWithoutVideoTrack(t *testing.T) {
	info := &Info{Tracks: []Track{{ID: 1, Handler: "soun"}}}
	if info.Video() != nil {
		t.Error("Video() should be nil for an audio-only movie")
	}
}

// Progressive files come from the ffmpeg CLI when it is installed.
func TestProbeProgressive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	cmd := exec.Command("ffmpeg", "-y", "-loglevel", "error",
		"-f", "lavfi", "-i", "testsrc=duration=1:size=320x240:rate=30",
		"-f", "lavfi", "-i", "sine=frequency=440:duration=1",
		"-c:v", "mpeg4", "-pix_fmt", "yuv420p", "-c:a", "aac",
		path)
	if err := cmd.Run(); err != nil {
		t.Skipf("ffmpeg not available or failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Skipf("fixture not created: %v", err)
	}

	info, err := Probe(path)
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if info.Fragmented {
		t.Error("ffmpeg default output should be progressive")
	}
	if len(info.Tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(info.Tracks))
	}

	v := info.Video()
	if v == nil {
		t.Fatal("no video track")
	}
	if v.SampleEntry != "mp4v" {
		t.Errorf("SampleEntry = %q, want mp4v", v.SampleEntry)
	}
	if v.Width != 320 || v.Height != 240 || v.SampleCount != 30 {
		t.Errorf("video = %dx%d %d samples, want 320x240 30 samples", v.Width, v.Height, v.SampleCount)
	}
}
