//go:build !ios && !android && (amd64 || arm64)

package avcodec

import (
	"errors"
	"os"
	"testing"

	"github.com/obinnaokechukwu/ffview/avutil"
	"github.com/obinnaokechukwu/ffview/internal/bindings"
)

var ffmpegAvailable bool

func TestMain(m *testing.M) {
	if err := bindings.Load(); err == nil {
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

func TestFindDecoder(t *testing.T) {
	skipIfNoFFmpeg(t)

	// rawvideo is always built into libavcodec
	if FindDecoder(CodecIDRAWVIDEO) == nil {
		t.Fatal("rawvideo decoder not found")
	}
	if FindDecoder(CodecIDNone) != nil {
		t.Error("CodecIDNone should not resolve to a decoder")
	}
}

func TestCodecName(t *testing.T) {
	skipIfNoFFmpeg(t)

	tests := []struct {
		id   CodecID
		want string
	}{
		{CodecIDH264, "h264"},
		{CodecIDRAWVIDEO, "rawvideo"},
		{CodecIDAAC, "aac"},
	}
	for _, tc := range tests {
		if got := CodecName(tc.id); got != tc.want {
			t.Errorf("CodecName(%d) = %q, want %q", tc.id, got, tc.want)
		}
	}
}

func TestContextLifecycle(t *testing.T) {
	skipIfNoFFmpeg(t)

	codec := FindDecoder(CodecIDRAWVIDEO)
	ctx := AllocContext3(codec)
	if ctx == nil {
		t.Fatal("AllocContext3 returned nil")
	}

	FreeContext(&ctx)
	if ctx != nil {
		t.Error("ctx should be nil after FreeContext")
	}
	FreeContext(&ctx)
}

func TestReceiveBeforeInput(t *testing.T) {
	skipIfNoFFmpeg(t)

	codec := FindDecoder(CodecIDMPEG4)
	if codec == nil {
		t.Skip("mpeg4 decoder not built")
	}
	ctx := AllocContext3(codec)
	defer FreeContext(&ctx)
	if err := Open2(ctx, codec); err != nil {
		t.Fatalf("Open2: %v", err)
	}

	frame := avutil.FrameAlloc()
	defer avutil.FrameFree(&frame)

	err := ReceiveFrame(ctx, frame)
	if !avutil.IsAgain(err) {
		t.Fatalf("ReceiveFrame on an empty decoder = %v, want EAGAIN", err)
	}

	// Draining an empty decoder ends the stream immediately.
	if err := SendPacket(ctx, nil); err != nil {
		t.Fatalf("SendPacket(nil): %v", err)
	}
	err = ReceiveFrame(ctx, frame)
	if !avutil.IsEOF(err) {
		t.Fatalf("ReceiveFrame after drain = %v, want EOF", err)
	}
	// A second drain request is swallowed.
	if err := SendPacket(ctx, nil); err != nil {
		t.Errorf("second SendPacket(nil) = %v, want nil", err)
	}
}

func TestPacketLifecycle(t *testing.T) {
	skipIfNoFFmpeg(t)

	pkt := PacketAlloc()
	if pkt == nil {
		t.Fatal("PacketAlloc returned nil")
	}
	if idx := GetPacketStreamIndex(pkt); idx != 0 {
		t.Errorf("fresh packet stream index = %d, want 0", idx)
	}
	PacketUnref(pkt)
	PacketFree(&pkt)
	if pkt != nil {
		t.Error("pkt should be nil after PacketFree")
	}
	if GetPacketStreamIndex(pkt) != -1 {
		t.Error("nil packet should report stream index -1")
	}
}

func TestNotLoadedErrors(t *testing.T) {
	if ffmpegAvailable {
		t.Skip("FFmpeg is loaded")
	}
	if err := Open2(nil, nil); !errors.Is(err, bindings.ErrNotLoaded) {
		t.Errorf("Open2 without FFmpeg = %v, want ErrNotLoaded", err)
	}
}
