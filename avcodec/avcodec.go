//go:build !ios && !android && (amd64 || arm64)

// Package avcodec provides the libavcodec bindings needed to decode video:
// decoder lookup, codec contexts, the send/receive API and packets.
package avcodec

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/ffview/avutil"
	"github.com/obinnaokechukwu/ffview/internal/bindings"
)

// Codec is an opaque FFmpeg AVCodec pointer.
type Codec = unsafe.Pointer

// Context is an opaque FFmpeg AVCodecContext pointer.
type Context = unsafe.Pointer

// Packet is an opaque FFmpeg AVPacket pointer.
type Packet = unsafe.Pointer

// Parameters is an opaque FFmpeg AVCodecParameters pointer.
type Parameters = unsafe.Pointer

// Function bindings
var (
	avcodecFindDecoder     func(id int32) uintptr
	avcodecGetName         func(id int32) string
	avcodecAllocContext3   func(codec uintptr) uintptr
	avcodecFreeContext     func(ctx *unsafe.Pointer)
	avcodecOpen2           func(ctx, codec uintptr, options *unsafe.Pointer) int32
	avcodecSendPacket      func(ctx, pkt uintptr) int32
	avcodecReceiveFrame    func(ctx, frame uintptr) int32
	avcodecParametersToCtx func(ctx, par uintptr) int32

	avPacketAlloc func() uintptr
	avPacketFree  func(pkt *unsafe.Pointer)
	avPacketUnref func(pkt uintptr)

	bindingsRegistered bool
)

func init() {
	registerBindings()
}

func registerBindings() {
	if bindingsRegistered {
		return
	}

	if err := bindings.Load(); err != nil {
		return
	}

	lib := bindings.LibAVCodec()
	if lib == 0 {
		return
	}

	purego.RegisterLibFunc(&avcodecFindDecoder, lib, "avcodec_find_decoder")
	purego.RegisterLibFunc(&avcodecGetName, lib, "avcodec_get_name")
	purego.RegisterLibFunc(&avcodecAllocContext3, lib, "avcodec_alloc_context3")
	purego.RegisterLibFunc(&avcodecFreeContext, lib, "avcodec_free_context")
	purego.RegisterLibFunc(&avcodecOpen2, lib, "avcodec_open2")
	purego.RegisterLibFunc(&avcodecSendPacket, lib, "avcodec_send_packet")
	purego.RegisterLibFunc(&avcodecReceiveFrame, lib, "avcodec_receive_frame")
	purego.RegisterLibFunc(&avcodecParametersToCtx, lib, "avcodec_parameters_to_context")

	purego.RegisterLibFunc(&avPacketAlloc, lib, "av_packet_alloc")
	purego.RegisterLibFunc(&avPacketFree, lib, "av_packet_free")
	purego.RegisterLibFunc(&avPacketUnref, lib, "av_packet_unref")

	bindingsRegistered = true
}

// FindDecoder finds a registered decoder for a codec ID, or nil.
func FindDecoder(id CodecID) Codec {
	if avcodecFindDecoder == nil {
		return nil
	}
	return unsafe.Pointer(avcodecFindDecoder(int32(id)))
}

// CodecName returns FFmpeg's descriptor name for a codec ID ("h264", "aac", ...).
// Works whether or not a decoder for the codec is compiled in.
func CodecName(id CodecID) string {
	if avcodecGetName == nil {
		return ""
	}
	return avcodecGetName(int32(id))
}

// AllocContext3 allocates a codec context for codec.
func AllocContext3(codec Codec) Context {
	if avcodecAllocContext3 == nil {
		return nil
	}
	return unsafe.Pointer(avcodecAllocContext3(uintptr(codec)))
}

// FreeContext frees a codec context and sets the pointer to nil.
func FreeContext(ctx *Context) {
	if ctx == nil || *ctx == nil || avcodecFreeContext == nil {
		return
	}

	// Stage the pointer-to-pointer in FFmpeg memory: some purego backends abort
	// when foreign code writes through a pointer into Go memory.
	tmp := avutil.Malloc(unsafe.Sizeof(uintptr(0)))
	if tmp != nil {
		*(*unsafe.Pointer)(tmp) = *ctx
		avcodecFreeContext((*unsafe.Pointer)(tmp))
		avutil.Free(tmp)
		*ctx = nil
		return
	}

	avcodecFreeContext(ctx)
	*ctx = nil
}

// Open2 opens a codec context.
func Open2(ctx Context, codec Codec) error {
	if avcodecOpen2 == nil {
		return bindings.ErrNotLoaded
	}
	ret := avcodecOpen2(uintptr(ctx), uintptr(codec), nil)
	if ret < 0 {
		return avutil.NewError(ret, "avcodec_open2")
	}
	return nil
}

// SendPacket submits a packet to the decoder. A nil packet starts draining.
// EAGAIN and EOF are not reported; the caller learns about them from ReceiveFrame.
func SendPacket(ctx Context, pkt Packet) error {
	if avcodecSendPacket == nil {
		return bindings.ErrNotLoaded
	}
	ret := avcodecSendPacket(uintptr(ctx), uintptr(pkt))
	runtime.KeepAlive(pkt)
	if ret < 0 && ret != avutil.AVERROR_EAGAIN && ret != avutil.AVERROR_EOF {
		return avutil.NewError(ret, "avcodec_send_packet")
	}
	return nil
}

// ReceiveFrame pulls one decoded frame into frame.
// EAGAIN (feed more input) and EOF (fully drained) come back as *avutil.Error;
// test them with avutil.IsAgain and avutil.IsEOF.
func ReceiveFrame(ctx Context, frame avutil.Frame) error {
	if avcodecReceiveFrame == nil {
		return bindings.ErrNotLoaded
	}
	ret := avcodecReceiveFrame(uintptr(ctx), uintptr(frame))
	if ret < 0 {
		return avutil.NewError(ret, "avcodec_receive_frame")
	}
	return nil
}

// ParametersToContext copies stream parameters into a codec context.
func ParametersToContext(ctx Context, par Parameters) error {
	if avcodecParametersToCtx == nil {
		return bindings.ErrNotLoaded
	}
	ret := avcodecParametersToCtx(uintptr(ctx), uintptr(par))
	if ret < 0 {
		return avutil.NewError(ret, "avcodec_parameters_to_context")
	}
	return nil
}

// PacketAlloc allocates an empty packet.
func PacketAlloc() Packet {
	if avPacketAlloc == nil {
		return nil
	}
	return unsafe.Pointer(avPacketAlloc())
}

// PacketFree frees a packet and sets the pointer to nil.
func PacketFree(pkt *Packet) {
	if pkt == nil || *pkt == nil || avPacketFree == nil {
		return
	}
	avPacketFree(pkt)
	*pkt = nil
}

// PacketUnref drops the packet's payload so it can be reused.
func PacketUnref(pkt Packet) {
	if pkt == nil || avPacketUnref == nil {
		return
	}
	avPacketUnref(uintptr(pkt))
}

// AVPacket field offsets (FFmpeg 6.x/7.x).
const offsetPacketStreamIndex = 36 // int stream_index

// GetPacketStreamIndex returns the index of the stream the packet belongs to.
func GetPacketStreamIndex(pkt Packet) int32 {
	if pkt == nil {
		return -1
	}
	return *(*int32)(unsafe.Add(pkt, offsetPacketStreamIndex))
}
