// Package ffview decodes the video stream of a media file into packed RGB0
// frames using FFmpeg loaded at runtime through purego, without cgo.
//
// A FrameSource owns the whole decode pipeline: the container, the chosen
// video stream, its decoder and a lazily created pixel format converter.
// Each ReadFrame call fills a caller-supplied buffer of Width()*Height()*4
// bytes with the next frame, rows top to bottom, bytes in R, G, B, padding
// order:
//
//	src, err := ffview.Open("clip.mp4")
//	if err != nil {
//		return err
//	}
//	defer src.Close()
//
//	buf := make([]byte, src.Width()*src.Height()*4)
//	for {
//		err := src.ReadFrame(buf)
//		if errors.Is(err, ffview.ErrEndOfStream) {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		// use buf
//	}
//
// The window, test pattern and frame dump front ends built on top of it live
// in the player, display and internal/snapshot packages.
package ffview

// BytesPerPixel is the size of one RGB0 pixel in a frame buffer.
const BytesPerPixel = 4
