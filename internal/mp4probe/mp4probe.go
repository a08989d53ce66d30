// Package mp4probe reads track metadata out of MP4 files without decoding
// anything: handler, sample entry, coded size and sample count per track.
// Progressive and fragmented files are both understood.
package mp4probe

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"
)

// ErrNoMovie is returned when the file has no moov box.
var ErrNoMovie = errors.New("mp4probe: no moov box")

// Track is one trak of the movie.
type Track struct {
	ID          uint32
	Handler     string // "vide", "soun", ...
	SampleEntry string // "avc1", "mp4v", "mp4a", ...
	Width       int    // Visual sample entries only
	Height      int
	Timescale   uint32
	SampleCount int
}

// Info is the result of Probe.
type Info struct {
	Fragmented bool
	Tracks     []Track
}

// Video returns the first video track, or nil.
func (i *Info) Video() *Track {
	for n := range i.Tracks {
		if i.Tracks[n].Handler == "vide" {
			return &i.Tracks[n]
		}
	}
	return nil
}

// Probe parses the MP4 file at path.
func Probe(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ProbeReader(f)
}

// ProbeReader parses an MP4 from r.
func ProbeReader(r io.ReadSeeker) (*Info, error) {
	mp4File, err := mp4.DecodeFile(r)
	if err != nil {
		return nil, fmt.Errorf("decode mp4: %w", err)
	}

	moov := mp4File.Moov
	if mp4File.IsFragmented() && mp4File.Init != nil {
		moov = mp4File.Init.Moov
	}
	if moov == nil {
		return nil, ErrNoMovie
	}

	info := &Info{Fragmented: mp4File.IsFragmented()}
	for _, trak := range moov.Traks {
		info.Tracks = append(info.Tracks, readTrack(trak))
	}

	if info.Fragmented {
		countFragmentSamples(mp4File, info)
	}
	return info, nil
}

func readTrack(trak *mp4.TrakBox) Track {
	var t Track
	if trak.Tkhd != nil {
		t.ID = trak.Tkhd.TrackID
	}
	if trak.Mdia == nil {
		return t
	}
	if trak.Mdia.Hdlr != nil {
		t.Handler = trak.Mdia.Hdlr.HandlerType
	}
	if trak.Mdia.Mdhd != nil {
		t.Timescale = trak.Mdia.Mdhd.Timescale
	}
	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil {
		return t
	}

	stbl := trak.Mdia.Minf.Stbl
	if stbl.Stsd != nil && len(stbl.Stsd.Children) > 0 {
		entry := stbl.Stsd.Children[0]
		t.SampleEntry = entry.Type()
		if vse, ok := entry.(*mp4.VisualSampleEntryBox); ok {
			t.Width = int(vse.Width)
			t.Height = int(vse.Height)
		}
	}
	if stbl.Stsz != nil {
		t.SampleCount = int(stbl.Stsz.SampleNumber)
	}
	return t
}

// countFragmentSamples adds up trun sample counts per track across every
// fragment of every segment.
func countFragmentSamples(mp4File *mp4.File, info *Info) {
	byID := make(map[uint32]*Track, len(info.Tracks))
	for n := range info.Tracks {
		byID[info.Tracks[n].ID] = &info.Tracks[n]
	}

	for _, seg := range mp4File.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil {
				continue
			}
			for _, traf := range frag.Moof.Trafs {
				if traf.Tfhd == nil {
					continue
				}
				t, ok := byID[traf.Tfhd.TrackID]
				if !ok {
					continue
				}
				for _, trun := range traf.Truns {
					t.SampleCount += int(trun.SampleCount())
				}
			}
		}
	}
}
