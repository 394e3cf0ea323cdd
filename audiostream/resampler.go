// SPDX-License-Identifier: EPL-2.0

package audiostream

import (
	"fmt"
	"io"

	"github.com/developersailor/SoundCanvas/utils"
)

// readBlockFrames is how many source frames the resampler fetches per read.
const readBlockFrames = 512

// Resampler converts a source to another sample rate with Catmull-Rom cubic
// interpolation, preserving the channel count. Output frame k is interpolated
// at source position k * srcRate/dstRate over a four-frame window; the first
// and last source frames are duplicated at the stream edges.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// win holds buffered source frames, interleaved. base is the absolute
	// index of the first buffered frame.
	win   []float32
	base  int64
	count int
	eof   bool

	outFrame int64
	readBuf  []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	return &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		channels: channels,
		readBuf:  make([]float32, readBlockFrames*channels),
	}
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampled source: %w", err)
	}
	return nil
}

// ReadSamples produces interpolated frames at the destination rate. dst must
// hold a whole number of frames.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrUnalignedBuffer
	}

	written := 0
	maxFrames := len(dst) / r.channels

	for written < maxFrames {
		pos := float64(r.outFrame) * r.step
		idx := int64(pos)

		if err := r.buffer(idx + 2); err != nil {
			return written * r.channels, err
		}
		if r.eof && idx >= r.base+int64(r.count) {
			// Past the last source frame.
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(pos - float64(idx))
		out := dst[written*r.channels:]
		for c := 0; c < r.channels; c++ {
			y0 := r.frameSample(idx-1, c)
			y1 := r.frameSample(idx, c)
			y2 := r.frameSample(idx+1, c)
			y3 := r.frameSample(idx+2, c)
			out[c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}

		written++
		r.outFrame++
		r.evict(idx - 1)
	}

	return written * r.channels, nil
}

// buffer reads source frames until frame hi is available or the source is
// exhausted.
func (r *Resampler) buffer(hi int64) error {
	for !r.eof && r.base+int64(r.count) <= hi {
		n, err := r.src.ReadSamples(r.readBuf)
		if n > 0 {
			// Partial trailing frames are dropped; decoders deliver
			// whole frames in practice.
			whole := (n / r.channels) * r.channels
			r.win = append(r.win, r.readBuf[:whole]...)
			r.count += whole / r.channels
		}
		switch {
		case err == io.EOF:
			r.eof = true
		case err != nil:
			return fmt.Errorf("reading source frames: %w", err)
		case n == 0:
			// A well-behaved source only returns 0 with an error, but
			// avoid spinning if one does not.
			r.eof = true
		}
	}
	return nil
}

// frameSample returns channel c of the absolute source frame idx, clamping
// to the first and last buffered frames at the stream edges.
func (r *Resampler) frameSample(idx int64, c int) float32 {
	if r.count == 0 {
		return 0
	}
	rel := idx - r.base
	if rel < 0 {
		rel = 0
	}
	if rel >= int64(r.count) {
		rel = int64(r.count) - 1
	}
	return r.win[rel*int64(r.channels)+int64(c)]
}

// evict drops buffered frames below lo; the interpolation window never looks
// further back than one frame.
func (r *Resampler) evict(lo int64) {
	if lo <= r.base {
		return
	}
	drop := lo - r.base
	if drop > int64(r.count) {
		drop = int64(r.count)
	}
	r.win = r.win[:copy(r.win, r.win[drop*int64(r.channels):])]
	r.base += drop
	r.count -= int(drop)
}
