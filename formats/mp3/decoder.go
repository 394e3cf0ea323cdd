// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/developersailor/SoundCanvas/audiostream"
)

// pcmStream is the slice of gomp3.Decoder the source needs; tests substitute
// their own.
type pcmStream interface {
	Read(p []byte) (int, error)
	SampleRate() int
}

type source struct {
	dec  pcmStream
	rate int
	raw  []byte
}

func (s *source) SampleRate() int { return s.rate }

// Channels is always 2: go-mp3 upmixes mono streams to stereo.
func (s *source) Channels() int { return 2 }

func (s *source) BufSize() int { return cap(s.raw) / 2 }
func (s *source) Close() error { return nil }

// ReadSamples converts go-mp3's 16-bit little-endian PCM bytes to float32.
func (s *source) ReadSamples(dst []float32) (int, error) {
	needed := len(dst) * 2
	if cap(s.raw) < needed {
		s.raw = make([]byte, needed)
	}

	n, err := s.dec.Read(s.raw[:needed])
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	for i := 0; i < samples; i++ {
		v := int16(binary.LittleEndian.Uint16(s.raw[2*i:]))
		dst[i] = float32(v) / 32768.0
	}
	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audiostream.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return &source{
		dec:  dec,
		rate: dec.SampleRate(),
		raw:  make([]byte, 8192),
	}, nil
}
