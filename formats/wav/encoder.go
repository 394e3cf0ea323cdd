// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/developersailor/SoundCanvas/internal/seekio"
)

// WriteWAV16 writes samples as a mono 16-bit PCM WAV file at sampleRate.
// The encoder needs to seek back over the header, so the file is assembled
// in memory before being copied to w.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	var buf seekio.Buffer
	enc := gowav.NewEncoder(&buf, sampleRate, 16, 1, 1)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	intBuf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           data,
	}
	if err := enc.Write(intBuf); err != nil {
		return fmt.Errorf("encoding wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav file: %w", err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing wav file: %w", err)
	}
	return nil
}
