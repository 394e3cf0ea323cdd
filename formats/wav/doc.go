// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes PCM WAV files on top of
// github.com/go-audio/wav.
//
// # Decoding
//
// Decoder satisfies audiostream.Decoder and accepts 8-, 16-, 24- and 32-bit
// PCM files:
//
//	src, err := wav.Decoder{}.Decode(file)
//
// The returned source streams normalized float32 samples in [-1, 1].
//
// # Encoding
//
// WriteWAV16 writes a mono 16-bit PCM file, which is how synthesized tone
// buffers are exported for inspection:
//
//	samples := []int16{100, -100, 200, -200}
//	wav.WriteWAV16(out, 44100, samples)
package wav
