// SPDX-License-Identifier: EPL-2.0

// Package audiostream defines the streaming sample pipeline that connects
// audio producers (synthesized tones, decoded files) to the visual-state
// layer.
//
// # Source Interface
//
// Everything that produces samples implements Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1, 1]; ReadSamples reports how
// many values it wrote and io.EOF once the stream is finished. Sources chain:
// a Resampler or MonoMixer wraps another Source and is itself a Source.
//
// # Rate Conversion
//
// Decoded files arrive at whatever rate they were recorded at; the visual
// layer tracks levels at a fixed canvas rate. Resampler converts between the
// two using Catmull-Rom cubic interpolation:
//
//	conv := audiostream.NewResampler(src, 44100)
//
// # Channel Mixing
//
// Level tracking is mono. MonoMixer averages the channels of any source down
// to one:
//
//	mono := audiostream.NewMonoMixer(src)
//
// # Decoder Registry
//
// File formats register a Decoder under their extension key, so playback
// simulation can open any supported file:
//
//	reg := audiostream.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	reg.Register("ogg", vorbis.Decoder{})
package audiostream
