// SPDX-License-Identifier: EPL-2.0

// Package soundcanvas synthesizes waveform buffers and turns audio streams
// into the per-frame level snapshots that drive animated visuals.
//
// The module has three layers. The synth package is the numeric core: pure
// functions from a SignalSpec (shape, frequency, amplitude, sample rate,
// duration) to a sample buffer. The audiostream package moves interleaved
// float32 samples between sources — synthesized oscillators, decoded files —
// through mixers and rate converters. The vizstate package reduces streams
// to scalar Level snapshots and fans them out to UI subscribers.
//
// # Quick Start
//
// Render one second of a 440Hz sine wave:
//
//	samples, err := soundcanvas.RenderTone(synth.Sine, 440, 1)
//
// Export a tone for inspection:
//
//	spec := synth.NewSignalSpec(synth.Square, 220, 0.8)
//	err := soundcanvas.WriteToneWAV(file, spec)
//
// Reduce a buffer to bar amplitudes for a spectrum-style view:
//
//	bars, err := soundcanvas.Bars(spec, 32)
//
// # Driving Visuals From Files
//
// Any supported audio file (WAV, MP3, Ogg Vorbis, AIFF) can stand in for a
// live signal. Decode it, then collect one Level per rendering frame:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	levels, _ := soundcanvas.Levels(src, 1024, 440)
//
// Each Level carries the frame's peak amplitude and a carrier frequency;
// the UI maps those to bar heights, particle offsets or mandala radii.
//
// # Custom Pipelines
//
// The layers compose directly for anything the convenience functions don't
// cover:
//
//	osc, _ := synth.NewOsc(synth.NewSignalSpec(synth.Triangle, 330, 1))
//	conv := audiostream.NewResampler(osc, 16000)
//	tracker, _ := vizstate.NewTracker(conv, 512, 330)
//
// # Determinism
//
// Everything here is deterministic: identical inputs produce bit-identical
// buffers and snapshots. Wall-clock animation offsets belong to the caller,
// never to this module.
package soundcanvas
