// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into float32 samples using
// github.com/hajimehoshi/go-mp3. The decoder always yields stereo frames;
// wrap the source in an audiostream.MonoMixer when a single channel is
// needed.
package mp3
