// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams via
// github.com/jfreymuth/oggvorbis. The library already produces interleaved
// float32 samples, so the source is a thin adapter.
package vorbis
