// SPDX-License-Identifier: EPL-2.0

// Package seekio provides an in-memory io.WriteSeeker. The go-audio encoders
// seek back to patch RIFF chunk sizes, which rules out plain writers; Buffer
// lets callers assemble a file in memory and copy it to any io.Writer.
package seekio

import (
	"errors"
	"io"
)

// Buffer is an in-memory io.WriteSeeker. The zero value is ready to use.
type Buffer struct {
	data []byte
	pos  int64
}

func (b *Buffer) Write(p []byte) (int, error) {
	if grow := b.pos + int64(len(p)) - int64(len(b.data)); grow > 0 {
		b.data = append(b.data, make([]byte, grow)...)
	}
	n := copy(b.data[b.pos:], p)
	b.pos += int64(n)
	return n, nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = b.pos + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	default:
		return 0, errors.New("seekio: invalid whence")
	}
	if pos < 0 {
		return 0, errors.New("seekio: negative position")
	}
	b.pos = pos
	return pos, nil
}

// Bytes returns the written data. The slice aliases the buffer's storage.
func (b *Buffer) Bytes() []byte { return b.data }
