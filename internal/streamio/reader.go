// Package streamio provides the seekable byte-reader abstraction used to
// pull object records out of a model or index file, whether the
// underlying file is raw binary or GKey-compressed.
package streamio

import "encoding/binary"

// Reader is the minimal cursor-based byte source the parser needs: get a
// byte, push one back, find out where we are, and jump around.
type Reader interface {
	// GetC reads the next byte, or returns ok==false at end of stream.
	GetC() (b byte, ok bool)

	// UngetC pushes back the most recently read byte so the next GetC
	// returns it again. Only one byte of pushback is guaranteed.
	UngetC(b byte) bool

	// Tell returns the current position, in decoded bytes from the start
	// of the stream.
	Tell() int64

	// Seek moves to an absolute (whence==SeekSet) or relative
	// (whence==SeekCur) position, in decoded bytes.
	Seek(offset int64, whence int) error

	// Err returns the first error encountered, if any.
	Err() error
}

// Seek whence values, mirroring io.Seeker.
const (
	SeekSet = 0
	SeekCur = 1
)

// ReadInt32LE reads a little-endian signed 32-bit integer.
func ReadInt32LE(r Reader) (int32, bool) {
	var buf [4]byte
	for i := range buf {
		b, ok := r.GetC()
		if !ok {
			return 0, false
		}
		buf[i] = b
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), true
}
