package streamio

import (
	"errors"
	"io"
)

// RawReader implements Reader directly over an io.ReadSeeker, for files
// that were never GKey-compressed (the -raw command line switch).
type RawReader struct {
	src     io.ReadSeeker
	err     error
	pending []byte
	pos     int64
}

// NewRawReader wraps src for uncompressed reading.
func NewRawReader(src io.ReadSeeker) *RawReader {
	return &RawReader{src: src}
}

func (r *RawReader) GetC() (byte, bool) {
	if r.err != nil {
		return 0, false
	}
	if len(r.pending) > 0 {
		b := r.pending[len(r.pending)-1]
		r.pending = r.pending[:len(r.pending)-1]
		r.pos++
		return b, true
	}
	var buf [1]byte
	n, err := r.src.Read(buf[:])
	if n == 0 {
		if err != nil && err != io.EOF {
			r.err = err
		}
		return 0, false
	}
	r.pos++
	return buf[0], true
}

func (r *RawReader) UngetC(b byte) bool {
	if r.err != nil {
		return false
	}
	r.pending = append(r.pending, b)
	r.pos--
	return true
}

func (r *RawReader) Tell() int64 {
	return r.pos
}

func (r *RawReader) Seek(offset int64, whence int) error {
	if r.err != nil {
		return r.err
	}
	r.pending = r.pending[:0]
	var abs int64
	switch whence {
	case SeekSet:
		abs = offset
	case SeekCur:
		abs = r.pos + offset
	default:
		return errors.New("streamio: invalid whence")
	}
	if abs < 0 {
		return errors.New("streamio: negative seek position")
	}
	newPos, err := r.src.Seek(abs, io.SeekStart)
	if err != nil {
		r.err = err
		return err
	}
	r.pos = newPos
	return nil
}

func (r *RawReader) Err() error {
	return r.err
}
