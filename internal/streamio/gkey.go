package streamio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// clearCode and the initial table size follow the classic variable-width
// LZW scheme: codes 0-255 are literal bytes, clearCode resets the table,
// and codes above that are assigned to each two-symbol sequence as it is
// first seen.
const (
	maxHistoryLog2 = 9 // table never grows past 2^9 = 512 entries
)

// GKeyReader decompresses an LZW-style stream with a bounded history
// table (2^historyLog2 entries) and exposes it through the Reader
// interface, so the parser can treat compressed and raw model/index files
// identically.
type GKeyReader struct {
	src         *bufio.Reader
	historyLog2 uint
	maxCode     int
	clearCode   int
	eofCode     int

	table   [][]byte
	codeLen uint
	nextCode int
	prev     []byte

	bitBuf  uint32
	bitCnt  uint

	outBuf []byte
	outPos int

	pending []byte
	pos     int64
	err     error
	eof     bool
}

// NewGKeyReader wraps src, decoding it as a historyLog2-bit LZW stream.
// historyLog2 must be in 1..9; the game's own encoder always uses 9.
func NewGKeyReader(historyLog2 uint, src io.Reader) (*GKeyReader, error) {
	if historyLog2 < 1 || historyLog2 > maxHistoryLog2 {
		return nil, fmt.Errorf("streamio: bad history size 2^%d", historyLog2)
	}
	r := &GKeyReader{
		src:         bufio.NewReader(src),
		historyLog2: historyLog2,
		maxCode:     1 << historyLog2,
	}
	r.reset()
	return r, nil
}

func (r *GKeyReader) reset() {
	r.clearCode = 256
	r.eofCode = 257
	r.table = make([][]byte, r.maxCode)
	for i := 0; i < 256; i++ {
		r.table[i] = []byte{byte(i)}
	}
	r.nextCode = 258
	r.codeLen = 9
}

func (r *GKeyReader) readCode() (int, bool) {
	for r.bitCnt < r.codeLen {
		b, err := r.src.ReadByte()
		if err != nil {
			if err == io.EOF {
				return 0, false
			}
			r.err = err
			return 0, false
		}
		r.bitBuf |= uint32(b) << r.bitCnt
		r.bitCnt += 8
	}
	code := int(r.bitBuf & ((1 << r.codeLen) - 1))
	r.bitBuf >>= r.codeLen
	r.bitCnt -= r.codeLen
	return code, true
}

// fill decodes the next code(s) into outBuf, growing the table and the
// code width as the original encoder would have.
func (r *GKeyReader) fill() bool {
	prev := r.prev
	for {
		code, ok := r.readCode()
		if !ok {
			r.eof = true
			return false
		}

		if code == r.clearCode {
			r.reset()
			prev = nil
			continue
		}
		if code == r.eofCode {
			r.eof = true
			return false
		}

		var entry []byte
		switch {
		case code < len(r.table) && r.table[code] != nil:
			entry = r.table[code]
		case code == r.nextCode && prev != nil:
			entry = append(append([]byte{}, prev...), prev[0])
		default:
			r.err = fmt.Errorf("streamio: bad GKey code %d", code)
			return false
		}

		if prev != nil && r.nextCode < r.maxCode {
			r.table[r.nextCode] = append(append([]byte{}, prev...), entry[0])
			r.nextCode++
			if r.nextCode == (1<<r.codeLen) && r.codeLen < r.historyLog2 {
				r.codeLen++
			}
		}

		r.outBuf = entry
		r.outPos = 0
		r.prev = entry
		return true
	}
}

func (r *GKeyReader) GetC() (byte, bool) {
	if r.err != nil {
		return 0, false
	}
	if len(r.pending) > 0 {
		b := r.pending[len(r.pending)-1]
		r.pending = r.pending[:len(r.pending)-1]
		r.pos++
		return b, true
	}
	for r.outPos >= len(r.outBuf) {
		if r.eof || !r.fill() {
			return 0, false
		}
	}
	b := r.outBuf[r.outPos]
	r.outPos++
	r.pos++
	return b, true
}

func (r *GKeyReader) UngetC(b byte) bool {
	if r.err != nil {
		return false
	}
	r.pending = append(r.pending, b)
	r.pos--
	return true
}

func (r *GKeyReader) Tell() int64 {
	return r.pos
}

// Seek only supports relative and absolute forward motion, by decoding
// and discarding bytes from the current position; the compressed stream
// has no random access, so a backward seek is an error.
func (r *GKeyReader) Seek(offset int64, whence int) error {
	var target int64
	switch whence {
	case SeekSet:
		target = offset
	case SeekCur:
		target = r.pos + offset
	default:
		return errors.New("streamio: invalid whence")
	}
	if target < r.pos {
		return errors.New("streamio: GKeyReader cannot seek backwards")
	}
	for r.pos < target {
		if _, ok := r.GetC(); !ok {
			if r.err != nil {
				return r.err
			}
			return errors.New("streamio: seek past end of compressed stream")
		}
	}
	return nil
}

func (r *GKeyReader) Err() error {
	return r.err
}
