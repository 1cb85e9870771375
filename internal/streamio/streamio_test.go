package streamio

import (
	"bytes"
	"testing"
)

func TestRawReaderGetCUngetC(t *testing.T) {
	r := NewRawReader(bytes.NewReader([]byte{1, 2, 3}))

	b, ok := r.GetC()
	if !ok || b != 1 {
		t.Fatalf("GetC() = %d, %v, want 1, true", b, ok)
	}
	if !r.UngetC(b) {
		t.Fatal("UngetC failed")
	}
	if tell := r.Tell(); tell != 0 {
		t.Fatalf("Tell() after unget = %d, want 0", tell)
	}

	b, ok = r.GetC()
	if !ok || b != 1 {
		t.Fatalf("GetC() after unget = %d, %v, want 1, true", b, ok)
	}

	b, ok = r.GetC()
	if !ok || b != 2 {
		t.Fatalf("GetC() = %d, %v, want 2, true", b, ok)
	}
}

func TestRawReaderSeekAndEOF(t *testing.T) {
	r := NewRawReader(bytes.NewReader([]byte{10, 20, 30}))

	if err := r.Seek(2, SeekSet); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	b, ok := r.GetC()
	if !ok || b != 30 {
		t.Fatalf("GetC() after seek = %d, %v, want 30, true", b, ok)
	}
	if _, ok := r.GetC(); ok {
		t.Fatal("GetC() at EOF should fail")
	}
	if r.Err() != nil {
		t.Fatalf("Err() at clean EOF = %v, want nil", r.Err())
	}
}

func TestReadInt32LE(t *testing.T) {
	r := NewRawReader(bytes.NewReader([]byte{0x01, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff}))

	v, ok := ReadInt32LE(r)
	if !ok || v != 1 {
		t.Fatalf("ReadInt32LE() = %d, %v, want 1, true", v, ok)
	}

	v, ok = ReadInt32LE(r)
	if !ok || v != -1 {
		t.Fatalf("ReadInt32LE() = %d, %v, want -1, true", v, ok)
	}
}

func TestGKeyReaderRoundTripsLiterals(t *testing.T) {
	// A GKey stream containing only never-repeated literal codes (width
	// 9 bits throughout) must reproduce the input bytes exactly.
	var bitBuf uint32
	var bitCnt uint
	var packed []byte
	push := func(code int, width uint) {
		bitBuf |= uint32(code) << bitCnt
		bitCnt += width
		for bitCnt >= 8 {
			packed = append(packed, byte(bitBuf))
			bitBuf >>= 8
			bitCnt -= 8
		}
	}

	want := []byte{0x41, 0x42, 0x43, 0x41}
	for _, b := range want {
		push(int(b), 9)
	}
	push(257, 9) // eofCode
	if bitCnt > 0 {
		packed = append(packed, byte(bitBuf))
	}

	r, err := NewGKeyReader(9, bytes.NewReader(packed))
	if err != nil {
		t.Fatalf("NewGKeyReader: %v", err)
	}

	var got []byte
	for {
		b, ok := r.GetC()
		if !ok {
			break
		}
		got = append(got, b)
	}
	if r.Err() != nil {
		t.Fatalf("decode error: %v", r.Err())
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("decoded = %v, want %v", got, want)
	}
}

func TestGKeyReaderRejectsBadHistorySize(t *testing.T) {
	if _, err := NewGKeyReader(0, bytes.NewReader(nil)); err == nil {
		t.Fatal("expected error for historyLog2=0")
	}
	if _, err := NewGKeyReader(10, bytes.NewReader(nil)); err == nil {
		t.Fatal("expected error for historyLog2=10")
	}
}
