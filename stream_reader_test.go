// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

import "testing"

func TestReadU30(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want uint32
	}{
		{"single byte", []byte{0x00}, 0},
		{"69420", []byte{172, 158, 4}, 69420},
		{"max continuation groups", []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, 0xffffffff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewStreamReader(tt.in)
			got, err := r.ReadU30()
			if err != nil {
				t.Fatalf("ReadU30: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadU30() = %d, want %d", got, tt.want)
			}
			if !r.Finished() {
				t.Errorf("ReadU30 left %d unread bytes", r.Remaining())
			}
		})
	}
}

func TestReadU30Overflow(t *testing.T) {
	// Five bytes, every one with its continuation bit set: never terminates
	// within the 5-group budget.
	r := NewStreamReader([]byte{0x80, 0x80, 0x80, 0x80, 0x80})
	if _, err := r.ReadU30(); err != ErrLEB128Overflow {
		t.Fatalf("ReadU30() error = %v, want ErrLEB128Overflow", err)
	}
}

func TestReadI30(t *testing.T) {
	r := NewStreamReader([]byte{212, 225, 251, 255, 127})
	got, err := r.ReadI30()
	if err != nil {
		t.Fatalf("ReadI30: %v", err)
	}
	if want := int32(-69420); got != want {
		t.Errorf("ReadI30() = %d, want %d", got, want)
	}
}

func TestReadScalarsLittleEndian(t *testing.T) {
	r := NewStreamReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})

	u16, err := r.ReadU16()
	if err != nil || u16 != 0x0201 {
		t.Fatalf("ReadU16() = %#x, %v", u16, err)
	}
	u24, err := r.ReadU24()
	if err != nil || u24 != 0x050403 {
		t.Fatalf("ReadU24() = %#x, %v", u24, err)
	}
	u8, err := r.ReadU8()
	if err != nil || u8 != 0x06 {
		t.Fatalf("ReadU8() = %#x, %v", u8, err)
	}
	u16b, err := r.ReadU16()
	if err != nil || u16b != 0x0807 {
		t.Fatalf("ReadU16() = %#x, %v", u16b, err)
	}
	if !r.Finished() {
		t.Errorf("expected stream exhausted, %d bytes remain", r.Remaining())
	}
}

func TestReadI24SignExtends(t *testing.T) {
	r := NewStreamReader([]byte{0xFF, 0xFF, 0xFF})
	got, err := r.ReadI24()
	if err != nil {
		t.Fatalf("ReadI24: %v", err)
	}
	if got != -1 {
		t.Errorf("ReadI24() = %d, want -1", got)
	}
}

func TestReadNullString(t *testing.T) {
	r := NewStreamReader([]byte("hello\x00world"))
	s, err := r.ReadNullString()
	if err != nil {
		t.Fatalf("ReadNullString: %v", err)
	}
	if s != "hello" {
		t.Errorf("ReadNullString() = %q, want %q", s, "hello")
	}
	if r.Remaining() != 5 {
		t.Errorf("expected 5 bytes remaining after terminator, got %d", r.Remaining())
	}
}

func TestReadNullStringUnterminated(t *testing.T) {
	r := NewStreamReader([]byte("no terminator"))
	if _, err := r.ReadNullString(); err != ErrEndOfStream {
		t.Fatalf("error = %v, want ErrEndOfStream", err)
	}
}

func TestReadStringInvalidUTF8(t *testing.T) {
	w := NewStreamWriter(0)
	w.WriteU30(2)
	w.WriteExact([]byte{0xff, 0xfe})

	r := NewStreamReader(w.Bytes())
	if _, err := r.ReadString(); err == nil {
		t.Fatal("expected InvalidUTF8Error, got nil")
	}
}

func TestReadExactTruncated(t *testing.T) {
	r := NewStreamReader([]byte{0x01, 0x02})
	buf := make([]byte, 3)
	if err := r.ReadExact(buf); err != ErrEndOfStream {
		t.Fatalf("error = %v, want ErrEndOfStream", err)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	r := NewStreamReader([]byte{0x01, 0x02, 0x03})
	if _, err := r.ReadU8(); err != nil {
		t.Fatal(err)
	}
	c := r.Copy()
	if _, err := c.ReadU8(); err != nil {
		t.Fatal(err)
	}
	if r.Pos() != 1 {
		t.Errorf("original reader position moved: %d", r.Pos())
	}
	if c.Pos() != 2 {
		t.Errorf("copy reader position = %d, want 2", c.Pos())
	}
}
