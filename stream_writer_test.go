// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

import (
	"bytes"
	"testing"
)

func TestWriteU30Minimal(t *testing.T) {
	tests := []struct {
		in   uint32
		want []byte
	}{
		{0, []byte{0x00}},
		{69420, []byte{172, 158, 4}},
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0x80, 0x01}},
	}
	for _, tt := range tests {
		w := NewStreamWriter(0)
		w.WriteU30(tt.in)
		if !bytes.Equal(w.Bytes(), tt.want) {
			t.Errorf("WriteU30(%d) = % x, want % x", tt.in, w.Bytes(), tt.want)
		}
	}
}

func TestWriteU30RoundTrip(t *testing.T) {
	values := []uint32{0, 1, 127, 128, 16383, 16384, 0xffffffff}
	for _, v := range values {
		w := NewStreamWriter(0)
		w.WriteU30(v)
		r := NewStreamReader(w.Bytes())
		got, err := r.ReadU30()
		if err != nil {
			t.Fatalf("ReadU30: %v", err)
		}
		if got != v {
			t.Errorf("round trip %d -> % x -> %d", v, w.Bytes(), got)
		}
		if !r.Finished() {
			t.Errorf("value %d: leftover bytes after round trip", v)
		}
	}
}

func TestWriteU32AtBackpatch(t *testing.T) {
	w := NewStreamWriter(0)
	w.WriteU32(0)
	w.WriteExact([]byte("padding"))
	w.WriteU32At(0xdeadbeef, 0)

	r := NewStreamReader(w.Bytes())
	got, err := r.ReadU32()
	if err != nil {
		t.Fatalf("ReadU32: %v", err)
	}
	if got != 0xdeadbeef {
		t.Errorf("backpatched value = %#x, want 0xdeadbeef", got)
	}
}

func TestWriteNullString(t *testing.T) {
	w := NewStreamWriter(0)
	w.WriteNullString("abc")
	want := []byte{'a', 'b', 'c', 0}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("WriteNullString = % x, want % x", w.Bytes(), want)
	}
}

func TestWriteStringRoundTrip(t *testing.T) {
	w := NewStreamWriter(0)
	w.WriteString("hello, swf")
	r := NewStreamReader(w.Bytes())
	got, err := r.ReadString()
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if got != "hello, swf" {
		t.Errorf("ReadString() = %q", got)
	}
}

func TestWriteI24TwoComplement(t *testing.T) {
	w := NewStreamWriter(0)
	w.WriteI24(-1)
	want := []byte{0xff, 0xff, 0xff}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("WriteI24(-1) = % x, want % x", w.Bytes(), want)
	}
}
