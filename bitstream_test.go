// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

import "testing"

func TestBitWriterReaderRoundTrip(t *testing.T) {
	w := NewBitWriter()
	w.WriteUnsignedBits(5, 3)  // 101
	w.WriteSignedBits(-3, 4)   // 1101
	w.WriteUnsignedBits(1, 1)  // 1
	w.Flush()
	w.Finish()

	r := NewBitReader(w.Bytes())
	u, err := r.ReadUnsignedBits(3)
	if err != nil || u != 5 {
		t.Fatalf("ReadUnsignedBits(3) = %d, %v, want 5", u, err)
	}
	s, err := r.ReadSignedBits(4)
	if err != nil || s != -3 {
		t.Fatalf("ReadSignedBits(4) = %d, %v, want -3", s, err)
	}
	last, err := r.ReadUnsignedBits(1)
	if err != nil || last != 1 {
		t.Fatalf("ReadUnsignedBits(1) = %d, %v, want 1", last, err)
	}
}

func TestBitWriterFinishPanicsUnflushed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Finish to panic on a partial byte")
		}
	}()
	w := NewBitWriter()
	w.WriteUnsignedBits(1, 1)
	w.Finish()
}

func TestCalcUBits(t *testing.T) {
	tests := []struct {
		in   uint32
		want uint32
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{0x7f, 7},
		{0x80, 8},
	}
	for _, tt := range tests {
		if got := CalcUBits(tt.in); got != tt.want {
			t.Errorf("CalcUBits(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCalcSBits(t *testing.T) {
	tests := []struct {
		in   int32
		want uint32
	}{
		{0, 1},
		{1, 2},
		{-1, 2},
		{-2, 3},
		{255, 9},
		{-256, 10},
	}
	for _, tt := range tests {
		if got := CalcSBits(tt.in); got != tt.want {
			t.Errorf("CalcSBits(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestBitWriterFlushPadsWithZero(t *testing.T) {
	w := NewBitWriter()
	w.WriteUnsignedBits(1, 1)
	w.Flush()
	if len(w.Bytes()) != 1 {
		t.Fatalf("expected 1 byte after flush, got %d", len(w.Bytes()))
	}
	if w.Bytes()[0] != 0x80 {
		t.Errorf("Flush() byte = %#x, want 0x80", w.Bytes()[0])
	}
}
