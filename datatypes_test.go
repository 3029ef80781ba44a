// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

import "testing"

func TestRectRoundTrip(t *testing.T) {
	tests := []Rect{
		{Min: Position{X: 0, Y: 0}, Max: Position{X: 0, Y: 0}},
		{Min: Position{X: 0, Y: 0}, Max: Position{X: 11000, Y: 8000}},
		{Min: Position{X: -5000, Y: -5000}, Max: Position{X: 5000, Y: 5000}},
	}
	for _, rect := range tests {
		bw := NewBitWriter()
		writeRect(bw, rect)
		bw.Flush()

		br := NewBitReader(bw.Bytes())
		got, err := readRect(br)
		if err != nil {
			t.Fatalf("readRect: %v", err)
		}
		if got != rect {
			t.Errorf("round trip = %+v, want %+v", got, rect)
		}
	}
}

func TestRectFieldWidthIsMaxAcrossBounds(t *testing.T) {
	// max.X dominates every other bound's width; all four fields must still
	// be written at that width, not their own individually-minimal widths.
	rect := Rect{Min: Position{X: 0, Y: 0}, Max: Position{X: 300, Y: 1}}
	bw := NewBitWriter()
	writeRect(bw, rect)
	bw.Flush()

	br := NewBitReader(bw.Bytes())
	nbits, err := br.ReadUnsignedBits(5)
	if err != nil {
		t.Fatalf("ReadUnsignedBits: %v", err)
	}
	if want := CalcSBits(300); nbits != want {
		t.Errorf("nbits = %d, want %d", nbits, want)
	}
}

func TestRgbRoundTrip(t *testing.T) {
	w := NewStreamWriter(0)
	writeRgb(w, Rgb{R: 0x11, G: 0x22, B: 0x33})

	r := NewStreamReader(w.Bytes())
	got, err := readRgb(r)
	if err != nil {
		t.Fatalf("readRgb: %v", err)
	}
	if got != (Rgb{R: 0x11, G: 0x22, B: 0x33}) {
		t.Errorf("readRgb() = %+v", got)
	}
}

func TestRgbaRoundTrip(t *testing.T) {
	w := NewStreamWriter(0)
	writeRgba(w, Rgba{Rgb: Rgb{R: 1, G: 2, B: 3}, A: 0xff})

	r := NewStreamReader(w.Bytes())
	got, err := readRgba(r)
	if err != nil {
		t.Fatalf("readRgba: %v", err)
	}
	want := Rgba{Rgb: Rgb{R: 1, G: 2, B: 3}, A: 0xff}
	if got != want {
		t.Errorf("readRgba() = %+v, want %+v", got, want)
	}
}
