// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

import (
	"bytes"
	"testing"
)

func TestMangledLZMARoundTrip(t *testing.T) {
	original := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 64)

	compressed, err := deflateMangledLZMA(original)
	if err != nil {
		t.Fatalf("deflateMangledLZMA: %v", err)
	}

	decompressed, err := inflateMangledLZMA(compressed, uint32(len(original)))
	if err != nil {
		t.Fatalf("inflateMangledLZMA: %v", err)
	}
	if !bytes.Equal(decompressed, original) {
		t.Errorf("round trip mismatch: got %d bytes, want %d bytes", len(decompressed), len(original))
	}
}

func TestMovieRoundTripLZMACompressed(t *testing.T) {
	m := NewMovie()
	m.Compression = CompressionLzma
	m.FrameSize = Rect{Max: Position{X: 4000, Y: 3000}}
	m.FrameRate = 30
	m.Tags = []Tag{
		SetBackgroundColorTag{Color: Rgb{R: 10, G: 20, B: 30}},
		EndTag{},
	}

	out, err := m.Write()
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if out[0] != 'Z' {
		t.Fatalf("signature byte = %q, want 'Z'", out[0])
	}

	got, err := ReadMovie(out)
	if err != nil {
		t.Fatalf("ReadMovie: %v", err)
	}
	if got.FrameSize != m.FrameSize {
		t.Errorf("FrameSize = %+v, want %+v", got.FrameSize, m.FrameSize)
	}
	bg, ok := got.Tags[0].(SetBackgroundColorTag)
	if !ok || bg.Color != (Rgb{R: 10, G: 20, B: 30}) {
		t.Errorf("Tags[0] = %+v", got.Tags[0])
	}
}
