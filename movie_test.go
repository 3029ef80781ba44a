// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

import "testing"

func uncompressedMovieBytes(t *testing.T, m *Movie) []byte {
	t.Helper()
	out, err := m.Write()
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	return out
}

func TestMovieRoundTripUncompressed(t *testing.T) {
	m := NewMovie()
	m.FrameSize = Rect{Min: Position{X: 0, Y: 0}, Max: Position{X: 11000, Y: 8000}}
	m.FrameRate = 24.0
	m.FrameCount = 1
	m.Tags = []Tag{
		SetBackgroundColorTag{Color: Rgb{R: 0xff, G: 0xff, B: 0xff}},
		EndTag{},
	}

	out := uncompressedMovieBytes(t, m)

	got, err := ReadMovie(out)
	if err != nil {
		t.Fatalf("ReadMovie: %v", err)
	}
	if got.FrameSize != m.FrameSize {
		t.Errorf("FrameSize = %+v, want %+v", got.FrameSize, m.FrameSize)
	}
	if got.FrameRate != m.FrameRate {
		t.Errorf("FrameRate = %v, want %v", got.FrameRate, m.FrameRate)
	}
	if got.FrameCount != m.FrameCount {
		t.Errorf("FrameCount = %d, want %d", got.FrameCount, m.FrameCount)
	}
	if len(got.Tags) != 2 {
		t.Fatalf("Tags = %d entries, want 2", len(got.Tags))
	}
	bg, ok := got.Tags[0].(SetBackgroundColorTag)
	if !ok {
		t.Fatalf("Tags[0] = %T, want SetBackgroundColorTag", got.Tags[0])
	}
	if bg.Color != (Rgb{R: 0xff, G: 0xff, B: 0xff}) {
		t.Errorf("background color = %+v", bg.Color)
	}
}

func TestMovieRoundTripWithBinaryDataBeforeEnd(t *testing.T) {
	// DefineBinaryDataTag must not swallow bytes past its own declared
	// length -- in particular it must leave the trailing EndTag intact.
	m := NewMovie()
	m.FrameSize = Rect{Max: Position{X: 11000, Y: 8000}}
	m.FrameRate = 24.0
	m.Tags = []Tag{
		DefineBinaryDataTag{CharID: 7, Data: []byte{0xde, 0xad, 0xbe, 0xef}},
		SetBackgroundColorTag{Color: Rgb{R: 1, G: 2, B: 3}},
		EndTag{},
	}

	out := uncompressedMovieBytes(t, m)

	got, err := ReadMovie(out)
	if err != nil {
		t.Fatalf("ReadMovie: %v", err)
	}
	if len(got.Tags) != 3 {
		t.Fatalf("Tags = %d entries, want 3", len(got.Tags))
	}
	bin, ok := got.Tags[0].(DefineBinaryDataTag)
	if !ok {
		t.Fatalf("Tags[0] = %T, want DefineBinaryDataTag", got.Tags[0])
	}
	if bin.CharID != 7 || string(bin.Data) != "\xde\xad\xbe\xef" {
		t.Errorf("DefineBinaryDataTag = %+v", bin)
	}
	bg, ok := got.Tags[1].(SetBackgroundColorTag)
	if !ok || bg.Color != (Rgb{R: 1, G: 2, B: 3}) {
		t.Errorf("Tags[1] = %+v, want SetBackgroundColorTag{1,2,3}", got.Tags[1])
	}
	if _, ok := got.Tags[2].(EndTag); !ok {
		t.Fatalf("Tags[2] = %T, want EndTag", got.Tags[2])
	}
	if len(got.Binaries()) != 1 {
		t.Errorf("Binaries() = %d entries, want 1", len(got.Binaries()))
	}
}

func TestMovieFileLengthIsUncompressedSize(t *testing.T) {
	m := NewMovie()
	m.Compression = CompressionZlib
	m.FrameSize = Rect{Max: Position{X: 1000, Y: 1000}}
	m.FrameRate = 12
	m.Tags = []Tag{EndTag{}}

	out := uncompressedMovieBytes(t, m)
	r := NewStreamReader(out)
	header, err := readHeader(r)
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}

	reparsed, err := ReadMovie(out)
	if err != nil {
		t.Fatalf("ReadMovie: %v", err)
	}
	if header.FileLength != reparsed.FileLength {
		t.Fatalf("FileLength mismatch: %d vs %d", header.FileLength, reparsed.FileLength)
	}
	// The recorded length must be the uncompressed size: exactly the length
	// of the same movie written without compression.
	m.Compression = CompressionNone
	plain := uncompressedMovieBytes(t, m)
	if int(header.FileLength) != len(plain) {
		t.Errorf("FileLength = %d, want the uncompressed size %d", header.FileLength, len(plain))
	}
}

func TestReadHeaderRejectsBadSignature(t *testing.T) {
	w := NewStreamWriter(0)
	w.WriteExact([]byte("XYZ"))
	w.WriteU8(14)
	w.WriteU32(8)

	_, err := readHeader(NewStreamReader(w.Bytes()))
	if _, ok := err.(*InvalidSignatureError); !ok {
		t.Fatalf("error = %v (%T), want *InvalidSignatureError", err, err)
	}
}

func TestReadHeaderRejectsBadCompressionByte(t *testing.T) {
	w := NewStreamWriter(0)
	w.WriteU8('X')
	w.WriteExact([]byte("WS"))
	w.WriteU8(14)
	w.WriteU32(8)

	_, err := readHeader(NewStreamReader(w.Bytes()))
	if _, ok := err.(*InvalidCompressionError); !ok {
		t.Fatalf("error = %v (%T), want *InvalidCompressionError", err, err)
	}
}

func TestFrameRateRoundTrip(t *testing.T) {
	rates := []float64{12.0, 24.0, 29.97, 0.5, 60.0}
	for _, rate := range rates {
		w := NewStreamWriter(0)
		writeFrameRate(w, rate)
		r := NewStreamReader(w.Bytes())
		got, err := readFrameRate(r)
		if err != nil {
			t.Fatalf("readFrameRate: %v", err)
		}
		if diff := got - rate; diff > 1.0/256 || diff < -1.0/256 {
			t.Errorf("rate %v round-tripped to %v (outside 1/256 tolerance)", rate, got)
		}
	}
}

func TestTagHeaderShortAndLongForm(t *testing.T) {
	w := NewStreamWriter(0)
	writeTagHeader(w, uint16(TagIDSetBackgroundColor), 3)
	writeTagHeader(w, uint16(TagIDMetadata), 100)

	r := NewStreamReader(w.Bytes())
	id, length, err := readTagHeader(r)
	if err != nil {
		t.Fatalf("readTagHeader: %v", err)
	}
	if id != uint16(TagIDSetBackgroundColor) || length != 3 {
		t.Errorf("short form = (%d, %d), want (%d, 3)", id, length, TagIDSetBackgroundColor)
	}

	id, length, err = readTagHeader(r)
	if err != nil {
		t.Fatalf("readTagHeader: %v", err)
	}
	if id != uint16(TagIDMetadata) || length != 100 {
		t.Errorf("long form = (%d, %d), want (%d, 100)", id, length, TagIDMetadata)
	}
}

func TestSymbolClassWritesFromMovieMap(t *testing.T) {
	m := NewMovie()
	m.FrameSize = Rect{Max: Position{X: 100, Y: 100}}
	m.FrameRate = 24
	m.Symbols = map[uint16]string{1: "com.example.Main"}
	// The tag's own Symbols field is intentionally stale; Write must ignore
	// it in favor of m.Symbols.
	m.Tags = []Tag{
		SymbolClassTag{Symbols: map[uint16]string{99: "stale"}},
		EndTag{},
	}

	out := uncompressedMovieBytes(t, m)
	got, err := ReadMovie(out)
	if err != nil {
		t.Fatalf("ReadMovie: %v", err)
	}
	if name, ok := got.Symbols[1]; !ok || name != "com.example.Main" {
		t.Errorf("Symbols[1] = %q, %v, want %q", name, ok, "com.example.Main")
	}
	if _, ok := got.Symbols[99]; ok {
		t.Errorf("stale symbol entry leaked through: %v", got.Symbols)
	}
}

func TestUnknownTagPreservesIDAndPayload(t *testing.T) {
	m := NewMovie()
	m.FrameSize = Rect{Max: Position{X: 100, Y: 100}}
	m.FrameRate = 24
	m.Tags = []Tag{
		readUnknownTag([]byte{0xde, 0xad, 0xbe, 0xef}, 0x99),
		EndTag{},
	}

	out := uncompressedMovieBytes(t, m)
	got, err := ReadMovie(out)
	if err != nil {
		t.Fatalf("ReadMovie: %v", err)
	}
	unk, ok := got.Tags[0].(UnknownTag)
	if !ok {
		t.Fatalf("Tags[0] = %T, want UnknownTag", got.Tags[0])
	}
	if unk.ID() != 0x99 {
		t.Errorf("ID() = %#x, want 0x99", unk.ID())
	}
	if string(unk.Data) != "\xde\xad\xbe\xef" {
		t.Errorf("Data = % x", unk.Data)
	}
}
