// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// TwipsPerPixel is the number of twips (twentieths of a logical pixel) in
// one pixel, used when converting a Rect's bounds to on-screen units.
const TwipsPerPixel = 20

// Position is a single signed 2D coordinate in twips.
type Position struct {
	X, Y int32
}

// Rect is an axis-aligned bounding box, bit-packed on the wire: a 5-bit
// field width followed by four signed fields of that width, in the order
// min.X, max.X, min.Y, max.Y.
type Rect struct {
	Min, Max Position
}

func readRect(br *BitReader) (Rect, error) {
	nbits, err := br.ReadUnsignedBits(5)
	if err != nil {
		return Rect{}, err
	}

	minX, err := br.ReadSignedBits(nbits)
	if err != nil {
		return Rect{}, err
	}
	maxX, err := br.ReadSignedBits(nbits)
	if err != nil {
		return Rect{}, err
	}
	minY, err := br.ReadSignedBits(nbits)
	if err != nil {
		return Rect{}, err
	}
	maxY, err := br.ReadSignedBits(nbits)
	if err != nil {
		return Rect{}, err
	}

	return Rect{
		Min: Position{X: minX, Y: minY},
		Max: Position{X: maxX, Y: maxY},
	}, nil
}

func writeRect(bw *BitWriter, r Rect) {
	nbits := CalcSBits(r.Min.X)
	if b := CalcSBits(r.Max.X); b > nbits {
		nbits = b
	}
	if b := CalcSBits(r.Min.Y); b > nbits {
		nbits = b
	}
	if b := CalcSBits(r.Max.Y); b > nbits {
		nbits = b
	}

	bw.WriteUnsignedBits(nbits, 5)
	bw.WriteSignedBits(r.Min.X, nbits)
	bw.WriteSignedBits(r.Max.X, nbits)
	bw.WriteSignedBits(r.Min.Y, nbits)
	bw.WriteSignedBits(r.Max.Y, nbits)
}

// Rgb is a 24-bit truecolor value.
type Rgb struct {
	R, G, B uint8
}

func readRgb(r *StreamReader) (Rgb, error) {
	red, err := r.ReadU8()
	if err != nil {
		return Rgb{}, err
	}
	green, err := r.ReadU8()
	if err != nil {
		return Rgb{}, err
	}
	blue, err := r.ReadU8()
	if err != nil {
		return Rgb{}, err
	}
	return Rgb{R: red, G: green, B: blue}, nil
}

func writeRgb(w *StreamWriter, c Rgb) {
	w.WriteU8(c.R)
	w.WriteU8(c.G)
	w.WriteU8(c.B)
}

// Rgba is an Rgb value plus an alpha channel.
type Rgba struct {
	Rgb
	A uint8
}

func readRgba(r *StreamReader) (Rgba, error) {
	rgb, err := readRgb(r)
	if err != nil {
		return Rgba{}, err
	}
	a, err := r.ReadU8()
	if err != nil {
		return Rgba{}, err
	}
	return Rgba{Rgb: rgb, A: a}, nil
}

func writeRgba(w *StreamWriter, c Rgba) {
	writeRgb(w, c.Rgb)
	w.WriteU8(c.A)
}
