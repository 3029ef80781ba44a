// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// SetBackgroundColorTag sets the stage's background color.
type SetBackgroundColorTag struct {
	Color Rgb
}

func (SetBackgroundColorTag) ID() uint16 { return uint16(TagIDSetBackgroundColor) }

func readSetBackgroundColorTag(r *StreamReader) (SetBackgroundColorTag, error) {
	c, err := readRgb(r)
	if err != nil {
		return SetBackgroundColorTag{}, err
	}
	return SetBackgroundColorTag{Color: c}, nil
}

func writeSetBackgroundColorTag(w *StreamWriter, t SetBackgroundColorTag) {
	writeRgb(w, t.Color)
}
