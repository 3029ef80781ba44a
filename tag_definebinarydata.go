// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// DefineBinaryDataTag embeds an opaque binary asset, addressable by
// character id from a SymbolClassTag entry.
type DefineBinaryDataTag struct {
	CharID uint16
	Data   []byte
}

func (DefineBinaryDataTag) ID() uint16 { return uint16(TagIDDefineBinaryData) }

func readDefineBinaryDataTag(r *StreamReader) (DefineBinaryDataTag, error) {
	charID, err := r.ReadU16()
	if err != nil {
		return DefineBinaryDataTag{}, err
	}
	if _, err := r.ReadU32(); err != nil {
		return DefineBinaryDataTag{}, err
	}
	data, err := r.ReadBytes(r.Remaining())
	if err != nil {
		return DefineBinaryDataTag{}, err
	}
	return DefineBinaryDataTag{CharID: charID, Data: data}, nil
}

func writeDefineBinaryDataTag(w *StreamWriter, t DefineBinaryDataTag) {
	w.WriteU16(t.CharID)
	w.WriteU32(0)
	w.WriteExact(t.Data)
}
