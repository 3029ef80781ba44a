// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// SymbolClassTag associates character ids with the AS3 class names that
// implement them.
//
// Symbols is populated on read but ignored on write: the movie's
// authoritative symbol table lives on Movie.Symbols, and writeSymbolClassTag
// always serializes from there so that edits to Movie.Symbols after
// reading are reflected on the wire.
type SymbolClassTag struct {
	Symbols map[uint16]string
}

func (SymbolClassTag) ID() uint16 { return uint16(TagIDSymbolClass) }

func readSymbolClassTag(r *StreamReader) (SymbolClassTag, error) {
	count, err := r.ReadU16()
	if err != nil {
		return SymbolClassTag{}, err
	}
	symbols := make(map[uint16]string, count)
	for i := uint16(0); i < count; i++ {
		id, err := r.ReadU16()
		if err != nil {
			return SymbolClassTag{}, err
		}
		name, err := r.ReadNullString()
		if err != nil {
			return SymbolClassTag{}, err
		}
		symbols[id] = name
	}
	return SymbolClassTag{Symbols: symbols}, nil
}

func writeSymbolClassTag(w *StreamWriter, m *Movie) {
	w.WriteU16(uint16(len(m.Symbols)))
	for id, name := range m.Symbols {
		w.WriteU16(id)
		w.WriteNullString(name)
	}
}
