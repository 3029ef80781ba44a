// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// UnknownTag preserves the raw body of a tag kind this package does not
// otherwise interpret, so a Movie round-trips losslessly even when it
// contains tags outside the known registry.
type UnknownTag struct {
	id   uint16
	Data []byte
}

// ID returns the tag's original wire id.
func (t UnknownTag) ID() uint16 { return t.id }

func readUnknownTag(data []byte, id uint16) UnknownTag {
	return UnknownTag{id: id, Data: data}
}

func writeUnknownTag(w *StreamWriter, t UnknownTag) {
	w.WriteExact(t.Data)
}
