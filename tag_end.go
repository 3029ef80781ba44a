// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// EndTag terminates a Movie's tag list. It carries no payload.
type EndTag struct{}

func (EndTag) ID() uint16 { return uint16(TagIDEnd) }

func readEndTag(_ *StreamReader) (EndTag, error) {
	return EndTag{}, nil
}

func writeEndTag(_ *StreamWriter, _ EndTag) {}
