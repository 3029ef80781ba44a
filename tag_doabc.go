// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// DoABCTag embeds one compiled ActionScript 3 bytecode unit. Lazy marks it
// eligible for deferred initialization until one of its classes is first
// referenced; Name is an (often empty) diagnostic label.
type DoABCTag struct {
	Lazy    bool
	Name    string
	AbcFile *AbcFile
}

func (DoABCTag) ID() uint16 { return uint16(TagIDDoABC) }

func readDoABCTag(r *StreamReader) (DoABCTag, error) {
	return readDoABCTagWith(r, ReadAbcFile)
}

// readDoABCTagFast behaves like readDoABCTag but skips collecting method
// body exception/trait metadata, for callers that only need bytecode.
func readDoABCTagFast(r *StreamReader) (DoABCTag, error) {
	return readDoABCTagWith(r, ReadAbcFileFast)
}

func readDoABCTagWith(r *StreamReader, readAbc func(*StreamReader) (*AbcFile, error)) (DoABCTag, error) {
	flags, err := r.ReadU32()
	if err != nil {
		return DoABCTag{}, err
	}
	name, err := r.ReadNullString()
	if err != nil {
		return DoABCTag{}, err
	}
	abc, err := readAbc(r)
	if err != nil {
		return DoABCTag{}, err
	}
	return DoABCTag{Lazy: flags&1 == 1, Name: name, AbcFile: abc}, nil
}

func writeDoABCTag(w *StreamWriter, t DoABCTag) {
	var flags uint32
	if t.Lazy {
		flags = 1
	}
	w.WriteU32(flags)
	w.WriteNullString(t.Name)
	t.AbcFile.Write(w)
}
