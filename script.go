// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// Script is an ABC script entry: an initializer method plus the traits it
// exposes at the top level.
type Script struct {
	InitIdx uint32
	Traits  []Trait
}

func readScript(r *StreamReader) (Script, error) {
	var s Script
	var err error
	if s.InitIdx, err = r.ReadU30(); err != nil {
		return Script{}, err
	}
	count, err := r.ReadU30()
	if err != nil {
		return Script{}, err
	}
	s.Traits = make([]Trait, count)
	for i := range s.Traits {
		if s.Traits[i], err = readTrait(r); err != nil {
			return Script{}, err
		}
	}
	return s, nil
}

func writeScript(w *StreamWriter, s Script) {
	w.WriteU30(s.InitIdx)
	w.WriteU30(uint32(len(s.Traits)))
	for _, t := range s.Traits {
		writeTrait(w, t)
	}
}
