// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// Exception describes one entry of a method body's exception table: a
// covered code range, the handler's jump target, and the caught type.
type Exception struct {
	From    uint32
	To      uint32
	Target  uint32
	Type    uint32
	VarName uint32
}

func readException(r *StreamReader) (Exception, error) {
	var e Exception
	var err error
	if e.From, err = r.ReadU30(); err != nil {
		return Exception{}, err
	}
	if e.To, err = r.ReadU30(); err != nil {
		return Exception{}, err
	}
	if e.Target, err = r.ReadU30(); err != nil {
		return Exception{}, err
	}
	if e.Type, err = r.ReadU30(); err != nil {
		return Exception{}, err
	}
	if e.VarName, err = r.ReadU30(); err != nil {
		return Exception{}, err
	}
	return e, nil
}

func writeException(w *StreamWriter, e Exception) {
	w.WriteU30(e.From)
	w.WriteU30(e.To)
	w.WriteU30(e.Target)
	w.WriteU30(e.Type)
	w.WriteU30(e.VarName)
}
