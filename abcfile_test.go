// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

import "testing"

func TestEmptyAbcFileRoundTrip(t *testing.T) {
	a := NewAbcFile()
	a.Version = AbcVersion{Minor: 16, Major: 46}

	w := NewStreamWriter(0)
	a.Write(w)

	got, err := ReadAbcFile(NewStreamReader(w.Bytes()))
	if err != nil {
		t.Fatalf("ReadAbcFile: %v", err)
	}
	if got.Version != a.Version {
		t.Errorf("Version = %+v, want %+v", got.Version, a.Version)
	}
	if len(got.Methods) != 0 || len(got.Classes) != 0 || len(got.Scripts) != 0 {
		t.Errorf("expected all tables empty, got methods=%d classes=%d scripts=%d",
			len(got.Methods), len(got.Classes), len(got.Scripts))
	}
}

func TestAbcVersionWireOrderIsMinorThenMajor(t *testing.T) {
	w := NewStreamWriter(0)
	writeAbcVersion(w, AbcVersion{Minor: 16, Major: 46})

	r := NewStreamReader(w.Bytes())
	minor, err := r.ReadU16()
	if err != nil || minor != 16 {
		t.Fatalf("first u16 = %d, %v, want 16", minor, err)
	}
	major, err := r.ReadU16()
	if err != nil || major != 46 {
		t.Fatalf("second u16 = %d, %v, want 46", major, err)
	}
}

func TestAbcFileMethodOutOfBounds(t *testing.T) {
	a := NewAbcFile()
	if _, err := a.Method(0); err == nil {
		t.Fatal("expected error looking up a method in an empty table")
	}
}
