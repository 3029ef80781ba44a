// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

import "testing"

func TestMetadataRoundTripParallelArrays(t *testing.T) {
	want := Metadata{
		NameIdx: 1,
		Items: []MetadataItem{
			{KeyIdx: 2, ValueIdx: 3},
			{KeyIdx: 4, ValueIdx: 5},
			{KeyIdx: 0, ValueIdx: 6},
		},
	}
	w := NewStreamWriter(0)
	writeMetadata(w, want)

	got, err := readMetadata(NewStreamReader(w.Bytes()))
	if err != nil {
		t.Fatalf("readMetadata: %v", err)
	}
	if got.NameIdx != want.NameIdx {
		t.Errorf("NameIdx = %d, want %d", got.NameIdx, want.NameIdx)
	}
	if len(got.Items) != len(want.Items) {
		t.Fatalf("Items = %d entries, want %d", len(got.Items), len(want.Items))
	}
	for i, item := range want.Items {
		if got.Items[i] != item {
			t.Errorf("Items[%d] = %+v, want %+v", i, got.Items[i], item)
		}
	}
	if !got.Items[2].Keyless() {
		t.Error("Items[2].Keyless() = false, want true")
	}
}

func TestMetadataWireLayoutIsTwoParallelArrays(t *testing.T) {
	m := Metadata{
		NameIdx: 1,
		Items: []MetadataItem{
			{KeyIdx: 10, ValueIdx: 20},
			{KeyIdx: 11, ValueIdx: 21},
		},
	}
	w := NewStreamWriter(0)
	writeMetadata(w, m)

	r := NewStreamReader(w.Bytes())
	if _, err := r.ReadU30(); err != nil { // NameIdx
		t.Fatal(err)
	}
	if _, err := r.ReadU30(); err != nil { // count
		t.Fatal(err)
	}
	key0, _ := r.ReadU30()
	key1, _ := r.ReadU30()
	if key0 != 10 || key1 != 11 {
		t.Fatalf("expected all keys before all values, got %d %d", key0, key1)
	}
	val0, _ := r.ReadU30()
	val1, _ := r.ReadU30()
	if val0 != 20 || val1 != 21 {
		t.Fatalf("values out of order: %d %d", val0, val1)
	}
}
