// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swffuzz

import (
	"testing"

	rabc "github.com/Athesdrake/rabc"
)

func TestFuzzAcceptsValidMovie(t *testing.T) {
	m := rabc.NewMovie()
	m.FrameSize = rabc.Rect{Max: rabc.Position{X: 100, Y: 100}}
	m.FrameRate = 24
	m.Tags = []rabc.Tag{rabc.EndTag{}}
	data, err := m.Write()
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	if got := Fuzz(data); got != 1 {
		t.Errorf("Fuzz(valid movie) = %d, want 1", got)
	}
}

func TestFuzzRejectsGarbage(t *testing.T) {
	if got := Fuzz([]byte("not a swf file at all")); got != 0 {
		t.Errorf("Fuzz(garbage) = %d, want 0", got)
	}
}

func TestFuzzRejectsEmptyInput(t *testing.T) {
	if got := Fuzz(nil); got != 0 {
		t.Errorf("Fuzz(nil) = %d, want 0", got)
	}
}
