// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package swffuzz provides a go-fuzz harness exercising the round-trip of
// arbitrary input through rabc's SWF and ABC codecs.
package swffuzz

import "github.com/Athesdrake/rabc"

// Fuzz feeds data through Movie parsing and, on success, re-serializes the
// result, returning 1 only when Write succeeds with non-empty output. The
// re-serialized bytes are not compared with the input.
func Fuzz(data []byte) int {
	m, err := rabc.NewBytes(data, nil)
	if err != nil {
		return 0
	}
	defer m.Close()

	out, err := m.Write()
	if err != nil {
		return 0
	}
	if len(out) == 0 {
		return 0
	}
	return 1
}
