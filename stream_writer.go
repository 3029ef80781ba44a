// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

import (
	"encoding/binary"
	"math"
)

// StreamWriter accumulates a little-endian byte stream, growing as needed.
type StreamWriter struct {
	buf []byte
}

// NewStreamWriter returns an empty writer with capacity hint n.
func NewStreamWriter(n int) *StreamWriter {
	return &StreamWriter{buf: make([]byte, 0, n)}
}

// Bytes returns the accumulated buffer.
func (w *StreamWriter) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *StreamWriter) Len() uint32 { return uint32(len(w.buf)) }

// WriteU8 appends one byte.
func (w *StreamWriter) WriteU8(v byte) { w.buf = append(w.buf, v) }

// WriteI8 appends one signed byte.
func (w *StreamWriter) WriteI8(v int8) { w.WriteU8(byte(v)) }

// WriteU16 appends a little-endian unsigned 16-bit integer.
func (w *StreamWriter) WriteU16(v uint16) {
	w.buf = append(w.buf, byte(v), byte(v>>8))
}

// WriteI16 appends a little-endian signed 16-bit integer.
func (w *StreamWriter) WriteI16(v int16) { w.WriteU16(uint16(v)) }

// WriteU24 appends a little-endian unsigned 24-bit integer (low 3 bytes of v).
func (w *StreamWriter) WriteU24(v uint32) {
	w.buf = append(w.buf, byte(v), byte(v>>8), byte(v>>16))
}

// WriteI24 appends a little-endian signed 24-bit integer.
func (w *StreamWriter) WriteI24(v int32) { w.WriteU24(uint32(v) & 0xFFFFFF) }

// WriteU32 appends a little-endian unsigned 32-bit integer.
func (w *StreamWriter) WriteU32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

// WriteI32 appends a little-endian signed 32-bit integer.
func (w *StreamWriter) WriteI32(v int32) { w.WriteU32(uint32(v)) }

// WriteU64 appends a little-endian unsigned 64-bit integer.
func (w *StreamWriter) WriteU64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

// WriteI64 appends a little-endian signed 64-bit integer.
func (w *StreamWriter) WriteI64(v int64) { w.WriteU64(uint64(v)) }

// WriteFloat32 appends a little-endian IEEE-754 single-precision float.
func (w *StreamWriter) WriteFloat32(v float32) { w.WriteU32(math.Float32bits(v)) }

// WriteFloat64 appends a little-endian IEEE-754 double-precision float.
func (w *StreamWriter) WriteFloat64(v float64) { w.WriteU64(math.Float64bits(v)) }

// WriteU30 appends v as a minimal-length LEB128 sequence: the shortest
// encoding that round-trips, never padded with extra continuation groups.
func (w *StreamWriter) WriteU30(v uint32) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			w.buf = append(w.buf, b|0x80)
			continue
		}
		w.buf = append(w.buf, b)
		return
	}
}

// WriteI30 appends v, reinterpreting its bits as unsigned, as LEB128.
func (w *StreamWriter) WriteI30(v int32) { w.WriteU30(uint32(v)) }

// WriteExact appends buf verbatim.
func (w *StreamWriter) WriteExact(buf []byte) { w.buf = append(w.buf, buf...) }

// WriteNullString appends s followed by a terminating 0x00 byte.
func (w *StreamWriter) WriteNullString(s string) {
	w.buf = append(w.buf, s...)
	w.buf = append(w.buf, 0)
}

// WriteString appends a u30 byte length prefix followed by s's UTF-8 bytes.
func (w *StreamWriter) WriteString(s string) {
	w.WriteU30(uint32(len(s)))
	w.buf = append(w.buf, s...)
}

// WriteU32At overwrites the 4 bytes at offset with v, little-endian. Used to
// back-patch a length field discovered only after the body it measures has
// already been written.
func (w *StreamWriter) WriteU32At(v uint32, offset uint32) {
	binary.LittleEndian.PutUint32(w.buf[offset:offset+4], v)
}
