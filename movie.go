// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

import (
	"bytes"
	"compress/zlib"
	"io"
	"math"
	"os"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/Athesdrake/rabc/log"
)

// Compression identifies a Movie's body encoding, taken from the header's
// leading signature byte.
type Compression byte

const (
	CompressionNone Compression = iota
	CompressionZlib
	CompressionLzma
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZlib:
		return "Zlib"
	case CompressionLzma:
		return "Lzma"
	default:
		return "Unknown"
	}
}

func compressionFromSignature(b byte) (Compression, error) {
	switch b {
	case 'F':
		return CompressionNone, nil
	case 'C':
		return CompressionZlib, nil
	case 'Z':
		return CompressionLzma, nil
	default:
		return 0, &InvalidCompressionError{Signature: b}
	}
}

func (c Compression) signature() byte {
	switch c {
	case CompressionZlib:
		return 'C'
	case CompressionLzma:
		return 'Z'
	default:
		return 'F'
	}
}

// Header is the 8-byte SWF file header: compression signature, version,
// and total (post-decompression) file length.
type Header struct {
	Compression Compression
	Version     uint8
	FileLength  uint32
}

func readHeader(r *StreamReader) (Header, error) {
	sig, err := r.ReadBytes(3)
	if err != nil {
		return Header{}, err
	}
	if sig[1] != 'W' || sig[2] != 'S' {
		var b [3]byte
		copy(b[:], sig)
		return Header{}, &InvalidSignatureError{Bytes: b}
	}
	compression, err := compressionFromSignature(sig[0])
	if err != nil {
		return Header{}, err
	}
	version, err := r.ReadU8()
	if err != nil {
		return Header{}, err
	}
	fileLength, err := r.ReadU32()
	if err != nil {
		return Header{}, err
	}
	return Header{Compression: compression, Version: version, FileLength: fileLength}, nil
}

func writeHeader(w *StreamWriter, h Header) {
	w.WriteU8(h.Compression.signature())
	w.WriteExact([]byte("WS"))
	w.WriteU8(h.Version)
	// The total length is unknown until the rest of the movie has been
	// rendered; the caller backpatches this with WriteU32At once it is.
	w.WriteU32(0)
}

// Movie is a parsed SWF file: its container header plus the stage,
// timeline, and tag list it carries.
type Movie struct {
	Compression Compression
	Version     uint8
	FileLength  uint32
	FrameRate   float64
	FrameCount  uint16
	FrameSize   Rect
	Tags        []Tag
	// Symbols maps character ids to the AS3 class names bound to them,
	// as declared by a SymbolClassTag. Reading a Movie populates this
	// from that tag; writing always serializes from here rather than
	// from the SymbolClassTag's own (ignored) field.
	Symbols map[uint16]string

	mm     mmap.MMap
	f      *os.File
	logger *log.Helper
}

// NewMovie returns an empty movie targeting player version 14, the default
// carried by the reference this format was distilled from.
func NewMovie() *Movie {
	return &Movie{Version: 14, Symbols: make(map[uint16]string)}
}

// ReadMovie parses a complete SWF file from data using the default Options.
func ReadMovie(data []byte) (*Movie, error) {
	return readMovie(data, nil, newLogger(nil))
}

func readMovie(data []byte, opts *Options, logger *log.Helper) (*Movie, error) {
	var fast bool
	var maxTagLength uint32
	if opts != nil {
		fast = opts.Fast
		maxTagLength = opts.MaxTagLength
	}

	r := NewStreamReader(data)
	header, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	var body *StreamReader
	switch header.Compression {
	case CompressionZlib:
		plain, err := inflateZlib(r.Bytes()[r.Pos():], int(header.FileLength)-8)
		if err != nil {
			return nil, err
		}
		body = NewStreamReader(plain)
	case CompressionLzma:
		plain, err := inflateMangledLZMA(r.Bytes()[r.Pos():], header.FileLength-8)
		if err != nil {
			return nil, err
		}
		body = NewStreamReader(plain)
	default:
		body = r
	}

	frameSize, err := readFrameSizeRect(body)
	if err != nil {
		return nil, err
	}
	frameRate, err := readFrameRate(body)
	if err != nil {
		return nil, err
	}
	frameCount, err := body.ReadU16()
	if err != nil {
		return nil, err
	}

	m := &Movie{
		Compression: header.Compression,
		Version:     header.Version,
		FileLength:  header.FileLength,
		FrameRate:   frameRate,
		FrameCount:  frameCount,
		FrameSize:   frameSize,
		Symbols:     make(map[uint16]string),
		logger:      logger,
	}

	for {
		id, length, err := readTagHeader(body)
		if err != nil {
			return nil, err
		}
		if maxTagLength > 0 && length > maxTagLength {
			return nil, &TagTooLargeError{ID: id, Length: length, Max: maxTagLength}
		}
		kind := tagIDFromU16(id)

		if kind == TagIDUnknown {
			raw, err := body.ReadBytes(length)
			if err != nil {
				return nil, err
			}
			logger.Warnf("unknown tag id %#x (%d bytes)", id, length)
			m.Tags = append(m.Tags, readUnknownTag(raw, id))
			continue
		}

		raw, err := body.ReadBytes(length)
		if err != nil {
			return nil, err
		}
		ts := NewStreamReader(raw)
		var tag Tag
		if kind == TagIDDoABC && fast {
			tag, err = readDoABCTagFast(ts)
		} else {
			tag, err = readTag(kind, ts)
		}
		if err != nil {
			return nil, err
		}
		if !ts.Finished() {
			return nil, ErrTagResidue
		}

		if symTag, ok := tag.(SymbolClassTag); ok {
			for id, name := range symTag.Symbols {
				m.Symbols[id] = name
			}
		}

		m.Tags = append(m.Tags, tag)
		if kind == TagIDEnd {
			break
		}
	}

	return m, nil
}

// Write renders m back to its SWF byte representation, recompressing the
// body per m.Compression. The header's file-length field always records
// the uncompressed size (header plus body), matching the convention that
// a SWF's length is independent of its on-disk compression.
func (m *Movie) Write() ([]byte, error) {
	body := NewStreamWriter(0)
	writeFrameSizeRect(body, m.FrameSize)
	writeFrameRate(body, m.FrameRate)
	body.WriteU16(m.FrameCount)

	for _, tag := range m.Tags {
		scratch := NewStreamWriter(0)
		writeTag(scratch, tag, m)
		payload := scratch.Bytes()

		writeTagHeader(body, tagIDOf(tag), uint32(len(payload)))
		body.WriteExact(payload)
	}

	var payload []byte
	var err error
	switch m.Compression {
	case CompressionZlib:
		payload, err = deflateZlib(body.Bytes())
	case CompressionLzma:
		payload, err = deflateMangledLZMA(body.Bytes())
	default:
		payload = body.Bytes()
	}
	if err != nil {
		return nil, err
	}

	w := NewStreamWriter(8 + len(payload))
	writeHeader(w, Header{Compression: m.Compression, Version: m.Version})
	w.WriteExact(payload)
	w.WriteU32At(uint32(8+len(body.Bytes())), 4)

	return w.Bytes(), nil
}

func readFrameSizeRect(r *StreamReader) (Rect, error) {
	// The frame-size rect is the one bit-packed field preceding the
	// byte-aligned frame rate and frame count, so it gets its own
	// byte-to-bit bridge here rather than sharing a BitReader with
	// anything else in the frame header.
	start := r.Pos()
	br := NewBitReader(r.Bytes()[start:])
	rect, err := readRect(br)
	if err != nil {
		return Rect{}, err
	}
	if _, err := r.Skip(br.BytePos()); err != nil {
		return Rect{}, err
	}
	return rect, nil
}

func writeFrameSizeRect(w *StreamWriter, rect Rect) {
	bw := NewBitWriter()
	writeRect(bw, rect)
	bw.Flush()
	w.WriteExact(bw.Bytes())
}

// readFrameRate decodes the fractional 8.8 fixed-point frame rate: the
// low byte is a 256ths-of-a-frame fraction, the high byte is the integer
// frame count per second.
func readFrameRate(r *StreamReader) (float64, error) {
	low, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	high, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	return float64(high) + float64(low)/256.0, nil
}

func writeFrameRate(w *StreamWriter, rate float64) {
	integral := math.Floor(rate)
	fraction := rate - integral
	w.WriteU8(uint8(fraction * 256))
	w.WriteU8(uint8(integral))
}

// readTagHeader reads one tag's id/length framing, resolving the long
// form (0x3F length nibble followed by a u32) when present.
func readTagHeader(r *StreamReader) (id uint16, length uint32, err error) {
	hdr, err := r.ReadU16()
	if err != nil {
		return 0, 0, err
	}
	id = hdr >> 6
	length = uint32(hdr & 0x3F)
	if length == 0x3F {
		length, err = r.ReadU32()
		if err != nil {
			return 0, 0, err
		}
	}
	return id, length, nil
}

func writeTagHeader(w *StreamWriter, id uint16, length uint32) {
	if length < 0x3F {
		w.WriteU16(id<<6 | uint16(length))
		return
	}
	w.WriteU16(id<<6 | 0x3F)
	w.WriteU32(length)
}

func inflateZlib(data []byte, sizeHint int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	buf := bytes.NewBuffer(make([]byte, 0, sizeHint))
	if _, err := io.Copy(buf, zr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deflateZlib(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Frame1 returns the movie's primary DoABC tag, named "frame1" by
// convention by the official compiler.
func (m *Movie) Frame1() *DoABCTag {
	for i := range m.Tags {
		if abc, ok := m.Tags[i].(DoABCTag); ok && abc.Name == "frame1" {
			return &abc
		}
	}
	return nil
}

// Binaries returns every DefineBinaryDataTag embedded in the movie.
func (m *Movie) Binaries() []DefineBinaryDataTag {
	var out []DefineBinaryDataTag
	for _, tag := range m.Tags {
		if bin, ok := tag.(DefineBinaryDataTag); ok {
			out = append(out, bin)
		}
	}
	return out
}
