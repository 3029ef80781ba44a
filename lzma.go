// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// A Z-compressed SWF body starts with a 4-byte "compressed data length"
// field that has no equivalent in the standard .lzma container format,
// followed by the usual 5-byte LZMA properties header (1 props byte + a
// 4-byte little-endian dictionary size) and then the raw compressed
// stream, with no trailing 8-byte uncompressed-size field -- that size is
// instead taken from the SWF header's file length. inflateMangledLZMA and
// deflateMangledLZMA translate between this mangled layout and the
// standard 13-byte-header form ulikunitz/xz/lzma expects.

func inflateMangledLZMA(data []byte, uncompressedSize uint32) ([]byte, error) {
	if len(data) < 9 {
		return nil, ErrEndOfStream
	}
	// Skip the 4-byte compressed-length field; the remaining bytes are a
	// 5-byte props+dictsize header directly followed by the raw stream.
	propsAndDict := data[4:9]
	payload := data[9:]

	header := make([]byte, 13)
	copy(header, propsAndDict)
	binary.LittleEndian.PutUint64(header[5:], uint64(uncompressedSize))

	r, err := lzma.NewReader(io.MultiReader(bytes.NewReader(header), bytes.NewReader(payload)))
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, uncompressedSize)
	buf := bytes.NewBuffer(out)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deflateMangledLZMA(data []byte) ([]byte, error) {
	var full bytes.Buffer
	cfg := lzma.WriterConfig{Size: int64(len(data))}
	w, err := cfg.NewWriter(&full)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	raw := full.Bytes()
	propsAndDict := raw[:5]
	payload := raw[13:]

	out := make([]byte, 0, 9+len(payload))
	out = append(out, 0, 0, 0, 0)
	binary.LittleEndian.PutUint32(out[:4], uint32(len(payload)))
	out = append(out, propsAndDict...)
	out = append(out, payload...)
	return out, nil
}
