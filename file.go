// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/Athesdrake/rabc/log"
)

// Options configures how a Movie is opened and parsed.
type Options struct {
	// A custom logger. Defaults to a stderr logger filtered to LevelWarn.
	Logger log.Logger
	// Fast skips collecting exception and trait metadata off DoABC method
	// bodies, keeping only their bytecode. Set this when the caller only
	// needs Disassemble output and not exception tables or traits.
	Fast bool
	// MaxTagLength rejects any tag whose declared length exceeds it,
	// guarding against a corrupt length field inflating allocation. Zero
	// (the default) leaves tag length unbounded.
	MaxTagLength uint32
}

func newLogger(opts *Options) *log.Helper {
	if opts != nil && opts.Logger != nil {
		return log.NewHelper(opts.Logger)
	}
	base := log.NewStdLogger(os.Stderr)
	return log.NewHelper(log.NewFilter(base, log.FilterLevel(log.LevelWarn)))
}

// New memory-maps the file at name and parses it as a Movie. The mapping
// is held open until Close is called.
func New(name string, opts *Options) (*Movie, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	logger := newLogger(opts)
	logger.Debugf("mapped %s (%d bytes)", name, len(data))

	m, err := readMovie(data, opts, logger)
	if err != nil {
		data.Unmap()
		f.Close()
		return nil, err
	}
	m.mm = data
	m.f = f
	return m, nil
}

// NewBytes parses a Movie directly from an in-memory buffer, with no
// backing file to Close.
func NewBytes(data []byte, opts *Options) (*Movie, error) {
	return readMovie(data, opts, newLogger(opts))
}

// Close releases the memory mapping and underlying file handle opened by
// New. It is a no-op for a Movie obtained from NewBytes.
func (m *Movie) Close() error {
	if m.mm != nil {
		_ = m.mm.Unmap()
		m.mm = nil
	}
	if m.f != nil {
		return m.f.Close()
	}
	return nil
}
