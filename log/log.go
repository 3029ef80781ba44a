// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package log is a minimal structured logger modeled on go-kratos/kratos's
// log package: a Logger that accepts alternating key/value pairs, a Helper
// offering leveled printf-style convenience methods, and a level Filter
// that can be composed around any Logger.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Level is a log severity.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Logger is the minimal logging sink: a leveled message plus an even
// number of key/value fields.
type Logger interface {
	Log(level Level, keyvals ...interface{}) error
}

// stdLogger writes to an underlying io.Writer via the standard library's
// log.Logger, one line per call.
type stdLogger struct {
	mu  sync.Mutex
	log *log.Logger
}

// NewStdLogger returns a Logger that renders each call as a single line
// of "level=X msg=... k=v ..." to w.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{log: log.New(w, "", log.LstdFlags)}
}

func (l *stdLogger) Log(level Level, keyvals ...interface{}) error {
	if len(keyvals) == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	buf := fmt.Sprintf("level=%s", level.String())
	for i := 0; i < len(keyvals); i += 2 {
		val := interface{}("MISSING")
		if i+1 < len(keyvals) {
			val = keyvals[i+1]
		}
		buf += fmt.Sprintf(" %v=%v", keyvals[i], val)
	}
	l.log.Println(buf)
	return nil
}

// FilterOption configures a Filter.
type FilterOption func(*Filter)

// FilterLevel drops any Log call below level.
func FilterLevel(level Level) FilterOption {
	return func(f *Filter) { f.level = level }
}

// Filter wraps a Logger, suppressing calls below its configured level.
type Filter struct {
	logger Logger
	level  Level
}

// NewFilter returns logger wrapped with the given options applied.
func NewFilter(logger Logger, opts ...FilterOption) *Filter {
	f := &Filter{logger: logger, level: LevelDebug}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Filter) Log(level Level, keyvals ...interface{}) error {
	if level < f.level {
		return nil
	}
	return f.logger.Log(level, keyvals...)
}

// Helper adds leveled printf-style convenience methods atop a Logger.
type Helper struct {
	logger Logger
}

// NewHelper wraps logger with Helper's convenience methods.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

func (h *Helper) log(level Level, format string, args ...interface{}) {
	_ = h.logger.Log(level, "msg", fmt.Sprintf(format, args...))
}

func (h *Helper) Debugf(format string, args ...interface{}) { h.log(LevelDebug, format, args...) }
func (h *Helper) Infof(format string, args ...interface{})  { h.log(LevelInfo, format, args...) }
func (h *Helper) Warnf(format string, args ...interface{})  { h.log(LevelWarn, format, args...) }
func (h *Helper) Errorf(format string, args ...interface{}) { h.log(LevelError, format, args...) }

func (h *Helper) Fatalf(format string, args ...interface{}) {
	h.log(LevelFatal, format, args...)
	os.Exit(1)
}
