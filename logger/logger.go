// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package logger implements a severity leveled [slog.Handler] rendering
// records on a text console, with per-severity colors.
//
// The logger is meant for the single threaded execution model of an UEFI
// application, it performs no locking.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"

	"github.com/usbarmory/efi-hello/console"
)

// Record represents a single log record.
type Record struct {
	Level   Level
	Message string

	// File and Line optionally locate the record origin.
	File string
	Line int
}

// Options represents the logger configuration.
type Options struct {
	// Fallback receives console failure reports, it must not route back
	// to the logger (defaults to [os.Stderr]).
	Fallback io.Writer

	// AddSource controls whether records are framed with their source
	// file and line.
	AddSource bool
}

// Logger renders records on a console sink, each record is written with its
// severity color which is then reverted to the console previous one.
type Logger struct {
	sink      console.Sink
	fallback  io.Writer
	addSource bool

	// preformatted attributes and group prefix
	attrs string
	group string
}

// New returns a logger rendering records on the argument sink.
func New(sink console.Sink, opts *Options) *Logger {
	l := &Logger{
		sink:     sink,
		fallback: os.Stderr,
	}

	if opts != nil {
		l.addSource = opts.AddSource

		if opts.Fallback != nil {
			l.fallback = opts.Fallback
		}
	}

	return l
}

// Enabled implements [slog.Handler], all levels are enabled.
func (l *Logger) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Log renders a record, console failures are reported on the fallback
// writer and never returned to the caller.
func (l *Logger) Log(r Record) {
	if !l.Enabled(context.Background(), r.Level.Slog()) {
		return
	}

	text := format(r)

	if err := l.render(r.Level.Color(), text); err != nil {
		msg := strings.ReplaceAll(err.Error(), "\n", "; ")
		fmt.Fprintf(l.fallback, "logger: could not log record, %s: %s", msg, text)
	}
}

// render writes text in the argument color, the console previous color is
// restored on every exit path.
func (l *Logger) render(c console.Color, text []byte) (err error) {
	var errs []error

	prev := l.sink.Foreground()

	defer func() {
		if e := l.sink.SetForeground(prev); e != nil {
			errs = append(errs, fmt.Errorf("could not restore color %s, %w", prev, e))
		}

		err = errors.Join(errs...)
	}()

	if e := l.sink.SetForeground(c); e != nil {
		errs = append(errs, fmt.Errorf("could not set color %s, %w", c, e))
	}

	if _, e := l.sink.Write(text); e != nil {
		errs = append(errs, fmt.Errorf("could not write, %w", e))
	}

	return
}

// Handle implements [slog.Handler], it always returns nil.
func (l *Logger) Handle(_ context.Context, sr slog.Record) error {
	var b strings.Builder

	b.WriteString(sr.Message)
	b.WriteString(l.attrs)

	sr.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, l.group, a)
		return true
	})

	r := Record{
		Level:   FromSlog(sr.Level),
		Message: b.String(),
	}

	if l.addSource && sr.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{sr.PC})
		f, _ := frames.Next()
		r.File = f.File
		r.Line = f.Line
	}

	l.Log(r)

	return nil
}

// WithAttrs implements [slog.Handler].
func (l *Logger) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return l
	}

	var b strings.Builder

	for _, a := range attrs {
		appendAttr(&b, l.group, a)
	}

	c := *l
	c.attrs += b.String()

	return &c
}

// WithGroup implements [slog.Handler].
func (l *Logger) WithGroup(name string) slog.Handler {
	if name == "" {
		return l
	}

	c := *l
	c.group += name + "."

	return &c
}

// Flush completes pending output, console writes are synchronous therefore
// this only has effect on sinks which buffer output.
func (l *Logger) Flush() {
	f, ok := l.sink.(interface{ Flush() error })

	if !ok {
		return
	}

	if err := f.Flush(); err != nil {
		fmt.Fprintf(l.fallback, "logger: could not flush, %v\n", err)
	}
}

// format frames a record as:
//
//	[ INFO]: main.go@012: hello, world!
func format(r Record) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "[%5s]: ", r.Level)

	if r.File != "" {
		fmt.Fprintf(&b, "%s@%03d: ", path.Base(r.File), r.Line)
	}

	b.WriteString(r.Message)

	if !strings.HasSuffix(r.Message, "\n") {
		b.WriteByte('\n')
	}

	return []byte(b.String())
}

func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, g := range a.Value.Group() {
			appendAttr(b, prefix, g)
		}

		return
	}

	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(quote(a.Value.String()))
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " =\"\t\n") {
		return strconv.Quote(s)
	}

	return s
}
