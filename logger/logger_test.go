// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/usbarmory/efi-hello/console"
)

var errDevice = errors.New("EFI_DEVICE_ERROR")

func TestColors(t *testing.T) {
	want := map[Level]console.Color{
		LevelError: console.Red,
		LevelWarn:  console.Yellow,
		LevelInfo:  console.Green,
		LevelDebug: console.Blue,
		LevelTrace: console.Magenta,
	}

	seen := make(map[console.Color]Level)

	for l := LevelTrace; l < levels; l++ {
		c := l.Color()

		if c != want[l] {
			t.Errorf("level %s: got color %s, want %s", l, c, want[l])
		}

		if prev, ok := seen[c]; ok {
			t.Errorf("levels %s and %s share color %s", prev, l, c)
		}

		seen[c] = l
	}
}

func TestLevelOrder(t *testing.T) {
	if !(LevelError > LevelWarn && LevelWarn > LevelInfo && LevelInfo > LevelDebug && LevelDebug > LevelTrace) {
		t.Fatal("levels not ranked by urgency")
	}
}

func TestSlogLevels(t *testing.T) {
	for l := LevelTrace; l < levels; l++ {
		if got := FromSlog(l.Slog()); got != l {
			t.Errorf("round trip of %s returned %s", l, got)
		}
	}

	tests := []struct {
		in   slog.Level
		want Level
	}{
		{slog.LevelError + 4, LevelError},
		{slog.LevelWarn + 1, LevelWarn},
		{slog.LevelInfo + 2, LevelInfo},
		{slog.LevelDebug - 1, LevelTrace},
		{SlogTrace - 8, LevelTrace},
	}

	for _, tt := range tests {
		if got := FromSlog(tt.in); got != tt.want {
			t.Errorf("FromSlog(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if got := Level(42).Color(); got != console.Red {
		t.Errorf("out of range level got color %s", got)
	}
}

func TestEnabled(t *testing.T) {
	l := New(console.NewMemory(console.LightGray), nil)

	for _, lvl := range []slog.Level{SlogTrace, slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if !l.Enabled(context.Background(), lvl) {
			t.Errorf("level %v disabled", lvl)
		}
	}
}

func TestLogColor(t *testing.T) {
	for l := LevelTrace; l < levels; l++ {
		m := console.NewMemory(console.White)
		New(m, nil).Log(Record{Level: l, Message: "msg"})

		want := []console.Event{
			{Kind: console.ColorEvent, Color: l.Color()},
			{Kind: console.WriteEvent, Text: "[" + strings.Repeat(" ", 5-len(l.String())) + l.String() + "]: msg\n"},
			{Kind: console.ColorEvent, Color: console.White},
		}

		if diff := cmp.Diff(want, m.Events); diff != "" {
			t.Errorf("level %s: unexpected events (-want +got):\n%s", l, diff)
		}
	}
}

func TestLogRestoresColor(t *testing.T) {
	tests := []struct {
		name     string
		writeErr error
		colorErr error
	}{
		{"success", nil, nil},
		{"write failure", errDevice, nil},
		{"color failure", nil, errDevice},
		{"both", errDevice, errDevice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for lvl := LevelTrace; lvl < levels; lvl++ {
				var fallback bytes.Buffer

				m := console.NewMemory(console.Cyan)
				m.WriteErr = tt.writeErr
				m.ColorErr = tt.colorErr

				New(m, &Options{Fallback: &fallback}).Log(Record{Level: lvl, Message: "x"})

				if fg := m.Foreground(); fg != console.Cyan {
					t.Fatalf("level %s: color not restored, got %s", lvl, fg)
				}

				failed := tt.writeErr != nil || tt.colorErr != nil

				if failed != (fallback.Len() > 0) {
					t.Fatalf("level %s: unexpected fallback output %q", lvl, fallback.String())
				}

				if n := strings.Count(fallback.String(), "\n"); failed && n != 1 {
					t.Fatalf("level %s: expected a single fallback report, got %d", lvl, n)
				}
			}
		})
	}
}

type panicSink struct {
	*console.Memory
}

func (s panicSink) Write(p []byte) (int, error) {
	panic("console fault")
}

func TestLogRestoresColorOnPanic(t *testing.T) {
	m := console.NewMemory(console.LightGray)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()

		New(panicSink{m}, nil).Log(Record{Level: LevelError, Message: "x"})
	}()

	if fg := m.Foreground(); fg != console.LightGray {
		t.Fatalf("color not restored, got %s", fg)
	}
}

func TestHelloWorld(t *testing.T) {
	for _, writeErr := range []error{nil, errDevice} {
		var fallback bytes.Buffer

		m := console.NewMemory(console.LightGray)
		m.WriteErr = writeErr

		r := &Registry{}
		log, err := r.Install(New(m, &Options{Fallback: &fallback}))

		if err != nil {
			t.Fatal(err)
		}

		log.Info("hello, world!")

		want := []console.Event{
			{Kind: console.ColorEvent, Color: console.Green},
			{Kind: console.WriteEvent, Text: "[ INFO]: hello, world!\n", Failed: writeErr != nil},
			{Kind: console.ColorEvent, Color: console.LightGray},
		}

		if diff := cmp.Diff(want, m.Events); diff != "" {
			t.Fatalf("unexpected events (-want +got):\n%s", diff)
		}

		if writeErr == nil {
			if fallback.Len() != 0 {
				t.Fatalf("unexpected fallback output %q", fallback.String())
			}

			continue
		}

		if !strings.Contains(fallback.String(), "EFI_DEVICE_ERROR") || !strings.Contains(fallback.String(), "hello, world!") {
			t.Fatalf("unexpected fallback output %q", fallback.String())
		}
	}
}

func TestHandleAttrs(t *testing.T) {
	m := console.NewMemory(console.LightGray)
	log := slog.New(New(m, nil))

	log.With("image", "hello").WithGroup("test").Warn("done", "name", "stall check", "n", 3)
	log.Log(context.Background(), SlogTrace, "trace", slog.Group("g", "k", ""))

	want := "[ WARN]: done image=hello test.name=\"stall check\" test.n=3\n" +
		"[TRACE]: trace g.k=\"\"\n"

	if got := m.String(); got != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}

	if fg := m.Events[len(m.Events)-3].Color; fg != console.Magenta {
		t.Fatalf("trace record rendered in %s", fg)
	}
}

func TestAddSource(t *testing.T) {
	m := console.NewMemory(console.LightGray)
	log := slog.New(New(m, &Options{AddSource: true}))

	log.Error("failure")

	if !regexp.MustCompile(`^\[ERROR\]: logger_test\.go@\d{3,}: failure\n$`).MatchString(m.String()) {
		t.Fatalf("unexpected output %q", m.String())
	}
}

type flushSink struct {
	*console.Memory
	err     error
	flushed int
}

func (s *flushSink) Flush() error {
	s.flushed++
	return s.err
}

func TestFlush(t *testing.T) {
	var fallback bytes.Buffer

	New(console.NewMemory(console.LightGray), &Options{Fallback: &fallback}).Flush()

	s := &flushSink{Memory: console.NewMemory(console.LightGray), err: errDevice}
	New(s, &Options{Fallback: &fallback}).Flush()

	if s.flushed != 1 {
		t.Fatalf("sink flushed %d times", s.flushed)
	}

	if !strings.Contains(fallback.String(), "could not flush") {
		t.Fatalf("unexpected fallback output %q", fallback.String())
	}

	if len(s.Events) != 0 {
		t.Fatal("flush failure reported through the console")
	}
}

func TestInstall(t *testing.T) {
	r := &Registry{}

	if r.Active() != nil {
		t.Fatal("unexpected active logger")
	}

	first := New(console.NewMemory(console.LightGray), nil)

	if _, err := r.Install(first); err != nil {
		t.Fatal(err)
	}

	if _, err := r.Install(New(console.NewMemory(console.LightGray), nil)); !errors.Is(err, ErrInstalled) {
		t.Fatalf("unexpected error %v", err)
	}

	if r.Active() != first {
		t.Fatal("second installation replaced the active logger")
	}

	if _, err := (&Registry{}).Install(nil); err == nil {
		t.Fatal("expected error")
	}
}
