// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package console

import (
	"strings"
)

// EventKind identifies a console operation recorded by [Memory].
type EventKind int

// Recorded operations
const (
	WriteEvent EventKind = iota
	ColorEvent
)

// Event represents a single console operation.
type Event struct {
	Kind EventKind
	// Text holds the written text (WriteEvent).
	Text string
	// Color holds the requested foreground color (ColorEvent).
	Color Color
	// Failed reports whether the operation returned an error.
	Failed bool
}

// Memory implements [Sink] over an in-memory event log, it is meant as an
// alternate backend for tests.
type Memory struct {
	// Events holds every operation in call order.
	Events []Event

	// WriteErr, when not nil, is returned by all writes.
	WriteErr error
	// ColorErr, when not nil, is returned by all color changes.
	ColorErr error

	fg Color
}

// NewMemory returns a memory sink with the argument initial foreground
// color.
func NewMemory(fg Color) *Memory {
	return &Memory{fg: fg}
}

// Write records the argument text, it does not change the written output on
// failure.
func (m *Memory) Write(p []byte) (n int, err error) {
	m.Events = append(m.Events, Event{
		Kind:   WriteEvent,
		Text:   string(p),
		Failed: m.WriteErr != nil,
	})

	if m.WriteErr != nil {
		return 0, m.WriteErr
	}

	return len(p), nil
}

// Foreground returns the current foreground color.
func (m *Memory) Foreground() Color {
	return m.fg
}

// SetForeground records a color change, the current color is left
// untouched on failure.
func (m *Memory) SetForeground(c Color) (err error) {
	m.Events = append(m.Events, Event{
		Kind:   ColorEvent,
		Color:  c,
		Failed: m.ColorErr != nil,
	})

	if m.ColorErr != nil {
		return m.ColorErr
	}

	m.fg = c

	return
}

// String returns all successfully written text.
func (m *Memory) String() string {
	var b strings.Builder

	for _, e := range m.Events {
		if e.Kind == WriteEvent && !e.Failed {
			b.WriteString(e.Text)
		}
	}

	return b.String()
}

// Reset clears the recorded events.
func (m *Memory) Reset() {
	m.Events = nil
}
