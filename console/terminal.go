// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package console

import (
	"bytes"
	"io"

	"golang.org/x/term"
)

// Terminal implements [Sink] over a VT100 compatible connection, such as a
// serial port, by means of color escape sequences.
type Terminal struct {
	// ForceLine controls whether line feeds (LF) should be supplemented
	// with a carriage return (CR).
	ForceLine bool

	w   io.Writer
	esc *term.EscapeCodes
	fg  Color
}

// NewTerminal returns a VT100 sink over the argument connection, the
// foreground color is assumed to be the terminal default (LightGray).
func NewTerminal(rw io.ReadWriter) *Terminal {
	t := term.NewTerminal(rw, "")

	return &Terminal{
		w:   rw,
		esc: t.Escape,
		fg:  LightGray,
	}
}

func (t *Terminal) escape(c Color) []byte {
	switch c {
	case Black, DarkGray:
		return t.esc.Black
	case Blue, LightBlue:
		return t.esc.Blue
	case Green, LightGreen:
		return t.esc.Green
	case Cyan, LightCyan:
		return t.esc.Cyan
	case Red, LightRed:
		return t.esc.Red
	case Magenta, LightMagenta:
		return t.esc.Magenta
	case Brown, Yellow:
		return t.esc.Yellow
	case White:
		return t.esc.White
	default:
		return t.esc.Reset
	}
}

// Write data from buffer to the terminal.
func (t *Terminal) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return
	}

	buf := p

	if t.ForceLine {
		buf = bytes.ReplaceAll(p, []byte{'\n'}, []byte{'\r', '\n'})
	}

	if _, err = t.w.Write(buf); err != nil {
		return
	}

	return len(p), nil
}

// Foreground returns the current foreground color.
func (t *Terminal) Foreground() Color {
	return t.fg
}

// SetForeground emits the escape sequence for the argument color.
func (t *Terminal) SetForeground(c Color) (err error) {
	if _, err = t.w.Write(t.escape(c)); err != nil {
		return
	}

	t.fg = c

	return
}
