// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package console defines the text console abstraction used for log
// rendering, along with sinks that do not depend on firmware services.
package console

import (
	"fmt"
	"io"
)

// Color represents a console foreground color, values follow the EFI
// Simple Text Output protocol attribute encoding.
type Color uint8

// EFI text colors
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

var colorNames = [...]string{
	Black:        "black",
	Blue:         "blue",
	Green:        "green",
	Cyan:         "cyan",
	Red:          "red",
	Magenta:      "magenta",
	Brown:        "brown",
	LightGray:    "lightgray",
	DarkGray:     "darkgray",
	LightBlue:    "lightblue",
	LightGreen:   "lightgreen",
	LightCyan:    "lightcyan",
	LightRed:     "lightred",
	LightMagenta: "lightmagenta",
	Yellow:       "yellow",
	White:        "white",
}

// String returns the color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}

	return fmt.Sprintf("color(%d)", uint8(c))
}

// Sink represents a text console with a persistent foreground color, the
// color set with SetForeground applies to all subsequent writes until
// changed again.
type Sink interface {
	io.Writer

	// Foreground returns the current foreground color.
	Foreground() Color
	// SetForeground changes the foreground color.
	SetForeground(c Color) error
}
