// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package efi

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/usbarmory/efi-hello/console"
)

// EFI Simple Text Output protocol offsets
const (
	outputString = 0x08
	setAttribute = 0x28
	mode         = 0x48
)

// attribute masks
const (
	foregroundMask = 0x0f
	backgroundMask = 0x07
)

// OutputMode represents the EFI Simple Text Output mode descriptor.
type OutputMode struct {
	MaxMode       int32
	Mode          int32
	Attribute     int32
	CursorColumn  int32
	CursorRow     int32
	CursorVisible uint8
	_             [3]byte
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
func (m *OutputMode) UnmarshalBinary(data []byte) (err error) {
	_, err = binary.Decode(data, binary.LittleEndian, m)
	return
}

// Foreground returns the foreground color of the mode attribute.
func (m *OutputMode) Foreground() console.Color {
	return console.Color(m.Attribute & foregroundMask)
}

// Background returns the background color of the mode attribute.
func (m *OutputMode) Background() console.Color {
	return console.Color((m.Attribute >> 4) & backgroundMask)
}

// Attribute returns the EFI text attribute for the argument colors.
func Attribute(fg console.Color, bg console.Color) uint64 {
	return uint64(bg&backgroundMask)<<4 | uint64(fg&foregroundMask)
}

// Console implements the [console.Sink] interface over EFI Simple Text
// Output protocol.
type Console struct {
	// ForceLine controls whether line feeds (LF) should be supplemented
	// with a carriage return (CR).
	ForceLine bool

	// ReplaceTabs controls whether Console I/O output should have Tab
	// characters replaced with a number of spaces.
	ReplaceTabs int

	// Out represents the EFI Simple Text Output protocol pointer.
	Out uint64
}

// Output calls EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL.OutputString() with an
// UTF-16 string.
func (c *Console) Output(p []byte) (status uint64) {
	if c.Out == 0 {
		return
	}

	// NUL terminated CHAR16 string
	p = append(p, 0x00, 0x00)

	return callService(
		c.Out+outputString,
		c.Out,
		ptrval(&p[0]),
		0,
		0,
	)
}

// encode converts UTF-8 text to the UTF-16 string expected by Output.
func (c *Console) encode(p []byte) (s []byte) {
	// We receive an UTF-8 string but we can output only UTF-16 ones.
	b := utf16.Encode([]rune(string(p)))

	for _, r := range b {
		if r == 0x09 && c.ReplaceTabs > 0 { // Tab
			for i := 0; i < c.ReplaceTabs; i++ {
				s = append(s, []byte{0x20, 0x00}...) // Space
			}
			continue
		}

		if r == 0x0a && c.ForceLine { // LF
			s = append(s, []byte{0x0d, 0x00}...) // CR
		}

		s = append(s, byte(r&0xff))
		s = append(s, byte(r>>8))
	}

	return
}

// Write data from buffer to console.
func (c *Console) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return
	}

	if err = parseStatus(c.Output(c.encode(p))); err != nil {
		return
	}

	return len(p), nil
}

// SetAttribute calls EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL.SetAttribute().
func (c *Console) SetAttribute(attr uint64) (err error) {
	if c.Out == 0 {
		return ErrUnsupported
	}

	status := callService(
		c.Out+setAttribute,
		c.Out,
		attr,
		0,
		0,
	)

	return parseStatus(status)
}

// Foreground returns the current foreground color, the firmware default
// (LightGray) is returned if the mode cannot be read.
func (c *Console) Foreground() console.Color {
	m, err := c.Mode()

	if err != nil {
		return console.LightGray
	}

	return m.Foreground()
}

// SetForeground changes the foreground color, preserving the background one.
func (c *Console) SetForeground(fg console.Color) (err error) {
	bg := console.Black

	if m, err := c.Mode(); err == nil {
		bg = m.Background()
	}

	return c.SetAttribute(Attribute(fg, bg))
}
