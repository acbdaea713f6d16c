// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package logger

import (
	"log/slog"

	"github.com/usbarmory/efi-hello/console"
)

// Level represents a record severity, ranked by urgency.
type Level int

// Severity levels, from least to most urgent.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError

	levels
)

// SlogTrace is the [slog.Level] used for trace records.
const SlogTrace = slog.LevelDebug - 4

// level → console color, indexed by Level to keep the table total
var colors = [levels]console.Color{
	LevelError: console.Red,
	LevelWarn:  console.Yellow,
	LevelInfo:  console.Green,
	LevelDebug: console.Blue,
	LevelTrace: console.Magenta,
}

var tags = [levels]string{
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DEBUG",
	LevelTrace: "TRACE",
}

// FromSlog converts a [slog.Level] to the closest severity level.
func FromSlog(l slog.Level) Level {
	switch {
	case l >= slog.LevelError:
		return LevelError
	case l >= slog.LevelWarn:
		return LevelWarn
	case l >= slog.LevelInfo:
		return LevelInfo
	case l >= slog.LevelDebug:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// Slog returns the [slog.Level] matching the severity level.
func (l Level) Slog() slog.Level {
	switch l.clamp() {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelInfo:
		return slog.LevelInfo
	case LevelDebug:
		return slog.LevelDebug
	default:
		return SlogTrace
	}
}

func (l Level) valid() bool {
	return l >= LevelTrace && l < levels
}

// Color returns the console color assigned to the severity level, out of
// range values are clamped to the nearest level.
func (l Level) Color() console.Color {
	return colors[l.clamp()]
}

// String returns the severity tag.
func (l Level) String() string {
	return tags[l.clamp()]
}

func (l Level) clamp() Level {
	switch {
	case l.valid():
		return l
	case l < LevelTrace:
		return LevelTrace
	default:
		return LevelError
	}
}
