// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package logger

import (
	"errors"
	"log/slog"
	"sync/atomic"
)

// ErrInstalled is returned when installing a logger on a registry which
// already has one.
var ErrInstalled = errors.New("logger already installed")

// Registry holds the active logger, installation is one-shot.
type Registry struct {
	// Default controls whether installation also replaces the [slog]
	// default logger, which in turn routes the standard [log] package
	// output to the installed logger.
	Default bool

	active atomic.Pointer[Logger]
}

// Global is the process wide registry.
var Global = &Registry{Default: true}

// Install activates the argument logger and returns its [slog.Logger]
// front end, all subsequent records must be routed through it.
func (r *Registry) Install(l *Logger) (*slog.Logger, error) {
	if l == nil {
		return nil, errors.New("invalid logger")
	}

	if !r.active.CompareAndSwap(nil, l) {
		return nil, ErrInstalled
	}

	s := slog.New(l)

	if r.Default {
		slog.SetDefault(s)
	}

	return s, nil
}

// Active returns the installed logger, nil if none is installed.
func (r *Registry) Active() *Logger {
	return r.active.Load()
}

// Install activates the argument logger on the [Global] registry.
func Install(l *Logger) (*slog.Logger, error) {
	return Global.Install(l)
}

// Active returns the logger installed on the [Global] registry.
func Active() *Logger {
	return Global.Active()
}
