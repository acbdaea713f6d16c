// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package boot implements the entry procedure shared by UEFI application
// images: runtime support initialization, logger installation, startup
// records and optional self-test, followed by a variant specific tail.
package boot

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/hako/durafmt"

	"github.com/usbarmory/efi-hello/console"
	"github.com/usbarmory/efi-hello/harness"
	"github.com/usbarmory/efi-hello/logger"
)

// Status represents the EFI_STATUS returned to firmware.
type Status uint64

// StatusSuccess represents EFI_SUCCESS.
const StatusSuccess Status = 0

// Timer represents the firmware timing service.
type Timer interface {
	// Stall blocks for the argument number of microseconds.
	Stall(microseconds uint64)
}

// TimerFunc adapts a function to the [Timer] interface.
type TimerFunc func(microseconds uint64)

// Stall calls f(microseconds).
func (f TimerFunc) Stall(microseconds uint64) {
	f(microseconds)
}

// Entry represents the boot entry configuration.
type Entry struct {
	// Init initializes runtime support, its failure is fatal.
	Init func() error
	// Setup, when set, is invoked after Init with the resulting
	// configuration (e.g. to register tests on the selected Console).
	Setup func(e *Entry)

	// Console receives log records.
	Console console.Sink
	// Fallback receives console failure reports.
	Fallback io.Writer
	// AddSource controls whether records carry their source location.
	AddSource bool

	// Registry receives the logger installation (defaults to
	// [logger.Global]).
	Registry *logger.Registry

	// Banner is the startup record message.
	Banner string
	// Revision and Build identify the image in debug records.
	Revision string
	Build    string
	// Warnings are logged right after the startup records, they collect
	// configuration errors raised before the logger is installed.
	Warnings []error

	// SelfTest controls whether Tests are executed after startup.
	SelfTest bool
	// Tests represents the self-test procedures (defaults to
	// [harness.Registered]).
	Tests []harness.Test

	// Watchdog, when set, is invoked with a zero timeout before idling to
	// disable the firmware watchdog timer.
	Watchdog func(sec int) error
	// Wait is invoked on each idle loop iteration (defaults to
	// [runtime.Gosched]).
	Wait func()

	log *slog.Logger
}

// Log returns the installed logger front end, nil before start.
func (e *Entry) Log() *slog.Logger {
	return e.log
}

func (e *Entry) start() {
	if e.Init != nil {
		if err := e.Init(); err != nil {
			panic(fmt.Sprintf("could not initialize runtime support, %v", err))
		}
	}

	if e.Setup != nil {
		e.Setup(e)
	}

	registry := e.Registry

	if registry == nil {
		registry = logger.Global
	}

	l := logger.New(e.Console, &logger.Options{
		Fallback:  e.Fallback,
		AddSource: e.AddSource,
	})

	log, err := registry.Install(l)

	if err != nil {
		panic(fmt.Sprintf("could not install logger, %v", err))
	}

	e.log = log

	e.log.Info(e.Banner)
	e.log.Debug(fmt.Sprintf("%s/%s (%s)", runtime.GOOS, runtime.GOARCH, runtime.Version()))

	if bi, ok := debug.ReadBuildInfo(); ok {
		e.log.Log(context.Background(), logger.SlogTrace, "build", "path", bi.Path, "main", bi.Main.Version)
	}

	if e.Revision != "" {
		e.log.Debug("image", "revision", e.Revision, "build", e.Build)
	}

	for _, err := range e.Warnings {
		e.log.Warn(err.Error())
	}

	if !e.SelfTest {
		return
	}

	tests := e.Tests

	if tests == nil {
		tests = harness.Registered()
	}

	harness.Run(e.log, tests)
}

// Idle runs the boot entry and then idles forever, it never returns.
func (e *Entry) Idle() {
	e.start()

	if e.Watchdog != nil {
		if err := e.Watchdog(0); err != nil {
			e.log.Warn(fmt.Sprintf("could not disable watchdog, %v", err))
		}
	}

	wait := e.Wait

	if wait == nil {
		wait = runtime.Gosched
	}

	e.log.Debug("idle")

	for {
		wait()
	}
}

// DefaultStallTime is the stall duration used when none, or an invalid one, is
// configured.
const DefaultStallTime = 10 * time.Second

// ParseStallTime parses a Go duration string into microseconds, on error
// [DefaultStallTime] is returned along with the error.
func ParseStallTime(s string) (microseconds uint64, err error) {
	if s == "" {
		return uint64(DefaultStallTime / time.Microsecond), nil
	}

	d, err := time.ParseDuration(s)

	switch {
	case err != nil:
		err = fmt.Errorf("invalid stall time, %v", err)
	case d < 0:
		err = fmt.Errorf("invalid stall time, negative duration %s", s)
	}

	if err != nil {
		d = DefaultStallTime
	}

	return uint64(d / time.Microsecond), err
}

// Run runs the boot entry, stalls for the argument number of microseconds
// and returns success.
func (e *Entry) Run(timer Timer, microseconds uint64) Status {
	e.start()

	d := time.Duration(math.MaxInt64)

	if microseconds < uint64(d/time.Microsecond) {
		d = time.Duration(microseconds) * time.Microsecond
	}

	e.log.Info(fmt.Sprintf("stalling for %s", durafmt.Parse(d)))

	timer.Stall(microseconds)

	e.log.Debug("stall complete")

	return StatusSuccess
}
