// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package selftest provides the on-target self-test procedures executed by
// images built with the `selftest` tag.
package selftest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/usbarmory/efi-hello/boot"
	"github.com/usbarmory/efi-hello/console"
	"github.com/usbarmory/efi-hello/harness"
	"github.com/usbarmory/efi-hello/logger"
)

// StallTime is the stall duration exercised by the stall test.
const StallTime = 1 * time.Millisecond

// Register adds the self-test procedures to the harness registry, sink must
// be the console backing the installed logger.
func Register(sink console.Sink, timer boot.Timer) {
	harness.Add(harness.Test{Name: "example", Fn: Example})
	harness.Add(harness.Test{Name: "levels", Fn: func() { Levels(sink) }})
	harness.Add(harness.Test{Name: "stall", Fn: func() { Stall(timer) }})
}

// Example logs a single record.
func Example() {
	slog.Info("hi!!!")
}

// Levels logs a record for each severity and verifies that the console
// color is restored after each one.
func Levels(sink console.Sink) {
	prev := sink.Foreground()

	for l := logger.LevelTrace; l <= logger.LevelError; l++ {
		slog.Log(context.Background(), l.Slog(), fmt.Sprintf("%s record", l))

		if c := sink.Foreground(); c != prev {
			harness.Failf("color not restored after %s record (%s != %s)", l, c, prev)
		}
	}
}

// Stall verifies that stalling advances the clock.
func Stall(timer boot.Timer) {
	start := time.Now()
	timer.Stall(uint64(StallTime / time.Microsecond))

	// tolerate coarse timer resolution
	if elapsed := time.Since(start); elapsed < StallTime/2 {
		harness.Failf("stall too short (%v < %v)", elapsed, StallTime)
	}
}
