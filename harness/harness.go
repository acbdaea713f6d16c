// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package harness implements a self-hosted test runner for environments
// where `go test` cannot execute, such as UEFI applications.
//
// Tests are zero argument procedures which signal failure by panicking, as
// no process boundary exists to isolate them a failing test terminates the
// whole run and no further test is executed.
package harness

import (
	"fmt"
	"log/slog"
)

// Test represents a self-test procedure.
type Test struct {
	// Name identifies the test in log records.
	Name string
	// Fn runs the test, failures must panic (see [Failf]).
	Fn func()
}

var tests []Test

// Add registers a test, it is meant to be invoked from init() functions so
// that the registry is complete before the harness runs.
func Add(t Test) {
	tests = append(tests, t)
}

// Registered returns all registered tests in registration order.
func Registered() []Test {
	return append([]Test(nil), tests...)
}

// Failf aborts the current test.
func Failf(format string, a ...any) {
	panic(fmt.Sprintf(format, a...))
}

// Runner executes tests sequentially, its state is Running(Index()) until
// Completed() is true.
type Runner struct {
	// Log receives the harness records.
	Log *slog.Logger

	index     int
	completed bool
}

// Index returns the index of the running test, or the number of executed
// tests once completed.
func (r *Runner) Index() int {
	return r.index
}

// Completed returns whether all tests have returned.
func (r *Runner) Completed() bool {
	return r.completed
}

// Run executes the argument tests in order, it returns only if none of them
// panics.
func (r *Runner) Run(tests []Test) {
	log := r.Log

	if log == nil {
		log = slog.Default()
	}

	r.index = 0
	r.completed = false

	log.Info(fmt.Sprintf("running %d tests", len(tests)))

	// reported while the panic unwinds, which is not recovered
	defer func() {
		if !r.completed && r.index < len(tests) {
			log.Error(fmt.Sprintf("test %s aborted", tests[r.index].Name), "index", r.index)
		}
	}()

	for ; r.index < len(tests); r.index++ {
		t := tests[r.index]
		log.Debug("running test", "name", t.Name)
		t.Fn()
	}

	r.completed = true
}

// Run executes the argument tests in order, see [Runner.Run].
func Run(log *slog.Logger, tests []Test) {
	r := &Runner{Log: log}
	r.Run(tests)
}
