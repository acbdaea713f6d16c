// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && amd64

package boot

import (
	"errors"
	"io"
	"log"

	"github.com/usbarmory/go-boot/uefi"
	"github.com/usbarmory/go-boot/uefi/x64"

	"github.com/usbarmory/efi-hello/console"
	"github.com/usbarmory/efi-hello/efi"
)

// Services represents the UEFI services, available once the [Firmware] entry
// has initialized runtime support.
var Services *efi.Services

// Stall represents the EFI Boot Services timing service.
var Stall Timer = TimerFunc(func(microseconds uint64) {
	Services.Boot.Stall(microseconds)
})

// Firmware returns a boot entry logging on the EFI console, or on the serial
// port when serial is true. Console failures are reported on the serial port
// and on the EFI standard error output.
func Firmware(banner string, serial bool) (e *Entry) {
	e = &Entry{
		AddSource: true,
		Banner:    banner,
		SelfTest:  SelfTest,
		Watchdog: func(sec int) error {
			return x64.UEFI.Boot.SetWatchdogTimer(sec)
		},
	}

	e.Init = func() (err error) {
		t := x64.UEFI.SystemTable

		if t == nil || x64.UEFI.Boot == nil {
			return errors.New("EFI services unavailable")
		}

		if Services, err = efi.New(t.ConOut, t.StdErr, t.BootServices); err != nil {
			return
		}

		e.Console = Services.Console
		e.Fallback = io.MultiWriter(x64.UART0, Services.StdErr)

		if serial {
			e.Console = console.NewTerminal(x64.UART0)
			e.Fallback = Services.StdErr
		}

		return
	}

	return
}

// Exit returns control to firmware with the argument status, the system is
// shut down if this is not possible.
func Exit(status Status) {
	log.Printf("exiting with status %#x", uint64(status))

	if err := x64.UEFI.Boot.Exit(int(status)); err != nil {
		log.Printf("halting due to exit error, %v", err)
		x64.UEFI.Runtime.ResetSystem(uefi.EfiResetShutdown)
	}
}
