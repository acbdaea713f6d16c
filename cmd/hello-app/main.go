// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && amd64

// The hello-app command is a UEFI application which logs its startup
// records, stalls for a configurable time and returns success to firmware.
package main

import (
	"log"

	"github.com/usbarmory/efi-hello/boot"
)

// Configuration, set at link time (e.g. -ldflags "-X main.StallTime=2s").
var (
	Banner    = "hello, world!"
	Console   = "efi"
	StallTime = "10s"
	Revision  string
	Build     string
)

// set in selftest builds
var setup func(e *boot.Entry)

func init() {
	log.SetFlags(0)
}

func main() {
	e := boot.Firmware(Banner, Console == "serial")
	e.Revision = Revision
	e.Build = Build
	e.Setup = setup

	us, err := boot.ParseStallTime(StallTime)

	if err != nil {
		e.Warnings = append(e.Warnings, err)
	}

	boot.Exit(e.Run(boot.Stall, us))
}
