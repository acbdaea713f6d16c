// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && amd64

// The hello-diag command is a diagnostic UEFI application which logs its
// startup records and then idles forever.
package main

import (
	"log"

	"github.com/usbarmory/efi-hello/boot"
)

// Configuration, set at link time (e.g. -ldflags "-X main.Console=serial").
var (
	Banner   = "hello, world!"
	Console  = "efi"
	Revision string
	Build    string
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

	e.Idle()
}
