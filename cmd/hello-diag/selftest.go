// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && amd64 && selftest

package main

import (
	"github.com/usbarmory/efi-hello/boot"
	"github.com/usbarmory/efi-hello/selftest"
)

func init() {
	setup = func(e *boot.Entry) {
		selftest.Register(e.Console, boot.Stall)
	}
}
