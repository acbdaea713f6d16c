// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !tamago

package efi

import (
	"errors"
	"testing"

	"github.com/usbarmory/efi-hello/console"
)

func TestModeUnavailable(t *testing.T) {
	c := &Console{Out: 0x1000}

	if _, err := c.Mode(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("unexpected error %v", err)
	}

	if fg := c.Foreground(); fg != console.LightGray {
		t.Fatalf("unexpected default color %s", fg)
	}
}
