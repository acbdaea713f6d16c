// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago

package efi

import (
	"encoding"
	"encoding/binary"
	"errors"

	"github.com/usbarmory/tamago/dma"
)

// decode reads a firmware owned structure at the argument address.
func decode(v encoding.BinaryUnmarshaler, size int, addr uint64) (err error) {
	if addr == 0 {
		return errors.New("invalid address")
	}

	r, err := dma.NewRegion(uint(addr), size, false)

	if err != nil {
		return
	}

	ptr, buf := r.Reserve(size, 0)
	defer r.Release(ptr)

	return v.UnmarshalBinary(buf)
}

// Mode returns the current EFI_SIMPLE_TEXT_OUTPUT_MODE.
func (c *Console) Mode() (m *OutputMode, err error) {
	var addr pointer

	if err = decode(&addr, 8, c.Out+mode); err != nil {
		return
	}

	m = &OutputMode{}
	err = decode(m, binary.Size(m), uint64(addr))

	return
}
