// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package efi implements the Unified Extensible Firmware Interface (UEFI)
// console and timing services used for early boot logging, following the
// specifications at:
//
//	https://uefi.org/specs/UEFI/2.10/
//
// Firmware handshake and EFI System Table decoding are left to
// github.com/usbarmory/go-boot/uefi/x64, this package operates on the
// protocol pointers it exposes.
//
// This package is only meant to be used with `GOOS=tamago` as
// supported by the TamaGo framework for bare metal Go, see
// https://github.com/usbarmory/tamago.
package efi

import (
	"encoding/binary"
	"errors"
	"unsafe"
)

// This function helps preparing callService arguments, allowing a single call
// for all EFI services with 4 or less arguments.
//
// Obtaining a pointer in this fashion is typically unsafe and tamago/dma
// package would be best to handle this. However, as arguments are prepared
// right before invoking Go assembly, it is considered safe as it is identical
// as having *uint64 as callService prototype.
func ptrval(ptr any) uint64 {
	var p unsafe.Pointer

	switch v := ptr.(type) {
	case *uint64:
		p = unsafe.Pointer(v)
	case *byte:
		p = unsafe.Pointer(v)
	default:
		panic("internal error, invalid ptrval")
	}

	return uint64(uintptr(p))
}

// pointer represents a firmware table slot holding an address.
type pointer uint64

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
func (p *pointer) UnmarshalBinary(data []byte) (err error) {
	if len(data) < 8 {
		return errors.New("invalid pointer size")
	}

	*p = pointer(binary.LittleEndian.Uint64(data))

	return
}

// BootServices represents an EFI Boot Services instance.
type BootServices struct {
	base uint64
}

// Services represents the UEFI services used by the boot logging stack.
type Services struct {
	// Console represents the EFI console output (ConOut).
	Console *Console
	// StdErr represents the EFI standard error output.
	StdErr *Console
	// Boot represents the EFI Boot Services.
	Boot *BootServices
}

// New initializes UEFI services from the EFI System Table ConOut, StdErr and
// BootServices pointers.
func New(conOut uint64, stdErr uint64, bootServices uint64) (s *Services, err error) {
	if conOut == 0 {
		return nil, errors.New("EFI Simple Text Output pointer is nil")
	}

	if bootServices == 0 {
		return nil, errors.New("EFI Boot Services pointer is nil")
	}

	s = &Services{
		Console: &Console{
			ForceLine:   true,
			ReplaceTabs: 8,
			Out:         conOut,
		},
		StdErr: &Console{
			ForceLine:   true,
			ReplaceTabs: 8,
			Out:         stdErr,
		},
		Boot: &BootServices{
			base: bootServices,
		},
	}

	return
}
