// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package efi

// EFI Boot Services offset for Stall
const stall = 0xf8

// Stall calls EFI_BOOT_SERVICES.Stall(), blocking for the argument number of
// microseconds.
func (s *BootServices) Stall(microseconds uint64) {
	// EFI_SUCCESS is the only status defined for Stall()
	callService(
		s.base+stall,
		microseconds,
		0,
		0,
		0,
	)
}
