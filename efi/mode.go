// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !tamago

package efi

// Mode returns the current EFI_SIMPLE_TEXT_OUTPUT_MODE, firmware memory is
// only accessible under GOOS=tamago.
func (c *Console) Mode() (*OutputMode, error) {
	return nil, ErrUnsupported
}
