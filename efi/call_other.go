// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !amd64

package efi

func callService(fn uint64, a1, a2, a3, a4 uint64) (status uint64) {
	return errorBit | EFI_UNSUPPORTED
}
