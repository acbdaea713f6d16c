// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package efi

// defined in efi_amd64.s
func callService(fn uint64, a1, a2, a3, a4 uint64) (status uint64)
