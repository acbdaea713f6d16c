// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !selftest

package boot

// SelfTest reports whether the image is built with the self-test harness.
const SelfTest = false
