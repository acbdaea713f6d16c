// Copyright (c) The go-boot authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package efi

import (
	"fmt"
)

// EFI_STATUS error bit
const errorBit = 1 << 63

// EFI_STATUS codes (without error bit)
const (
	EFI_SUCCESS = iota
	EFI_LOAD_ERROR
	EFI_INVALID_PARAMETER
	EFI_UNSUPPORTED
	EFI_BAD_BUFFER_SIZE
	EFI_BUFFER_TOO_SMALL
	EFI_NOT_READY
	EFI_DEVICE_ERROR
	EFI_WRITE_PROTECTED
	EFI_OUT_OF_RESOURCES
)

// EFI_STATUS warning codes
const (
	EFI_WARN_UNKNOWN_GLYPH = 1
)

// error code names, warnings are never converted to [Error]
var statusNames = map[uint64]string{
	EFI_LOAD_ERROR:        "EFI_LOAD_ERROR",
	EFI_INVALID_PARAMETER: "EFI_INVALID_PARAMETER",
	EFI_UNSUPPORTED:       "EFI_UNSUPPORTED",
	EFI_BAD_BUFFER_SIZE:   "EFI_BAD_BUFFER_SIZE",
	EFI_BUFFER_TOO_SMALL:  "EFI_BUFFER_TOO_SMALL",
	EFI_NOT_READY:         "EFI_NOT_READY",
	EFI_DEVICE_ERROR:      "EFI_DEVICE_ERROR",
	EFI_WRITE_PROTECTED:   "EFI_WRITE_PROTECTED",
	EFI_OUT_OF_RESOURCES:  "EFI_OUT_OF_RESOURCES",
}

// Error represents a failed EFI service call.
type Error struct {
	Status uint64
}

// Common EFI service errors
var (
	ErrUnsupported    = &Error{Status: errorBit | EFI_UNSUPPORTED}
	ErrDeviceError    = &Error{Status: errorBit | EFI_DEVICE_ERROR}
	ErrInvalidParam   = &Error{Status: errorBit | EFI_INVALID_PARAMETER}
	ErrNotReady       = &Error{Status: errorBit | EFI_NOT_READY}
	ErrBufferTooSmall = &Error{Status: errorBit | EFI_BUFFER_TOO_SMALL}
)

// Code returns the status code without the error bit.
func (e *Error) Code() uint64 {
	return e.Status &^ errorBit
}

func (e *Error) Error() string {
	if name, ok := statusNames[e.Code()]; ok {
		return fmt.Sprintf("EFI_STATUS error %#x (%s)", e.Status, name)
	}

	return fmt.Sprintf("EFI_STATUS error %#x (%d)", e.Status, e.Code())
}

// Is reports whether the target is an [*Error] with the same status.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Status == e.Status
}

// parseStatus converts an EFI_STATUS to an error, warnings (error bit clear)
// such as EFI_WARN_UNKNOWN_GLYPH report completed operations and are not
// errors.
func parseStatus(status uint64) (err error) {
	if status&errorBit == 0 {
		return
	}

	return &Error{Status: status}
}
