// SPDX-License-Identifier: Apache-2.0
/*
Copyright (C) 2026 The Zen Bridge Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package ptr turns raw pointers received from the foreign caller into
// read-only Go views, without taking ownership of the memory behind them.
//
// Every function here accepts a pointer that is either nil or points to a
// readable, null-terminated buffer. A nil pointer is reported as an absent
// value. Whether a non-nil pointer is valid, correctly terminated and still
// alive cannot be checked, and is a precondition the caller must uphold.
//
// Unless documented otherwise, the returned views alias the foreign memory:
// they must not be retained after the call in which they were created
// returns, and they must never be written to.
package ptr

/*
#include <string.h>
*/
import "C"
import (
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/gorules/zen-bridge-go/pkg/logging"
	"go.uber.org/zap"
)

// TryBorrowRaw returns a view over the bytes at charPtr, up to and
// excluding the null terminator. The second return value is false if and
// only if charPtr is nil. Nothing is copied, and the capacity of the view is
// clipped to its length.
func TryBorrowRaw(charPtr unsafe.Pointer) ([]byte, bool) {
	if charPtr == nil {
		return nil, false
	}
	n := int(C.strlen((*C.char)(charPtr)))
	return unsafe.Slice((*byte)(charPtr), n), true
}

// TryBorrowText is like TryBorrowRaw, but it also checks that the bytes are
// valid UTF-8. Malformed text is reported as absent, exactly as nil is.
func TryBorrowText(charPtr unsafe.Pointer) (string, bool) {
	raw, ok := TryBorrowRaw(charPtr)
	if !ok {
		return "", false
	}
	if !utf8.Valid(raw) {
		if ce := logging.Logger().Check(zap.DebugLevel, "rejected malformed text"); ce != nil {
			ce.Write(zap.Uintptr("ptr", uintptr(charPtr)), zap.Int("len", len(raw)))
		}
		return "", false
	}
	return unsafe.String((*byte)(charPtr), len(raw)), true
}

// CopyText is like TryBorrowText, but the returned string is a Go-owned
// copy that stays valid after the foreign memory is released.
func CopyText(charPtr unsafe.Pointer) (string, bool) {
	str, ok := TryBorrowText(charPtr)
	if !ok {
		return "", false
	}
	return strings.Clone(str), true
}

// GoString returns a view over the null-terminated string at charPtr,
// or an empty string if charPtr is nil. The encoding is not checked.
func GoString(charPtr unsafe.Pointer) string {
	raw, ok := TryBorrowRaw(charPtr)
	if !ok {
		return ""
	}
	return unsafe.String((*byte)(charPtr), len(raw))
}
