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

// Package owned produces and reclaims the heap values whose ownership is
// handed to a foreign caller across the C ABI.
//
// Two shapes of owned handle exist, and each one has exactly one matching
// release function:
//
//   - text handles, made by NewText and released by ReleaseText
//   - byte-buffer handles, made by NewBytes and released by ReleaseBytes
//
// Handles are allocated on the C heap, so they can be retained by C code
// after the call that produced them returns. A nil handle means "no value"
// and releasing it is always a no-op. Releasing a handle twice, releasing it
// through the function of the other shape, or reading it after release is
// undefined behavior: nothing in this package keeps track of live handles.
package owned

/*
#include <stdlib.h>
*/
import "C"
import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/gorules/zen-bridge-go/internal/hooks"
	"github.com/gorules/zen-bridge-go/pkg/logging"
	"go.uber.org/zap"
)

// bytesHeaderSize is the size of the length prefix stored in front of the
// payload of a byte-buffer handle. It keeps the payload 8-byte aligned.
const bytesHeaderSize = int(unsafe.Sizeof(uint64(0)))

// ErrInteriorNul is returned by NewText for values containing a zero byte,
// which could not be read back unchanged through a null-terminated handle.
var ErrInteriorNul = errors.New("text contains an interior NUL byte")

// NewText copies s into a new null-terminated C buffer and returns a
// pointer to it. The returned handle is never nil, and must be released
// exactly once with ReleaseText.
//
// C.malloc never returns nil: the process is terminated on out of memory.
func NewText(s string) (unsafe.Pointer, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return nil, fmt.Errorf("zen-bridge-go/owned: offset %d: %w", i, ErrInteriorNul)
	}
	p := C.malloc(C.size_t(len(s) + 1))
	buf := unsafe.Slice((*byte)(p), len(s)+1)
	copy(buf, s)
	buf[len(s)] = 0
	hooks.OnAlloc()(hooks.ShapeText, p, len(s))
	return p, nil
}

// NewBytes copies b into a new C buffer and returns a pointer to its first
// byte. The length of b is recorded in a header in front of the returned
// pointer; the caller across the boundary never sees it.
//
// A nil b yields a nil handle. Any other b, including an empty one, yields
// a non-nil handle that must be released exactly once with ReleaseBytes.
func NewBytes(b []byte) unsafe.Pointer {
	if b == nil {
		return nil
	}
	base := C.malloc(C.size_t(bytesHeaderSize + len(b)))
	*(*uint64)(base) = uint64(len(b))
	p := unsafe.Add(base, bytesHeaderSize)
	copy(unsafe.Slice((*byte)(p), len(b)), b)
	hooks.OnAlloc()(hooks.ShapeBytes, p, len(b))
	return p
}

// BytesLen returns the length recorded for a byte-buffer handle made by
// NewBytes, or 0 for nil.
func BytesLen(p unsafe.Pointer) int {
	if p == nil {
		return 0
	}
	return int(*(*uint64)(unsafe.Add(p, -bytesHeaderSize)))
}

// BytesView returns a slice aliasing the payload of a byte-buffer handle
// made by NewBytes, or nil for nil. The slice must not be used after the
// handle is released.
func BytesView(p unsafe.Pointer) []byte {
	if p == nil {
		return nil
	}
	n := BytesLen(p)
	return unsafe.Slice((*byte)(p), n)[:n:n]
}

// ReleaseText frees a text handle made by NewText. Passing nil does nothing.
//
// No validation other than the nil check is performed, because none is
// possible on an opaque pointer: p must come from NewText and must not have
// been released already.
func ReleaseText(p unsafe.Pointer) {
	if p == nil {
		return
	}
	hooks.OnRelease()(hooks.ShapeText, p)
	C.free(p)
	if ce := logging.Logger().Check(zap.DebugLevel, "released owned handle"); ce != nil {
		ce.Write(zap.Stringer("shape", hooks.ShapeText), zap.Uintptr("ptr", uintptr(p)))
	}
}

// ReleaseBytes frees a byte-buffer handle made by NewBytes. Passing nil
// does nothing.
//
// The whole allocation, header included, is freed. The length recorded by
// NewBytes is trusted as is. As for ReleaseText, p must come from NewBytes
// and must not have been released already.
func ReleaseBytes(p unsafe.Pointer) {
	if p == nil {
		return
	}
	hooks.OnRelease()(hooks.ShapeBytes, p)
	n := BytesLen(p)
	C.free(unsafe.Add(p, -bytesHeaderSize))
	if ce := logging.Logger().Check(zap.DebugLevel, "released owned handle"); ce != nil {
		ce.Write(zap.Stringer("shape", hooks.ShapeBytes), zap.Uintptr("ptr", uintptr(p)), zap.Int("size", n))
	}
}
