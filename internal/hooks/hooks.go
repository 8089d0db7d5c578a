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

// Package hooks contains a set of allocation/release related hooks meant
// to be used internally in the module. The hooks only observe handles as
// they are produced and reclaimed; nothing in the release path ever reads
// back from them.
package hooks

import "unsafe"

// Shape is the kind of allocation backing an owned handle.
type Shape int

const (
	// ShapeText is a null-terminated text buffer.
	ShapeText Shape = iota
	// ShapeBytes is a byte buffer with a producer-recorded length.
	ShapeBytes
)

func (s Shape) String() string {
	switch s {
	case ShapeText:
		return "text"
	case ShapeBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// OnAllocFn is a callback invoked right after an owned handle is produced.
// Size is the length of the payload, excluding terminators and headers.
type OnAllocFn func(shape Shape, p unsafe.Pointer, size int)

// OnReleaseFn is a callback invoked right before an owned handle is freed.
type OnReleaseFn func(shape Shape, p unsafe.Pointer)

var (
	onAlloc   OnAllocFn   = func(Shape, unsafe.Pointer, int) {}
	onRelease OnReleaseFn = func(Shape, unsafe.Pointer) {}
)

// SetOnAlloc sets the callback to be called every time an owned handle
// is produced.
//
// This function is not thread-safe.
func SetOnAlloc(fn OnAllocFn) {
	if fn == nil {
		panic("zen-bridge-go/internal/hooks.SetOnAlloc: fn must not be nil")
	}
	onAlloc = fn
}

// OnAlloc returns the currently set allocation callback.
func OnAlloc() OnAllocFn {
	return onAlloc
}

// SetOnRelease sets the callback to be called every time a non-nil owned
// handle is released.
//
// This function is not thread-safe.
func SetOnRelease(fn OnReleaseFn) {
	if fn == nil {
		panic("zen-bridge-go/internal/hooks.SetOnRelease: fn must not be nil")
	}
	onRelease = fn
}

// OnRelease returns the currently set release callback.
func OnRelease() OnReleaseFn {
	return onRelease
}
