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

package hooks

import (
	"fmt"
	"sync"
	"unsafe"
)

// Tracker is an in-memory leak checker built on top of the allocation
// hooks. It is meant for tests only: it keeps a table of the live handles,
// which the release path itself deliberately never does.
type Tracker struct {
	mu          sync.Mutex
	live        map[unsafe.Pointer]Shape
	allocs      int
	releases    int
	violations  []string
	prevAlloc   OnAllocFn
	prevRelease OnReleaseFn
}

// Track installs a new Tracker as the current allocation and release
// hooks, chaining the previously installed ones. Call Stop to restore them.
func Track() *Tracker {
	t := &Tracker{
		live:        make(map[unsafe.Pointer]Shape),
		prevAlloc:   OnAlloc(),
		prevRelease: OnRelease(),
	}
	SetOnAlloc(t.alloc)
	SetOnRelease(t.release)
	return t
}

// Stop restores the hooks that were installed when Track was called.
func (t *Tracker) Stop() {
	SetOnAlloc(t.prevAlloc)
	SetOnRelease(t.prevRelease)
}

func (t *Tracker) alloc(shape Shape, p unsafe.Pointer, size int) {
	t.mu.Lock()
	if _, ok := t.live[p]; ok {
		t.violations = append(t.violations, fmt.Sprintf("%s handle %p allocated while still live", shape, p))
	}
	t.live[p] = shape
	t.allocs++
	t.mu.Unlock()
	t.prevAlloc(shape, p, size)
}

func (t *Tracker) release(shape Shape, p unsafe.Pointer) {
	t.mu.Lock()
	got, ok := t.live[p]
	switch {
	case !ok:
		t.violations = append(t.violations, fmt.Sprintf("%s handle %p released but not live", shape, p))
	case got != shape:
		t.violations = append(t.violations, fmt.Sprintf("%s handle %p released as %s", got, p, shape))
	}
	delete(t.live, p)
	t.releases++
	t.mu.Unlock()
	t.prevRelease(shape, p)
}

// Live returns the number of handles produced and not yet released.
func (t *Tracker) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

// Allocs returns the number of handles produced since tracking started.
func (t *Tracker) Allocs() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.allocs
}

// Releases returns the number of non-nil handles released since tracking
// started.
func (t *Tracker) Releases() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.releases
}

// Violations returns a description of every contract violation observed,
// such as a release of a handle that is not live or a release through the
// entry point of the wrong shape.
func (t *Tracker) Violations() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.violations...)
}
