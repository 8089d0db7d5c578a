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

// This package exports the C functions zen_free_string() and
// zen_free_bytes(), which are used by the foreign caller to release the
// text and byte-buffer handles returned by the library.
//
// In almost all cases, your library should import this module. The *only*
// case where your library should not import this module is when it hands
// off memory that was not allocated with the owned package, and that
// memory needs its own release functions.
//
// From C, the contract is the following:
//
//	void zen_free_string(char *ptr);
//	void zen_free_bytes(unsigned char *ptr);
//
// Both accept NULL as a no-op. Any other pointer must have been returned
// by the library as a handle of the matching shape, and must be released
// exactly once.
package free

/*
#include <stdint.h>
*/
import "C"
import (
	"unsafe"

	"github.com/gorules/zen-bridge-go/pkg/owned"
)

//export zen_free_string
func zen_free_string(ptr *C.char) {
	owned.ReleaseText(unsafe.Pointer(ptr))
}

//export zen_free_bytes
func zen_free_bytes(ptr *C.uchar) {
	owned.ReleaseBytes(unsafe.Pointer(ptr))
}
