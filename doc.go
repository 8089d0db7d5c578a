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

// This module provides support code for developers that would like to
// expose a Go library as a C shared library (go build -buildmode=c-shared)
// and hand heap values over to a foreign caller that has no ownership model
// of its own.
//
// The handoff is an explicit two-step protocol. The library produces an
// owned handle with the pkg/owned package and returns its pointer to the
// caller. The caller reads it any number of times, and then gives it back
// exactly once through the release function matching its shape, which is
// exported by the pkg/sdk/symbols/free package:
//
//	char *s = zen_echo_text("hello");
//	...
//	zen_free_string(s);
//
// Pointers flowing the other way, from the caller into the library, are
// read through the pkg/ptr package, which never takes ownership of them.
package zenbridge
