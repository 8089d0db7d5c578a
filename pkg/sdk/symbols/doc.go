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

// Package symbols provides prebuilt implementations for the C symbols that
// make up the stable ABI of a library built with this module.
//
// Importing one of the sub-packages automatically includes its prebuilt
// symbols in the library. If one of the prebuilt symbols is imported it
// would not be possible to re-define it in the library, as this would lead
// to a linking failure due to multiple definitions of the same symbol.
//
// The mapping between the prebuilt C exported symbols and their
// sub-package is the following:
//   - free:         zen_free_string, zen_free_bytes
package symbols
