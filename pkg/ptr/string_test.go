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

package ptr

import (
	"testing"
	"unsafe"

	"github.com/gorules/zen-bridge-go/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const (
	testString = "hello zen"
)

// Allocates a buffer in Go memory and encodes a C-like string into it.
func cString(b []byte) ([]byte, unsafe.Pointer) {
	buf := append(append([]byte(nil), b...), 0)
	return buf, unsafe.Pointer(&buf[0])
}

func TestGoStringPointer(t *testing.T) {
	bytes, bytesPtr := cString([]byte(testString))

	str := GoString(bytesPtr)
	if len(str) != len(testString) || str != testString {
		t.Errorf("str=%s, len=%d", str, len(str))
	}

	// Editing buffer should make the string change too,
	// because they point to the same memory location
	editPos := 0
	editByte := byte('X')
	bytes[editPos] = editByte
	if len(str) != len(testString) || str == testString || str[editPos] != editByte {
		t.Errorf("str=%s, len=%d", str, len(str))
	}
}

func TestGoStringNull(t *testing.T) {
	str := GoString(nil)
	if len(str) > 0 {
		t.Errorf("expected empty string")
	}
}

func TestTryBorrowNull(t *testing.T) {
	for i := 0; i < 3; i++ {
		raw, ok := TryBorrowRaw(nil)
		assert.False(t, ok)
		assert.Nil(t, raw)

		str, ok := TryBorrowText(nil)
		assert.False(t, ok)
		assert.Empty(t, str)

		str, ok = CopyText(nil)
		assert.False(t, ok)
		assert.Empty(t, str)
	}
}

func TestTryBorrowText(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "ascii", input: testString},
		{name: "empty", input: ""},
		{name: "multibyte", input: "héllo wörld ✓"},
		{name: "cjk", input: "日本語"},
		{name: "emoji", input: "🦀🐹"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, p := cString([]byte(tt.input))

			str, ok := TryBorrowText(p)
			require.True(t, ok)
			assert.Equal(t, tt.input, str)

			raw, ok := TryBorrowRaw(p)
			require.True(t, ok)
			assert.Equal(t, []byte(tt.input), raw)
			assert.Equal(t, len(raw), cap(raw))
		})
	}
}

func TestTryBorrowStopsAtTerminator(t *testing.T) {
	_, p := cString([]byte("head\x00tail"))

	str, ok := TryBorrowText(p)
	require.True(t, ok)
	assert.Equal(t, "head", str)
}

func TestTryBorrowMalformedText(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{name: "invalid continuation", input: []byte{'a', 0xC3, 0x28, 'b'}},
		{name: "lone continuation", input: []byte{0x80}},
		{name: "truncated sequence", input: []byte{'o', 'k', 0xE2, 0x82}},
		{name: "overlong encoding", input: []byte{0xC0, 0xAF}},
		{name: "surrogate half", input: []byte{0xED, 0xA0, 0x80}},
		{name: "binary", input: []byte{0xFF, 0x10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, p := cString(tt.input)

			str, ok := TryBorrowText(p)
			assert.False(t, ok)
			assert.Empty(t, str)

			str, ok = CopyText(p)
			assert.False(t, ok)
			assert.Empty(t, str)

			// the raw view does not care about the encoding
			raw, ok := TryBorrowRaw(p)
			assert.True(t, ok)
			assert.Equal(t, tt.input, raw)
		})
	}
}

func TestTryBorrowRawDoesNotCopy(t *testing.T) {
	bytes, p := cString([]byte(testString))

	raw, ok := TryBorrowRaw(p)
	require.True(t, ok)
	require.NotEmpty(t, raw)
	assert.Equal(t, unsafe.Pointer(&bytes[0]), unsafe.Pointer(&raw[0]))
}

func TestCopyText(t *testing.T) {
	bytes, p := cString([]byte(testString))

	str, ok := CopyText(p)
	require.True(t, ok)
	assert.Equal(t, testString, str)

	// the copy must not follow changes of the foreign memory
	bytes[0] = 'X'
	assert.Equal(t, testString, str)
	assert.Equal(t, "Xello zen", GoString(p))
}

func TestTryBorrowTextLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logging.SetLogger(zap.New(core))
	t.Cleanup(func() { logging.SetLogger(nil) })

	_, p := cString([]byte{0xFF})
	_, ok := TryBorrowText(p)
	assert.False(t, ok)

	_, p = cString([]byte(testString))
	_, ok = TryBorrowText(p)
	assert.True(t, ok)

	assert.Equal(t, 1, logs.FilterMessage("rejected malformed text").Len())
}

func BenchmarkTryBorrowText(b *testing.B) {
	_, p := cString([]byte(testString))
	for i := 0; i < b.N; i++ {
		_, _ = TryBorrowText(p)
	}
}
