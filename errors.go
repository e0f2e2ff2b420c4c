// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tryparse

import (
	"fmt"

	"github.com/bufbuild/tryparse/internal/base36"
)

// RangeError is the value panicked with when a parse call is given a
// [start, end) range that does not fit the input text.
//
// A bad range is caller misuse, not malformed data, so it is never reported
// as an absent result. It is diagnosed before the radix and before any
// scanning, regardless of whether the content could have parsed.
type RangeError struct {
	Start, End, Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("tryparse: range [%d, %d) out of bounds for length %d", e.Start, e.End, e.Len)
}

// RadixError is the value panicked with when a parse call is given a radix
// outside of [2, 36].
//
// Like [RangeError], this reports caller misuse and is diagnosed before any
// scanning.
type RadixError struct {
	Radix int
}

func (e *RadixError) Error() string {
	return fmt.Sprintf("tryparse: radix %d is not between %d and %d", e.Radix, base36.MinRadix, base36.MaxRadix)
}

// checkRange validates a half-open index range against an input length.
func checkRange(length, start, end int) {
	if start < 0 || start > end || end > length {
		panic(&RangeError{Start: start, End: end, Len: length})
	}
}

// checkRadix validates a radix. Must be called after checkRange: a bad
// range takes priority over a bad radix.
func checkRadix(radix int) {
	if radix < base36.MinRadix || radix > base36.MaxRadix {
		panic(&RadixError{Radix: radix})
	}
}
