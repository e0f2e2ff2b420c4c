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

// Package base36 provides the digit alphabet shared by every radix from 2
// to 36: 0-9 followed by a-z, with upper and lower case letters carrying
// the same value.
package base36

import "math"

// The smallest and largest radix for which the digit alphabet is defined.
const (
	MinRadix = 2
	MaxRadix = 36
)

// mulBounds[r] is the largest uint64 that can be multiplied by r without
// exceeding math.MaxUint64. Written once here, read-only afterwards.
var mulBounds = func() (table [MaxRadix + 1]uint64) {
	for radix := MinRadix; radix <= MaxRadix; radix++ {
		table[radix] = math.MaxUint64 / uint64(radix)
	}
	return table
}()

// Digit returns the value of c as a digit in the given radix.
//
// Letters are case-insensitive: 'a' and 'A' are both 10, on up to 'z' and
// 'Z' at 35. Returns false for any byte that is not a digit in the radix.
func Digit(c byte, radix int) (value int, ok bool) {
	var d byte
	switch {
	case c >= '0' && c <= '9':
		d = c - '0'
	case c >= 'a' && c <= 'z':
		d = c - 'a' + 10
	case c >= 'A' && c <= 'Z':
		d = c - 'A' + 10
	default:
		return 0, false
	}

	if int(d) >= radix {
		return 0, false
	}
	return int(d), true
}

// MulBound64 returns the largest value m such that m * radix does not
// overflow a uint64, i.e. floor((2^64-1) / radix).
//
// Callers must validate the radix first; an out-of-range radix panics with
// an index error, and radixes 0 and 1 hit unused table slots.
func MulBound64(radix int) uint64 {
	return mulBounds[radix]
}
