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
	"math"

	"golang.org/x/exp/constraints"

	"github.com/bufbuild/tryparse/internal/base36"
)

// defaultRadix is the radix used by the arities that do not take one.
const defaultRadix = 10

// Text is the input accepted by the parse functions in this package.
//
// Both instantiations are scanned in place: no copy is made, even when
// parsing a sub-range. A nil []byte is absent input and parses to an absent
// result at every entry point, before any range or radix validation; this
// is the one nil that is not misuse. There is no nil string, so string
// inputs can only be empty, which is malformed rather than absent.
type Text interface {
	string | []byte
}

// Int32 parses the whole of text as a signed 32-bit integer in radix 10.
//
// It is a non-throwing [strconv.ParseInt]: malformed input, including
// overflow, yields ok == false rather than an error. The accepted syntax is
// an optional leading '-' or '+' followed by one or more digits; nothing
// else, in particular no surrounding whitespace, is permitted.
func Int32[S Text](text S) (value int32, ok bool) {
	return Int32RangeRadix(text, 0, len(text), defaultRadix)
}

// Int32Radix is [Int32] with an explicit radix between 2 and 36.
//
// Letter digits are case-insensitive. A radix outside [2, 36] panics with a
// [*RadixError]; that is caller misuse, not malformed input.
func Int32Radix[S Text](text S, radix int) (value int32, ok bool) {
	return Int32RangeRadix(text, 0, len(text), radix)
}

// Int32Range parses text[start:end] as a signed 32-bit integer in radix 10.
//
// The range is validated even when the content could never parse: if
// start < 0, start > end, or end > len(text), it panics with a
// [*RangeError]. An empty range is malformed input, not misuse, and yields
// ok == false.
func Int32Range[S Text](text S, start, end int) (value int32, ok bool) {
	return Int32RangeRadix(text, start, end, defaultRadix)
}

// Int32RangeRadix parses text[start:end] as a signed 32-bit integer in the
// given radix. See [Int32Range] and [Int32Radix] for the validation rules;
// the range is validated before the radix.
func Int32RangeRadix[S Text](text S, start, end, radix int) (value int32, ok bool) {
	return parseSigned[int32](text, start, end, radix, math.MinInt32)
}

// Uint32 parses the whole of text as an unsigned 32-bit integer in radix 10.
//
// Unsigned syntax permits a leading '+' but no '-': any minus sign, even
// on a value whose magnitude would fit, yields ok == false.
func Uint32[S Text](text S) (value uint32, ok bool) {
	return Uint32RangeRadix(text, 0, len(text), defaultRadix)
}

// Uint32Radix is [Uint32] with an explicit radix between 2 and 36.
func Uint32Radix[S Text](text S, radix int) (value uint32, ok bool) {
	return Uint32RangeRadix(text, 0, len(text), radix)
}

// Uint32Range parses text[start:end] as an unsigned 32-bit integer in
// radix 10, validating the range like [Int32Range].
func Uint32Range[S Text](text S, start, end int) (value uint32, ok bool) {
	return Uint32RangeRadix(text, start, end, defaultRadix)
}

// Uint32RangeRadix parses text[start:end] as an unsigned 32-bit integer in
// the given radix.
func Uint32RangeRadix[S Text](text S, start, end, radix int) (value uint32, ok bool) {
	return parseUnsigned[uint32](text, start, end, radix)
}

// Int64 parses the whole of text as a signed 64-bit integer in radix 10.
// See [Int32] for the accepted syntax.
func Int64[S Text](text S) (value int64, ok bool) {
	return Int64RangeRadix(text, 0, len(text), defaultRadix)
}

// Int64Radix is [Int64] with an explicit radix between 2 and 36.
func Int64Radix[S Text](text S, radix int) (value int64, ok bool) {
	return Int64RangeRadix(text, 0, len(text), radix)
}

// Int64Range parses text[start:end] as a signed 64-bit integer in radix 10,
// validating the range like [Int32Range].
func Int64Range[S Text](text S, start, end int) (value int64, ok bool) {
	return Int64RangeRadix(text, start, end, defaultRadix)
}

// Int64RangeRadix parses text[start:end] as a signed 64-bit integer in the
// given radix.
func Int64RangeRadix[S Text](text S, start, end, radix int) (value int64, ok bool) {
	return parseSigned[int64](text, start, end, radix, math.MinInt64)
}

// Uint64 parses the whole of text as an unsigned 64-bit integer in radix 10.
// See [Uint32] for the accepted syntax; the full 64-bit range up to
// [math.MaxUint64] parses successfully.
func Uint64[S Text](text S) (value uint64, ok bool) {
	return Uint64RangeRadix(text, 0, len(text), defaultRadix)
}

// Uint64Radix is [Uint64] with an explicit radix between 2 and 36.
func Uint64Radix[S Text](text S, radix int) (value uint64, ok bool) {
	return Uint64RangeRadix(text, 0, len(text), radix)
}

// Uint64Range parses text[start:end] as an unsigned 64-bit integer in
// radix 10, validating the range like [Int32Range].
func Uint64Range[S Text](text S, start, end int) (value uint64, ok bool) {
	return Uint64RangeRadix(text, start, end, defaultRadix)
}

// Uint64RangeRadix parses text[start:end] as an unsigned 64-bit integer in
// the given radix.
func Uint64RangeRadix[S Text](text S, start, end, radix int) (value uint64, ok bool) {
	return parseUnsigned[uint64](text, start, end, radix)
}

// isAbsent reports whether text is a nil []byte, the absent input.
//
// This cannot be a length check: an empty-but-non-nil input is malformed
// data, while a nil input is absent even when the range or radix would not
// validate.
func isAbsent[S Text](text S) bool {
	b, ok := any(text).([]byte)
	return ok && b == nil
}

// parseSigned is the digit-accumulation loop shared by the signed kinds.
// min is the most negative value of T.
//
// The accumulator runs in the negative direction regardless of the input's
// sign: the signed range is asymmetric, so -max is representable for every
// input but min is not, and negating only at the very end lets min and -max
// share this loop with no special case.
func parseSigned[T constraints.Signed, S Text](text S, start, end, radix int, min T) (T, bool) {
	if isAbsent(text) {
		return 0, false
	}

	checkRange(len(text), start, end)
	checkRadix(radix)

	if start == end {
		return 0, false
	}

	first := text[start]
	negative := first == '-'
	limit := min + 1 // min+1 == -max
	if negative {
		limit = min
	}

	index := start
	if first == '-' || first == '+' {
		index++
	}
	if index == end {
		// A sign with no digits.
		return 0, false
	}

	// Loop invariant: 0 >= result >= limit. Both overflow checks run before
	// the arithmetic that could overflow: wraparound is unobservable after
	// the fact in two's complement.
	multiplyBound := limit / T(radix)
	var result T
	for ; index < end; index++ {
		digit, ok := base36.Digit(text[index], radix)
		if !ok {
			return 0, false
		}
		if result < multiplyBound {
			// result*radix would pass limit.
			return 0, false
		}
		result *= T(radix)
		if result < limit+T(digit) {
			// result-digit would pass limit.
			return 0, false
		}
		result -= T(digit)
	}

	if negative {
		return result, true
	}
	return -result, true
}

// parseUnsigned is the digit-accumulation loop shared by the unsigned
// kinds. The accumulator uses the full unsigned range of T.
func parseUnsigned[T constraints.Unsigned, S Text](text S, start, end, radix int) (T, bool) {
	if isAbsent(text) {
		return 0, false
	}

	checkRange(len(text), start, end)
	checkRadix(radix)

	if start == end {
		return 0, false
	}

	// Only '+' is consumed here. A leading '-' falls through to the digit
	// loop and fails there, since '-' is not a digit in any radix.
	index := start
	if text[start] == '+' {
		index++
	}
	if index == end {
		return 0, false
	}

	limit := ^T(0)
	var multiplyBound T
	if uint64(limit) == math.MaxUint64 {
		// Division-free bound for the widest kind.
		multiplyBound = T(base36.MulBound64(radix))
	} else {
		multiplyBound = limit / T(radix)
	}

	// Loop invariant: 0 <= result <= limit, in unsigned comparison.
	var result T
	for ; index < end; index++ {
		digit, ok := base36.Digit(text[index], radix)
		if !ok {
			return 0, false
		}
		if result > multiplyBound {
			// result*radix would pass limit.
			return 0, false
		}
		result *= T(radix)
		if result > limit-T(digit) {
			// result+digit would pass limit.
			return 0, false
		}
		result += T(digit)
	}
	return result, true
}
