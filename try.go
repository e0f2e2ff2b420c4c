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

import "errors"

// Try invokes parse on input and converts any error into an absent result.
//
// This adapts an ordinary (value, error) parse function to the absent/
// present convention of this package. Use it for parsers whose only failure
// mode is malformed input; if the parser can also fail in ways the caller
// would want surfaced, use [TryIs] or [TryAs] instead.
func Try[T, R any](input T, parse func(T) (R, error)) (value R, ok bool) {
	value, err := parse(input)
	if err != nil {
		var zero R
		return zero, false
	}
	return value, true
}

// TryIs invokes parse on input and converts an error matching target, per
// [errors.Is], into an absent result.
//
// Any non-nil error that does not match target panics: the caller declared
// which failure mode counts as ordinary parse failure, so anything else is
// not a parse failure and must not be silently absorbed.
func TryIs[T, R any](input T, parse func(T) (R, error), target error) (value R, ok bool) {
	value, err := parse(input)
	switch {
	case err == nil:
		return value, true
	case errors.Is(err, target):
		var zero R
		return zero, false
	default:
		panic(err)
	}
}

// TryAs is [TryIs] for parsers that declare their failure mode as an error
// type rather than a sentinel value: an error assignable to E, per
// [errors.As], becomes an absent result and anything else panics.
//
// E must be named explicitly at the call site:
//
//	t, ok := tryparse.TryAs[*time.ParseError](text, parseFn)
func TryAs[E error, T, R any](input T, parse func(T) (R, error)) (value R, ok bool) {
	value, err := parse(input)
	switch target := new(E); {
	case err == nil:
		return value, true
	case errors.As(err, target):
		var zero R
		return zero, false
	default:
		panic(err)
	}
}
