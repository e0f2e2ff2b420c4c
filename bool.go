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

// Bool parses the whole of text as a boolean keyword, ignoring case.
//
// Only the exact keywords "true" and "false" match; this is deliberately
// stricter than the "anything that isn't true is false" model of
// [strconv.ParseBool]'s 0/1/t/f shorthands. Any other input yields
// ok == false, never a default.
func Bool[S Text](text S) (value, ok bool) {
	return parseBool(text, 0, len(text), true)
}

// BoolStrict is [Bool] with case-sensitive matching: only the lowercase
// keywords match.
func BoolStrict[S Text](text S) (value, ok bool) {
	return parseBool(text, 0, len(text), false)
}

// BoolRange parses text[start:end] as a boolean keyword, ignoring case.
// The range is validated like [Int32Range], even when its length can never
// match a keyword.
func BoolRange[S Text](text S, start, end int) (value, ok bool) {
	return parseBool(text, start, end, true)
}

// BoolRangeStrict is [BoolRange] with case-sensitive matching.
func BoolRangeStrict[S Text](text S, start, end int) (value, ok bool) {
	return parseBool(text, start, end, false)
}

func parseBool[S Text](text S, start, end int, fold bool) (value, ok bool) {
	if isAbsent(text) {
		return false, false
	}

	checkRange(len(text), start, end)

	// The keywords have distinct lengths, so the length picks the only
	// candidate and everything else fails without inspecting content.
	switch end - start {
	case len("true"):
		return true, matchKeyword(text, start, "true", fold)
	case len("false"):
		return false, matchKeyword(text, start, "false", fold)
	default:
		return false, false
	}
}

// matchKeyword compares text[start:start+len(keyword)] against a lowercase
// keyword. The fold is one-directional: only the input byte is lowercased,
// so a non-letter can never be folded into a match.
func matchKeyword[S Text](text S, start int, keyword string, fold bool) bool {
	for i := 0; i < len(keyword); i++ {
		c := text[start+i]
		if c == keyword[i] {
			continue
		}
		if fold && c >= 'A' && c <= 'Z' && c+'a'-'A' == keyword[i] {
			continue
		}
		return false
	}
	return true
}
