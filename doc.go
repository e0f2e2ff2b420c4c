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

// Package tryparse converts text into fixed-width integers, booleans, and a
// handful of delegated types without reporting malformed input as an error:
// every parse returns (value, ok), and malformed, empty, or absent input is
// simply ok == false.
//
// The integer parsers scan a sub-range of a string or byte slice in a
// single allocation-free forward pass, in any radix from 2 to 36, and
// reproduce the exact overflow behavior of the native fixed-width types:
// the most negative signed value parses, the full unsigned 64-bit range
// parses, and anything one past a boundary does not. Overflow is detected
// by bounding the accumulator before each multiply and add step, never by
// inspecting a wrapped result.
//
// Two kinds of failure are kept strictly apart. Malformed data is an
// ordinary, expected outcome and is always reported as an absent result.
// Caller misuse (an index range that does not fit the input, or a radix
// outside [2, 36]) is a bug in the calling code and panics with a
// [*RangeError] or [*RadixError], checked before any scanning so that the
// diagnosis does not depend on the input's content.
//
// All functions are pure: they are safe for unrestricted concurrent use
// and complete in time proportional to the scanned range.
package tryparse
