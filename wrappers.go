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

// Non-throwing wrappers around the standard library's parsers. Unlike the
// integer and boolean parsers above, these delegate entirely: the accepted
// syntax is exactly whatever the wrapped parser accepts, and this package
// only converts its error into an absent result.

import (
	"net/url"
	"strconv"
	"time"
)

// Float32 parses text as a 32-bit floating-point number, accepting the
// syntax of [strconv.ParseFloat].
func Float32(text string) (value float32, ok bool) {
	f, ok := Try(text, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 32)
	})
	return float32(f), ok
}

// Float64 parses text as a 64-bit floating-point number, accepting the
// syntax of [strconv.ParseFloat].
func Float64(text string) (value float64, ok bool) {
	return Try(text, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// URI parses text as a URI reference, accepting the syntax of [url.Parse];
// relative references are permitted.
func URI(text string) (value *url.URL, ok bool) {
	return Try(text, url.Parse)
}

// URL parses text as an absolute URL, accepting the syntax of
// [url.ParseRequestURI] restricted to references that carry a scheme.
// Unlike [URI], a relative reference, including a rooted path, is absent.
func URL(text string) (value *url.URL, ok bool) {
	// ParseRequestURI alone admits rooted paths like "/a/b", which have no
	// scheme and are not absolute URLs.
	u, ok := Try(text, url.ParseRequestURI)
	if !ok || !u.IsAbs() {
		return nil, false
	}
	return u, true
}

// Time parses text using the given reference layout, accepting the syntax
// of [time.Parse]. Layouts such as [time.RFC3339] cover the roles that
// dedicated timestamp, date, and time-of-day parsers play elsewhere.
func Time(layout, text string) (value time.Time, ok bool) {
	return Try(text, func(s string) (time.Time, error) {
		return time.Parse(layout, s)
	})
}

// TimeInLocation is [Time] with the semantics of [time.ParseInLocation]:
// zone-less text is interpreted in the given location rather than UTC.
func TimeInLocation(layout, text string, loc *time.Location) (value time.Time, ok bool) {
	return Try(text, func(s string) (time.Time, error) {
		return time.ParseInLocation(layout, s, loc)
	})
}

// Duration parses text as a duration, accepting the syntax of
// [time.ParseDuration].
func Duration(text string) (value time.Duration, ok bool) {
	return Try(text, time.ParseDuration)
}
