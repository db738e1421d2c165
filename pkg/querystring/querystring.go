// Copyright 2026 The Inspektor Gadget authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package querystring

import (
	"fmt"
	"net/url"
	"strings"
)

// Pair is a single key/value occurrence of a query string
type Pair struct {
	Key   string
	Value string

	raw string // original encoded segment; empty if the pair was created or edited
}

// Values is an ordered list of query pairs
type Values []Pair

// New creates Values from alternating keys and values; a trailing key without value gets an empty value
func New(kv ...string) Values {
	res := make(Values, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		p := Pair{Key: kv[i]}
		if i+1 < len(kv) {
			p.Value = kv[i+1]
		}
		res = append(res, p)
	}
	return res
}

// Parse decodes a raw query string. A leading "?" is ignored as are empty segments. If a segment cannot be
// unescaped, Parse keeps the segment verbatim as key or value and returns the first error after parsing everything
// else, similar to url.ParseQuery.
func Parse(query string) (Values, error) {
	query = strings.TrimPrefix(query, "?")

	var firstErr error
	res := make(Values, 0)
	for _, segment := range strings.Split(query, "&") {
		if segment == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(segment, "=")

		key, keyErr := url.QueryUnescape(rawKey)
		if keyErr != nil {
			key = rawKey
		}
		value, valueErr := url.QueryUnescape(rawValue)
		if valueErr != nil {
			value = rawValue
		}

		p := Pair{Key: key, Value: value}
		switch {
		case keyErr != nil || valueErr != nil:
			if firstErr == nil {
				firstErr = fmt.Errorf("decoding query segment %q: %w", segment, firstNonNil(keyErr, valueErr))
			}
		case isSafeRaw(segment):
			p.raw = segment
		}
		res = append(res, p)
	}
	return res, firstErr
}

// FromURL parses the raw query of u
func FromURL(u *url.URL) (Values, error) {
	if u == nil {
		return Values{}, nil
	}
	return Parse(u.RawQuery)
}

// Encode returns the URL-encoded form of v without a leading "?". Separators are only written between pairs.
func (v Values) Encode() string {
	var sb strings.Builder
	for i, p := range v {
		if i > 0 {
			sb.WriteByte('&')
		}
		if p.raw != "" {
			sb.WriteString(p.raw)
			continue
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// Get returns all values bound to key in order of appearance; nil if key is absent
func (v Values) Get(key string) []string {
	var res []string
	for _, p := range v {
		if p.Key == key {
			res = append(res, p.Value)
		}
	}
	return res
}

// Has returns whether key is bound at least once
func (v Values) Has(key string) bool {
	for _, p := range v {
		if p.Key == key {
			return true
		}
	}
	return false
}

// Keys returns all distinct keys in order of their first appearance
func (v Values) Keys() []string {
	seen := make(map[string]struct{}, len(v))
	keys := make([]string, 0, len(v))
	for _, p := range v {
		if _, ok := seen[p.Key]; ok {
			continue
		}
		seen[p.Key] = struct{}{}
		keys = append(keys, p.Key)
	}
	return keys
}

// With returns a copy of v with key bound to values. The new pairs take the position of the first occurrence of key;
// all other occurrences are dropped. If key was absent, the pairs are appended. Binding an empty list is the same as
// calling Without.
func (v Values) With(key string, values []string) Values {
	if len(values) == 0 {
		return v.Without(key)
	}

	res := make(Values, 0, len(v)+len(values))
	inserted := false
	for _, p := range v {
		if p.Key != key {
			res = append(res, p)
			continue
		}
		if inserted {
			continue
		}
		for _, value := range values {
			res = append(res, Pair{Key: key, Value: value})
		}
		inserted = true
	}
	if !inserted {
		for _, value := range values {
			res = append(res, Pair{Key: key, Value: value})
		}
	}
	return res
}

// Without returns a copy of v without any occurrence of key
func (v Values) Without(key string) Values {
	res := make(Values, 0, len(v))
	for _, p := range v {
		if p.Key != key {
			res = append(res, p)
		}
	}
	return res
}

// isSafeRaw reports whether an original segment may be written back as-is, including inside a double-quoted
// HTML attribute
func isSafeRaw(segment string) bool {
	for i := 0; i < len(segment); i++ {
		c := segment[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		case strings.IndexByte("-._~%+=:/,;@!$'*()[]", c) >= 0:
		default:
			return false
		}
	}
	return true
}

func firstNonNil(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
