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

package columns

import "strings"

type ColumnFilter func(matcher ColumnMatcher) bool

// Or combines filters and matches if any of them matches
func Or(filters ...ColumnFilter) ColumnFilter {
	return func(matcher ColumnMatcher) bool {
		for _, f := range filters {
			if f(matcher) {
				return true
			}
		}
		return false
	}
}

// And combines filters and matches only if all of them match
func And(filters ...ColumnFilter) ColumnFilter {
	return func(matcher ColumnMatcher) bool {
		for _, f := range filters {
			if !f(matcher) {
				return false
			}
		}
		return true
	}
}

// WithPrimaryKey matches columns depending on whether they are the primary key
func WithPrimaryKey(primaryKey bool) ColumnFilter {
	return func(matcher ColumnMatcher) bool {
		return matcher.IsPrimaryKey() == primaryKey
	}
}

// WithVisible matches columns depending on whether they are part of the default set
func WithVisible(visible bool) ColumnFilter {
	return func(matcher ColumnMatcher) bool {
		return matcher.IsVisible() == visible
	}
}

// WithTag matches columns that have the given tag
func WithTag(tag string) ColumnFilter {
	tag = strings.ToLower(tag)
	return func(matcher ColumnMatcher) bool {
		return matcher.HasTag(tag)
	}
}

// WithoutTag matches columns that do not have the given tag
func WithoutTag(tag string) ColumnFilter {
	tag = strings.ToLower(tag)
	return func(matcher ColumnMatcher) bool {
		return !matcher.HasTag(tag)
	}
}

// WithAnyTag matches columns that have at least one of the given tags
func WithAnyTag(tags []string) ColumnFilter {
	tags = ToLowerStrings(append([]string{}, tags...))
	return func(matcher ColumnMatcher) bool {
		for _, tag := range tags {
			if matcher.HasTag(tag) {
				return true
			}
		}
		return false
	}
}

// WithNoTags matches columns without any tags
func WithNoTags() ColumnFilter {
	return func(matcher ColumnMatcher) bool {
		return matcher.HasNoTags()
	}
}
