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

package html

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/inspektor-gadget/tablesort/pkg/sortstate"
)

type Options struct {
	SortKeyName string             // SortKeyName is the query parameter holding the sort order list, default: "o"
	TableID     string             // TableID is set as id attribute of the table if not empty
	TableClass  string             // TableClass is set as class attribute of the table if not empty, default: "table"
	Policy      *bluemonday.Policy // Policy sanitizes template.HTML values, default: bluemonday.UGCPolicy()
}

// DefaultOptions returns the default options of the formatter
func DefaultOptions() *Options {
	return &Options{
		SortKeyName: sortstate.DefaultSortKeyName,
		TableClass:  "table",
		Policy:      bluemonday.UGCPolicy(),
	}
}

type Option func(*Options)

// WithSortKeyName sets the query parameter holding the sort order list
func WithSortKeyName(name string) Option {
	return func(opts *Options) {
		opts.SortKeyName = name
	}
}

// WithTableID sets the id attribute of the table
func WithTableID(id string) Option {
	return func(opts *Options) {
		opts.TableID = id
	}
}

// WithTableClass sets the class attribute of the table; an empty string omits the attribute
func WithTableClass(class string) Option {
	return func(opts *Options) {
		opts.TableClass = class
	}
}

// WithPolicy sets the policy used to sanitize template.HTML values
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(opts *Options) {
		opts.Policy = policy
	}
}
