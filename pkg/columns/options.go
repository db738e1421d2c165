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

import (
	"golang.org/x/text/language"

	"github.com/inspektor-gadget/tablesort/pkg/columns/ellipsis"
)

type Option func(*Options)

type Options struct {
	DefaultEllipsis         ellipsis.EllipsisType // default type of ellipsis to use for overflowing cells; default: ellipsis.End
	DefaultWidth            int                   // maximum number of runes shown per cell when no width is specified for a column; default: 0 (unlimited)
	RequireColumnDefinition bool                  // if set to false, Columns will consider all exported struct members, regardless of the column tag being present; default: true
	Language                language.Tag          // language used to build headers from field names; default: language.English
}

func GetDefault() *Options {
	return &Options{
		DefaultEllipsis:         ellipsis.End,
		DefaultWidth:            0,
		RequireColumnDefinition: true,
		Language:                language.English,
	}
}

// WithEllipsis sets the default ellipsis type for overflowing cells
func WithEllipsis(e ellipsis.EllipsisType) Option {
	return func(opts *Options) {
		opts.DefaultEllipsis = e
	}
}

// WithRequireColumnDefinition sets whether only struct fields with a column tag become columns
func WithRequireColumnDefinition(require bool) Option {
	return func(opts *Options) {
		opts.RequireColumnDefinition = require
	}
}

// WithWidth sets the default maximum width of cells
func WithWidth(w int) Option {
	return func(opts *Options) {
		opts.DefaultWidth = w
	}
}

// WithLanguage sets the language used to build headers from field names
func WithLanguage(tag language.Tag) Option {
	return func(opts *Options) {
		opts.Language = tag
	}
}
