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

package tablesort

import (
	"github.com/inspektor-gadget/tablesort/pkg/columns"
	"github.com/inspektor-gadget/tablesort/pkg/logger"
	"github.com/inspektor-gadget/tablesort/pkg/params"
	"github.com/inspektor-gadget/tablesort/pkg/sortstate"
)

// ColumnName pairs a field with the header to show for it
type ColumnName struct {
	Field  string `json:"field" yaml:"field"`
	Header string `json:"header" yaml:"header"`
}

type Options struct {
	Fields           []string          // Fields to show, in this order
	AllFields        bool              // AllFields shows all introspected fields
	Exclude          []string          // Exclude hides the given fields from the introspected ones; nil if unset
	ColumnNames      []ColumnName      // ColumnNames sets fields and headers explicitly
	FieldOrder       []string          // FieldOrder moves the given columns to the front
	SortKeyName      string            // SortKeyName is the query parameter holding the sort order, default: "o"
	TableCSSClass    string            // TableCSSClass is the class attribute of the table, default: "table"
	TableID          string            // TableID is the id attribute of the table
	ShowPrimaryKey   bool              // ShowPrimaryKey includes primary keys in introspected field sets
	HeaderCSSClasses map[string]string // HeaderCSSClasses maps field names to classes of their header cells
	FieldLister      columns.FieldLister
	ColumnFilters    []columns.ColumnFilter // ColumnFilters restrict the introspected fields of all field modes
	Logger           logger.Logger
	InMemorySort     bool // InMemorySort sorts rows according to the query before rendering

	addedColumns []any
}

// DefaultOptions returns the default options of a table
func DefaultOptions() *Options {
	return &Options{
		SortKeyName:   sortstate.DefaultSortKeyName,
		TableCSSClass: "table",
		Logger:        logger.DefaultLogger(),
	}
}

type Option func(*Options)

// WithFields shows exactly the given fields
func WithFields(fields ...string) Option {
	return func(opts *Options) {
		opts.Fields = append([]string{}, fields...)
	}
}

// WithAllFields shows all fields of the row type
func WithAllFields() Option {
	return func(opts *Options) {
		opts.AllFields = true
	}
}

// WithExclude shows all fields of the row type except the given ones
func WithExclude(fields ...string) Option {
	return func(opts *Options) {
		opts.Exclude = append([]string{}, fields...)
	}
}

// WithColumnNames shows the given fields using the given headers
func WithColumnNames(names ...ColumnName) Option {
	return func(opts *Options) {
		opts.ColumnNames = append([]ColumnName{}, names...)
	}
}

// WithFieldOrder moves the given columns to the front in this order. columns.PlaceholderPrefix ("EMPTY-COLUMN") can be
// used multiple times, each one refers to the next placeholder column.
func WithFieldOrder(fields ...string) Option {
	return func(opts *Options) {
		opts.FieldOrder = append([]string{}, fields...)
	}
}

func WithSortKeyName(name string) Option {
	return func(opts *Options) {
		opts.SortKeyName = name
	}
}

// WithTableCSSClass sets the class attribute of the table; an empty string omits it
func WithTableCSSClass(class string) Option {
	return func(opts *Options) {
		opts.TableCSSClass = class
	}
}

func WithTableID(id string) Option {
	return func(opts *Options) {
		opts.TableID = id
	}
}

func WithShowPrimaryKey(show bool) Option {
	return func(opts *Options) {
		opts.ShowPrimaryKey = show
	}
}

// WithAddedColumns appends derived columns. Their row type must match the one of the table, otherwise they are
// skipped.
func WithAddedColumns[T any](cols ...*columns.Column[T]) Option {
	return func(opts *Options) {
		for _, col := range cols {
			opts.addedColumns = append(opts.addedColumns, col)
		}
	}
}

// WithColumnHeaderCSSClasses sets the classes of header cells by field name; names are matched case-insensitively
func WithColumnHeaderCSSClasses(classes map[string]string) Option {
	return func(opts *Options) {
		opts.HeaderCSSClasses = make(map[string]string, len(classes))
		for k, v := range classes {
			opts.HeaderCSSClasses[k] = v
		}
	}
}

// WithFieldLister sets the source of field metadata; by default struct row types are introspected
func WithFieldLister(lister columns.FieldLister) Option {
	return func(opts *Options) {
		opts.FieldLister = lister
	}
}

// WithColumnFilters limits the fields introspected from struct rows that are shown if no explicit field list is
// given, for example to columns.WithTag("summary"). Fields of a FieldLister are not filtered.
func WithColumnFilters(filters ...columns.ColumnFilter) Option {
	return func(opts *Options) {
		opts.ColumnFilters = append(opts.ColumnFilters, filters...)
	}
}

func WithLogger(l logger.Logger) Option {
	return func(opts *Options) {
		opts.Logger = l
	}
}

func WithInMemorySort(enable bool) Option {
	return func(opts *Options) {
		opts.InMemorySort = enable
	}
}

const (
	ParamSortKeyName    = "sort-key-name"
	ParamTableCSSClass  = "table-css-class"
	ParamTableID        = "table-id"
	ParamShowPrimaryKey = "show-primary-key"
	ParamFields         = "fields"
	ParamExclude        = "exclude"
	ParamFieldOrder     = "field-order"
)

// ParamDescs describes the options of a table that can be set from strings
func ParamDescs() params.ParamDescs {
	return params.ParamDescs{
		{
			Key:          ParamSortKeyName,
			DefaultValue: sortstate.DefaultSortKeyName,
			Description:  "query parameter holding the sort order",
			Validator:    params.ValidateIdentifier,
		},
		{
			Key:          ParamTableCSSClass,
			DefaultValue: "table",
			Description:  "class attribute of the table",
			Validator:    params.ValidateCSSClasses,
		},
		{
			Key:         ParamTableID,
			Description: "id attribute of the table",
			Validator:   params.ValidateCSSClasses,
		},
		{
			Key:          ParamShowPrimaryKey,
			DefaultValue: "false",
			Description:  "show primary keys",
			TypeHint:     params.TypeBool,
		},
		{
			Key:         ParamFields,
			Description: "comma separated list of fields to show",
			TypeHint:    params.TypeStringSlice,
			Validator:   params.ValidateOptionalSlice(params.ValidateIdentifier),
		},
		{
			Key:         ParamExclude,
			Description: "comma separated list of fields to hide",
			TypeHint:    params.TypeStringSlice,
			Validator:   params.ValidateOptionalSlice(params.ValidateIdentifier),
		},
		{
			Key:         ParamFieldOrder,
			Description: "comma separated list of fields to show first",
			TypeHint:    params.TypeStringSlice,
			Validator:   params.ValidateOptionalSlice(params.ValidateIdentifier),
		},
	}
}

// WithParams applies the parameters described by ParamDescs that have been set; others keep their current value
func WithParams(p *params.Params) Option {
	return func(opts *Options) {
		get := func(key string) (*params.Param, bool) {
			v := p.Get(key)
			return v, v != nil && v.IsSet()
		}
		if v, ok := get(ParamSortKeyName); ok && v.AsString() != "" {
			opts.SortKeyName = v.AsString()
		}
		if v, ok := get(ParamTableCSSClass); ok {
			opts.TableCSSClass = v.AsString()
		}
		if v, ok := get(ParamTableID); ok {
			opts.TableID = v.AsString()
		}
		if v, ok := get(ParamShowPrimaryKey); ok {
			opts.ShowPrimaryKey = v.AsBool()
		}
		if v, ok := get(ParamFields); ok && v.AsString() != "" {
			opts.Fields = v.AsStringSlice()
		}
		if v, ok := get(ParamExclude); ok && v.AsString() != "" {
			opts.Exclude = v.AsStringSlice()
		}
		if v, ok := get(ParamFieldOrder); ok && v.AsString() != "" {
			opts.FieldOrder = v.AsStringSlice()
		}
	}
}
