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
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/inspektor-gadget/tablesort/pkg/columns/ellipsis"
)

type Column[T any] struct {
	Name         string                   // Name identifies the column; it is the field name used in sort links
	Header       string                   // Header is the text shown in the header cell
	Kind         Kind                     // Kind defines how values are retrieved
	PrimaryKey   bool                     // PrimaryKey marks the primary key of the row type; such columns are not shown by default
	Visible      bool                     // Visible defines whether a column is part of the default set of columns
	Order        int                      // Order defines the default order in which columns are shown
	Width        int                      // Width limits the number of runes shown in a cell; 0 means unlimited
	EllipsisType ellipsis.EllipsisType    // EllipsisType defines how to abbreviate values exceeding Width
	Precision    int                      // Precision defines how many decimals should be shown on float values, default: 2
	Humanize     bool                     // Humanize enables digit grouping for numbers
	CSSClass     string                   // CSSClass is added to the header cell
	Description  string                   // Description can hold a short description of the field that can be used to aid the user
	Tags         []string                 // Tags can be used to dynamically include or exclude columns
	Extractor    func(row T) (any, error) // Extractor retrieves the value; if nil, the value is looked up by Name

	fieldIndex  []int        // index path for struct fields found by introspection
	columnType  reflect.Type // cached type info from reflection
	useTemplate bool
	template    string
}

// NewFieldColumn returns a column that reads the field name of each row
func NewFieldColumn[T any](name, header string) *Column[T] {
	return &Column[T]{
		Name:         name,
		Header:       header,
		Kind:         KindField,
		Visible:      true,
		Precision:    2,
		EllipsisType: ellipsis.End,
	}
}

// NewDerivedColumn returns a column that uses fn to compute its values. name only identifies the column and does not
// need to exist on the row type.
func NewDerivedColumn[T any](name, header string, fn func(row T) (any, error)) *Column[T] {
	column := NewFieldColumn[T](name, header)
	column.Kind = KindDerived
	column.Extractor = fn
	return column
}

// NewPlaceholderColumn returns a column that renders empty cells
func NewPlaceholderColumn[T any](name, header string) *Column[T] {
	column := NewFieldColumn[T](name, header)
	column.Kind = KindPlaceholder
	return column
}

func (ci *Column[T]) fromTag(tag string) error {
	tagInfo := strings.Split(tag, ",")
	ci.Name = tagInfo[0]

	tagInfo = tagInfo[1:]
	for _, subTag := range tagInfo {
		params := strings.SplitN(subTag, ":", 2)
		paramsLen := len(params)
		switch params[0] {
		case "ellipsis":
			if paramsLen == 1 {
				ci.EllipsisType = ellipsis.End
				continue
			}
			et, err := ellipsis.Parse(params[1])
			if err != nil {
				return fmt.Errorf("invalid ellipsis value %q for field %q", params[1], ci.Name)
			}
			ci.EllipsisType = et
		case "header":
			if paramsLen == 1 || params[1] == "" {
				return fmt.Errorf("missing header value for field %q", ci.Name)
			}
			ci.Header = params[1]
		case "hide":
			if paramsLen != 1 {
				return fmt.Errorf("parameter hide on field %q must not have a value", ci.Name)
			}
			ci.Visible = false
		case "humanize":
			if paramsLen != 1 {
				return fmt.Errorf("parameter humanize on field %q must not have a value", ci.Name)
			}
			switch ci.kind() {
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
				reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
				reflect.Float32, reflect.Float64:
			default:
				return fmt.Errorf("field %q is not numeric and thereby cannot be humanized", ci.Name)
			}
			ci.Humanize = true
		case "order":
			if paramsLen == 1 {
				return fmt.Errorf("missing order value for field %q", ci.Name)
			}
			w, err := strconv.Atoi(params[1])
			if err != nil {
				return fmt.Errorf("invalid order value %q for field %q: %w", params[1], ci.Name, err)
			}
			ci.Order = w
		case "pk":
			if paramsLen != 1 {
				return fmt.Errorf("parameter pk on field %q must not have a value", ci.Name)
			}
			ci.PrimaryKey = true
		case "precision":
			if k := ci.kind(); k != reflect.Float32 && k != reflect.Float64 {
				return fmt.Errorf("field %q is not a float field and thereby cannot have precision defined", ci.Name)
			}
			if paramsLen == 1 {
				return fmt.Errorf("missing precision value for field %q", ci.Name)
			}
			w, err := strconv.Atoi(params[1])
			if err != nil {
				return fmt.Errorf("invalid precision value %q for field %q: %w", params[1], ci.Name, err)
			}
			if w < -1 {
				return fmt.Errorf("negative precision value %q for field %q", params[1], ci.Name)
			}
			ci.Precision = w
		case "template":
			if paramsLen < 2 || params[1] == "" {
				return fmt.Errorf("no template specified for field %q", ci.Name)
			}
			ci.useTemplate = true
			ci.template = params[1]
		case "width":
			if paramsLen == 1 {
				return fmt.Errorf("missing width value for field %q", ci.Name)
			}
			w, err := strconv.Atoi(params[1])
			if err != nil {
				return fmt.Errorf("invalid width %q for field %q: %w", params[1], ci.Name, err)
			}
			if w < 0 {
				return fmt.Errorf("negative width %q for field %q", params[1], ci.Name)
			}
			ci.Width = w
		default:
			return fmt.Errorf("invalid column parameter %q for field %q", params[0], ci.Name)
		}
	}
	return nil
}

func (ci *Column[T]) kind() reflect.Kind {
	if ci.columnType == nil {
		return reflect.Invalid
	}
	return ci.columnType.Kind()
}

// GetValue returns the value of this column for row. Placeholder columns always return an empty string. Errors of
// extractors are returned wrapped; field columns return an error wrapping ErrMissingAttribute if row has no such
// field.
func (ci *Column[T]) GetValue(row T) (any, error) {
	switch ci.Kind {
	case KindPlaceholder:
		return "", nil
	case KindDerived:
		if ci.Extractor == nil {
			return nil, fmt.Errorf("column %q: no extractor set", ci.Name)
		}
		v, err := ci.Extractor(row)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", ci.Name, err)
		}
		return v, nil
	}

	if ci.Extractor != nil {
		return ci.Extractor(row)
	}
	if ci.fieldIndex != nil {
		return ci.getRawField(row), nil
	}
	return Lookup(row, ci.Name)
}

func (ci *Column[T]) getRawField(row T) any {
	v := reflect.ValueOf(row)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	f, err := v.FieldByIndexErr(ci.fieldIndex)
	if err != nil {
		// nil embedded pointer
		return nil
	}
	return f.Interface()
}

// Classes returns the CSS classes for the header cell of this column
func (ci *Column[T]) Classes() string {
	return ci.CSSClass
}

// Sortable returns whether the table can be sorted by this column
func (ci *Column[T]) Sortable() bool {
	return ci.Kind == KindField
}

// Type returns the type of the underlying struct field or nil if unknown
func (ci *Column[T]) Type() reflect.Type {
	return ci.columnType
}

// Clone returns a copy of the column that can be modified without affecting the original
func (ci *Column[T]) Clone() *Column[T] {
	c := *ci
	if ci.Tags != nil {
		c.Tags = append([]string{}, ci.Tags...)
	}
	return &c
}

// Field returns the introspection view of the column
func (ci *Column[T]) Field() Field {
	return Field{
		Name:       ci.Name,
		Label:      ci.Header,
		PrimaryKey: ci.PrimaryKey,
		Hidden:     !ci.Visible,
	}
}

func (ci *Column[T]) HasTag(tag string) bool {
	for _, curTag := range ci.Tags {
		if curTag == tag {
			return true
		}
	}
	return false
}

func (ci *Column[T]) HasNoTags() bool {
	return len(ci.Tags) == 0
}

func (ci *Column[T]) IsPrimaryKey() bool {
	return ci.PrimaryKey
}

func (ci *Column[T]) IsVisible() bool {
	return ci.Visible
}
