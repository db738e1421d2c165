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

// Kind tells how a column gets its values
type Kind int

const (
	KindField       Kind = iota // KindField reads the value of a named field of the row
	KindDerived                 // KindDerived computes the value using a function of the row
	KindPlaceholder             // KindPlaceholder always renders an empty cell
)

func (k Kind) String() string {
	switch k {
	case KindField:
		return "Field"
	case KindDerived:
		return "Derived"
	case KindPlaceholder:
		return "Placeholder"
	}
	return "Unknown"
}

// Field describes a field of a row type as reported by an introspection source
type Field struct {
	Name       string
	Label      string
	PrimaryKey bool
	Hidden     bool // Hidden fields are not part of the default set of fields
}

// FieldLister is implemented by everything that can enumerate the fields of rows, in declaration order
type FieldLister interface {
	ListFields() []Field
}

// FieldList is a static FieldLister
type FieldList []Field

func (l FieldList) ListFields() []Field {
	return l
}

type ColumnMatcher interface {
	HasTag(string) bool
	HasNoTags() bool
	IsPrimaryKey() bool
	IsVisible() bool
}

// ColumnInterface is an interface that is valid for Columns and ColumnMap
type ColumnInterface[T any] interface {
	GetColumn(columnName string) (*Column[T], bool)
	GetColumnMap(filters ...ColumnFilter) ColumnMap[T]
	GetOrderedColumns(filters ...ColumnFilter) []*Column[T]
	GetColumnNames(filters ...ColumnFilter) []string
}
