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

/*
Package columns describes the columns of a table rendered from a list of rows. A column has a name (the field name used
in sort links), a header and a kind:

  - field columns read a named field of the row; they are the only sortable columns
  - derived columns compute their value using a function of the row
  - placeholder columns render an empty cell and are used for layout only

Columns can be created by hand (NewFieldColumn, NewDerivedColumn, NewPlaceholderColumn) or by introspecting a struct
type. For introspection, add a "column" tag to the members of the struct:

	type Person struct {
		ID    int     `column:"id,pk"`
		Name  string  `column:"name,header:Full Name,width:32,ellipsis:middle"`
		Age   int     `column:"age,header:Age in years"`
		Score float64 `column:"score,precision:1,humanize"`
		Notes string  `column:"-"`
	}

	cols, err := columns.NewColumns[Person]()

Each tag starts with the name of the column (case-insensitive, must be unique). Additional attributes follow as a
comma separated list; key and value are separated by a colon.

	| Attribute | Value(s)               | Description                                                               |
	|-----------|------------------------|---------------------------------------------------------------------------|
	| ellipsis  | none,start,end,middle  | where to cut values longer than width                                     |
	| header    | string                 | header text; defaults to the title-cased name ("age_in_years" → "Age In Years") |
	| hide      | none                   | the column is not part of the default set of columns                      |
	| humanize  | none                   | group digits of numbers ("1,234,567")                                     |
	| order     | int                    | default position of the column                                            |
	| pk        | none                   | marks the primary key; hidden unless explicitly requested                 |
	| precision | int                    | number of decimals of floats                                              |
	| template  | string                 | applies attributes registered using RegisterTemplate                      |
	| width     | int                    | maximum number of runes shown per cell                                    |

The optional struct tags "columnDesc" and "columnTags" add a description and tags usable with column filters.

Columns and ColumnMap implement FieldLister, the introspection interface used when building tables.

# Value lookup

Field columns found by introspection read the struct field directly. Field columns created by name use Lookup, which
accepts structs, maps with string keys and types implementing FieldGetter. If a row has no such field, the error
wraps ErrMissingAttribute.

# Placeholders

Placeholder columns use the reserved prefix "EMPTY-COLUMN" followed by a number ("EMPTY-COLUMN-1"). Each table owns a
PlaceholderGenerator that hands out these tokens.
*/
package columns
