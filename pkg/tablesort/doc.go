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
Package tablesort renders a collection of rows as an HTML table whose headers sort the table by rewriting the query
string of the current page.

	table := tablesort.New(people,
		tablesort.WithFields("name", "age"),
		tablesort.WithTableCSSClass("table table-striped"),
	)
	out, err := table.RenderRequest(r)

Clicking a header cycles its column through ascending and descending order; all columns currently sorted are kept in
the query string under the sort key ("o" by default), in order of precedence:

	?page=2&o=name&o=-age

Every header also has a remove-sort link that drops only its own column. All other query parameters are kept as they
are, so the table works together with pagination or filter forms.

# Columns

Columns are taken from exactly one of these sources, in order of precedence:

 1. WithExclude: all fields of the row type except the given ones
 2. WithFields / WithAllFields: the given fields, or all fields
 3. WithColumnNames: the given fields with the given headers; names starting with "EMPTY-COLUMN" become placeholder
    columns rendering empty cells
 4. all fields of the row type, if it can be introspected
 5. no columns

Primary keys are left out of 1., 2. (all fields) and 4. unless WithShowPrimaryKey is set. Fields of struct rows are
introspected using their `column` tags, see package columns; other row types can provide a field list using
WithFieldLister. WithColumnFilters narrows the introspected fields of 1., 2. (all fields) and 4., for example to
those with a given `columnTags` entry.

Derived columns added with WithAddedColumns follow afterwards. Finally WithFieldOrder moves the named columns to the
front in the given order; each "EMPTY-COLUMN" in that list stands for the next placeholder column.

Rows are rendered in the order they were given, as sorting is usually done by the data source (see package
sqlsource). WithInMemorySort sorts them according to the query string instead.
*/
package tablesort
