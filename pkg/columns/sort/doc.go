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
Package sort can be used to sort rows by their columns in either ascending or descending order.

Calling

	sort.SortEntries(columnMap, rows, []string{"name", "-age"})

for example sorts the rows by the age column in descending order and afterwards by the name column.

The "-" prefix means the sorter should use descending order. Sorting by multiple fields will be done from the last field
to the first in a stable way - so the first column always gets the highest priority. This is the same format the "o"
query parameter of a sortable table uses.

Values are read using Column.GetValue. Rows for which a value cannot be read, nil rows and nil values are always moved to
the end. Numbers, strings, booleans and time.Time values are compared natively; everything else is compared by its
fmt.Sprint representation.

Two special cases exist:
 1. Non-existent columns will be silently ignored.
 2. Derived and placeholder columns will be silently ignored.

One can use sort.CanSortBy(columnMap, []string{"name", "-age"}) to check if any column will be silently ignored. For more
information the function sort.FilterSortableColumns(columnMap, []string{"name", "-age"}) can be used, which returns two
lists. One with all valid sortable columns and another one with the invalid columns.
*/
package sort
