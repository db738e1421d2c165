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
Package html renders rows as an HTML table using metadata from a `Columns` instance. Header cells of sortable columns
carry a sort link and a remove-sort link computed from the current query string, so a table can be sorted by several
columns at once by clicking its headers.

# Initializing

You can create a new formatter by calling

	hf := html.NewFormatter(columnMap.GetOrderedColumns(columns.WithVisible(true)))

You can specify options by adding one or more of the WithX() functions to the initializer.

# Output

	hf.FormatHeader(query)

returns the header cells. For a column "name" that is currently sorted ascending, the cell looks like this (whitespace
added):

	<th class="column-sorted">
	  <div>Name
	    <div class="sort-options show">
	      <a href="?o=-name" role="button" title="Toggle sort"><i class="fa-solid fa-sort-up"></i></a>
	    </div>
	    <div class="sort-options">
	      <a href="?" role="button" title="Remove sort"><i class="fa-solid fa-ban"></i></a>
	    </div>
	  </div>
	</th>

Derived and placeholder columns get a plain <th> cell.

	hf.FormatEntry(row)

returns a <tr> with one <td> per column. Values are HTML-escaped; values of type template.HTML are passed through a
bluemonday policy instead. Use

	hf.WriteTable(w, query, rows)

to write a complete <table>.
*/
package html
