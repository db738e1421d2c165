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
Package sortstate computes the links of sortable column headers. The complete sort state of a table lives in the query
string of the current page: every value bound to the sort key (by default "o") names one field, optionally prefixed
with "-" for descending order. The position in that list is the sort precedence, so

	?page=2&o=name&o=-age

sorts by name ascending and afterwards by age descending.

Each field is in one of three states, derived only from that list:

	Unsorted --sort--> Ascending --sort--> Descending --sort--> Ascending
	Ascending/Descending --remove--> Unsorted

Toggling keeps the position of the field in the list; removing keeps the order of all other fields. Parameters not
bound to the sort key are passed through unchanged.

	links := sortstate.ComputeLinks(query, "o", "age")
	// links.Sort:   "page=2&o=name&o=age"
	// links.Remove: "page=2&o=name"
*/
package sortstate
