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

// Package sqlsource lists the fields of SQLite tables and fetches their rows in the order of a sort order list. The
// returned field lists and rows can be passed to tablesort.New directly:
//
//	fields, err := sqlsource.ListFields(ctx, db, "people")
//	...
//	rows, err := sqlsource.Fetch(ctx, db, "people", nil, table.OrderList(q))
//	...
//	table := tablesort.New(rows, tablesort.WithFieldLister(fields))
//
// Field names from order lists are only used after they were found in the table, so they can come straight from a
// query string.
package sqlsource
