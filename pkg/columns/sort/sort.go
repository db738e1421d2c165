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

package sort

import (
	"cmp"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/inspektor-gadget/tablesort/pkg/columns"
)

type columnSorter[T any] struct {
	rows       []T
	values     []any
	column     *columns.Column[T]
	descending bool
}

func (cs *columnSorter[T]) Len() int {
	return len(cs.rows)
}

func (cs *columnSorter[T]) Swap(i, j int) {
	cs.rows[i], cs.rows[j] = cs.rows[j], cs.rows[i]
	cs.values[i], cs.values[j] = cs.values[j], cs.values[i]
}

func (cs *columnSorter[T]) Less(i, j int) bool {
	v1, v2 := cs.values[i], cs.values[j]
	if v1 == nil {
		return false
	}
	if v2 == nil {
		return true
	}
	c := compareValues(v1, v2)
	if cs.descending {
		return c > 0
	}
	return c < 0
}

// SortEntries sorts rows by applying the sortBy rules from right to left (first rule has the highest priority). The
// rules are strings containing the column names, optionally prefixed with "-" to switch to descending sort order.
func SortEntries[T any](cols columns.ColumnMap[T], rows []T, sortBy []string) {
	if rows == nil {
		return
	}

	for i := len(sortBy) - 1; i >= 0; i-- {
		sortField := sortBy[i]

		if len(sortField) == 0 {
			continue
		}

		// Handle ordering
		descending := false
		if sortField[0] == '-' {
			sortField = sortField[1:]
			descending = true
		}

		column, ok := cols.GetColumn(sortField)
		if !ok || !column.Sortable() {
			continue
		}

		sort.Stable(newColumnSorter(rows, column, descending))
	}
}

func newColumnSorter[T any](rows []T, column *columns.Column[T], descending bool) *columnSorter[T] {
	cs := &columnSorter[T]{
		rows:       rows,
		values:     make([]any, len(rows)),
		column:     column,
		descending: descending,
	}
	for i, row := range rows {
		if isNil(row) {
			continue
		}
		v, err := column.GetValue(row)
		if err != nil || isNil(v) {
			continue
		}
		cs.values[i] = v
	}
	return cs
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// compareValues returns -1, 0 or +1 depending on whether a is less than, equal to or greater than b
func compareValues(a, b any) int {
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}

	va := reflect.Indirect(reflect.ValueOf(a))
	vb := reflect.Indirect(reflect.ValueOf(b))

	switch {
	case isInt(va) && isInt(vb):
		return cmp.Compare(va.Int(), vb.Int())
	case isUint(va) && isUint(vb):
		return cmp.Compare(va.Uint(), vb.Uint())
	case isNumber(va) && isNumber(vb):
		return cmp.Compare(toFloat(va), toFloat(vb))
	case va.Kind() == reflect.String && vb.Kind() == reflect.String:
		return strings.Compare(va.String(), vb.String())
	case va.Kind() == reflect.Bool && vb.Kind() == reflect.Bool:
		switch {
		case va.Bool() == vb.Bool():
			return 0
		case vb.Bool():
			return -1
		}
		return 1
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNumber(v reflect.Value) bool {
	return isInt(v) || isUint(v) || v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v):
		return float64(v.Int())
	case isUint(v):
		return float64(v.Uint())
	}
	return v.Float()
}

// CanSortBy returns true if sorting by all given rules is possible
func CanSortBy[T any](cols columns.ColumnMap[T], sortBy []string) bool {
	_, invalid := FilterSortableColumns(cols, sortBy)
	return len(invalid) == 0
}

// FilterSortableColumns returns two lists, one containing the valid column names
// and another containing the invalid column names. Prefixes like "-" are still
// kept in the resulting lists.
func FilterSortableColumns[T any](cols columns.ColumnMap[T], sortBy []string) ([]string, []string) {
	valid := make([]string, 0, len(sortBy))
	invalid := make([]string, 0)

	for _, sortField := range sortBy {
		if len(sortField) == 0 {
			invalid = append(invalid, sortField)
			continue
		}

		rawSortField := strings.TrimPrefix(sortField, "-")

		column, ok := cols.GetColumn(rawSortField)
		if !ok || !column.Sortable() {
			invalid = append(invalid, sortField)
			continue
		}

		valid = append(valid, sortField)
	}

	return valid, invalid
}
