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

package html

import (
	"fmt"
	"html/template"
	"io"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/inspektor-gadget/tablesort/pkg/columns"
	"github.com/inspektor-gadget/tablesort/pkg/columns/ellipsis"
	"github.com/inspektor-gadget/tablesort/pkg/querystring"
	"github.com/inspektor-gadget/tablesort/pkg/sortstate"
)

type Formatter[T any] struct {
	options *Options
	columns []*columns.Column[T]
}

// NewFormatter returns a Formatter that renders entries of type T using the given columns in the given order
func NewFormatter[T any](cols []*columns.Column[T], options ...Option) *Formatter[T] {
	opts := DefaultOptions()
	for _, o := range options {
		o(opts)
	}
	if opts.SortKeyName == "" {
		opts.SortKeyName = sortstate.DefaultSortKeyName
	}

	return &Formatter[T]{
		options: opts,
		columns: cols,
	}
}

// Columns returns the columns in the order they are rendered
func (hf *Formatter[T]) Columns() []*columns.Column[T] {
	return hf.columns
}

// FormatHeader returns the header cells of all columns; sort links are computed from q
func (hf *Formatter[T]) FormatHeader(q querystring.Values) string {
	var row strings.Builder
	for _, col := range hf.columns {
		row.WriteString(hf.FormatHeaderCell(col, q))
	}
	return row.String()
}

// FormatHeaderCell returns the header cell of a single column
func (hf *Formatter[T]) FormatHeaderCell(col *columns.Column[T], q querystring.Values) string {
	header := template.HTMLEscapeString(col.Header)
	classes := col.Classes()

	if !col.Sortable() {
		if classes == "" {
			return "<th>" + header + "</th>"
		}
		return `<th class="` + classes + `">` + header + "</th>"
	}

	links := sortstate.ComputeLinks(q, hf.options.SortKeyName, col.Name)

	thClass := "column-sorted"
	if classes != "" {
		thClass += " " + classes
	}
	optionsClass := "sort-options show"
	title := "Toggle sort"
	direction := "-down"
	removeClass := ""
	switch {
	case links.FirstSort:
		optionsClass = "sort-options"
		title = "Sort by " + header
		direction = ""
		removeClass = ` class="hidden"`
	case links.Descending:
		// the next click sorts descending
		direction = "-up"
	}

	var cell strings.Builder
	cell.WriteString(`<th class="` + thClass + `"><div>` + header)
	cell.WriteString(`<div class="` + optionsClass + `">`)
	cell.WriteString(`<a href="?` + links.Sort + `" role="button" title="` + title + `">`)
	cell.WriteString(`<i class="fa-solid fa-sort` + direction + `"></i></a></div>`)
	cell.WriteString(`<div class="sort-options">`)
	cell.WriteString(`<a href="?` + links.Remove + `"` + removeClass + ` role="button" title="Remove sort">`)
	cell.WriteString(`<i class="fa-solid fa-ban"></i></a></div>`)
	cell.WriteString(`</div></th>`)
	return cell.String()
}

// FormatEntry returns a table row for entry. The first error returned by a column is returned, wrapped.
func (hf *Formatter[T]) FormatEntry(entry T) (string, error) {
	var row strings.Builder
	row.WriteString("<tr>")
	for _, col := range hf.columns {
		v, err := col.GetValue(entry)
		if err != nil {
			return "", err
		}
		row.WriteString("<td>")
		row.WriteString(hf.FormatValue(col, v))
		row.WriteString("</td>")
	}
	row.WriteString("</tr>")
	return row.String(), nil
}

// FormatBody returns the rows of all entries
func (hf *Formatter[T]) FormatBody(entries []T) (string, error) {
	var body strings.Builder
	for _, entry := range entries {
		row, err := hf.FormatEntry(entry)
		if err != nil {
			return "", err
		}
		body.WriteString(row)
	}
	return body.String(), nil
}

// FormatValue returns the escaped cell content of v, respecting precision, humanize and width settings of col
func (hf *Formatter[T]) FormatValue(col *columns.Column[T], v any) string {
	if v == nil {
		return ""
	}
	if h, ok := v.(template.HTML); ok {
		return hf.options.Policy.Sanitize(string(h))
	}

	s := formatScalar(v, col.Precision, col.Humanize)
	if col.Width > 0 {
		s = ellipsis.Shorten(s, col.Width, col.EllipsisType)
	}
	return template.HTMLEscapeString(s)
}

func formatScalar(v any, precision int, humanized bool) string {
	if _, ok := v.(fmt.Stringer); ok {
		return fmt.Sprint(v)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int,
		reflect.Int8,
		reflect.Int16,
		reflect.Int32,
		reflect.Int64:
		if humanized {
			return humanize.Comma(rv.Int())
		}
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64:
		if humanized && rv.Uint() <= math.MaxInt64 {
			return humanize.Comma(int64(rv.Uint()))
		}
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32,
		reflect.Float64:
		if humanized {
			return humanize.CommafWithDigits(rv.Float(), precision)
		}
		return strconv.FormatFloat(rv.Float(), 'f', precision, 64)
	case reflect.String:
		return rv.String()
	case reflect.Pointer:
		if rv.IsNil() {
			return ""
		}
		return formatScalar(rv.Elem().Interface(), precision, humanized)
	}
	return fmt.Sprint(v)
}

// WriteTable writes a complete table with header and body to writer
func (hf *Formatter[T]) WriteTable(writer io.Writer, q querystring.Values, entries []T) error {
	body, err := hf.FormatBody(entries)
	if err != nil {
		return err
	}

	var table strings.Builder
	table.WriteString("<table")
	if hf.options.TableID != "" {
		table.WriteString(` id="` + hf.options.TableID + `"`)
	}
	if hf.options.TableClass != "" {
		table.WriteString(` class="` + hf.options.TableClass + `"`)
	}
	table.WriteString("><thead><tr>")
	table.WriteString(hf.FormatHeader(q))
	table.WriteString("</tr></thead><tbody>")
	table.WriteString(body)
	table.WriteString("</tbody></table>")

	_, err = io.WriteString(writer, table.String())
	return err
}
