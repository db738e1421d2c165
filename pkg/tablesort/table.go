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

package tablesort

import (
	"html/template"
	"math"
	"net/http"
	"reflect"
	"sort"
	"strings"

	"github.com/inspektor-gadget/tablesort/pkg/columns"
	"github.com/inspektor-gadget/tablesort/pkg/columns/formatter/html"
	columnssort "github.com/inspektor-gadget/tablesort/pkg/columns/sort"
	"github.com/inspektor-gadget/tablesort/pkg/logger"
	"github.com/inspektor-gadget/tablesort/pkg/querystring"
	"github.com/inspektor-gadget/tablesort/pkg/sortstate"
)

// Table holds the rows and the resolved columns of a sortable table. It is not modified by rendering, so a Table can
// be rendered concurrently for different requests.
type Table[T any] struct {
	options      *Options
	rows         []T
	columns      []*columns.Column[T]
	introspected *columns.Columns[T]
	formatter    *html.Formatter[T]
	placeholders *columns.PlaceholderGenerator
}

// New returns a table showing rows. Misconfiguration never results in an error; conflicting options are resolved by
// precedence and problems are logged at debug level.
func New[T any](rows []T, options ...Option) *Table[T] {
	opts := DefaultOptions()
	for _, o := range options {
		o(opts)
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.SortKeyName == "" {
		opts.SortKeyName = sortstate.DefaultSortKeyName
	}

	t := &Table[T]{
		options:      opts,
		rows:         rows,
		placeholders: &columns.PlaceholderGenerator{},
	}
	t.introspect()
	t.columns = t.buildColumns()
	t.applyFieldOrder()
	t.applyHeaderClasses()

	t.formatter = html.NewFormatter(t.columns,
		html.WithSortKeyName(opts.SortKeyName),
		html.WithTableID(opts.TableID),
		html.WithTableClass(opts.TableCSSClass),
	)
	return t
}

// rowType returns T with pointers removed
func (t *Table[T]) rowType() reflect.Type {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	return rt
}

func (t *Table[T]) introspect() {
	rt := t.rowType()
	if rt.Kind() != reflect.Struct {
		return
	}

	cols, err := columns.NewColumns[T](columns.WithRequireColumnDefinition(false))
	if err != nil {
		t.options.Logger.Debugf("introspecting %s: %v", rt, err)
		return
	}
	t.introspected = cols
}

func (t *Table[T]) fieldLister() columns.FieldLister {
	if t.options.FieldLister != nil {
		return t.options.FieldLister
	}
	if t.introspected != nil {
		return t.introspected.ColumnMap
	}
	return nil
}

// listFields returns the fields the "all fields" modes are based on
func (t *Table[T]) listFields() []columns.Field {
	lister := t.fieldLister()
	if t.options.FieldLister == nil && t.introspected != nil && len(t.options.ColumnFilters) > 0 {
		lister = t.introspected.GetColumnMap(t.options.ColumnFilters...)
	}
	if lister == nil {
		return nil
	}
	var res []columns.Field
	for _, f := range lister.ListFields() {
		if f.Hidden {
			continue
		}
		if f.PrimaryKey && !t.options.ShowPrimaryKey {
			continue
		}
		res = append(res, f)
	}
	return res
}

func (t *Table[T]) lookupField(name string) (columns.Field, bool) {
	lister := t.fieldLister()
	if lister == nil {
		return columns.Field{}, false
	}
	for _, f := range lister.ListFields() {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return columns.Field{}, false
}

// fieldColumn returns a new column for field name. An empty header falls back to the label of the field.
func (t *Table[T]) fieldColumn(name, header string) *columns.Column[T] {
	var col *columns.Column[T]
	if t.introspected != nil {
		if c, ok := t.introspected.GetColumn(name); ok && c.Kind == columns.KindField {
			col = c.Clone()
			col.Name = name
		}
	}
	if col == nil {
		label := ""
		f, ok := t.lookupField(name)
		if ok {
			label = f.Label
		}
		if label == "" {
			label = columns.HeaderFromName(name, columns.GetDefault().Language)
		}
		col = columns.NewFieldColumn[T](name, label)
		if ok && f.Name != name {
			// the column keeps the name used in links, values are read using the spelling of the lister
			resolved := f.Name
			col.Extractor = func(row T) (any, error) {
				return columns.Lookup(row, resolved)
			}
		}
	}
	if header != "" {
		col.Header = header
	}
	return col
}

func (t *Table[T]) buildColumns() []*columns.Column[T] {
	opts := t.options
	log := opts.Logger

	var res []*columns.Column[T]
	seen := make(map[string]struct{})
	add := func(col *columns.Column[T]) {
		key := strings.ToLower(col.Name)
		if _, ok := seen[key]; ok {
			log.Debugf("skipping duplicate column %q", col.Name)
			return
		}
		seen[key] = struct{}{}
		res = append(res, col)
	}

	switch {
	case opts.Exclude != nil:
		if opts.Fields != nil || opts.AllFields || opts.ColumnNames != nil {
			log.Debugf("exclude list given, ignoring other field selections")
		}
		excluded := make(map[string]struct{}, len(opts.Exclude))
		for _, name := range opts.Exclude {
			excluded[strings.ToLower(name)] = struct{}{}
		}
		for _, f := range t.listFields() {
			if _, ok := excluded[strings.ToLower(f.Name)]; ok {
				continue
			}
			add(t.fieldColumn(f.Name, ""))
		}
	case opts.AllFields:
		for _, f := range t.listFields() {
			add(t.fieldColumn(f.Name, ""))
		}
	case opts.Fields != nil:
		if opts.ColumnNames != nil {
			log.Debugf("field list given, ignoring column names")
		}
		lister := t.fieldLister()
		for _, name := range opts.Fields {
			if lister != nil {
				if _, ok := t.lookupField(name); !ok && !columns.HasGetterMethod(t.rowType(), name) {
					log.Debugf("skipping unknown field %q", name)
					continue
				}
			}
			add(t.fieldColumn(name, ""))
		}
	case opts.ColumnNames != nil:
		for _, cn := range opts.ColumnNames {
			if columns.IsPlaceholder(cn.Field) {
				add(columns.NewPlaceholderColumn[T](cn.Field, cn.Header))
				continue
			}
			add(t.fieldColumn(cn.Field, cn.Header))
		}
	default:
		for _, f := range t.listFields() {
			add(t.fieldColumn(f.Name, ""))
		}
	}

	for _, c := range opts.addedColumns {
		col, ok := c.(*columns.Column[T])
		if !ok || col == nil {
			log.Debugf("skipping added column of type %T", c)
			continue
		}
		col = col.Clone()
		if col.Kind == columns.KindField {
			col.Kind = columns.KindDerived
		}
		if col.Header == "" {
			col.Header = columns.HeaderFromName(col.Name, columns.GetDefault().Language)
		}
		add(col)
	}

	return res
}

func (t *Table[T]) applyHeaderClasses() {
	if len(t.options.HeaderCSSClasses) == 0 {
		return
	}
	classes := make(map[string]string, len(t.options.HeaderCSSClasses))
	for name, class := range t.options.HeaderCSSClasses {
		classes[strings.ToLower(name)] = class
	}
	for _, col := range t.columns {
		if class, ok := classes[strings.ToLower(col.Name)]; ok {
			col.CSSClass = class
		}
	}
}

// applyFieldOrder moves columns named in FieldOrder to the front. Columns not named keep their relative order.
func (t *Table[T]) applyFieldOrder() {
	if len(t.options.FieldOrder) == 0 {
		return
	}

	index := make(map[string]int, len(t.columns))
	for i, col := range t.columns {
		index[strings.ToLower(col.Name)] = i
	}

	priority := make(map[*columns.Column[T]]int)
	for i, name := range t.options.FieldOrder {
		if name == columns.PlaceholderPrefix {
			name = t.placeholders.NextKey()
			if _, ok := index[strings.ToLower(name)]; !ok {
				index[strings.ToLower(name)] = len(t.columns)
				t.columns = append(t.columns, columns.NewPlaceholderColumn[T](name, ""))
			}
		}
		pos, ok := index[strings.ToLower(name)]
		if !ok {
			t.options.Logger.Debugf("field order: unknown column %q", name)
			continue
		}
		if _, ok := priority[t.columns[pos]]; !ok {
			priority[t.columns[pos]] = i
		}
	}

	getPriority := func(col *columns.Column[T]) int {
		if p, ok := priority[col]; ok {
			return p
		}
		return math.MaxInt
	}
	sort.SliceStable(t.columns, func(i, j int) bool {
		return getPriority(t.columns[i]) < getPriority(t.columns[j])
	})
}

// Columns returns the columns of the table in the order they are rendered
func (t *Table[T]) Columns() []*columns.Column[T] {
	return t.columns
}

// SortKeyName returns the query parameter holding the sort order
func (t *Table[T]) SortKeyName() string {
	return t.options.SortKeyName
}

// OrderList returns the sort order requested by q
func (t *Table[T]) OrderList(q querystring.Values) sortstate.OrderList {
	return sortstate.FromQuery(q, t.options.SortKeyName)
}

// Rows returns the rows in the order they are rendered for q
func (t *Table[T]) Rows(q querystring.Values) []T {
	if !t.options.InMemorySort {
		return t.rows
	}
	order := t.OrderList(q)
	if len(order) == 0 {
		return t.rows
	}

	// fields of the row type can be sorted by even if they are not shown
	cmap := make(columns.ColumnMap[T], len(t.columns))
	if t.introspected != nil {
		for key, col := range t.introspected.ColumnMap {
			cmap[key] = col
		}
	}
	for _, col := range t.columns {
		cmap[strings.ToLower(col.Name)] = col
	}
	rows := append([]T{}, t.rows...)
	columnssort.SortEntries(cmap, rows, order)
	return rows
}

// HeaderHTML returns the header cells with sort links based on q
func (t *Table[T]) HeaderHTML(q querystring.Values) template.HTML {
	return template.HTML(t.formatter.FormatHeader(q))
}

// BodyHTML returns the table rows. Errors looking up values are returned unchanged.
func (t *Table[T]) BodyHTML(q querystring.Values) (template.HTML, error) {
	body, err := t.formatter.FormatBody(t.Rows(q))
	if err != nil {
		return "", err
	}
	return template.HTML(body), nil
}

// Render returns the complete table for the query q
func (t *Table[T]) Render(q querystring.Values) (template.HTML, error) {
	var sb strings.Builder
	if err := t.formatter.WriteTable(&sb, q, t.Rows(q)); err != nil {
		return "", err
	}
	return template.HTML(sb.String()), nil
}

// RenderRequest renders the table using the query string of r. Undecodable parts of the query are kept as they are.
func (t *Table[T]) RenderRequest(r *http.Request) (template.HTML, error) {
	return t.Render(t.Query(r))
}

// Query returns the parsed query string of r
func (t *Table[T]) Query(r *http.Request) querystring.Values {
	if r == nil || r.URL == nil {
		return nil
	}
	q, err := querystring.FromURL(r.URL)
	if err != nil {
		t.options.Logger.Warnf("parsing query %q: %v", r.URL.RawQuery, err)
	}
	return q
}
