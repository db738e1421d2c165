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

package sqlsource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/inspektor-gadget/tablesort/pkg/columns"
	"github.com/inspektor-gadget/tablesort/pkg/sortstate"
)

var (
	ErrNoSuchTable  = errors.New("no such table")
	ErrUnknownField = errors.New("unknown field")
)

// Querier is implemented by *sql.DB, *sql.Conn and *sql.Tx
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Row holds the values of a fetched row by column name
type Row map[string]any

// GetField returns the value of the column name; names are matched case-insensitively like SQLite does
func (r Row) GetField(name string) (any, bool) {
	if v, ok := r[name]; ok {
		return v, true
	}
	for k, v := range r {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

// QuoteIdentifier returns name quoted for use as an SQL identifier
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// ListFields returns the columns of table in declaration order. Columns that are part of the primary key are marked
// as such and labels are derived from the column names.
func ListFields(ctx context.Context, db Querier, table string) (columns.FieldList, error) {
	rows, err := db.QueryContext(ctx, "PRAGMA table_info("+QuoteIdentifier(table)+")")
	if err != nil {
		return nil, fmt.Errorf("listing fields of %q: %w", table, err)
	}
	defer rows.Close()

	lang := columns.GetDefault().Language
	var fields columns.FieldList
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, typ        string
			defaultValue     sql.NullString
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &defaultValue, &pk); err != nil {
			return nil, fmt.Errorf("listing fields of %q: %w", table, err)
		}
		fields = append(fields, columns.Field{
			Name:       name,
			Label:      columns.HeaderFromName(name, lang),
			PrimaryKey: pk > 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing fields of %q: %w", table, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchTable, table)
	}
	return fields, nil
}

// resolve returns the name of the field in fields matching name
func resolve(fields columns.FieldList, name string) (string, bool) {
	for _, f := range fields {
		if strings.EqualFold(f.Name, name) {
			return f.Name, true
		}
	}
	return "", false
}

// OrderBy returns the ORDER BY clause for order, including the keyword, or an empty string if no entry of order names
// one of fields. Unknown and repeated fields are skipped.
func OrderBy(fields columns.FieldList, order sortstate.OrderList) string {
	var terms []string
	seen := make(map[string]struct{})
	for _, entry := range order {
		name, descending := sortstate.SplitEntry(entry)
		name, ok := resolve(fields, name)
		if !ok {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		term := QuoteIdentifier(name)
		if descending {
			term += " DESC"
		} else {
			term += " ASC"
		}
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		return ""
	}
	return " ORDER BY " + strings.Join(terms, ", ")
}

// Query returns the SELECT statement for the given fields of table sorted by order. All fields are selected if
// fields is empty. Requesting a field not in known fails with ErrUnknownField.
func Query(known columns.FieldList, table string, fields []string, order sortstate.OrderList) (string, error) {
	selected := make([]string, 0, len(fields))
	for _, field := range fields {
		name, ok := resolve(known, field)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
		selected = append(selected, QuoteIdentifier(name))
	}
	if len(selected) == 0 {
		for _, f := range known {
			selected = append(selected, QuoteIdentifier(f.Name))
		}
	}
	return "SELECT " + strings.Join(selected, ", ") + " FROM " + QuoteIdentifier(table) + OrderBy(known, order), nil
}

// Fetch returns the rows of table sorted by order. Only the given fields are fetched unless fields is empty.
func Fetch(ctx context.Context, db Querier, table string, fields []string, order sortstate.OrderList) ([]Row, error) {
	known, err := ListFields(ctx, db, table)
	if err != nil {
		return nil, err
	}
	query, err := Query(known, table, fields, order)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetching rows of %q: %w", table, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("fetching rows of %q: %w", table, err)
	}

	var res []Row
	for rows.Next() {
		values := make([]any, len(names))
		ptrs := make([]any, len(names))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("fetching rows of %q: %w", table, err)
		}
		row := make(Row, len(names))
		for i, name := range names {
			if b, ok := values[i].([]byte); ok {
				values[i] = string(b)
			}
			row[name] = values[i]
		}
		res = append(res, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetching rows of %q: %w", table, err)
	}
	return res, nil
}
