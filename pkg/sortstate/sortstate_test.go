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

package sortstate

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inspektor-gadget/tablesort/pkg/querystring"
)

func mustParse(t *testing.T, query string) querystring.Values {
	t.Helper()
	q, err := querystring.Parse(query)
	require.NoError(t, err)
	return q
}

func TestComputeLinks(t *testing.T) {
	type test struct {
		name       string
		query      string
		field      string
		sort       string
		remove     string
		firstSort  bool
		descending bool
		state      State
	}

	tests := []test{
		{
			name:      "empty query",
			query:     "",
			field:     "name",
			sort:      "o=name",
			remove:    "",
			firstSort: true,
			state:     Unsorted,
		},
		{
			name:       "ascending field",
			query:      "o=name",
			field:      "name",
			sort:       "o=-name",
			remove:     "",
			descending: true,
			state:      Ascending,
		},
		{
			name:   "descending field",
			query:  "o=-name",
			field:  "name",
			sort:   "o=name",
			remove: "",
			state:  Descending,
		},
		{
			name:       "second of two fields",
			query:      "o=name&o=age",
			field:      "age",
			sort:       "o=name&o=-age",
			remove:     "o=name",
			descending: true,
			state:      Ascending,
		},
		{
			name:       "first of two fields keeps its position",
			query:      "o=name&o=-age",
			field:      "name",
			sort:       "o=-name&o=-age",
			remove:     "o=-age",
			descending: true,
			state:      Ascending,
		},
		{
			name:      "unrelated parameters are kept",
			query:     "page=1&o=name",
			field:     "age",
			sort:      "page=1&o=name&o=age",
			remove:    "page=1&o=name",
			firstSort: true,
			state:     Unsorted,
		},
		{
			name:      "unrelated parameter after sort key",
			query:     "o=name&page=1",
			field:     "age",
			sort:      "o=name&o=age&page=1",
			remove:    "o=name&page=1",
			firstSort: true,
			state:     Unsorted,
		},
		{
			name:   "removing the only field of many parameters",
			query:  "page=1&o=-age&size=20",
			field:  "age",
			sort:   "page=1&o=age&size=20",
			remove: "page=1&size=20",
			state:  Descending,
		},
		{
			name:       "field name that is a prefix of another field",
			query:      "o=name_full",
			field:      "name",
			sort:       "o=name_full&o=name",
			remove:     "o=name_full",
			firstSort:  true,
			descending: false,
			state:      Unsorted,
		},
		{
			name:       "both forms present resolve as ascending",
			query:      "o=-name&o=age&o=name",
			field:      "name",
			sort:       "o=age&o=-name",
			remove:     "o=age",
			descending: true,
			state:      Ascending,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			links := ComputeLinks(mustParse(t, tc.query), "o", tc.field)
			assert.Equal(t, tc.sort, links.Sort, "sort link")
			assert.Equal(t, tc.remove, links.Remove, "remove link")
			assert.Equal(t, tc.firstSort, links.FirstSort, "first sort")
			assert.Equal(t, tc.descending, links.Descending, "descending")
			assert.Equal(t, tc.state, links.State, "state")
		})
	}
}

func TestComputeLinksCustomSortKey(t *testing.T) {
	links := ComputeLinks(mustParse(t, "o=x&sort=name"), "sort", "name")
	assert.Equal(t, "o=x&sort=-name", links.Sort)
	assert.Equal(t, "o=x", links.Remove)
}

func TestComputeLinksDoesNotModifyQuery(t *testing.T) {
	q := mustParse(t, "page=1&o=name")
	ComputeLinks(q, "o", "name")
	ComputeLinks(q, "o", "age")
	assert.Equal(t, "page=1&o=name", q.Encode())
}

func TestStateCycle(t *testing.T) {
	q := querystring.Values{}
	states := []State{Unsorted, Ascending, Descending, Ascending, Descending}
	for i, expected := range states {
		require.Equal(t, expected, FromQuery(q, "o").State("name"), "step %d", i)
		var err error
		q, err = querystring.Parse(ComputeLinks(q, "o", "name").Sort)
		require.NoError(t, err)
	}

	q, err := querystring.Parse(ComputeLinks(q, "o", "name").Remove)
	require.NoError(t, err)
	assert.Equal(t, Unsorted, FromQuery(q, "o").State("name"))
	assert.False(t, q.Has("o"))
}

func TestToggleAppendsUnsortedFields(t *testing.T) {
	base := OrderList{"a", "-b", "c"}
	for _, field := range []string{"d", "e_f", "bb"} {
		res := base.Toggle(field)
		expected := append(append(OrderList{}, base...), field)
		if diff := cmp.Diff(expected, res); diff != "" {
			t.Errorf("toggle %q (-want +got):\n%s", field, diff)
		}
	}
	assert.Equal(t, OrderList{"a", "-b", "c"}, base)
}

func TestTogglePreservesPosition(t *testing.T) {
	base := OrderList{"a", "-b", "c", "-d"}
	for i, entry := range base {
		field, descending := SplitEntry(entry)
		res := base.Toggle(field)
		require.Len(t, res, len(base))
		if descending {
			assert.Equal(t, field, res[i])
		} else {
			assert.Equal(t, Negate(field), res[i])
		}
		for j := range base {
			if j != i {
				assert.Equal(t, base[j], res[j])
			}
		}
	}
}

func TestRemovePreservesOthers(t *testing.T) {
	base := OrderList{"a", "-b", "c", "-d"}
	for i, entry := range base {
		field, _ := SplitEntry(entry)
		expected := append(append(OrderList{}, base[:i]...), base[i+1:]...)
		assert.Equal(t, expected, base.Remove(field), fmt.Sprintf("remove %q", field))
	}
	assert.Equal(t, base, base.Remove("unknown"))
}

func TestSplitEntry(t *testing.T) {
	field, descending := SplitEntry("-age")
	assert.Equal(t, "age", field)
	assert.True(t, descending)

	field, descending = SplitEntry("age")
	assert.Equal(t, "age", field)
	assert.False(t, descending)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Unsorted", Unsorted.String())
	assert.Equal(t, "Ascending", Ascending.String())
	assert.Equal(t, "Descending", Descending.String())
}

func TestFieldsMatchCaseInsensitively(t *testing.T) {
	order := OrderList{"page", "Name", "-AGE"}
	assert.Equal(t, Ascending, order.State("name"))
	assert.Equal(t, Descending, order.State("age"))

	assert.Equal(t, OrderList{"page", "-name", "-AGE"}, order.Toggle("name"))
	assert.Equal(t, OrderList{"page", "Name", "age"}, order.Toggle("age"))
	assert.Equal(t, OrderList{"page", "-AGE"}, order.Remove("name"))

	links := ComputeLinks(mustParse(t, "o=Name"), "o", "name")
	assert.Equal(t, "o=-name", links.Sort)
	assert.Equal(t, "", links.Remove)
	assert.False(t, links.FirstSort)
	assert.True(t, links.Descending)
}

func TestFromQueryDropsEmptyEntries(t *testing.T) {
	q := mustParse(t, "o=&x=1&o=-&o=name")
	assert.Equal(t, OrderList{"name"}, FromQuery(q, "o"))

	links := ComputeLinks(mustParse(t, "o=&x=1"), "o", "name")
	assert.Equal(t, "o=name&x=1", links.Sort)
	assert.Equal(t, "x=1", links.Remove)
	assert.True(t, links.FirstSort)
}
