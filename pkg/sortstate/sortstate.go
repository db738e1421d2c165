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
	"strings"

	"github.com/inspektor-gadget/tablesort/pkg/querystring"
)

const (
	// DefaultSortKeyName is the query parameter used when no other sort key name is configured
	DefaultSortKeyName = "o"

	// NegationPrefix marks a field in the order list as descending
	NegationPrefix = "-"
)

// State is the sort state of a single field
type State int

const (
	Unsorted State = iota
	Ascending
	Descending
)

func (s State) String() string {
	switch s {
	case Ascending:
		return "Ascending"
	case Descending:
		return "Descending"
	default:
		return "Unsorted"
	}
}

// OrderList is the ordered list of (possibly negated) field names bound to the sort key
type OrderList []string

// FromQuery returns the order list bound to sortKeyName in q; an absent key results in an empty list. Entries without
// a field name ("o=" or "o=-") are dropped.
func FromQuery(q querystring.Values, sortKeyName string) OrderList {
	var res OrderList
	for _, entry := range q.Get(sortKeyName) {
		if field, _ := SplitEntry(entry); field == "" {
			continue
		}
		res = append(res, entry)
	}
	return res
}

// Negate returns the descending form of field
func Negate(field string) string {
	return NegationPrefix + field
}

// SplitEntry returns the field name of an order list entry and whether it is descending
func SplitEntry(entry string) (field string, descending bool) {
	if strings.HasPrefix(entry, NegationPrefix) {
		return entry[len(NegationPrefix):], true
	}
	return entry, false
}

// matches reports whether entry is a form of field; field names are compared case-insensitively
func matches(entry, field string) (ok, descending bool) {
	name, descending := SplitEntry(entry)
	return strings.EqualFold(name, field), descending
}

// State returns the state of field. If the list contains both forms of field, which cannot happen using the
// transitions of this package, the ascending form wins.
func (o OrderList) State(field string) State {
	state, _ := o.find(field)
	return state
}

func (o OrderList) find(field string) (State, int) {
	descIndex := -1
	for i, entry := range o {
		ok, descending := matches(entry, field)
		switch {
		case !ok:
		case !descending:
			return Ascending, i
		case descIndex < 0:
			descIndex = i
		}
	}
	if descIndex >= 0 {
		return Descending, descIndex
	}
	return Unsorted, -1
}

// Toggle returns a new list with the sort control of field applied: an unsorted field is appended in ascending form,
// a sorted field switches its direction in place
func (o OrderList) Toggle(field string) OrderList {
	state, index := o.find(field)

	switch state {
	case Ascending:
		return o.replace(field, index, Negate(field))
	case Descending:
		return o.replace(field, index, field)
	default:
		res := make(OrderList, 0, len(o)+1)
		res = append(res, o...)
		return append(res, field)
	}
}

// Remove returns a new list without any form of field
func (o OrderList) Remove(field string) OrderList {
	res := make(OrderList, 0, len(o))
	for _, entry := range o {
		if ok, _ := matches(entry, field); ok {
			continue
		}
		res = append(res, entry)
	}
	return res
}

// replace puts entry at index and drops every other occurrence of field
func (o OrderList) replace(field string, index int, entry string) OrderList {
	res := make(OrderList, 0, len(o))
	for i, cur := range o {
		if i == index {
			res = append(res, entry)
			continue
		}
		if ok, _ := matches(cur, field); ok {
			continue
		}
		res = append(res, cur)
	}
	return res
}

// Links holds everything a header needs to render the sort controls of a field
type Links struct {
	// Sort is the query string (without "?") to use for the sort control
	Sort string

	// Remove is the query string (without "?") to use for the remove-sort control; the control should be hidden
	// if FirstSort is set
	Remove string

	// FirstSort is set if the field is not part of the current order list
	FirstSort bool

	// Descending is set if following the sort link will sort the field in descending order, which is the case
	// when the field is currently sorted ascending
	Descending bool

	// State is the current state of the field
	State State
}

// ComputeLinks returns the links for field given the current query q. q is not modified.
func ComputeLinks(q querystring.Values, sortKeyName, field string) Links {
	order := FromQuery(q, sortKeyName)
	state := order.State(field)

	return Links{
		Sort:       q.With(sortKeyName, order.Toggle(field)).Encode(),
		Remove:     q.With(sortKeyName, order.Remove(field)).Encode(),
		FirstSort:  state == Unsorted,
		Descending: state == Ascending,
		State:      state,
	}
}
