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

package columns

import (
	"reflect"
	"testing"

	"github.com/inspektor-gadget/tablesort/pkg/columns/ellipsis"
)

func expectColumnsSuccess[T any](t *testing.T, options ...Option) *Columns[T] {
	cols, err := NewColumns[T](options...)
	if err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}
	return cols
}

func expectColumnsFail[T any](t *testing.T, name string, options ...Option) {
	t.Run(name, func(t *testing.T) {
		_, err := NewColumns[T](options...)
		if err == nil {
			t.Errorf("Succeeded to initialize but expected error")
		}
	})
}

func expectColumn[T any](t *testing.T, cols *Columns[T], columnName string) *Column[T] {
	col, ok := cols.GetColumn(columnName)
	if !ok {
		t.Fatalf("Expected column with name %q", columnName)
	}
	return col
}

func expectColumnValue[T any](t *testing.T, col *Column[T], fieldName string, expectedValue interface{}) {
	columnValue := reflect.ValueOf(col).Elem()
	fieldValue := columnValue.FieldByName(fieldName)
	if !fieldValue.IsValid() {
		t.Errorf("Expected field %q", fieldName)
		return
	}
	if fieldValue.Interface() != expectedValue {
		t.Errorf("Expected field %q to equal %+v, got %+v", fieldName, expectedValue, fieldValue.Interface())
	}
}

func TestColumnsInvalid(t *testing.T) {
	type testFail1 struct {
		Unknown string `column:"left,unknown"`
	}
	type testFail2 struct {
		Unknown1 string `column:"unknown"`
		Unknown2 string `column:"unknown"`
	}
	type testFail3 struct {
		testFail2
	}
	type testFail4 struct {
		Field string `column:"field,precision:2"`
	}
	type testFail5 struct {
		Field string `column:"field,humanize"`
	}
	type testFail6 struct {
		Field int `column:"field,width:-1"`
	}
	type testFail7 struct {
		Field int `column:"field,header"`
	}
	type testFail8 struct {
		Field int `column:"EMPTY-COLUMN-1"`
	}
	type testFail9 struct {
		Field int `column:"field,template:doesnotexist"`
	}
	expectColumnsFail[testFail1](t, "unknown parameter")
	expectColumnsFail[testFail2](t, "double name")
	expectColumnsFail[testFail3](t, "nested double name")
	expectColumnsFail[testFail4](t, "precision on string")
	expectColumnsFail[testFail5](t, "humanize on string")
	expectColumnsFail[testFail6](t, "negative width")
	expectColumnsFail[testFail7](t, "header without value")
	expectColumnsFail[testFail8](t, "reserved name")
	expectColumnsFail[testFail9](t, "unknown template")
}

func TestColumnsEllipsis(t *testing.T) {
	type testSuccess1 struct {
		EllipsisEmpty    string `column:"empty,ellipsis"`
		EllipsisNone     string `column:"none,ellipsis:none"`
		EllipsisStart    string `column:"start,ellipsis:start"`
		EllipsisEnd      string `column:"end,ellipsis:end"`
		EllipsisMiddle   string `column:"middle,ellipsis:middle"`
		EllipsisNoneSpec string `column:"nonespec"`
	}

	cols := expectColumnsSuccess[testSuccess1](t, WithEllipsis(ellipsis.None))

	expectColumnValue(t, expectColumn(t, cols, "empty"), "EllipsisType", ellipsis.End)
	expectColumnValue(t, expectColumn(t, cols, "none"), "EllipsisType", ellipsis.None)
	expectColumnValue(t, expectColumn(t, cols, "start"), "EllipsisType", ellipsis.Start)
	expectColumnValue(t, expectColumn(t, cols, "end"), "EllipsisType", ellipsis.End)
	expectColumnValue(t, expectColumn(t, cols, "middle"), "EllipsisType", ellipsis.Middle)
	expectColumnValue(t, expectColumn(t, cols, "nonespec"), "EllipsisType", ellipsis.None)

	type testFail1 struct {
		Field string `column:"fail,ellipsis:foo"`
	}
	expectColumnsFail[testFail1](t, "invalid ellipsis")
}

func TestColumnsAttributes(t *testing.T) {
	type testStruct struct {
		ID     int     `column:"id,pk"`
		Name   string  `column:"name,header:Full Name,width:12,order:5"`
		Secret string  `column:"secret,hide"`
		Score  float64 `column:"score,precision:1,humanize"`
		Plain  int     `column:"plain_value"`
	}

	cols := expectColumnsSuccess[testStruct](t)

	id := expectColumn(t, cols, "id")
	expectColumnValue(t, id, "PrimaryKey", true)
	expectColumnValue(t, id, "Header", "Id")
	expectColumnValue(t, id, "Kind", KindField)

	name := expectColumn(t, cols, "NAME")
	expectColumnValue(t, name, "Header", "Full Name")
	expectColumnValue(t, name, "Width", 12)
	expectColumnValue(t, name, "Order", 5)

	expectColumnValue(t, expectColumn(t, cols, "secret"), "Visible", false)

	score := expectColumn(t, cols, "score")
	expectColumnValue(t, score, "Precision", 1)
	expectColumnValue(t, score, "Humanize", true)

	expectColumnValue(t, expectColumn(t, cols, "plain_value"), "Header", "Plain Value")
}

func TestColumnsDescriptionAndTags(t *testing.T) {
	type testStruct struct {
		Field string `column:"field" columnDesc:"some description" columnTags:"Foo,bar"`
	}
	col := expectColumn(t, expectColumnsSuccess[testStruct](t), "field")
	expectColumnValue(t, col, "Description", "some description")
	if !col.HasTag("foo") || !col.HasTag("bar") {
		t.Errorf("Expected tags foo and bar, got %v", col.Tags)
	}
}

func TestColumnsTemplate(t *testing.T) {
	// ignore errors when running with -count > 1
	_ = RegisterTemplate("test-money", "precision:3,humanize,width:10")

	type testStruct struct {
		Price  float64 `column:"price,template:test-money"`
		Amount float64 `column:"amount,template:test-money,precision:1"`
	}
	cols := expectColumnsSuccess[testStruct](t)

	price := expectColumn(t, cols, "price")
	expectColumnValue(t, price, "Precision", 3)
	expectColumnValue(t, price, "Humanize", true)
	expectColumnValue(t, price, "Width", 10)

	// tag attributes win over template attributes
	expectColumnValue(t, expectColumn(t, cols, "amount"), "Precision", 1)
}

func TestCellValueDefaults(t *testing.T) {
	col := NewFieldColumn[any]("name", "Name")
	expectColumnValue(t, col, "Precision", 2)
	expectColumnValue(t, col, "Visible", true)
	expectColumnValue(t, col, "EllipsisType", ellipsis.End)
	if !col.Sortable() {
		t.Errorf("Expected field column to be sortable")
	}
	if NewPlaceholderColumn[any]("EMPTY-COLUMN-1", "").Sortable() {
		t.Errorf("Expected placeholder column to not be sortable")
	}
	if NewDerivedColumn[any]("x", "X", func(any) (any, error) { return nil, nil }).Sortable() {
		t.Errorf("Expected derived column to not be sortable")
	}
}

func TestClone(t *testing.T) {
	col := NewFieldColumn[any]("name", "Name")
	col.Tags = []string{"a"}

	clone := col.Clone()
	clone.CSSClass = "changed"
	clone.Tags[0] = "b"

	if col.CSSClass != "" || col.Tags[0] != "a" {
		t.Errorf("Expected original column to be unchanged")
	}
	if clone.Classes() != "changed" {
		t.Errorf("Expected clone to have class %q, got %q", "changed", clone.Classes())
	}
}

func TestKindString(t *testing.T) {
	for kind, expected := range map[Kind]string{
		KindField:       "Field",
		KindDerived:     "Derived",
		KindPlaceholder: "Placeholder",
		Kind(42):        "Unknown",
	} {
		if kind.String() != expected {
			t.Errorf("Expected %q, got %q", expected, kind.String())
		}
	}
}
