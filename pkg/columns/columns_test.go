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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type testPerson struct {
	ID      int       `column:"id,pk"`
	Name    string    `column:"name,header:Full Name"`
	Age     int       `column:"age,header:Age in years"`
	Created time.Time `column:"created"`
	Notes   string
}

func TestColumnMap(t *testing.T) {
	type testStruct struct {
		StringField string `column:"stringField"`
		IntField    int    `column:"intField"`
	}
	cols := expectColumnsSuccess[testStruct](t)
	columnMap := cols.GetColumnMap()
	if _, ok := columnMap["stringfield"]; !ok {
		t.Errorf("Expected stringfield in column map")
	}
	if _, ok := columnMap["intfield"]; !ok {
		t.Errorf("Expected intfield in column map")
	}
}

func TestEmptyStruct(t *testing.T) {
	type testStruct struct {
		StringField string
		IntField    int
	}
	cols := expectColumnsSuccess[testStruct](t)
	if len(cols.GetColumnMap()) != 0 {
		t.Errorf("Expected empty column map")
	}
}

func TestWithoutRequiredColumnDefinition(t *testing.T) {
	type testStruct struct {
		FirstName string
		Age       int
		Skipped   string `column:"-"`
		hidden    string
	}
	cols := expectColumnsSuccess[testStruct](t, WithRequireColumnDefinition(false))
	assert.Equal(t, []string{"FirstName", "Age"}, cols.GetColumnNames())
	assert.Equal(t, "First Name", expectColumn(t, cols, "firstname").Header)
}

func TestInvalidType(t *testing.T) {
	expectColumnsFail[int](t, "no struct")
}

func TestPointerType(t *testing.T) {
	cols := expectColumnsSuccess[*testPerson](t)
	v, err := expectColumn(t, cols, "name").GetValue(&testPerson{Name: "John Doe"})
	require.NoError(t, err)
	assert.Equal(t, "John Doe", v)

	v, err = expectColumn(t, cols, "name").GetValue(nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMustCreateHelper(t *testing.T) {
	assert.Panics(t, func() {
		MustCreateColumns[int]()
	})
	assert.NotPanics(t, func() {
		MustCreateColumns[testPerson]()
	})
}

func TestGetOrderedColumns(t *testing.T) {
	type testStruct struct {
		StringField string `column:"stringField,order:500"`
		IntField    int    `column:"intField,order:200"`
		Same1       int    `column:"b,order:300"`
		Same2       int    `column:"a,order:300"`
	}
	assert.Equal(t, []string{"intField", "a", "b", "stringField"}, expectColumnsSuccess[testStruct](t).GetColumnNames())
}

func TestListFields(t *testing.T) {
	cols := expectColumnsSuccess[testPerson](t)
	assert.Equal(t, []Field{
		{Name: "id", Label: "Id", PrimaryKey: true},
		{Name: "name", Label: "Full Name"},
		{Name: "age", Label: "Age in years"},
		{Name: "created", Label: "Created"},
	}, cols.ListFields())

	var lister FieldLister = cols
	assert.Len(t, lister.ListFields(), 4)

	fields := FieldList{{Name: "a"}}
	assert.Equal(t, []Field{{Name: "a"}}, fields.ListFields())
}

func TestGetValue(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	p := testPerson{ID: 1, Name: "John Doe", Age: 23, Created: created}
	cols := expectColumnsSuccess[testPerson](t)

	for name, expected := range map[string]any{
		"id":      1,
		"name":    "John Doe",
		"age":     23,
		"created": created,
	} {
		v, err := expectColumn(t, cols, name).GetValue(p)
		require.NoError(t, err)
		assert.Equal(t, expected, v, name)
	}
}

func TestEmbedded(t *testing.T) {
	type testEmbedded struct {
		EmbeddedInt int `column:"embeddedInt"`
	}
	type testEmbeddedPtr struct {
		EmbeddedPtrInt int `column:"embeddedPtrInt"`
	}
	type testNoEmbed struct {
		Value int
	}
	type testStruct struct {
		testEmbedded
		*testEmbeddedPtr
		testNoEmbed `column:"noembed,noembed"`
		Int         int `column:"int"`
	}

	cols := expectColumnsSuccess[testStruct](t)
	assert.ElementsMatch(t, []string{"embeddedInt", "embeddedPtrInt", "int"}, cols.GetColumnNames())

	entry := testStruct{testEmbedded: testEmbedded{EmbeddedInt: 7}, Int: 1}
	v, err := expectColumn(t, cols, "embeddedInt").GetValue(entry)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	// nil embedded pointer results in an empty value
	v, err = expectColumn(t, cols, "embeddedPtrInt").GetValue(entry)
	require.NoError(t, err)
	assert.Nil(t, v)

	entry.testEmbeddedPtr = &testEmbeddedPtr{EmbeddedPtrInt: 5}
	v, err = expectColumn(t, cols, "embeddedPtrInt").GetValue(entry)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestExtractor(t *testing.T) {
	cols := expectColumnsSuccess[testPerson](t)
	cols.MustSetExtractor("name", func(p testPerson) (any, error) {
		return "Mr. " + p.Name, nil
	})

	col := expectColumn(t, cols, "name")
	v, err := col.GetValue(testPerson{Name: "Doe"})
	require.NoError(t, err)
	assert.Equal(t, "Mr. Doe", v)
	assert.True(t, col.Sortable())

	assert.Error(t, cols.SetExtractor("name", nil))
	assert.Error(t, cols.SetExtractor("unknown", func(testPerson) (any, error) { return nil, nil }))
	assert.Panics(t, func() {
		cols.MustSetExtractor("unknown", func(testPerson) (any, error) { return nil, nil })
	})
}

func TestAddColumn(t *testing.T) {
	cols := expectColumnsSuccess[testPerson](t)

	errBroken := errors.New("broken")
	cols.MustAddColumn(Column[testPerson]{
		Name: "decade",
		Extractor: func(p testPerson) (any, error) {
			return p.Age / 10 * 10, nil
		},
	})
	cols.MustAddColumn(Column[testPerson]{
		Name: "broken",
		Extractor: func(p testPerson) (any, error) {
			return nil, errBroken
		},
	})

	decade := expectColumn(t, cols, "decade")
	assert.Equal(t, KindDerived, decade.Kind)
	assert.Equal(t, "Decade", decade.Header)
	assert.False(t, decade.Sortable())

	v, err := decade.GetValue(testPerson{Age: 23})
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	_, err = expectColumn(t, cols, "broken").GetValue(testPerson{})
	require.ErrorIs(t, err, errBroken)

	assert.Error(t, cols.AddColumn(Column[testPerson]{}), "no name")
	assert.Error(t, cols.AddColumn(Column[testPerson]{Name: "x"}), "no extractor")
	assert.Error(t, cols.AddColumn(Column[testPerson]{Name: "NAME", Extractor: decade.Extractor}), "duplicate")
}

func TestFieldColumnLookup(t *testing.T) {
	col := NewFieldColumn[testPerson]("notes", "Notes")
	v, err := col.GetValue(testPerson{Notes: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	_, err = NewFieldColumn[testPerson]("unknown", "Unknown").GetValue(testPerson{})
	require.ErrorIs(t, err, ErrMissingAttribute)
}

func TestPlaceholderValue(t *testing.T) {
	v, err := NewPlaceholderColumn[testPerson]("EMPTY-COLUMN-1", "").GetValue(testPerson{})
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestVerifyColumnNames(t *testing.T) {
	cols := expectColumnsSuccess[testPerson](t)
	valid, invalid := cols.VerifyColumnNames([]string{"name", "-Age", "foo"})
	assert.Equal(t, []string{"name", "age"}, valid)
	assert.Equal(t, []string{"foo"}, invalid)
}

func TestHeaderFromName(t *testing.T) {
	for name, expected := range map[string]string{
		"age":          "Age",
		"age_in_years": "Age In Years",
		"AgeInYears":   "Age In Years",
		"ID":           "Id",
		"full-name":    "Full Name",
		"address2Line": "Address2 Line",
		"__x__":        "X",
	} {
		assert.Equal(t, expected, HeaderFromName(name, language.English), name)
	}
}

func TestOptions(t *testing.T) {
	opts := GetDefault()

	WithWidth(42)(opts)
	assert.Equal(t, 42, opts.DefaultWidth)

	WithRequireColumnDefinition(false)(opts)
	assert.False(t, opts.RequireColumnDefinition)

	WithLanguage(language.German)(opts)
	assert.Equal(t, language.German, opts.Language)

	type testStruct struct {
		Field string `column:"field"`
	}
	col := expectColumn(t, expectColumnsSuccess[testStruct](t, WithWidth(7)), "field")
	assert.Equal(t, 7, col.Width)
}
