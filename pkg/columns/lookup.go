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
	"fmt"
	"reflect"
	"strings"
)

// ErrMissingAttribute is returned (wrapped) when a row has no field or method with the requested name
var ErrMissingAttribute = errors.New("missing attribute")

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// FieldGetter can be implemented by row types that want to control how their fields are looked up
type FieldGetter interface {
	GetField(name string) (any, bool)
}

// Lookup returns the value called name of row. It supports
//   - types implementing FieldGetter
//   - maps with string keys
//   - structs and pointers to structs: exported fields by column tag name or field name, then methods without
//     arguments returning a single value or a value and an error
//
// Names are matched case-insensitively and underscores are ignored when comparing to Go identifiers, so "full_name"
// finds a field or method called FullName.
func Lookup(row any, name string) (any, error) {
	if getter, ok := row.(FieldGetter); ok {
		if v, ok := getter.GetField(name); ok {
			return v, nil
		}
		return nil, missingAttribute(row, name)
	}

	v := reflect.ValueOf(row)
	if !v.IsValid() {
		return nil, missingAttribute(row, name)
	}

	elem := v
	for elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Interface {
		if elem.IsNil() {
			return nil, missingAttribute(row, name)
		}
		elem = elem.Elem()
	}

	switch elem.Kind() {
	case reflect.Map:
		if elem.Type().Key().Kind() != reflect.String {
			return nil, missingAttribute(row, name)
		}
		mv := elem.MapIndex(reflect.ValueOf(name).Convert(elem.Type().Key()))
		if !mv.IsValid() {
			return nil, missingAttribute(row, name)
		}
		return mv.Interface(), nil
	case reflect.Struct:
		if fv, ok := lookupField(elem, name); ok {
			return fv, nil
		}
	}

	// methods may be declared on the pointer, so check the original value first
	for _, candidate := range []reflect.Value{v, elem} {
		if res, ok, err := callMethod(candidate, name); ok {
			return res, err
		}
	}

	return nil, missingAttribute(row, name)
}

func missingAttribute(row any, name string) error {
	return fmt.Errorf("%w %q on %T", ErrMissingAttribute, name, row)
}

func matchName(identifier, name string) bool {
	return strings.EqualFold(identifier, name) || strings.EqualFold(identifier, strings.ReplaceAll(name, "_", ""))
}

func lookupField(v reflect.Value, name string) (any, bool) {
	fields := reflect.VisibleFields(v.Type())

	// column tags have precedence over field names
	for _, pass := range []func(reflect.StructField) bool{
		func(f reflect.StructField) bool {
			tagName, _, _ := strings.Cut(f.Tag.Get("column"), ",")
			return tagName != "" && tagName != "-" && strings.EqualFold(tagName, name)
		},
		func(f reflect.StructField) bool {
			return matchName(f.Name, name)
		},
	} {
		for _, f := range fields {
			if !f.IsExported() || f.Anonymous || !pass(f) {
				continue
			}
			fv, err := v.FieldByIndexErr(f.Index)
			if err != nil {
				// field of a nil embedded pointer
				return nil, true
			}
			return fv.Interface(), true
		}
	}
	return nil, false
}

// getterMethod returns the index of the method of t called name that takes no arguments and returns a single value or
// a value and an error
func getterMethod(t reflect.Type, name string) (int, bool) {
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if !matchName(m.Name, name) {
			continue
		}
		mt := m.Type
		if t.Kind() != reflect.Interface {
			// receiver is the first argument
			if mt.NumIn() != 1 {
				continue
			}
		} else if mt.NumIn() != 0 {
			continue
		}
		if mt.NumOut() == 1 || (mt.NumOut() == 2 && mt.Out(1).Implements(errorType)) {
			return i, true
		}
	}
	return 0, false
}

// HasGetterMethod reports whether values of type t, or pointers to them, have a method Lookup can read name from
func HasGetterMethod(t reflect.Type, name string) bool {
	if t == nil {
		return false
	}
	if _, ok := getterMethod(t, name); ok {
		return true
	}
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface {
		_, ok := getterMethod(reflect.PointerTo(t), name)
		return ok
	}
	return false
}

func callMethod(v reflect.Value, name string) (any, bool, error) {
	i, ok := getterMethod(v.Type(), name)
	if !ok {
		return nil, false, nil
	}
	out := v.Method(i).Call(nil)
	if len(out) == 2 {
		if errValue := out[1]; !errValue.IsNil() {
			return nil, true, fmt.Errorf("calling %s: %w", v.Type().Method(i).Name, errValue.Interface().(error))
		}
	}
	return out[0].Interface(), true, nil
}
