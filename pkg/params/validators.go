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

package params

import (
	"fmt"
	"strings"
)

type TypeHint string

const (
	TypeString      TypeHint = "string"
	TypeBool        TypeHint = "bool"
	TypeStringSlice TypeHint = "[]string"
)

var typeHintValidators = map[TypeHint]ParamValidator{
	TypeBool: ValidateBool,
}

type ParamValidator func(value string) error

func ValidateBool(value string) error {
	if !strings.EqualFold(value, "true") && !strings.EqualFold(value, "false") {
		return fmt.Errorf("expected 'true' or 'false'")
	}
	return nil
}

// ValidateSlice applies validator to every comma separated entry of a value. Blank entries are skipped, a value
// without any other entry is passed to validator as a single empty entry.
func ValidateSlice(validator ParamValidator) ParamValidator {
	return func(value string) error {
		checked := 0
		for i, val := range strings.Split(value, ",") {
			if strings.TrimSpace(val) == "" {
				continue
			}
			checked++
			if err := validator(val); err != nil {
				return fmt.Errorf("entry #%d (%q): %w", i+1, val, err)
			}
		}
		if checked == 0 {
			return validator("")
		}
		return nil
	}
}

// ValidateOptionalSlice works like ValidateSlice but accepts a value without entries
func ValidateOptionalSlice(validator ParamValidator) ParamValidator {
	return func(value string) error {
		if strings.Trim(value, ", \t") == "" {
			return nil
		}
		return ValidateSlice(validator)(value)
	}
}

// ValidateIdentifier accepts values that can be used verbatim as query parameter keys or field names: they must not
// be empty and must not contain whitespace or any of the characters &=?#,"<>
func ValidateIdentifier(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("expected non-empty value")
	}
	if i := strings.IndexAny(value, " \t\r\n&=?#,\"<>"); i >= 0 {
		return fmt.Errorf("invalid character %q", value[i])
	}
	return nil
}

// ValidateCSSClasses accepts a space separated list of class names that can be used in a class attribute
func ValidateCSSClasses(value string) error {
	if i := strings.IndexAny(value, "\"'<>&"); i >= 0 {
		return fmt.Errorf("invalid character %q", value[i])
	}
	return nil
}
