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

/*
Package params describes the settings of a table as validated string parameters, so they can be read from
configuration files, query strings or command line flags alike. A Param implements flag.Value.
*/
package params

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

type (
	Params     []*Param
	ParamDescs []*ParamDesc
)

var ErrNotFound = errors.New("not found")

// ParamDesc holds parameter information and validators
type ParamDesc struct {
	// Key is the name under which this param is registered
	Key string `json:"key" yaml:"key"`

	// DefaultValue is the value that will be used if no other value has been assigned
	DefaultValue string `json:"defaultValue" yaml:"defaultValue"`

	// Description is shown in usage messages
	Description string `json:"description" yaml:"description"`

	// IsMandatory fails validation if the param has neither a value nor a DefaultValue
	IsMandatory bool `json:"isMandatory" yaml:"isMandatory,omitempty"`

	// Validator is called for every value after the validator of TypeHint
	Validator ParamValidator `json:"-" yaml:"-"`

	// TypeHint selects a matching validator automatically; if unset, "string" is assumed
	TypeHint TypeHint `json:"type" yaml:"type,omitempty"`
}

// Param holds a ParamDesc and its current value
type Param struct {
	*ParamDesc
	value string
	isSet bool
}

func (p *ParamDesc) ToParam() *Param {
	return &Param{
		ParamDesc: p,
		value:     p.DefaultValue,
	}
}

// Validate checks value against the type hint and the validator of p
func (p *ParamDesc) Validate(value string) error {
	if value == "" && p.IsMandatory {
		return fmt.Errorf("expected value for %q", p.Key)
	}
	if typeValidator, ok := typeHintValidators[p.TypeHint]; ok {
		if err := typeValidator(value); err != nil {
			return fmt.Errorf("invalid value %q as %q: %w", value, p.Key, err)
		}
	}
	if p.Validator != nil {
		if err := p.Validator(value); err != nil {
			return fmt.Errorf("invalid value %q as %q: %w", value, p.Key, err)
		}
	}
	return nil
}

// IsBoolFlag lets the flag package accept bool params without a value
func (p *ParamDesc) IsBoolFlag() bool {
	return p.TypeHint == TypeBool
}

func (p ParamDescs) ToParams() *Params {
	params := make(Params, 0, len(p))
	for _, param := range p {
		params = append(params, param.ToParam())
	}
	return &params
}

// Get returns the parameter with the given key or nil
func (p *Params) Get(key string) *Param {
	for _, param := range *p {
		if key == param.Key {
			return param
		}
	}
	return nil
}

func (p *Params) Set(key, val string) error {
	param := p.Get(key)
	if param == nil {
		return fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return param.Set(val)
}

// ValidateStringMap validates all values of cfg against the parameters and returns all problems at once. Keys of
// cfg that are not part of p are reported as well.
func (p *Params) ValidateStringMap(cfg map[string]string) error {
	var result *multierror.Error
	for _, param := range *p {
		value, ok := cfg[param.Key]
		if !ok {
			if param.IsMandatory && param.DefaultValue == "" {
				result = multierror.Append(result, fmt.Errorf("expected value for %q", param.Key))
			}
			continue
		}
		if err := param.Validate(value); err != nil {
			result = multierror.Append(result, err)
		}
	}
	for key := range cfg {
		if p.Get(key) == nil {
			result = multierror.Append(result, fmt.Errorf("%w: %q", ErrNotFound, key))
		}
	}
	return result.ErrorOrNil()
}

// CopyFromMap sets all parameters that have a matching key in source. The first validation error is returned.
func (p *Params) CopyFromMap(source map[string]string, prefix string) error {
	for k, v := range source {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		param := p.Get(strings.TrimPrefix(k, prefix))
		if param == nil {
			continue
		}
		if err := param.Set(v); err != nil {
			return err
		}
	}
	return nil
}

// SetValues returns the values of all parameters that have been set explicitly
func (p *Params) SetValues() map[string]string {
	res := make(map[string]string)
	for _, param := range *p {
		if param.isSet {
			res[param.Key] = param.value
		}
	}
	return res
}

func (p *Param) String() string {
	if p == nil {
		return ""
	}
	return p.value
}

// Set validates and sets the new value
func (p *Param) Set(val string) error {
	if err := p.Validate(val); err != nil {
		return err
	}
	p.value = val
	p.isSet = true
	return nil
}

func (p *Param) IsSet() bool {
	return p.isSet
}

func (p *Param) AsString() string {
	return p.value
}

// AsStringSlice splits the value at commas and trims whitespace around each entry; empty entries are dropped
func (p *Param) AsStringSlice() []string {
	var out []string
	for _, entry := range strings.Split(p.value, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			out = append(out, entry)
		}
	}
	return out
}

func (p *Param) AsBool() bool {
	return strings.EqualFold(p.value, "true")
}
