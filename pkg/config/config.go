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

// Package config loads table configurations from files using viper. The format is chosen by the file extension, for
// example:
//
//	sort-key-name: o
//	table-css-class: table table-striped
//	fields: [name, age]
//	field-order: [age]
//	column-names:
//	  - field: name
//	    header: Full Name
//	header-css-classes:
//	  age: text-end
//
// Every scalar key can be overridden using environment variables prefixed with TABLESORT_, for example
// TABLESORT_SORT_KEY_NAME.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/inspektor-gadget/tablesort/pkg/columns"
	"github.com/inspektor-gadget/tablesort/pkg/params"
	"github.com/inspektor-gadget/tablesort/pkg/tablesort"
)

const EnvPrefix = "TABLESORT"

const (
	ColumnNamesKey      = "column-names"
	HeaderCSSClassesKey = "header-css-classes"
	InMemorySortKey     = "in-memory-sort"
)

type TableConfig struct {
	SortKeyName      string                 `mapstructure:"sort-key-name" yaml:"sort-key-name,omitempty"`
	TableCSSClass    string                 `mapstructure:"table-css-class" yaml:"table-css-class"`
	TableID          string                 `mapstructure:"table-id" yaml:"table-id,omitempty"`
	ShowPrimaryKey   bool                   `mapstructure:"show-primary-key" yaml:"show-primary-key,omitempty"`
	Fields           []string               `mapstructure:"fields" yaml:"fields,omitempty"`
	Exclude          []string               `mapstructure:"exclude" yaml:"exclude,omitempty"`
	FieldOrder       []string               `mapstructure:"field-order" yaml:"field-order,omitempty"`
	ColumnNames      []tablesort.ColumnName `mapstructure:"column-names" yaml:"column-names,omitempty"`
	HeaderCSSClasses map[string]string      `mapstructure:"header-css-classes" yaml:"header-css-classes,omitempty"`
	InMemorySort     bool                   `mapstructure:"in-memory-sort" yaml:"in-memory-sort,omitempty"`
}

// New returns a viper instance with the defaults and environment bindings of a table configuration
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	for _, desc := range tablesort.ParamDescs() {
		if desc.TypeHint != params.TypeStringSlice {
			v.SetDefault(desc.Key, desc.DefaultValue)
		}
		v.BindEnv(desc.Key)
	}
	v.SetDefault(InMemorySortKey, false)
	v.BindEnv(InMemorySortKey)
	return v
}

// Load reads the table configuration from the file at path
func Load(path string) (*TableConfig, error) {
	v := New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading table config %q: %w", path, err)
	}
	return FromViper(v)
}

// FromViper decodes the table configuration from v
func FromViper(v *viper.Viper) (*TableConfig, error) {
	cfg := &TableConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding table config: %w", err)
	}
	return cfg, nil
}

// StringMap returns the scalar and list settings keyed like tablesort.ParamDescs; lists are joined by commas and empty
// values are left out, except for the table class which may be empty on purpose
func (c *TableConfig) StringMap() map[string]string {
	res := map[string]string{
		tablesort.ParamTableCSSClass:  c.TableCSSClass,
		tablesort.ParamShowPrimaryKey: strconv.FormatBool(c.ShowPrimaryKey),
	}
	set := func(key, value string) {
		if value != "" {
			res[key] = value
		}
	}
	set(tablesort.ParamSortKeyName, c.SortKeyName)
	set(tablesort.ParamTableID, c.TableID)
	set(tablesort.ParamFields, strings.Join(c.Fields, ","))
	set(tablesort.ParamExclude, strings.Join(c.Exclude, ","))
	set(tablesort.ParamFieldOrder, strings.Join(c.FieldOrder, ","))
	return res
}

// Validate returns all problems of the configuration at once
func (c *TableConfig) Validate() error {
	var result *multierror.Error

	p := tablesort.ParamDescs().ToParams()
	if err := p.ValidateStringMap(c.StringMap()); err != nil {
		result = multierror.Append(result, err)
	}

	seen := make(map[string]struct{}, len(c.ColumnNames))
	for i, cn := range c.ColumnNames {
		if err := params.ValidateIdentifier(cn.Field); err != nil {
			result = multierror.Append(result, fmt.Errorf("column name #%d: field %q: %w", i+1, cn.Field, err))
			continue
		}
		if _, ok := seen[cn.Field]; ok {
			result = multierror.Append(result, fmt.Errorf("column name #%d: duplicate field %q", i+1, cn.Field))
		}
		seen[cn.Field] = struct{}{}
	}
	for field, classes := range c.HeaderCSSClasses {
		if err := params.ValidateCSSClasses(classes); err != nil {
			result = multierror.Append(result, fmt.Errorf("header classes of %q: %w", field, err))
		}
	}
	for _, field := range c.FieldOrder {
		if strings.HasPrefix(field, columns.PlaceholderPrefix+"-") {
			result = multierror.Append(result, fmt.Errorf("field order: use %q instead of %q", columns.PlaceholderPrefix, field))
		}
	}
	if len(c.Fields) > 0 && len(c.Exclude) > 0 {
		result = multierror.Append(result, errors.New("fields and exclude are mutually exclusive; exclude takes precedence"))
	}

	return result.ErrorOrNil()
}

// Params returns the table parameters set to the values of the configuration
func (c *TableConfig) Params() (*params.Params, error) {
	p := tablesort.ParamDescs().ToParams()
	if err := p.CopyFromMap(c.StringMap(), ""); err != nil {
		return nil, err
	}
	return p, nil
}

// Options returns the table options of the configuration
func (c *TableConfig) Options() ([]tablesort.Option, error) {
	p, err := c.Params()
	if err != nil {
		return nil, err
	}
	opts := []tablesort.Option{tablesort.WithParams(p)}
	if len(c.ColumnNames) > 0 {
		opts = append(opts, tablesort.WithColumnNames(c.ColumnNames...))
	}
	if len(c.HeaderCSSClasses) > 0 {
		opts = append(opts, tablesort.WithColumnHeaderCSSClasses(c.HeaderCSSClasses))
	}
	if c.InMemorySort {
		opts = append(opts, tablesort.WithInMemorySort(true))
	}
	return opts, nil
}

// Marshal returns the configuration as YAML
func (c *TableConfig) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling table config: %w", err)
	}
	return out, nil
}
