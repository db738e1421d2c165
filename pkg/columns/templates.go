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
	"sort"
	"strings"
	"sync"
)

var ErrTemplateExists = errors.New("template already exists")

// Attributes that may be part of a template. Name-specific attributes like header and pk are left to the field tag.
var templateAttributes = map[string]struct{}{
	"ellipsis":  {},
	"hide":      {},
	"humanize":  {},
	"order":     {},
	"precision": {},
	"width":     {},
}

var (
	templateLock sync.RWMutex
	templates    = map[string]string{
		"count":   "humanize",
		"money":   "precision:2,humanize",
		"summary": "width:40,ellipsis:end",
	}
)

// RegisterTemplate registers a set of column attributes under name; fields can then use them with
// `column:"price,template:money"`. Attributes given in the tag override those of the template. The templates "count",
// "money" and "summary" are always available.
func RegisterTemplate(name, value string) error {
	if name == "" {
		return fmt.Errorf("no template name given")
	}
	if strings.ContainsAny(name, ",:") {
		return fmt.Errorf("invalid template name %q", name)
	}
	if value == "" {
		return fmt.Errorf("no value given for template %q", name)
	}
	for _, attr := range strings.Split(value, ",") {
		key, _, _ := strings.Cut(attr, ":")
		if _, ok := templateAttributes[key]; !ok {
			return fmt.Errorf("template %q: attribute %q cannot be part of a template", name, key)
		}
	}

	templateLock.Lock()
	defer templateLock.Unlock()

	if _, ok := templates[name]; ok {
		return fmt.Errorf("%w: %q", ErrTemplateExists, name)
	}
	templates[name] = value
	return nil
}

func MustRegisterTemplate(name, value string) {
	if err := RegisterTemplate(name, value); err != nil {
		panic(err)
	}
}

// Templates returns the names of all registered templates, sorted
func Templates() []string {
	templateLock.RLock()
	defer templateLock.RUnlock()

	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func getTemplate(name string) (string, bool) {
	templateLock.RLock()
	defer templateLock.RUnlock()

	tpl, ok := templates[name]
	return tpl, ok
}
