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
	"fmt"
	"strings"
)

// PlaceholderPrefix is reserved for placeholder columns. Used on its own in a field order list it stands for the
// next placeholder column.
const PlaceholderPrefix = "EMPTY-COLUMN"

// IsPlaceholder returns whether name is the placeholder sentinel or a placeholder token like "EMPTY-COLUMN-1"
func IsPlaceholder(name string) bool {
	return name == PlaceholderPrefix || strings.HasPrefix(name, PlaceholderPrefix+"-")
}

// PlaceholderGenerator hands out placeholder tokens "EMPTY-COLUMN-1", "EMPTY-COLUMN-2", ... Every table needs its
// own generator; it is not safe for concurrent use.
type PlaceholderGenerator struct {
	count int
}

// PeekKey returns the token NextKey will return without advancing
func (g *PlaceholderGenerator) PeekKey() string {
	return fmt.Sprintf("%s-%d", PlaceholderPrefix, g.count+1)
}

// NextKey advances the generator and returns a new token
func (g *PlaceholderGenerator) NextKey() string {
	g.count++
	return fmt.Sprintf("%s-%d", PlaceholderPrefix, g.count)
}

// NextPlaceholderColumn returns a placeholder column using the next token of g
func NextPlaceholderColumn[T any](g *PlaceholderGenerator, header string) *Column[T] {
	return NewPlaceholderColumn[T](g.NextKey(), header)
}
