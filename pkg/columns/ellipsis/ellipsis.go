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

package ellipsis

import "fmt"

type EllipsisType int

const (
	None   EllipsisType = iota // None simply cuts the text if it is too long
	End                        // End cuts an overflowing string one character before reaching the maximum length and adds an ellipsis ("…").
	Start                      // Start lets the overflowing string start with an ellipsis ("…") followed by the last X characters, where X is the maximum length - 1.
	Middle                     // Middle uses the first and last characters of an overflowing string, merging them in the middle with an ellipsis ("…").
)

const ellipsisRune = rune('…')

func (et EllipsisType) String() string {
	switch et {
	case End:
		return "end"
	case Start:
		return "start"
	case Middle:
		return "middle"
	default:
		return "none"
	}
}

// Parse returns the EllipsisType for its name as returned by String
func Parse(s string) (EllipsisType, error) {
	switch s {
	case "none":
		return None, nil
	case "end", "":
		return End, nil
	case "start":
		return Start, nil
	case "middle":
		return Middle, nil
	}
	return None, fmt.Errorf("invalid ellipsis type %q", s)
}

// Shorten returns s cut to at most maxLength runes
func Shorten(s string, maxLength int, ellipsisType EllipsisType) string {
	if maxLength <= 0 {
		return ""
	}

	rs := []rune(s)
	slen := len(rs)
	if slen <= maxLength {
		return s
	}

	if maxLength == 1 && ellipsisType != None {
		return string(ellipsisRune)
	}

	res := make([]rune, 0, maxLength)
	switch ellipsisType {
	case Start:
		res = append(res, ellipsisRune)
		res = append(res, rs[slen-maxLength+1:]...)
	case End:
		res = append(res, rs[:maxLength-1]...)
		res = append(res, ellipsisRune)
	case Middle:
		head := maxLength / 2
		tail := maxLength - head - 1
		res = append(res, rs[:head]...)
		res = append(res, ellipsisRune)
		res = append(res, rs[slen-tail:]...)
	default:
		res = append(res, rs[:maxLength]...)
	}
	return string(res)
}
