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
Package querystring implements an ordered query multi-map. Unlike url.Values it keeps the position of every key/value
pair, so a query string can be edited for a single key and encoded again without reordering the remaining parameters.

Pairs that are never touched by an edit are written back using their original encoding, which means

	page=1&q=a+b&o=name

rebound for "o" to []string{"-name"} results in

	page=1&q=a+b&o=-name

Keys may repeat; all values of a key are returned in the order they appeared.
*/
package querystring
