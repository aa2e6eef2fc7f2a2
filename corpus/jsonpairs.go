/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package corpus

import (
	"sort"

	"github.com/msbst/multiset-compression/codec"
)

// JSONPairs canonicalizes a JSON-object-shaped map into the sorted
// sequence of (key, value) pairs the nested demo scenario treats as a
// multiset: a JSON object is modeled as a multiset of pairs, and an
// outer multiset of objects needs every inner multiset built the same
// way on both encode and decode, or the canonical ordering §4.G
// requires diverges between them.
func JSONPairs(m map[string]string) []codec.Pair {
	pairs := make([]codec.Pair, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, codec.Pair{Key: k, Value: v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Key != pairs[j].Key {
			return pairs[i].Key < pairs[j].Key
		}
		return pairs[i].Value < pairs[j].Value
	})
	return pairs
}
