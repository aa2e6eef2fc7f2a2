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

package codec

import (
	"fmt"
	"strings"

	"github.com/msbst/multiset-compression/bst"
	"golang.org/x/exp/constraints"
)

// CanonicalMultisetKey produces a total, canonical ordering key for a
// multiset so it can itself be used as the symbol type of an outer
// BST (the nested-composition case, §4.G: multisets of multisets, or
// equivalently a multiset of (key, value) pairs). The key is the
// sorted sequence of items joined into one string — exact and
// collision-free, unlike hashing it would require to compare. Both
// the encode and decode paths must build this key the same way, or
// the outer tree's ordering diverges between them and decoding
// corrupts.
func CanonicalMultisetKey[T constraints.Ordered](tree *bst.Tree[T]) string {
	seq := tree.ToSequence()
	parts := make([]string, len(seq))
	for i, x := range seq {
		parts[i] = fmt.Sprintf("%v", x)
	}
	return strings.Join(parts, "\x1f")
}

// Pair is a canonical (key, value) byte-string pair, the element type
// of the nested JSON-map demo scenario: an outer multiset of JSON
// objects, each itself a multiset of (key, value) pairs.
type Pair struct {
	Key, Value string
}

// String renders a Pair the way CanonicalMultisetKey expects its
// elements to stringify: deterministically and with no ambiguity
// between a pair's key and its value.
func (p Pair) String() string {
	return p.Key + "\x1e" + p.Value
}
