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
	"github.com/msbst/multiset-compression/bst"
	"github.com/msbst/multiset-compression/rans"
	"golang.org/x/exp/constraints"
)

// SWOR binds the multiset BST to rANS: it is the component the spec
// calls SamplingWithoutReplacement. It operates on a single-lane
// state (the "first lane" view a Multiset codec hands it) and on a
// *bst.Tree it mutates in place.
type SWOR[T constraints.Ordered] struct{}

// Decode samples one element out of tree without replacement: it
// decodes a cumulative-frequency slot under tree's current empirical
// distribution, looks up and removes the symbol that slot belongs to,
// and pops the rANS state accordingly. This is the step that extracts
// the "bits back" — the entropy of an arbitrary element choice.
func (SWOR[T]) Decode(state *rans.State, tree *bst.Tree[T]) (T, error) {
	var zero T
	size := tree.Size()
	if size == 0 {
		return zero, bst.ErrIndexOutOfRange
	}

	d, err := rans.Decode(state, size)
	if err != nil {
		return zero, err
	}

	x, start, freq, _, err := tree.ReverseLookupThenRemove(d.CF(0))
	if err != nil {
		return zero, err
	}

	if err := d.Pop(rans.Broadcast(start), rans.Broadcast(freq)); err != nil {
		return zero, err
	}

	return x, nil
}

// Encode is Decode's inverse: it reinserts x into tree, computes the
// (start, freq) slice x now occupies, and encodes that onto the rANS
// state — re-injecting the randomness that a matching Decode call
// extracted during encoding.
func (SWOR[T]) Encode(state *rans.State, tree *bst.Tree[T], x T) error {
	start, freq, size := tree.InsertThenForwardLookup(x)
	return rans.Encode(state, rans.Broadcast(start), rans.Broadcast(freq), size)
}
