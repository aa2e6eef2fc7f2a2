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

// MultisetCodec is the centerpiece combinator: it turns an element
// codec into a codec for a whole multiset, via the bits-back loop
// (encode *decodes* elements off the multiset's own distribution and
// re-encodes them with elem; decode inverts).
type MultisetCodec[T constraints.Ordered] struct {
	Elem SymbolCodec[T]
	swor SWOR[T]
}

// Multiset wraps an element codec into a MultisetCodec.
func Multiset[T constraints.Ordered](elem SymbolCodec[T]) MultisetCodec[T] {
	return MultisetCodec[T]{Elem: elem}
}

// Encode consumes tree (it is emptied by the bits-back loop) and
// writes it onto state.
func (c MultisetCodec[T]) Encode(state *rans.State, tree *bst.Tree[T]) error {
	for tree.Size() > 0 {
		x, err := c.swor.Decode(state.Sub(0, 1), tree)
		if err != nil {
			return err
		}
		if err := c.Elem.Encode(state, x); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads size elements off state and rebuilds the multiset that
// produced them, re-encoding the sampling randomness as it goes.
func (c MultisetCodec[T]) Decode(state *rans.State, size uint64) (*bst.Tree[T], error) {
	tree := bst.New[T]()
	for i := uint64(0); i < size; i++ {
		x, err := c.Elem.Decode(state)
		if err != nil {
			return nil, err
		}
		if err := c.swor.Encode(state.Sub(0, 1), tree, x); err != nil {
			return nil, err
		}
	}
	return tree, nil
}
