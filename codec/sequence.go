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

import "github.com/msbst/multiset-compression/rans"

// SequenceCodec folds an element codec over a slice, left to right on
// encode. Since the ANS tail is a stack, decode naturally recovers
// elements in reverse fill order; Decode reverses them back before
// returning so callers see the original order.
type SequenceCodec[T any] struct {
	Elem SymbolCodec[T]
}

// Sequence wraps an element codec into a SequenceCodec.
func Sequence[T any](elem SymbolCodec[T]) SequenceCodec[T] {
	return SequenceCodec[T]{Elem: elem}
}

// Encode pushes items left to right.
func (c SequenceCodec[T]) Encode(state *rans.State, items []T) error {
	for _, x := range items {
		if err := c.Elem.Encode(state, x); err != nil {
			return err
		}
	}
	return nil
}

// Decode pops n items (last-encoded first) and returns them restored
// to their original order.
func (c SequenceCodec[T]) Decode(state *rans.State, n int) ([]T, error) {
	reversed := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		x, err := c.Elem.Decode(state)
		if err != nil {
			return nil, err
		}
		reversed[i] = x
	}
	return reversed, nil
}

// VariableLengthCodec wraps SequenceCodec with a self-describing
// length, so decode doesn't need the count supplied out of band.
type VariableLengthCodec[T any] struct {
	seq      SequenceCodec[T]
	lenCodec SymbolCodec[uint64]
	maxLen   uint64
}

// VariableLengthSequence encodes a sequence of at most maxLen elements
// by encoding it reversed, then the length — so decode reads the
// length first (it is popped first, being encoded last), then the
// reversed elements, which Decode turns back into original order.
func VariableLengthSequence[T any](elem SymbolCodec[T], maxLen uint64) VariableLengthCodec[T] {
	return VariableLengthCodec[T]{
		seq:      Sequence(elem),
		lenCodec: Uniform(maxLen + 1),
		maxLen:   maxLen,
	}
}

// Encode writes items (length <= maxLen) onto a single-lane state.
func (c VariableLengthCodec[T]) Encode(state *rans.State, items []T) error {
	if uint64(len(items)) > c.maxLen {
		return ErrInvalidByteArraySize
	}

	reversed := make([]T, len(items))
	for i, x := range items {
		reversed[len(items)-1-i] = x
	}

	if err := c.seq.Encode(state, reversed); err != nil {
		return err
	}
	return c.lenCodec.Encode(state.Sub(0, 1), uint64(len(items)))
}

// Decode reads the length, then that many elements, in original order.
func (c VariableLengthCodec[T]) Decode(state *rans.State) ([]T, error) {
	n, err := c.lenCodec.Decode(state.Sub(0, 1))
	if err != nil {
		return nil, err
	}
	reversed, err := c.seq.Decode(state, int(n))
	if err != nil {
		return nil, err
	}
	items := make([]T, len(reversed))
	for i, x := range reversed {
		items[len(reversed)-1-i] = x
	}
	return items, nil
}
