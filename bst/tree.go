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

// Package bst implements the count-augmented multiset search tree the
// Multiset and SamplingWithoutReplacement codecs use to turn a
// multiset element into a (start, freq, total) triple for rANS and
// back. Every node additionally tracks its own count (how many times
// its key appears) and the size of the subtree rooted at it, so
// ForwardLookup/ReverseLookup run in O(depth) rather than visiting
// every distinct key.
package bst

import "golang.org/x/exp/constraints"

type node[T constraints.Ordered] struct {
	key         T
	count       uint64
	subtreeSize uint64
	left, right *node[T]
}

// Tree is a count-augmented BST over an ordered key type T. The zero
// value is an empty multiset, ready to use.
type Tree[T constraints.Ordered] struct {
	root *node[T]
}

// New returns an empty multiset tree. Equivalent to new(Tree[T]).
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

func sizeOf[T constraints.Ordered](n *node[T]) uint64 {
	if n == nil {
		return 0
	}
	return n.subtreeSize
}

// Size returns the multiset's total cardinality (sum of every key's
// multiplicity), i.e. the rANS total this tree currently supports.
func (t *Tree[T]) Size() uint64 {
	return sizeOf(t.root)
}

// Insert raises x's multiplicity by one, creating a node if x was
// previously absent.
func (t *Tree[T]) Insert(x T) {
	t.root = insert(t.root, x)
}

func insert[T constraints.Ordered](n *node[T], x T) *node[T] {
	if n == nil {
		return &node[T]{key: x, count: 1, subtreeSize: 1}
	}

	switch {
	case x < n.key:
		n.left = insert(n.left, x)
	case x > n.key:
		n.right = insert(n.right, x)
	default:
		n.count++
	}

	n.subtreeSize = sizeOf(n.left) + sizeOf(n.right) + n.count
	return n
}

// Remove lowers x's multiplicity by one, unlinking the node once its
// count reaches zero. A node with two children is unlinked by
// replacing it with its in-order successor (the resolution adopted
// for the one place the reference implementation leaves the
// zero-count, two-children case unhandled).
func (t *Tree[T]) Remove(x T) error {
	root, err := remove(t.root, x)
	if err != nil {
		return err
	}
	t.root = root
	return nil
}

func remove[T constraints.Ordered](n *node[T], x T) (*node[T], error) {
	if n == nil {
		return nil, ErrSymbolNotFound
	}

	switch {
	case x < n.key:
		left, err := remove(n.left, x)
		if err != nil {
			return nil, err
		}
		n.left = left
	case x > n.key:
		right, err := remove(n.right, x)
		if err != nil {
			return nil, err
		}
		n.right = right
	default:
		n.count--
		if n.count > 0 {
			n.subtreeSize = sizeOf(n.left) + sizeOf(n.right) + n.count
			return n, nil
		}

		switch {
		case n.left == nil:
			return n.right, nil
		case n.right == nil:
			return n.left, nil
		default:
			succ := leftmost(n.right)
			n.key = succ.key
			n.count = succ.count
			succ.count = 1 // force removal of exactly one occurrence of succ.key
			right, _ := remove(n.right, succ.key)
			n.right = right
		}
	}

	n.subtreeSize = sizeOf(n.left) + sizeOf(n.right) + n.count
	return n, nil
}

func leftmost[T constraints.Ordered](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// ForwardLookup returns the (start, freq, total) triple x currently
// occupies: start is the count of keys strictly less than x, freq is
// x's own multiplicity, and total is the tree's size. Used to encode
// a known element with rANS.
func (t *Tree[T]) ForwardLookup(x T) (start, freq, total uint64, err error) {
	total = t.Size()
	n := t.root
	start = 0

	for n != nil {
		switch {
		case x < n.key:
			n = n.left
		case x > n.key:
			start += sizeOf(n.left) + n.count
			n = n.right
		default:
			return start + sizeOf(n.left), n.count, total, nil
		}
	}

	return 0, 0, total, ErrSymbolNotFound
}

// ReverseLookup finds the key whose [start, start+freq) span contains
// cf, the cumulative-frequency slot decoded off the rANS state. Used
// to decode an unknown element.
func (t *Tree[T]) ReverseLookup(cf uint64) (x T, start, freq, total uint64, err error) {
	total = t.Size()
	if cf >= total {
		return x, 0, 0, total, ErrIndexOutOfRange
	}

	n := t.root
	offset := uint64(0)

	for n != nil {
		leftSize := sizeOf(n.left)

		switch {
		case cf-offset < leftSize:
			n = n.left
		case cf-offset < leftSize+n.count:
			return n.key, offset + leftSize, n.count, total, nil
		default:
			offset += leftSize + n.count
			n = n.right
		}
	}

	// Unreachable if cf < total and subtreeSize bookkeeping is correct.
	return x, 0, 0, total, ErrIndexOutOfRange
}

// InsertThenForwardLookup inserts x and returns the (start, freq,
// total) triple as it stands immediately after the insert. This is the
// operation the bits-back decode path uses to re-encode the randomness
// it is restoring. start is computed during the insert's own descent;
// freq is read by a second, read-only descent (lookupCount), so the
// tree is walked twice.
func (t *Tree[T]) InsertThenForwardLookup(x T) (start, freq, total uint64) {
	t.root, start = insertForward(t.root, x)
	total = t.Size()
	freq = lookupCount(t.root, x)
	return start, freq, total
}

func insertForward[T constraints.Ordered](n *node[T], x T) (*node[T], uint64) {
	if n == nil {
		return &node[T]{key: x, count: 1, subtreeSize: 1}, 0
	}

	var start uint64
	switch {
	case x < n.key:
		n.left, start = insertForward(n.left, x)
	case x > n.key:
		var s uint64
		n.right, s = insertForward(n.right, x)
		start = sizeOf(n.left) + n.count + s
	default:
		n.count++
		start = sizeOf(n.left)
	}

	n.subtreeSize = sizeOf(n.left) + sizeOf(n.right) + n.count
	return n, start
}

func lookupCount[T constraints.Ordered](n *node[T], x T) uint64 {
	for n != nil {
		switch {
		case x < n.key:
			n = n.left
		case x > n.key:
			n = n.right
		default:
			return n.count
		}
	}
	return 0
}

// ReverseLookupThenRemove looks up the key at cf and then removes one
// occurrence of it with a separate Remove descent, returning the (start, freq,
// total) triple as it stood before the removal (the triple rANS'
// sampling-without-replacement step needs to decode the symbol it is
// about to discard from the multiset).
func (t *Tree[T]) ReverseLookupThenRemove(cf uint64) (x T, start, freq, total uint64, err error) {
	x, start, freq, total, err = t.ReverseLookup(cf)
	if err != nil {
		return x, start, freq, total, err
	}

	if rmErr := t.Remove(x); rmErr != nil {
		return x, start, freq, total, rmErr
	}

	return x, start, freq, total, nil
}

// BuildMultiset inserts every item of items into a fresh tree.
func BuildMultiset[T constraints.Ordered](items []T) *Tree[T] {
	t := New[T]()
	for _, x := range items {
		t.Insert(x)
	}
	return t
}

// ToSequence returns the tree's keys in sorted order, each repeated
// according to its multiplicity.
func (t *Tree[T]) ToSequence() []T {
	out := make([]T, 0, t.Size())
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		for i := uint64(0); i < n.count; i++ {
			out = append(out, n.key)
		}
		walk(n.right)
	}
	walk(t.root)
	return out
}

// CheckMultisetEquality reports whether a and b hold the same
// elements with the same multiplicities, regardless of tree shape.
func CheckMultisetEquality[T constraints.Ordered](a, b *Tree[T]) bool {
	sa, sb := a.ToSequence(), b.ToSequence()
	if len(sa) != len(sb) {
		return false
	}
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}
