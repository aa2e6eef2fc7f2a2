package codec

import (
	"math/rand"
	"testing"

	"github.com/msbst/multiset-compression/bst"
	"github.com/msbst/multiset-compression/rans"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// byteSymbolCodec adapts Uniform(256) to operate on byte-valued
// symbols, the element type the BST-building scenarios in §8 use.
func byteSymbolCodec() SymbolCodec[byte] {
	u := Uniform(256)
	return SymbolCodec[byte]{
		Encode: func(s *rans.State, x byte) error { return u.Encode(s, uint64(x)) },
		Decode: func(s *rans.State) (byte, error) {
			v, err := u.Decode(s)
			return byte(v), err
		},
	}
}

func TestMultisetRoundtrip(t *testing.T) {
	items := []byte("caabceddf")
	tree := bst.BuildMultiset(items)
	size := tree.Size()

	mc := Multiset(byteSymbolCodec())
	s := rans.BaseMessage(rans.Shape{1}, false, nil)
	before := s.Clone()

	require.NoError(t, mc.Encode(s, tree))
	require.Equal(t, uint64(0), tree.Size())

	got, err := mc.Decode(s, size)
	require.NoError(t, err)
	require.True(t, bst.CheckMultisetEquality(bst.BuildMultiset(items), got))
	require.True(t, s.Equal(before))
}

func TestMultisetEmpty(t *testing.T) {
	tree := bst.New[byte]()
	mc := Multiset(byteSymbolCodec())
	s := rans.BaseMessage(rans.Shape{1}, false, nil)
	before := s.Clone()

	require.NoError(t, mc.Encode(s, tree))
	got, err := mc.Decode(s, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(0), got.Size())
	require.True(t, s.Equal(before))
}

func TestMultisetAllDuplicates(t *testing.T) {
	items := make([]byte, 12)
	for i := range items {
		items[i] = 'x'
	}
	tree := bst.BuildMultiset(items)

	mc := Multiset(byteSymbolCodec())
	s := rans.BaseMessage(rans.Shape{1}, false, nil)
	before := s.Clone()

	require.NoError(t, mc.Encode(s, tree))
	got, err := mc.Decode(s, uint64(len(items)))
	require.NoError(t, err)
	require.True(t, bst.CheckMultisetEquality(bst.BuildMultiset(items), got))
	require.True(t, s.Equal(before))
}

// stringSymbolCodec adapts ByteArray(maxLen) to operate on string-valued
// symbols, the element type the MNIST-style (fixed-width byte string)
// and nested-composition scenarios in §8 use.
func stringSymbolCodec(maxLen uint64) SymbolCodec[string] {
	ba := ByteArray(maxLen)
	return SymbolCodec[string]{
		Encode: func(s *rans.State, x string) error { return ba.Encode(s, []byte(x)) },
		Decode: func(s *rans.State) (string, error) {
			b, err := ba.Decode(s)
			return string(b), err
		},
	}
}

// TestMultisetRoundtripMultiLane exercises the MNIST-style scenario:
// a Multiset driving an element codec (ByteArray) that itself needs
// more than one lane. This is the shape that exposed the missing
// state.Sub(0, 1) narrowing ahead of the SWOR step — with the full,
// un-narrowed state handed to SWOR, the bits-back loop corrupts lanes
// 1..width-1 that ByteArray is still using, and this test fails loudly
// (roundtrip mismatch or a rans error) without the fix.
func TestMultisetRoundtripMultiLane(t *testing.T) {
	const width = 8
	items := []string{"aaaaaaaa", "bbbbbbbb", "bbbbbbbb", "cccccccc", "dddddddd", "aaaaaaaa"}
	tree := bst.BuildMultiset(items)
	size := tree.Size()

	mc := Multiset(stringSymbolCodec(width))
	s := rans.BaseMessage(rans.Shape{width}, true, rand.New(rand.NewSource(1)))
	before := s.Clone()

	require.NoError(t, mc.Encode(s, tree))
	require.Equal(t, uint64(0), tree.Size())

	got, err := mc.Decode(s, size)
	require.NoError(t, err)
	require.True(t, bst.CheckMultisetEquality(bst.BuildMultiset(items), got))
	require.True(t, s.Equal(before))
}

// TestNestedMultisetRoundtrip exercises §4.G's nested composition: an
// outer multiset of JSON-object-like inner multisets, each inner
// multiset canonicalized to a string key (CanonicalMultisetKey) and
// recovered through a multi-lane ByteArray element codec — the nested-
// JSON scenario §8 requires, end to end rather than just at the
// CanonicalMultisetKey layer nested_test.go already covers.
func TestNestedMultisetRoundtrip(t *testing.T) {
	const maxKeyLen = 64

	objects := [][]Pair{
		{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}},
		{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}, // duplicate object
		{{Key: "x", Value: "9"}},
		{{Key: "c", Value: "3"}, {Key: "d", Value: "4"}, {Key: "e", Value: "5"}},
	}

	innerKeys := make([]string, len(objects))
	for i, pairs := range objects {
		strs := make([]string, len(pairs))
		for j, p := range pairs {
			strs[j] = p.String()
		}
		innerKeys[i] = CanonicalMultisetKey(bst.BuildMultiset(strs))
	}

	outer := bst.BuildMultiset(innerKeys)
	size := outer.Size()

	mc := Multiset(stringSymbolCodec(maxKeyLen))
	s := rans.BaseMessage(rans.Shape{maxKeyLen}, true, rand.New(rand.NewSource(2)))
	before := s.Clone()

	require.NoError(t, mc.Encode(s, outer))
	got, err := mc.Decode(s, size)
	require.NoError(t, err)
	require.True(t, bst.CheckMultisetEquality(bst.BuildMultiset(innerKeys), got))
	require.True(t, s.Equal(before))
}

func TestMultisetRapid(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(rt, "n")
		items := make([]byte, n)
		for i := range items {
			items[i] = byte(rapid.IntRange(0, 25).Draw(rt, "ch")) + 'a'
		}

		tree := bst.BuildMultiset(items)
		size := tree.Size()

		mc := Multiset(byteSymbolCodec())
		s := rans.BaseMessage(rans.Shape{1}, false, nil)
		before := s.Clone()

		require.NoError(rt, mc.Encode(s, tree))
		got, err := mc.Decode(s, size)
		require.NoError(rt, err)
		require.True(rt, bst.CheckMultisetEquality(bst.BuildMultiset(items), got))
		require.True(rt, s.Equal(before))
	})
}
