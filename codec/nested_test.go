package codec

import (
	"testing"

	"github.com/msbst/multiset-compression/bst"
	"github.com/stretchr/testify/require"
)

func TestCanonicalMultisetKeyOrderInsensitive(t *testing.T) {
	a := bst.BuildMultiset([]int{3, 1, 2, 1})
	b := bst.BuildMultiset([]int{1, 1, 2, 3})
	require.Equal(t, CanonicalMultisetKey(a), CanonicalMultisetKey(b))
}

func TestCanonicalMultisetKeyDistinguishesMultiplicity(t *testing.T) {
	a := bst.BuildMultiset([]int{1, 1, 2})
	b := bst.BuildMultiset([]int{1, 2, 2})
	require.NotEqual(t, CanonicalMultisetKey(a), CanonicalMultisetKey(b))
}

func TestCanonicalMultisetKeyOrdersOuterTree(t *testing.T) {
	inner1 := bst.BuildMultiset([]int{1, 2})
	inner2 := bst.BuildMultiset([]int{1, 3})

	outer := bst.New[string]()
	outer.Insert(CanonicalMultisetKey(inner2))
	outer.Insert(CanonicalMultisetKey(inner1))

	require.Equal(t, []string{CanonicalMultisetKey(inner1), CanonicalMultisetKey(inner2)}, outer.ToSequence())
}

func TestPairString(t *testing.T) {
	p := Pair{Key: "a", Value: "b"}
	require.Equal(t, "a\x1eb", p.String())
}
