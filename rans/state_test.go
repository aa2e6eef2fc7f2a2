package rans

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBaseMessageShape(t *testing.T) {
	s := BaseMessage(Shape{8, 7}, false, nil)
	require.Len(t, s.Head, 56)
	require.Empty(t, s.Tail)

	for _, h := range s.Head {
		require.Equal(t, lowerBound, h)
	}
}

func TestFlattenUnflattenRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	shape := Shape{8, 7}
	s := BaseMessage(shape, true, rng)
	s.Tail = append(s.Tail, 0xdeadbeef, 0x12345678)

	words := s.Flatten()
	got, err := Unflatten(words, shape)
	require.NoError(t, err)
	require.True(t, s.Equal(got))
}

func TestUnflattenShapeMismatch(t *testing.T) {
	_, err := Unflatten([]uint32{1, 2, 3}, Shape{8, 7})
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestSubViewSharesBacking(t *testing.T) {
	s := BaseMessage(Shape{4}, false, nil)
	view := s.Sub(1, 3)
	require.Len(t, view.Head, 2)

	view.Head[0] = 999
	require.Equal(t, uint64(999), s.Head[1])
}

func TestCalculateStateBits(t *testing.T) {
	s := BaseMessage(Shape{1}, false, nil)
	require.Equal(t, 2*wordBits, s.CalculateStateBits())

	s.Tail = append(s.Tail, 1, 2, 3)
	require.Equal(t, 2*wordBits+3*wordBits, s.CalculateStateBits())
}
