package codec

import (
	"testing"

	"github.com/msbst/multiset-compression/rans"
	"github.com/stretchr/testify/require"
)

func TestSequenceRoundtrip(t *testing.T) {
	elem := Uniform(100)
	seq := Sequence(elem)
	items := []uint64{1, 2, 3, 99, 0, 50}

	s := rans.BaseMessage(rans.Shape{1}, false, nil)
	before := s.Clone()

	require.NoError(t, seq.Encode(s, items))
	got, err := seq.Decode(s, len(items))
	require.NoError(t, err)
	require.Equal(t, items, got)
	require.True(t, s.Equal(before))
}

func TestVariableLengthSequenceRoundtrip(t *testing.T) {
	elem := Uniform(256)
	vls := VariableLengthSequence(elem, 32)
	items := []uint64{7, 8, 9, 10, 11}

	s := rans.BaseMessage(rans.Shape{1}, false, nil)
	before := s.Clone()

	require.NoError(t, vls.Encode(s, items))
	got, err := vls.Decode(s)
	require.NoError(t, err)
	require.Equal(t, items, got)
	require.True(t, s.Equal(before))
}

func TestVariableLengthSequenceEmpty(t *testing.T) {
	vls := VariableLengthSequence(Uniform(256), 32)
	s := rans.BaseMessage(rans.Shape{1}, false, nil)
	before := s.Clone()

	require.NoError(t, vls.Encode(s, nil))
	got, err := vls.Decode(s)
	require.NoError(t, err)
	require.Empty(t, got)
	require.True(t, s.Equal(before))
}

func TestVariableLengthSequenceTooLong(t *testing.T) {
	vls := VariableLengthSequence(Uniform(256), 2)
	s := rans.BaseMessage(rans.Shape{1}, false, nil)
	require.ErrorIs(t, vls.Encode(s, []uint64{1, 2, 3}), ErrInvalidByteArraySize)
}
