package codec

import (
	"testing"

	"github.com/msbst/multiset-compression/rans"
	"github.com/stretchr/testify/require"
)

func TestByteArrayRoundtrip(t *testing.T) {
	c := ByteArray(16)
	cases := [][]byte{
		{},
		{0x42},
		[]byte("hello"),
		bytesOfLen(16),
	}

	for _, data := range cases {
		s := rans.BaseMessage(rans.Shape{16}, false, nil)
		before := s.Clone()

		require.NoError(t, c.Encode(s, data))
		got, err := c.Decode(s)
		require.NoError(t, err)
		require.Equal(t, data, got)
		require.True(t, s.Equal(before))
	}
}

func TestByteArrayTooLong(t *testing.T) {
	c := ByteArray(4)
	s := rans.BaseMessage(rans.Shape{4}, false, nil)
	require.ErrorIs(t, c.Encode(s, bytesOfLen(5)), ErrInvalidByteArraySize)
}

func TestByteArrayShapeMismatch(t *testing.T) {
	c := ByteArray(4)
	s := rans.BaseMessage(rans.Shape{8}, false, nil)
	require.ErrorIs(t, c.Encode(s, []byte{1}), ErrShapeMismatch)
}

func bytesOfLen(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
