package corpus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequenceBaselineBitsEmpty(t *testing.T) {
	require.Equal(t, 0.0, SequenceBaselineBits(nil))
}

func TestSequenceBaselineBitsRepeatedByteIsNearZero(t *testing.T) {
	// A single repeated byte has zero order-0 entropy: the baseline
	// should be near 0 bits regardless of how many copies there are.
	symbols := [][]byte{{0, 0, 0, 0, 0, 0, 0, 0}}
	require.InDelta(t, 0, SequenceBaselineBits(symbols), 1)
}

func TestSequenceBaselineBitsPositiveForVariedBytes(t *testing.T) {
	symbols := make([][]byte, 0, 256)
	for i := 0; i < 256; i++ {
		symbols = append(symbols, []byte{byte(i)})
	}
	require.Greater(t, SequenceBaselineBits(symbols), 0.0)
}
