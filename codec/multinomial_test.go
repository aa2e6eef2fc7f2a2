package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLog2MultinomialCoeffScenario(t *testing.T) {
	got := Log2MultinomialCoeff([]uint64{1, 2, 2, 1})
	want := math.Log2(6 * 5 * 4 * 3 * 2 / (2.0 * 2.0))
	require.InDelta(t, want, got, 1e-6)
}

func TestLog2MultinomialCoeffAllDuplicates(t *testing.T) {
	// N identical elements: N!/N! = 1, so there is exactly one ordering
	// and no ordering bits for bits-back coding to recover.
	got := Log2MultinomialCoeff([]uint64{5})
	want := math.Log2(1) // 5!/5!
	require.InDelta(t, want, got, 1e-9)
}

func TestLog2MultinomialCoeffSingleton(t *testing.T) {
	require.InDelta(t, 0, Log2MultinomialCoeff([]uint64{1}), 1e-9)
}
