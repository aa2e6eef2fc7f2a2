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

// Package codec is the combinator layer: elementary distributions
// (Uniform, Categorical, ByteArray) and the composites that wrap them
// (Sequence, VariableLengthSequence, Multiset, SamplingWithoutReplacement).
// Every codec is a value — a struct holding closures captured over its
// configuration — composed by wrapping, never by subclassing.
package codec

import (
	"sort"

	"github.com/msbst/multiset-compression/rans"
)

// SymbolCodec is the elementary (encode, decode) pair from the data
// model's codec contract: encode pushes one symbol onto state, decode
// pops one back off. Composite codecs (Sequence, Multiset) are kept as
// their own types rather than forced into this shape, since they
// thread extra context (a length, a multiset) the two-closure contract
// has no room for.
type SymbolCodec[T any] struct {
	Encode func(state *rans.State, x T) error
	Decode func(state *rans.State) (T, error)
}

// Uniform returns a codec for integers in [0, total), operating on a
// single-lane state. total plays the role of 2^prec in the spec's
// fixed-precision shorthand, but is passed to the rANS engine directly
// as the CDF scale rather than as a bit count — see DESIGN.md for why
// this engine generalizes "precision" to an arbitrary total instead of
// a power-of-two shift amount.
func Uniform(total uint64) SymbolCodec[uint64] {
	return SymbolCodec[uint64]{
		Encode: func(state *rans.State, x uint64) error {
			if len(state.Head) != 1 {
				return ErrShapeMismatch
			}
			if x >= total {
				return ErrInvalidProbability
			}
			return rans.Encode(state, rans.Broadcast(x), rans.Broadcast(1), total)
		},
		Decode: func(state *rans.State) (uint64, error) {
			if len(state.Head) != 1 {
				return 0, ErrShapeMismatch
			}
			d, err := rans.Decode(state, total)
			if err != nil {
				return 0, err
			}
			x := d.CF(0)
			if err := d.Pop(rans.Broadcast(x), rans.Broadcast(1)); err != nil {
				return 0, err
			}
			return x, nil
		},
	}
}

// categoricalTable is the quantized CDF a Categorical codec encodes
// against: starts[i]/freqs[i] is symbol i's [start, start+freq) slice,
// and total is their common sum.
type categoricalTable struct {
	starts, freqs []uint64
	total         uint64
}

// quantizeProbs rescales probs (arbitrary positive weights) to integer
// frequencies summing to exactly total, using largest-remainder
// rounding: every entry gets its floor share, then the entries with
// the largest fractional remainder each receive one extra unit until
// the total is exact. Ported from the teacher's NormalizeFrequencies
// (entropy/EntropyUtils.go), adapted from an int-slice alphabet table
// to a probability-vector form indexed by symbol.
func quantizeProbs(probs []float64, total uint64) []uint64 {
	n := len(probs)
	sum := 0.0
	for _, p := range probs {
		sum += p
	}

	freqs := make([]uint64, n)
	remainders := make([]float64, n)
	assigned := uint64(0)

	for i, p := range probs {
		share := p / sum * float64(total)
		f := uint64(share)
		if f == 0 {
			f = 1 // every nonzero-probability symbol keeps at least one slot
		}
		freqs[i] = f
		remainders[i] = share - float64(f)
		assigned += f
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return remainders[order[a]] > remainders[order[b]] })

	idx := 0
	for assigned < total {
		freqs[order[idx%n]]++
		assigned++
		idx++
	}
	for assigned > total {
		i := order[idx%n]
		if freqs[i] > 1 {
			freqs[i]--
			assigned--
		}
		idx++
	}

	return freqs
}

// buildCategoricalTable turns per-symbol frequencies into a CDF table.
func buildCategoricalTable(freqs []uint64) categoricalTable {
	starts := make([]uint64, len(freqs))
	var cum uint64
	for i, f := range freqs {
		starts[i] = cum
		cum += f
	}
	return categoricalTable{starts: starts, freqs: freqs, total: cum}
}

// Categorical returns a codec over symbol indices [0, len(probs)),
// quantizing probs to an exact integer total via quantizeProbs. The
// encoder looks up (start, freq) directly by index; the decoder
// recovers the index with a binary search over the CDF.
func Categorical(probs []float64, total uint64) (SymbolCodec[int], error) {
	freqs := quantizeProbs(probs, total)
	table := buildCategoricalTable(freqs)
	if table.total != total {
		return SymbolCodec[int]{}, ErrInvalidProbability
	}

	return SymbolCodec[int]{
		Encode: func(state *rans.State, x int) error {
			if len(state.Head) != 1 {
				return ErrShapeMismatch
			}
			if x < 0 || x >= len(freqs) {
				return ErrInvalidProbability
			}
			return rans.Encode(state, rans.Broadcast(table.starts[x]), rans.Broadcast(table.freqs[x]), total)
		},
		Decode: func(state *rans.State) (int, error) {
			if len(state.Head) != 1 {
				return 0, ErrShapeMismatch
			}
			d, err := rans.Decode(state, total)
			if err != nil {
				return 0, err
			}
			cf := d.CF(0)
			// last start <= cf
			x := sort.Search(len(table.starts), func(i int) bool { return table.starts[i] > cf }) - 1
			if err := d.Pop(rans.Broadcast(table.starts[x]), rans.Broadcast(table.freqs[x])); err != nil {
				return 0, err
			}
			return x, nil
		},
	}, nil
}
