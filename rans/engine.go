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

package rans

import "math/bits"

// Encode pushes one symbol per lane of state, each described by a
// (start, freq) pair drawn from a distribution with total scale
// total, which every lane shares. start and freq may either broadcast
// a single value across every lane (Uniform, Categorical,
// SamplingWithoutReplacement) or carry one value per lane (ByteArray).
func Encode(state *State, start, freq Lanes, total uint64) error {
	n := len(state.Head)

	if err := checkLanes(start, n); err != nil {
		return err
	}
	if err := checkLanes(freq, n); err != nil {
		return err
	}
	if total == 0 || total > MaxTotal {
		return ErrInvalidProbability
	}

	for i := 0; i < n; i++ {
		s, f := start.At(i), freq.At(i)

		if f == 0 {
			return ErrInvalidProbability
		}
		if s+f > total {
			return ErrPrecisionOverflow
		}

		h := state.Head[i]
		xMax, err := renormThreshold(total, f)
		if err != nil {
			return err
		}

		for h >= xMax {
			state.Tail = append(state.Tail, uint32(h&wordMask))
			h >>= wordBits
		}

		state.Head[i] = total*(h/f) + (h % f) + s
	}

	return nil
}

// renormThreshold computes ((lowerBound/total) << wordBits) * freq
// without silently overflowing uint64.
func renormThreshold(total, freq uint64) (uint64, error) {
	step := lowerBound / total
	hi, lo := bits.Mul64(step<<wordBits, freq)
	if hi != 0 {
		return 0, ErrPrecisionOverflow
	}
	return lo, nil
}

// Decoded is the pending result of a Decode call: the per-lane
// cumulative-frequency slot each lane currently points at, not yet
// consumed. Callers use CF to look up which symbol (and its (start,
// freq) pair) each lane decoded, then call Pop to finish consuming it.
type Decoded struct {
	state *State
	total uint64
	cf    []uint64
}

// Decode computes, for every lane, the cumulative-frequency slot
// (head mod total) the lane currently encodes, without mutating
// state. The result drives a codec's symbol lookup (e.g. the BST's
// reverse_lookup); call Pop afterwards to complete the decode.
func Decode(state *State, total uint64) (*Decoded, error) {
	if total == 0 || total > MaxTotal {
		return nil, ErrInvalidProbability
	}

	cf := make([]uint64, len(state.Head))
	for i, h := range state.Head {
		cf[i] = h % total
	}

	return &Decoded{state: state, total: total, cf: cf}, nil
}

// CF returns the cumulative-frequency slot decoded for lane i.
func (d *Decoded) CF(i int) uint64 {
	return d.cf[i]
}

// Pop finishes decoding the symbol(s) identified via CF, given their
// (start, freq) pairs, and renormalizes each lane by refilling from
// the tail as needed.
func (d *Decoded) Pop(start, freq Lanes) error {
	n := len(d.state.Head)

	if err := checkLanes(start, n); err != nil {
		return err
	}
	if err := checkLanes(freq, n); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		s, f := start.At(i), freq.At(i)
		h := d.state.Head[i]

		h = f*(h/d.total) + d.cf[i] - s

		for h < lowerBound {
			if len(d.state.Tail) == 0 {
				return ErrStateUnderflow
			}
			top := d.state.Tail[len(d.state.Tail)-1]
			d.state.Tail = d.state.Tail[:len(d.state.Tail)-1]
			h = h<<wordBits | uint64(top)
		}

		d.state.Head[i] = h
	}

	return nil
}
