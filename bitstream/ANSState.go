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

package bitstream

import (
	"os"

	"github.com/msbst/multiset-compression/rans"
)

// WriteANSState persists a flattened rANS state to path: a 32-bit word
// count header (so ReadANSState knows how many words to pull back off
// the tail-then-heads layout rans.State.Flatten produces) followed by
// that many big-endian 32-bit words. This is the on-disk format the
// bits-back demo harness uses to save a session's final state; the
// core package declines to specify one (state.Flatten/Unflatten only
// fix the word order, not a container), so it lives here instead.
func WriteANSState(path string, state *rans.State) error {
	words := state.Flatten()

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	obs, err := NewDefaultOutputBitStream(f, 1<<16)
	if err != nil {
		f.Close()
		return err
	}

	obs.WriteBits(uint64(len(words)), 32)
	for _, w := range words {
		obs.WriteBits(uint64(w), 32)
	}

	if err := obs.Close(); err != nil {
		return err
	}
	return f.Close()
}

// ReadANSState reads back a state written by WriteANSState and
// reconstructs it against shape, the lane count the caller already
// knows out of band (the same way a decode session already knows the
// shape its encode session used — shape is never itself serialized).
func ReadANSState(path string, shape rans.Shape) (*rans.State, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ibs, err := NewDefaultInputBitStream(f, 1<<16)
	if err != nil {
		return nil, err
	}
	defer ibs.Close()

	n := ibs.ReadBits(32)
	words := make([]uint32, n)
	for i := range words {
		words[i] = uint32(ibs.ReadBits(32))
	}

	return rans.Unflatten(words, shape)
}
