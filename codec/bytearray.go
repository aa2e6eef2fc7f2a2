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

package codec

import "github.com/msbst/multiset-compression/rans"

// ByteArray returns a codec for byte slices of length up to maxSize,
// operating on a state shaped with exactly maxSize lanes. Encode runs
// a 256-ary uniform draw over the first n lanes in parallel (one call,
// all lanes at once — the "lane-level data parallelism" the engine
// provides), then records n itself as a uniform draw on lane 0.
// Decode runs in the opposite order: length first, then payload,
// mirroring the LIFO order the two encode steps left on the tail.
func ByteArray(maxSize uint64) SymbolCodec[[]byte] {
	lengthTotal := maxSize + 1 // n ranges over [0, maxSize]

	return SymbolCodec[[]byte]{
		Encode: func(state *rans.State, data []byte) error {
			if uint64(len(state.Head)) != maxSize {
				return ErrShapeMismatch
			}
			n := uint64(len(data))
			if n > maxSize {
				return ErrInvalidByteArraySize
			}

			if n > 0 {
				values := make([]uint64, n)
				for i, b := range data {
					values[i] = uint64(b)
				}
				view := state.Sub(0, int(n))
				if err := rans.Encode(view, rans.PerLane(values), rans.Broadcast(1), 256); err != nil {
					return err
				}
			}

			lenView := state.Sub(0, 1)
			return rans.Encode(lenView, rans.Broadcast(n), rans.Broadcast(1), lengthTotal)
		},
		Decode: func(state *rans.State) ([]byte, error) {
			if uint64(len(state.Head)) != maxSize {
				return nil, ErrShapeMismatch
			}

			lenView := state.Sub(0, 1)
			ld, err := rans.Decode(lenView, lengthTotal)
			if err != nil {
				return nil, err
			}
			n := ld.CF(0)
			if err := ld.Pop(rans.Broadcast(n), rans.Broadcast(1)); err != nil {
				return nil, err
			}
			if n > maxSize {
				return nil, ErrInvalidByteArraySize
			}

			if n == 0 {
				return []byte{}, nil
			}

			view := state.Sub(0, int(n))
			d, err := rans.Decode(view, 256)
			if err != nil {
				return nil, err
			}

			data := make([]byte, n)
			values := make([]uint64, n)
			for i := uint64(0); i < n; i++ {
				data[i] = byte(d.CF(int(i)))
				values[i] = uint64(data[i])
			}
			if err := d.Pop(rans.PerLane(values), rans.Broadcast(1)); err != nil {
				return nil, err
			}

			return data, nil
		},
	}
}
