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
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/msbst/multiset-compression/rans"
	"github.com/stretchr/testify/require"
)

func TestWriteReadANSStateRoundtrip(t *testing.T) {
	shape := rans.Shape{4}
	rng := rand.New(rand.NewSource(42))
	state := rans.BaseMessage(shape, true, rng)

	require.NoError(t, rans.Encode(state, rans.Broadcast(10), rans.Broadcast(5), 100))
	state.Tail = append(state.Tail, 0xCAFEBABE, 0x12345678)

	path := filepath.Join(t.TempDir(), "state.bin")
	require.NoError(t, WriteANSState(path, state))

	got, err := ReadANSState(path, shape)
	require.NoError(t, err)
	require.True(t, state.Equal(got))
}

func TestReadANSStateRejectsShapeMismatch(t *testing.T) {
	shape := rans.Shape{2}
	state := rans.BaseMessage(shape, false, nil)

	path := filepath.Join(t.TempDir(), "state.bin")
	require.NoError(t, WriteANSState(path, state))

	_, err := ReadANSState(path, rans.Shape{5})
	require.ErrorIs(t, err, rans.ErrShapeMismatch)
}
