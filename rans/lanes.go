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

// Lanes holds one value per lane of a State, or a single value to
// broadcast across every lane. Uniform, Categorical and
// SamplingWithoutReplacement work on a single-lane state and pass
// their (start, freq) with Broadcast; ByteArray, whose lanes carry
// distinct bytes, builds a Lanes with one entry per lane.
type Lanes struct {
	values    []uint64
	broadcast bool
}

// Broadcast returns a Lanes that yields v for every lane index.
func Broadcast(v uint64) Lanes {
	return Lanes{values: []uint64{v}, broadcast: true}
}

// PerLane returns a Lanes with one distinct value per lane.
func PerLane(v []uint64) Lanes {
	return Lanes{values: v}
}

// At returns the value for lane i.
func (l Lanes) At(i int) uint64 {
	if l.broadcast {
		return l.values[0]
	}
	return l.values[i]
}

// Len returns the lane count, or -1 if this Lanes broadcasts (and so
// has no opinion on lane count).
func (l Lanes) Len() int {
	if l.broadcast {
		return -1
	}
	return len(l.values)
}

// checkLanes verifies a Lanes value is compatible with n lanes.
func checkLanes(l Lanes, n int) error {
	if !l.broadcast && len(l.values) != n {
		return ErrShapeMismatch
	}
	return nil
}
