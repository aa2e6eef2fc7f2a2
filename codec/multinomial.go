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

import "math"

// Log2MultinomialCoeff returns log2(N! / prod(mᵢ!)) for a multiset
// with per-symbol multiplicities counts, where N = sum(counts). This
// is the number of bits bits-back coding recovers over transmitting
// the multiset as an ordered sequence. Uses log-gamma rather than factorials directly so large N doesn't
// overflow.
func Log2MultinomialCoeff(counts []uint64) float64 {
	n := uint64(0)
	for _, c := range counts {
		n += c
	}

	logN, _ := math.Lgamma(float64(n + 1))
	total := logN

	for _, c := range counts {
		logC, _ := math.Lgamma(float64(c + 1))
		total -= logC
	}

	return total / math.Ln2
}
