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

package corpus

import "github.com/msbst/multiset-compression/internal"

// SequenceBaselineBits estimates the cost, in bits, of transmitting
// symbols as an ordered sequence under an order-0 byte model: the
// baseline that the Multiset codec's bits-back savings (§8 law 5,
// the compression bound) are measured against.
func SequenceBaselineBits(symbols [][]byte) float64 {
	var total int
	for _, s := range symbols {
		total += len(s)
	}
	if total == 0 {
		return 0
	}

	freqs := make([]int, 256)
	for _, s := range symbols {
		internal.ComputeByteHistogram(s, freqs)
	}

	// entropy1024 is bits per byte scaled by 1024/8.
	entropy1024 := internal.ComputeFirstOrderEntropy1024(total, freqs)
	return float64(entropy1024) / 1024 * 8 * float64(total)
}
