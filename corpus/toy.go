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

import "math/rand"

// ToyLetterMultiset draws n lowercase letters from a Zipf-skewed
// distribution over the 26-letter alphabet, the small synthetic
// scenario the toy-multiset demo (original_source's
// experiments/toy_multisets.py) exercises end to end: small enough to
// print, skewed enough that bits-back coding visibly beats a sequence
// coder.
func ToyLetterMultiset(n int, rng *rand.Rand) []byte {
	z := rand.NewZipf(rng, 1.3, 1, 25)
	out := make([]byte, n)
	for i := range out {
		out[i] = 'a' + byte(z.Uint64())
	}
	return out
}

// ToyIntMultiset draws n integers in [0, max) uniformly, used as a
// second toy scenario alongside the letter multiset (an unskewed
// distribution is the boundary case where bits-back coding saves the
// least per element relative to its own entropy).
func ToyIntMultiset(n, max int, rng *rand.Rand) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(max)
	}
	return out
}

// ByteStringCorpus builds a synthetic fixed-length byte-string corpus
// standing in for the MNIST-style demo scenario: n symbols, each a
// random byte string of length width, with no image decoder involved
// (the Non-goal on lossy image compression is carried forward
// unchanged; ByteArray's payload stays an opaque byte string either
// way).
func ByteStringCorpus(n, width int, rng *rand.Rand) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		b := make([]byte, width)
		rng.Read(b)
		out[i] = b
	}
	return out
}
