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

// Package internal holds helpers shared by cmd/msc that don't belong in
// the core rans/bst/codec packages. Trimmed from kanzi-go's internal
// package: only the fast integer log2 tables and the order-0 byte
// histogram/entropy estimate survive, repurposed by the corpus package
// to report the sequence-coding baseline that the Multiset codec's
// bits-back savings are measured against (spec §8 law 5, the
// compression bound).
package internal

import (
	"errors"
)

var (
	// LOG2 is an array with 256 elements: LOG2[i] = int(Math.log2(i+1))
	LOG2 = [...]uint32{
		0, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 3, 4,
		4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 5,
		5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 6,
		6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 7,
		7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
		7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
		7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
		7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
		7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
		7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
		7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
		7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 8,
	}

	// LOG2_4096 is an array with 257 elements: 4096*Math.log2(x)
	LOG2_4096 = [...]uint32{
		0, 0, 4096, 6492, 8192, 9511, 10588, 11499, 12288, 12984,
		13607, 14170, 14684, 15157, 15595, 16003, 16384, 16742, 17080, 17400,
		17703, 17991, 18266, 18529, 18780, 19021, 19253, 19476, 19691, 19898,
		20099, 20292, 20480, 20662, 20838, 21010, 21176, 21338, 21496, 21649,
		21799, 21945, 22087, 22226, 22362, 22495, 22625, 22752, 22876, 22998,
		23117, 23234, 23349, 23462, 23572, 23680, 23787, 23892, 23994, 24095,
		24195, 24292, 24388, 24483, 24576, 24668, 24758, 24847, 24934, 25021,
		25106, 25189, 25272, 25354, 25434, 25513, 25592, 25669, 25745, 25820,
		25895, 25968, 26041, 26112, 26183, 26253, 26322, 26390, 26458, 26525,
		26591, 26656, 26721, 26784, 26848, 26910, 26972, 27033, 27094, 27154,
		27213, 27272, 27330, 27388, 27445, 27502, 27558, 27613, 27668, 27722,
		27776, 27830, 27883, 27935, 27988, 28039, 28090, 28141, 28191, 28241,
		28291, 28340, 28388, 28437, 28484, 28532, 28579, 28626, 28672, 28718,
		28764, 28809, 28854, 28898, 28943, 28987, 29030, 29074, 29117, 29159,
		29202, 29244, 29285, 29327, 29368, 29409, 29450, 29490, 29530, 29570,
		29609, 29649, 29688, 29726, 29765, 29803, 29841, 29879, 29916, 29954,
		29991, 30027, 30064, 30100, 30137, 30172, 30208, 30244, 30279, 30314,
		30349, 30384, 30418, 30452, 30486, 30520, 30554, 30587, 30621, 30654,
		30687, 30719, 30752, 30784, 30817, 30849, 30880, 30912, 30944, 30975,
		31006, 31037, 31068, 31099, 31129, 31160, 31190, 31220, 31250, 31280,
		31309, 31339, 31368, 31397, 31426, 31455, 31484, 31513, 31541, 31569,
		31598, 31626, 31654, 31681, 31709, 31737, 31764, 31791, 31818, 31846,
		31872, 31899, 31926, 31952, 31979, 32005, 32031, 32058, 32084, 32109,
		32135, 32161, 32186, 32212, 32237, 32262, 32287, 32312, 32337, 32362,
		32387, 32411, 32436, 32460, 32484, 32508, 32533, 32557, 32580, 32604,
		32628, 32651, 32675, 32698, 32722, 32745, 32768,
	}
)

// Log2 returns a fast, integer rounded value for log2(x)
func Log2(x uint32) (uint32, error) {
	if x == 0 {
		return 0, errors.New("cannot calculate log of a negative or null value")
	}

	return Log2NoCheck(x), nil
}

// Log2NoCheck does the same as Log2() minus a null check on input value
func Log2NoCheck(x uint32) uint32 {
	var res uint32

	if x >= 1<<16 {
		x >>= 16
		res = 16
	} else {
		res = 0
	}

	if x >= 1<<8 {
		x >>= 8
		res += 8
	}

	return res + LOG2[x-1]
}

// Log2ScaledBy1024 returns 1024 * log2(x). Max error is around 0.1%
func Log2ScaledBy1024(x uint32) (uint32, error) {
	if x == 0 {
		return 0, errors.New("cannot calculate log of a negative or null value")
	}

	if x < 256 {
		return (LOG2_4096[x] + 2) >> 2, nil
	}

	log := Log2NoCheck(x)

	if x&(x-1) == 0 {
		return log << 10, nil
	}

	return ((log - 7) * 1024) + ((LOG2_4096[x>>(log-7)] + 2) >> 2), nil
}

// ComputeByteHistogram fills freqs (length >= 256) with the order-0
// byte frequencies of block.
func ComputeByteHistogram(block []byte, freqs []int) {
	end16 := len(block) & -16

	for i := 0; i < end16; i += 16 {
		d := block[i : i+16]
		freqs[d[0]]++
		freqs[d[1]]++
		freqs[d[2]]++
		freqs[d[3]]++
		freqs[d[4]]++
		freqs[d[5]]++
		freqs[d[6]]++
		freqs[d[7]]++
		freqs[d[8]]++
		freqs[d[9]]++
		freqs[d[10]]++
		freqs[d[11]]++
		freqs[d[12]]++
		freqs[d[13]]++
		freqs[d[14]]++
		freqs[d[15]]++
	}

	for i := end16; i < len(block); i++ {
		freqs[block[i]]++
	}
}

// ComputeFirstOrderEntropy1024 computes the order-0 entropy of a block
// of the given length, scaled by 1024 (result in the [0..1024] range).
// histo must hold its order-0 byte frequencies (length >= 256).
func ComputeFirstOrderEntropy1024(blockLen int, histo []int) int {
	if blockLen == 0 {
		return 0
	}

	sum := uint64(0)
	logLength1024, _ := Log2ScaledBy1024(uint32(blockLen))

	for i := 0; i < 256; i++ {
		if histo[i] == 0 {
			continue
		}

		log1024, _ := Log2ScaledBy1024(uint32(histo[i]))
		sum += (uint64(histo[i]) * uint64(logLength1024-log1024)) >> 3
	}

	return int(sum / uint64(blockLen))
}
