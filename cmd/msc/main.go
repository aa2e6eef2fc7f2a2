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

// Command msc drives the multiset-compression engine end to end
// against three demo scenarios (toy letter/int multisets, a synthetic
// byte-string corpus standing in for MNIST, and a nested JSON-map
// multiset of multisets), reporting the bits-back savings against an
// order-0 sequence baseline. It is glue, not core: everything it
// calls lives in rans/bst/codec; this file only wires flags, logging
// and demo data together.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	mscompress "github.com/msbst/multiset-compression"
	"github.com/msbst/multiset-compression/bitstream"
	"github.com/msbst/multiset-compression/bst"
	"github.com/msbst/multiset-compression/codec"
	"github.com/msbst/multiset-compression/corpus"
	"github.com/msbst/multiset-compression/rans"
)

func main() {
	mode := pflag.StringP("mode", "m", "toy", "demo scenario: toy, bytes, or json")
	n := pflag.IntP("n", "n", 200, "multiset cardinality")
	width := pflag.Int("width", 64, "byte-string width for the bytes scenario")
	seed := pflag.Int64P("seed", "s", 1337, "random seed")
	out := pflag.StringP("out", "o", "", "optional path to write the flattened ANS state")
	verbose := pflag.BoolP("verbose", "v", false, "debug-level logging")
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	rng := rand.New(rand.NewSource(*seed))

	var err error
	switch *mode {
	case "toy":
		err = runToy(logger, rng, *n, *out)
	case "bytes":
		err = runBytes(logger, rng, *n, *width, *out)
	case "json":
		err = runJSON(logger, rng, *n, *out)
	default:
		err = fmt.Errorf("unknown mode %q (want toy, bytes, or json)", *mode)
	}

	if err != nil {
		logger.Error("run failed", "mode", *mode, "err", err)
		os.Exit(1)
	}
}

func runToy(logger *log.Logger, rng *rand.Rand, n int, out string) error {
	logger.Info("building toy letter multiset", "n", n)
	letters := corpus.ToyLetterMultiset(n, rng)
	tree := bst.BuildMultiset(letters)

	elem := byteSymbolCodec()
	mc := codec.Multiset(elem)

	state := rans.BaseMessage(rans.Shape{1}, true, rng)
	size := tree.Size()

	logEvent(logger, mscompress.NewEvent(mscompress.EvtEncodeStart, int64(size), 0, mscompress.EvtHashNone, time.Time{}))
	if err := mc.Encode(state, tree); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	logEvent(logger, mscompress.NewEvent(mscompress.EvtEncodeEnd, int64(state.CalculateStateBits()), 0, mscompress.EvtHashNone, time.Time{}))

	decoded, err := mc.Decode(state, size)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if !bst.CheckMultisetEquality(bst.BuildMultiset(letters), decoded) {
		return fmt.Errorf("roundtrip mismatch")
	}

	reportSavings(logger, [][]byte{letters}, state.CalculateStateBits(), int(size))
	return maybeWrite(state, rans.Shape{1}, out)
}

func runBytes(logger *log.Logger, rng *rand.Rand, n, width int, out string) error {
	logger.Info("building synthetic byte-string corpus", "n", n, "width", width)
	symbols := corpus.ByteStringCorpus(n, width, rng)

	keys := make([]string, n)
	for i, s := range symbols {
		keys[i] = string(s)
	}
	tree := bst.BuildMultiset(keys)

	elem := stringCodec(uint64(width))
	mc := codec.Multiset(elem)

	state := rans.BaseMessage(rans.Shape{intMax(width, 1)}, true, rng)
	size := tree.Size()

	if err := mc.Encode(state, tree); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	decoded, err := mc.Decode(state, size)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if !bst.CheckMultisetEquality(bst.BuildMultiset(keys), decoded) {
		return fmt.Errorf("roundtrip mismatch")
	}

	logger.Debug("corpus checksum", "xxhash64", fmt.Sprintf("%016x", corpus.Checksum(symbols)))
	reportSavings(logger, symbols, state.CalculateStateBits(), int(size))
	return maybeWrite(state, rans.Shape{intMax(width, 1)}, out)
}

func runJSON(logger *log.Logger, rng *rand.Rand, n int, out string) error {
	logger.Info("building nested JSON-map multiset", "n", n)

	const pairsPerObject = 17
	const maxInnerKeyLen = 4096

	innerKeys := make([]string, n)
	for i := 0; i < n; i++ {
		m := randomStringMap(rng, pairsPerObject)
		pairs := corpus.JSONPairs(m)

		pairStrings := make([]string, len(pairs))
		for j, p := range pairs {
			pairStrings[j] = p.String()
		}
		innerTree := bst.BuildMultiset(pairStrings)
		innerKeys[i] = codec.CanonicalMultisetKey(innerTree)
	}

	outer := bst.BuildMultiset(innerKeys)
	elem := stringCodec(uint64(maxInnerKeyLen))
	mc := codec.Multiset(elem)

	state := rans.BaseMessage(rans.Shape{maxInnerKeyLen}, true, rng)
	size := outer.Size()

	if err := mc.Encode(state, outer); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	decoded, err := mc.Decode(state, size)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if !bst.CheckMultisetEquality(bst.BuildMultiset(innerKeys), decoded) {
		return fmt.Errorf("roundtrip mismatch")
	}

	logger.Info("nested roundtrip ok", "objects", n, "pairs_per_object", pairsPerObject, "state_bits", state.CalculateStateBits())
	return maybeWrite(state, rans.Shape{maxInnerKeyLen}, out)
}

func randomStringMap(rng *rand.Rand, n int) map[string]string {
	m := make(map[string]string, n)
	for len(m) < n {
		k := fmt.Sprintf("k%04d", rng.Intn(100000))
		v := fmt.Sprintf("v%04d", rng.Intn(100000))
		m[k] = v
	}
	return m
}

func reportSavings(logger *log.Logger, symbols [][]byte, stateBits int, n int) {
	baseline := corpus.SequenceBaselineBits(symbols)
	logger.Info("bits-back result",
		"symbols", n,
		"state_bits", stateBits,
		"sequence_baseline_bits", fmt.Sprintf("%.1f", baseline))
}

// maybeWrite persists state to path (when one was given) and reads it
// straight back through the same bitstream.ReadANSState a later decode
// session would use, catching any framing mistake before it's trusted
// as a format.
func maybeWrite(state *rans.State, shape rans.Shape, path string) error {
	if path == "" {
		return nil
	}

	if err := bitstream.WriteANSState(path, state); err != nil {
		return err
	}

	got, err := bitstream.ReadANSState(path, shape)
	if err != nil {
		return err
	}
	if !state.Equal(got) {
		return fmt.Errorf("verify: state read back from %s does not match what was written", path)
	}
	return nil
}

func byteSymbolCodec() codec.SymbolCodec[byte] {
	u := codec.Uniform(256)
	return codec.SymbolCodec[byte]{
		Encode: func(s *rans.State, x byte) error { return u.Encode(s, uint64(x)) },
		Decode: func(s *rans.State) (byte, error) {
			v, err := u.Decode(s)
			return byte(v), err
		},
	}
}

func stringCodec(maxLen uint64) codec.SymbolCodec[string] {
	ba := codec.ByteArray(maxLen)
	return codec.SymbolCodec[string]{
		Encode: func(s *rans.State, x string) error { return ba.Encode(s, []byte(x)) },
		Decode: func(s *rans.State) (string, error) {
			b, err := ba.Decode(s)
			return string(b), err
		},
	}
}

func intMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func logEvent(logger *log.Logger, evt *mscompress.Event) {
	logger.Debug(evt.String())
}
