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

// Package corpus is the demo harness's data side: loaders that turn a
// file or an in-memory fixture into the "finite iterable of bytes"
// the core's external-collaborator contract calls for, plus the toy
// and JSON-map scenario builders cmd/msc drives end to end. None of
// this is part of the core (rans/bst/codec); it exists only to give
// the core something realistic to compress.
package corpus

import (
	"bufio"
	"os"

	"github.com/msbst/multiset-compression/hash"
)

// Loader produces a finite sequence of byte strings, the external
// collaborator contract §6.3 specifies for a corpus source.
type Loader interface {
	Load() ([][]byte, error)
}

// LineFile loads one []byte symbol per line of a text file.
type LineFile struct {
	Path string
}

// NewLineFile returns a Loader reading newline-delimited symbols from path.
func NewLineFile(path string) *LineFile {
	return &LineFile{Path: path}
}

// Load reads every line of the file as one symbol.
func (l *LineFile) Load() ([][]byte, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines [][]byte
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := make([]byte, len(scanner.Bytes()))
		copy(line, scanner.Bytes())
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// Checksum returns an XXHash64 digest of the loaded corpus's
// concatenated, length-prefixed bytes, letting the demo harness
// confirm a reloaded corpus matches the one a result was reported
// against. Length-prefixing keeps ["ab","c"] from hashing the same as
// ["a","bc"].
func Checksum(symbols [][]byte) uint64 {
	h, _ := hash.NewXXHash64(0)
	var buf []byte
	for _, s := range symbols {
		buf = append(buf, byte(len(s)), byte(len(s)>>8))
		buf = append(buf, s...)
	}
	return h.Hash(buf)
}

// InMemory is a Loader fixture for tests: it just replays the symbols
// it was built with.
type InMemory struct {
	Symbols [][]byte
}

// NewInMemory wraps symbols as a Loader.
func NewInMemory(symbols [][]byte) *InMemory {
	return &InMemory{Symbols: symbols}
}

// Load returns the fixture's symbols.
func (m *InMemory) Load() ([][]byte, error) {
	return m.Symbols, nil
}
