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

package bst

import "errors"

var (
	// ErrSymbolNotFound is returned by Remove and ForwardLookup when the
	// requested key has zero multiplicity in the tree.
	ErrSymbolNotFound = errors.New("bst: symbol not present in multiset")

	// ErrIndexOutOfRange is returned by ReverseLookup when cf is not a
	// valid cumulative-frequency slot for the tree's current size.
	ErrIndexOutOfRange = errors.New("bst: cumulative frequency out of range")
)
