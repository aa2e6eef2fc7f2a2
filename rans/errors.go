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

import "errors"

// Sentinel errors for the rANS engine, one per row of the error table
// that applies at this layer.
var (
	ErrPrecisionOverflow = errors.New("rans: start+freq exceeds total")
	ErrStateUnderflow    = errors.New("rans: tail exhausted during renormalization")
	ErrShapeMismatch     = errors.New("rans: lane count mismatch")
	ErrInvalidProbability = errors.New("rans: freq must be > 0 and total in [1, MaxTotal]")
)
