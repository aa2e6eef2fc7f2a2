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

import "errors"

var (
	// ErrInvalidProbability is returned when a Categorical frequency
	// table does not sum to its configured total.
	ErrInvalidProbability = errors.New("codec: categorical frequencies do not sum to total")

	// ErrInvalidByteArraySize is returned when a ByteArray payload is
	// longer than the codec's configured maximum.
	ErrInvalidByteArraySize = errors.New("codec: byte slice exceeds max size")

	// ErrShapeMismatch is returned when a codec is handed a state whose
	// lane count does not match what it was configured for.
	ErrShapeMismatch = errors.New("codec: state lane count mismatch")
)
