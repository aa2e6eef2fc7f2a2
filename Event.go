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

package mscompress

import (
	"fmt"
	"time"
)

// Event kinds reported by cmd/msc while it drives an encode/decode
// pipeline. Unlike a block compressor's transform/entropy stages, the
// multiset pipeline has exactly one entropy stage (the bits-back loop),
// so the event set is narrower than the teacher's.
const (
	EvtEncodeStart = 0 // Multiset.encode starts
	EvtEncodeEnd   = 1 // Multiset.encode ends
	EvtDecodeStart = 2 // Multiset.decode starts
	EvtDecodeEnd   = 3 // Multiset.decode ends
	EvtSworStep    = 4 // one SamplingWithoutReplacement step completed

	EvtHashNone   = 0
	EvtHash64Bits = 64
)

// Event reports progress of an encode/decode run to a Listener.
type Event struct {
	eventType int
	size      int64
	hash      uint64
	hashType  int
	eventTime time.Time
	msg       string
}

// NewEventFromString creates an Event that just wraps a message.
func NewEventFromString(evtType int, msg string, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, msg: msg, eventTime: evtTime}
}

// NewEvent creates an Event with size and hash info. Returns nil if
// hashType is not one of EvtHashNone or EvtHash64Bits.
func NewEvent(evtType int, size int64, hash uint64, hashType int, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	if hashType != EvtHashNone && hashType != EvtHash64Bits {
		return nil
	}

	return &Event{eventType: evtType, size: size, hash: hash, hashType: hashType, eventTime: evtTime}
}

// Type returns the event kind.
func (this *Event) Type() int {
	return this.eventType
}

// Time returns the time the event was recorded.
func (this *Event) Time() time.Time {
	return this.eventTime
}

// Size returns the size info (symbol count, state bits, depending on kind).
func (this *Event) Size() int64 {
	return this.size
}

// Hash returns the hash info, meaningful only when HashType() != EvtHashNone.
func (this *Event) Hash() uint64 {
	return this.hash
}

// HashType returns EvtHashNone or EvtHash64Bits.
func (this *Event) HashType() int {
	return this.hashType
}

// String renders the event as a single-line JSON-ish record.
func (this *Event) String() string {
	if len(this.msg) > 0 {
		return this.msg
	}

	hash := ""
	t := ""

	if this.hashType != EvtHashNone {
		hash = fmt.Sprintf(", \"hash\": %x", this.hash)
	}

	switch this.eventType {
	case EvtEncodeStart:
		t = "ENCODE_START"
	case EvtEncodeEnd:
		t = "ENCODE_END"
	case EvtDecodeStart:
		t = "DECODE_START"
	case EvtDecodeEnd:
		t = "DECODE_END"
	case EvtSworStep:
		t = "SWOR_STEP"
	}

	return fmt.Sprintf("{ \"type\":\"%s\", \"size\":%d, \"time\":%d%s }", t, this.size,
		this.eventTime.UnixNano()/1000000, hash)
}

// Listener is implemented by event processors. cmd/msc does not
// implement it; it logs each Event directly through logEvent.
type Listener interface {
	// ProcessEvent is called whenever the Listener receives an event.
	ProcessEvent(evt *Event)
}
