// Package capture reads text through a fixed-size UTF-16 buffer, the way a
// native text-retrieval call fills a caller-supplied array: input longer than
// the buffer is truncated before decoding, and decoding stops at the first
// NUL code unit.
package capture

import "unicode/utf16"

// DefaultUnits is the buffer capacity in UTF-16 code units. One unit is
// reserved for the NUL terminator, so at most three code units of input are
// captured faithfully.
const DefaultUnits = 4

// Buffer is a fixed-capacity UTF-16 capture buffer. The zero value is not
// usable; create one with NewBuffer.
type Buffer struct {
	units []uint16
}

func NewBuffer(units int) *Buffer {
	if units < 1 {
		units = 1
	}
	return &Buffer{units: make([]uint16, units)}
}

// Fill encodes s as UTF-16 and copies at most capacity-1 code units into the
// buffer, followed by a NUL terminator. It returns the number of code units
// captured. Previous contents past the terminator are unreachable because
// decoding stops at the first NUL.
func (b *Buffer) Fill(s string) int {
	encoded := utf16.Encode([]rune(s))
	n := copy(b.units[:len(b.units)-1], encoded)
	b.units[n] = 0
	return n
}

// String decodes the captured code units. See Decode for the decoding rules.
func (b *Buffer) String() string {
	return Decode(b.units)
}

// Decode converts raw UTF-16 code units into a string, stopping at the first
// NUL code unit or the end of the slice, whichever comes first. Every invalid
// sequence (an unpaired surrogate) decodes to one U+FFFD replacement
// character; decoding never fails.
func Decode(units []uint16) string {
	end := len(units)
	for i, u := range units {
		if u == 0 {
			end = i
			break
		}
	}
	return string(utf16.Decode(units[:end]))
}
