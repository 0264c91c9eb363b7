package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name  string
		units []uint16
		want  string
	}{
		{name: "empty", units: nil, want: ""},
		{name: "leading nul", units: []uint16{0, 0x31}, want: ""},
		{name: "digits", units: []uint16{0x31, 0x32, 0x30}, want: "120"},
		{name: "stops at first nul", units: []uint16{0x31, 0, 0x32}, want: "1"},
		{name: "lone high surrogate", units: []uint16{0xD800}, want: "�"},
		{name: "lone low surrogate", units: []uint16{0xDFFF, 0x31}, want: "�1"},
		{name: "replacement per invalid unit", units: []uint16{0xD800, 0xD800}, want: "��"},
		{name: "kana", units: []uint16{0x3042, 0x3044}, want: "あい"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Decode(tc.units))
		})
	}
}

func TestDecodeKeepsValidSurrogatePairs(t *testing.T) {
	units := []uint16{0xD867, 0xDE3D} // 𩸽
	assert.Equal(t, "𩸽", Decode(units))
}

func TestBufferFill(t *testing.T) {
	cases := []struct {
		name     string
		units    int
		input    string
		captured int
		want     string
	}{
		{name: "short numeric input fits", units: DefaultUnits, input: "120", captured: 3, want: "120"},
		{name: "empty input", units: DefaultUnits, input: "", captured: 0, want: ""},
		{name: "long input truncates at boundary", units: DefaultUnits, input: "1234567", captured: 3, want: "123"},
		{name: "kana fits", units: DefaultUnits, input: "あい", captured: 2, want: "あい"},
		{name: "kana truncates", units: DefaultUnits, input: "あいうえ", captured: 3, want: "あいう"},
		{name: "single slot holds only the terminator", units: 1, input: "5", captured: 0, want: ""},
		{name: "capacity floor", units: 0, input: "5", captured: 0, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := NewBuffer(tc.units)
			assert.Equal(t, tc.captured, buf.Fill(tc.input))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestBufferTruncationSplitsSurrogatePair(t *testing.T) {
	// 𩸽 is two code units; the second character loses its low surrogate at
	// the buffer boundary and decodes to a replacement character.
	buf := NewBuffer(DefaultUnits)
	captured := buf.Fill("𩸽𩸽")

	assert.Equal(t, 3, captured)
	assert.Equal(t, "𩸽�", buf.String())
}

func TestBufferReuseStopsAtFreshTerminator(t *testing.T) {
	buf := NewBuffer(DefaultUnits)

	buf.Fill("999")
	assert.Equal(t, "999", buf.String())

	buf.Fill("1")
	assert.Equal(t, "1", buf.String())
}
