package gui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestNumericEntryAcceptsDigitsOnly(t *testing.T) {
	test.NewTempApp(t)

	entry := newNumericEntry()
	test.Type(entry, "1a2あ!3 ")

	assert.Equal(t, "123", entry.Text)
}

func TestNumericEntryRejectsFullWidthDigits(t *testing.T) {
	test.NewTempApp(t)

	entry := newNumericEntry()
	test.Type(entry, "１２３")

	assert.Equal(t, "", entry.Text)
}

func TestNumericEntryPasteFilter(t *testing.T) {
	test.NewTempApp(t)

	entry := newNumericEntry()
	window := test.NewWindow(entry)
	t.Cleanup(window.Close)

	clipboard := window.Clipboard()

	clipboard.SetContent("99")
	entry.TypedShortcut(&fyne.ShortcutPaste{Clipboard: clipboard})
	assert.Equal(t, "99", entry.Text)

	clipboard.SetContent("4x")
	entry.TypedShortcut(&fyne.ShortcutPaste{Clipboard: clipboard})
	assert.Equal(t, "99", entry.Text, "mixed clipboard content is dropped")
}

func TestDigitsOnly(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty", input: "", want: true},
		{name: "digits", input: "0123456789", want: true},
		{name: "letter", input: "12a", want: false},
		{name: "full width", input: "１２", want: false},
		{name: "negative sign", input: "-5", want: false},
		{name: "space", input: "1 2", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, digitsOnly(tc.input))
		})
	}
}
