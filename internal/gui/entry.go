package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// numericEntry is a single-line entry restricted to ASCII digits. Typed runes
// and pasted text are both filtered; programmatic SetText is not, matching
// the native numeric edit style which constrains keyboard input only.
type numericEntry struct {
	widget.Entry
}

func newNumericEntry() *numericEntry {
	e := &numericEntry{}
	e.ExtendBaseWidget(e)
	return e
}

func (e *numericEntry) TypedRune(r rune) {
	if r < '0' || r > '9' {
		return
	}
	e.Entry.TypedRune(r)
}

func (e *numericEntry) TypedShortcut(shortcut fyne.Shortcut) {
	paste, ok := shortcut.(*fyne.ShortcutPaste)
	if !ok {
		e.Entry.TypedShortcut(shortcut)
		return
	}
	if digitsOnly(paste.Clipboard.Content()) {
		e.Entry.TypedShortcut(shortcut)
	}
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
