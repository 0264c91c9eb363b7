// Package assets embeds the static resources shipped with the application.
package assets

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

//go:embed icon.svg
var iconSVG []byte

// Icon returns the application icon used for window decorations and the
// taskbar entry.
func Icon() fyne.Resource {
	return fyne.NewStaticResource("icon.svg", iconSVG)
}
