package gui

import (
	"image/color"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// sharedTextSize matches the point size the window was laid out for. Every
// control and both instruction lines render at this size.
const sharedTextSize = 18

// Theme pins the text size and prefers a Japanese-capable system font so the
// static labels render with real glyphs. When no candidate font exists the
// toolkit default is used silently; nothing downstream treats that as an
// error.
type Theme struct {
	base fyne.Theme
	font fyne.Resource
}

func NewTheme() *Theme {
	return &Theme{
		base: theme.DefaultTheme(),
		font: loadSharedFont(fontCandidates()),
	}
}

// SharedFont reports the loaded font resource, or nil when every candidate
// failed.
func (t *Theme) SharedFont() fyne.Resource {
	return t.font
}

func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	if t.font != nil && !style.Symbol && !style.Monospace {
		return t.font
	}
	return t.base.Font(style)
}

func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return sharedTextSize
	}
	return t.base.Size(name)
}

func (t *Theme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return t.base.Color(name, variant)
}

func (t *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// loadSharedFont returns the first candidate that exists and loads. Failures
// are not surfaced; a nil resource means default rendering.
func loadSharedFont(paths []string) fyne.Resource {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		res, err := fyne.LoadResourceFromPath(path)
		if err != nil {
			continue
		}
		return res
	}
	return nil
}

func fontCandidates() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\Windows\Fonts\meiryo.ttc`,
			`C:\Windows\Fonts\YuGothM.ttc`,
			`C:\Windows\Fonts\msgothic.ttc`,
		}
	case "darwin":
		return []string{
			"/System/Library/Fonts/ヒラギノ角ゴシック W3.ttc",
			"/System/Library/Fonts/Hiragino Sans GB.ttc",
		}
	default:
		return []string{
			"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
			"/usr/share/fonts/opentype/ipafont-gothic/ipag.ttf",
			"/usr/share/fonts/truetype/takao-gothic/TakaoGothic.ttf",
		}
	}
}
