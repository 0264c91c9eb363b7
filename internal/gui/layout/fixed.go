// Package layout provides the fixed-pixel placement used by the main window.
// The window body is a constant size and every control sits at coordinates
// decided at build time; nothing reflows.
package layout

import (
	"fyne.io/fyne/v2"
)

type placement struct {
	pos  fyne.Position
	size fyne.Size
}

// FixedPlacement is a fyne.Layout that moves each registered object to its
// fixed rectangle. Unregistered objects stay at the origin with their minimum
// size. A zero registered size means "use the object's minimum size", which
// lets text lines size themselves while keeping a fixed offset.
type FixedPlacement struct {
	bodySize   fyne.Size
	placements map[fyne.CanvasObject]placement
}

func NewFixedPlacement(bodySize fyne.Size) *FixedPlacement {
	return &FixedPlacement{
		bodySize:   bodySize,
		placements: make(map[fyne.CanvasObject]placement),
	}
}

// Place registers the rectangle for obj. Registration must happen before the
// container lays out for the first time; re-registering replaces the
// previous rectangle.
func (l *FixedPlacement) Place(obj fyne.CanvasObject, pos fyne.Position, size fyne.Size) {
	l.placements[obj] = placement{pos: pos, size: size}
}

// PlaceAtMinSize registers only a fixed offset; the object keeps its minimum
// size.
func (l *FixedPlacement) PlaceAtMinSize(obj fyne.CanvasObject, pos fyne.Position) {
	l.placements[obj] = placement{pos: pos}
}

func (l *FixedPlacement) Layout(objects []fyne.CanvasObject, _ fyne.Size) {
	for _, obj := range objects {
		p, ok := l.placements[obj]
		if !ok {
			obj.Move(fyne.NewPos(0, 0))
			obj.Resize(obj.MinSize())
			continue
		}

		obj.Move(p.pos)
		if p.size.IsZero() {
			obj.Resize(obj.MinSize())
		} else {
			obj.Resize(p.size)
		}
	}
}

func (l *FixedPlacement) MinSize(_ []fyne.CanvasObject) fyne.Size {
	return l.bodySize
}
