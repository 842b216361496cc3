package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/wirecube"
	"github.com/smasonuk/wirecube/host/eventloop"
)

// keyNames maps polled ebiten keys to the identifiers KeyEvent carries.
var keyNames = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyArrowUp, wirecube.KeyArrowUp},
	{ebiten.KeyArrowDown, wirecube.KeyArrowDown},
	{ebiten.KeyArrowLeft, wirecube.KeyArrowLeft},
	{ebiten.KeyArrowRight, wirecube.KeyArrowRight},
	{ebiten.KeyEnter, "Enter"},
	{ebiten.KeyEscape, "Escape"},
	{ebiten.KeySpace, " "},
	{ebiten.KeyR, "r"},
	{ebiten.KeyS, "s"},
}

func pollKeys(events *eventloop.Events) {
	for _, k := range keyNames {
		if inpututil.IsKeyJustPressed(k.key) {
			events.KeyDown(k.name)
		}
		if inpututil.IsKeyJustReleased(k.key) {
			events.KeyUp(k.name)
		}
	}
}
