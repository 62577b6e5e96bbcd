package game

import (
	"github.com/golangdaddy/racecar/pkg/controls"
	"github.com/hajimehoshi/ebiten/v2"
)

// newKeyBindings maps arrows and WASD to driving directions. Keys not listed
// here never reach the controls.
func newKeyBindings() *controls.Bindings[ebiten.Key] {
	return controls.NewBindings(
		controls.Binding[ebiten.Key]{Direction: controls.Up, Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
		controls.Binding[ebiten.Key]{Direction: controls.Down, Keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
		controls.Binding[ebiten.Key]{Direction: controls.Left, Keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
		controls.Binding[ebiten.Key]{Direction: controls.Right, Keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	)
}
