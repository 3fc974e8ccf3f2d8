package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/snake-pixels/internal/core"
)

// keyMap maps physical keys to abstract keys; unmapped keys are KeyOther.
var keyMap = map[ebiten.Key]core.Key{
	ebiten.KeyArrowUp:    core.KeyUp,
	ebiten.KeyW:          core.KeyUp,
	ebiten.KeyK:          core.KeyUp,
	ebiten.KeyArrowDown:  core.KeyDown,
	ebiten.KeyS:          core.KeyDown,
	ebiten.KeyJ:          core.KeyDown,
	ebiten.KeyArrowLeft:  core.KeyLeft,
	ebiten.KeyA:          core.KeyLeft,
	ebiten.KeyH:          core.KeyLeft,
	ebiten.KeyArrowRight: core.KeyRight,
	ebiten.KeyD:          core.KeyRight,
	ebiten.KeyL:          core.KeyRight,
	ebiten.KeyEscape:     core.KeyEscape,
}

// translateKey converts an Ebitengine key to an abstract key.
func translateKey(k ebiten.Key) core.Key {
	if key, ok := keyMap[k]; ok {
		return key
	}
	return core.KeyOther
}
