package render

import (
	"runner-game/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func mapKey(k ebiten.Key) game.Key {
	switch k {
	case ebiten.KeySpace:
		return game.KeySpace
	case ebiten.KeyArrowUp:
		return game.KeyUp
	case ebiten.KeyArrowDown:
		return game.KeyDown
	case ebiten.KeyEscape:
		return game.KeyEscape
	case ebiten.KeyP:
		return game.KeyP
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return game.KeyEnter
	case ebiten.KeyR:
		return game.KeyR
	}
	return game.KeyUnknown
}

// inputCollector turns this tick's keyboard, touch and mouse changes into
// engine input events.
type inputCollector struct {
	keys    []ebiten.Key
	touches []ebiten.TouchID
	held    map[ebiten.TouchID]struct{}
}

func newInputCollector() *inputCollector {
	return &inputCollector{held: make(map[ebiten.TouchID]struct{})}
}

func (c *inputCollector) collect(push func(game.InputEvent)) {
	c.keys = inpututil.AppendJustPressedKeys(c.keys[:0])
	for _, k := range c.keys {
		if key := mapKey(k); key != game.KeyUnknown {
			push(game.InputEvent{Kind: game.KeyPressed, Key: key})
		}
	}
	c.keys = inpututil.AppendJustReleasedKeys(c.keys[:0])
	for _, k := range c.keys {
		if key := mapKey(k); key != game.KeyUnknown {
			push(game.InputEvent{Kind: game.KeyReleased, Key: key})
		}
	}

	c.touches = inpututil.AppendJustPressedTouchIDs(c.touches[:0])
	for _, id := range c.touches {
		_, y := ebiten.TouchPosition(id)
		c.held[id] = struct{}{}
		push(game.InputEvent{Kind: game.TouchStart, Y: float64(y)})
	}
	for id := range c.held {
		if inpututil.IsTouchJustReleased(id) {
			delete(c.held, id)
			push(game.InputEvent{Kind: game.TouchEnd})
		}
	}

	if len(c.held) == 0 && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		_, y := ebiten.CursorPosition()
		push(game.InputEvent{Kind: game.PointerDown, Y: float64(y)})
	}
}
