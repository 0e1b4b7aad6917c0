package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	const h = 400.0
	tests := []struct {
		name  string
		ev    InputEvent
		phase Phase
		cmd   Command
		ok    bool
	}{
		{"space jumps", InputEvent{Kind: KeyPressed, Key: KeySpace}, Active, CmdJump, true},
		{"up jumps", InputEvent{Kind: KeyPressed, Key: KeyUp}, Active, CmdJump, true},
		{"down ducks", InputEvent{Kind: KeyPressed, Key: KeyDown}, Active, CmdDuckStart, true},
		{"down release stands", InputEvent{Kind: KeyReleased, Key: KeyDown}, Active, CmdDuckEnd, true},
		{"escape pauses", InputEvent{Kind: KeyPressed, Key: KeyEscape}, Active, CmdPause, true},
		{"p pauses", InputEvent{Kind: KeyPressed, Key: KeyP}, Active, CmdPause, true},
		{"upper touch jumps", InputEvent{Kind: TouchStart, Y: 100}, Active, CmdJump, true},
		{"lower touch ducks", InputEvent{Kind: TouchStart, Y: 350}, Active, CmdDuckStart, true},
		{"touch end stands", InputEvent{Kind: TouchEnd}, Active, CmdDuckEnd, true},
		{"upper click jumps", InputEvent{Kind: PointerDown, Y: 200}, Active, CmdJump, true},
		{"lower click ignored", InputEvent{Kind: PointerDown, Y: 390}, Active, 0, false},
		{"enter ignored while running", InputEvent{Kind: KeyPressed, Key: KeyEnter}, Active, 0, false},

		{"paused resumes", InputEvent{Kind: KeyPressed, Key: KeyP}, Paused, CmdPause, true},
		{"paused ignores jump", InputEvent{Kind: KeyPressed, Key: KeySpace}, Paused, 0, false},
		{"paused ignores touch", InputEvent{Kind: TouchStart, Y: 10}, Paused, 0, false},

		{"countdown ignores space", InputEvent{Kind: KeyPressed, Key: KeySpace}, Countdown, 0, false},
		{"countdown ignores escape", InputEvent{Kind: KeyPressed, Key: KeyEscape}, Countdown, 0, false},

		{"idle enter starts", InputEvent{Kind: KeyPressed, Key: KeyEnter}, Idle, CmdStart, true},
		{"idle tap starts", InputEvent{Kind: TouchStart, Y: 390}, Idle, CmdStart, true},
		{"idle down ignored", InputEvent{Kind: KeyPressed, Key: KeyDown}, Idle, 0, false},
		{"dead r replays", InputEvent{Kind: KeyPressed, Key: KeyR}, Dead, CmdStart, true},
		{"dead escape dismisses", InputEvent{Kind: KeyPressed, Key: KeyEscape}, Dead, CmdDismiss, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := Translate(tt.ev, tt.phase, h)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.cmd, cmd)
		})
	}
}
