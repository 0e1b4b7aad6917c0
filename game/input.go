package game

type Key uint8

const (
	KeyUnknown Key = iota
	KeySpace
	KeyUp
	KeyDown
	KeyEscape
	KeyP
	KeyEnter
	KeyR
)

type InputKind uint8

const (
	KeyPressed InputKind = iota
	KeyReleased
	TouchStart
	TouchEnd
	PointerDown
)

// InputEvent is a raw input sample queued by the render layer. Y is in
// surface coordinates and only meaningful for touch and pointer events.
type InputEvent struct {
	Kind InputKind
	Key  Key
	Y    float64
}

type Command uint8

const (
	CmdJump Command = iota + 1
	CmdDuckStart
	CmdDuckEnd
	CmdPause
	CmdStart
	CmdDismiss
)

func (c Command) String() string {
	switch c {
	case CmdJump:
		return "jump"
	case CmdDuckStart:
		return "duck_start"
	case CmdDuckEnd:
		return "duck_end"
	case CmdPause:
		return "pause"
	case CmdStart:
		return "start"
	case CmdDismiss:
		return "dismiss"
	}
	return "none"
}

// duckRegion is the fraction of the surface height above which touches duck.
const duckRegion = 0.7

// Translate maps a raw event to the command it means in phase. Events that
// mean nothing in phase map to no command.
func Translate(ev InputEvent, phase Phase, surfaceHeight float64) (Command, bool) {
	switch phase {
	case Active:
		return translateActive(ev, surfaceHeight)
	case Paused:
		if ev.Kind == KeyPressed && (ev.Key == KeyEscape || ev.Key == KeyP) {
			return CmdPause, true
		}
	case Idle, Dead:
		switch ev.Kind {
		case KeyPressed:
			switch ev.Key {
			case KeySpace, KeyEnter, KeyR:
				return CmdStart, true
			case KeyEscape:
				return CmdDismiss, true
			}
		case TouchStart, PointerDown:
			return CmdStart, true
		}
	}
	return 0, false
}

func translateActive(ev InputEvent, surfaceHeight float64) (Command, bool) {
	switch ev.Kind {
	case KeyPressed:
		switch ev.Key {
		case KeySpace, KeyUp:
			return CmdJump, true
		case KeyDown:
			return CmdDuckStart, true
		case KeyEscape, KeyP:
			return CmdPause, true
		}
	case KeyReleased:
		if ev.Key == KeyDown {
			return CmdDuckEnd, true
		}
	case TouchStart:
		if ev.Y > surfaceHeight*duckRegion {
			return CmdDuckStart, true
		}
		return CmdJump, true
	case TouchEnd:
		return CmdDuckEnd, true
	case PointerDown:
		if ev.Y <= surfaceHeight*duckRegion {
			return CmdJump, true
		}
	}
	return 0, false
}
