package gesture

// PointerType distinguishes input devices.
type PointerType uint8

const (
	PointerMouse PointerType = iota
	PointerTouch
	// PointerPen reports buttons like a mouse; the tip is ButtonLeft.
	PointerPen
)

// Phase is the lifecycle step a PointerEvent reports.
type Phase uint8

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
	PhaseCancel
	PhaseContextMenu
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	case PhaseCancel:
		return "cancel"
	case PhaseContextMenu:
		return "contextmenu"
	default:
		return "unknown"
	}
}

// Mouse button indices carried in PointerEvent.Button.
const (
	NoButton     = -1
	ButtonLeft   = 0
	ButtonMiddle = 1
	ButtonRight  = 2
)

// PointerEvent is one raw pointer sample delivered to a region.
type PointerEvent struct {
	Phase  Phase
	ID     int
	Type   PointerType
	Button int // mouse only, NoButton otherwise
	X, Y   float64
	DX, DY float64 // movement since the previous event of this pointer
}

// buttonSet is a bitmask of held mouse buttons.
type buttonSet uint8

func validButton(b int) bool { return b >= 0 && b < 8 }

func (s buttonSet) has(b int) bool {
	return validButton(b) && s&(1<<uint(b)) != 0
}

func (s *buttonSet) add(b int) {
	if validButton(b) {
		*s |= 1 << uint(b)
	}
}

func (s *buttonSet) remove(b int) {
	if validButton(b) {
		*s &^= 1 << uint(b)
	}
}
