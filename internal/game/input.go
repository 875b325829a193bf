package game

// InputState is the read-only per-frame input snapshot delivered by the
// host. The core only ever reads it; tests construct snapshots
// directly, the Ebiten host builds them in cmd/game.
type InputState struct {
	// Discrete navigation buttons.
	BackPressed   bool
	BackReleased  bool
	SelectPressed bool
	Up            bool
	Down          bool

	// Six generic buttons. Pressed is the rising edge for this frame,
	// Down is the level, HoldDuration accumulates while held (seconds).
	Buttons [NumButtons]ButtonState

	// Continuous scroll axis (wheel or encoder detents this frame).
	ScrollDelta float64

	// Pointer / touch.
	MousePos     Vec2
	MousePressed bool
	Tap          bool
	DoubleTap    bool
	Hold         bool
	LongPress    bool

	// Derived swipe events and drag tracking.
	SwipeLeft   bool
	SwipeRight  bool
	SwipeUp     bool
	SwipeDown   bool
	DragActive  bool
	DragStart   Vec2
	DragCurrent Vec2
	DragDelta   Vec2
}

// NumButtons is the count of generic host buttons.
const NumButtons = 6

// ButtonState carries edge, level and hold time for one generic button.
type ButtonState struct {
	Pressed      bool
	Down         bool
	HoldDuration float64
}

// Well-known generic button slots. The host maps physical keys to
// these; the core only cares about the indices.
const (
	BtnMoveUp = iota
	BtnMoveDown
	BtnMoveLeft
	BtnMoveRight
	BtnPotion
	BtnReport
)

// MoveDir derives the unit movement direction from the four movement
// buttons. Returns the zero vector when no direction is held.
func (in *InputState) MoveDir() Vec2 {
	var d Vec2
	if in.Buttons[BtnMoveUp].Down {
		d.Y -= 1
	}
	if in.Buttons[BtnMoveDown].Down {
		d.Y += 1
	}
	if in.Buttons[BtnMoveLeft].Down {
		d.X -= 1
	}
	if in.Buttons[BtnMoveRight].Down {
		d.X += 1
	}
	return d.Normalized()
}
