package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Swipe/tap detection thresholds.
const (
	swipeMinDist     = 40.0 // px of drag travel to register a swipe
	tapMaxDist       = 8.0  // px of travel below which a release is a tap
	doubleTapWindow  = 0.30 // seconds between taps
	holdMinDuration  = 0.40 // seconds pressed-in-place before Hold fires
	longPressMinTime = 0.80
)

// buttonKeys maps the six generic button slots to keyboard keys.
var buttonKeys = [NumButtons]ebiten.Key{
	BtnMoveUp:    ebiten.KeyW,
	BtnMoveDown:  ebiten.KeyS,
	BtnMoveLeft:  ebiten.KeyA,
	BtnMoveRight: ebiten.KeyD,
	BtnPotion:    ebiten.KeyQ,
	BtnReport:    ebiten.KeyR,
}

// InputCollector builds an InputState from Ebiten every frame. It owns
// the cross-frame bookkeeping (hold durations, drag origin, double-tap
// timer) so the snapshot handed to the core stays a plain value.
type InputCollector struct {
	holdTime   [NumButtons]float64
	dragActive bool
	dragStart  Vec2
	pressTime  float64 // seconds since the pointer went down
	pressMoved bool
	lastTapAge float64 // seconds since the previous tap, for double-tap
	holdFired  bool
	longFired  bool
}

// NewInputCollector returns a collector with no buttons held.
func NewInputCollector() *InputCollector {
	return &InputCollector{lastTapAge: math.MaxFloat64}
}

// Collect reads Ebiten's device state and returns this frame's snapshot.
func (c *InputCollector) Collect(dt float64) InputState {
	var in InputState

	in.BackPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.BackReleased = inpututil.IsKeyJustReleased(ebiten.KeyEscape)
	in.SelectPressed = inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.Up = inpututil.IsKeyJustPressed(ebiten.KeyArrowUp)
	in.Down = inpututil.IsKeyJustPressed(ebiten.KeyArrowDown)

	for i, k := range buttonKeys {
		down := ebiten.IsKeyPressed(k)
		if down {
			c.holdTime[i] += dt
		} else {
			c.holdTime[i] = 0
		}
		in.Buttons[i] = ButtonState{
			Pressed:      inpututil.IsKeyJustPressed(k),
			Down:         down,
			HoldDuration: c.holdTime[i],
		}
	}

	_, wy := ebiten.Wheel()
	in.ScrollDelta = wy

	mx, my := ebiten.CursorPosition()
	pos := Vec2{float64(mx), float64(my)}
	in.MousePos = pos
	in.MousePressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	c.lastTapAge += dt

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		c.dragActive = true
		c.dragStart = pos
		c.pressTime = 0
		c.pressMoved = false
		c.holdFired = false
		c.longFired = false
	}

	if c.dragActive {
		c.pressTime += dt
		if dist(pos, c.dragStart) > tapMaxDist {
			c.pressMoved = true
		}
		in.DragActive = true
		in.DragStart = c.dragStart
		in.DragCurrent = pos
		in.DragDelta = pos.Sub(c.dragStart)

		if !c.pressMoved && c.pressTime >= holdMinDuration && !c.holdFired {
			in.Hold = true
			c.holdFired = true
		}
		if !c.pressMoved && c.pressTime >= longPressMinTime && !c.longFired {
			in.LongPress = true
			c.longFired = true
		}
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && c.dragActive {
		delta := pos.Sub(c.dragStart)
		if delta.Len() >= swipeMinDist {
			if math.Abs(delta.X) > math.Abs(delta.Y) {
				if delta.X > 0 {
					in.SwipeRight = true
				} else {
					in.SwipeLeft = true
				}
			} else {
				if delta.Y > 0 {
					in.SwipeDown = true
				} else {
					in.SwipeUp = true
				}
			}
		} else if !c.pressMoved && c.pressTime < holdMinDuration {
			in.Tap = true
			if c.lastTapAge <= doubleTapWindow {
				in.DoubleTap = true
			}
			c.lastTapAge = 0
		}
		c.dragActive = false
	}

	return in
}
