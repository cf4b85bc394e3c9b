package glabs

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one lab. Setup runs once before the first frame, then Update and
// Draw alternate every tick.
type Scene interface {
	Name() string
	Setup(r Renderer) error
	Update(dt time.Duration)
	Draw(r Renderer) error
}

// InputHandler is implemented by scenes that react to the keyboard or mouse.
// HandleInput runs before Update on each tick.
type InputHandler interface {
	HandleInput(in Input)
}

// ScreenDrawer is implemented by scenes that paint the screen directly
// instead of going through a Renderer.
type ScreenDrawer interface {
	DrawScreen(screen *ebiten.Image) error
}

// Input is a snapshot of the keyboard and mouse for one tick.
type Input struct {
	JustPressed []ebiten.Key
	Held        []ebiten.Key

	CursorX, CursorY int
	// DragX and DragY are the cursor movement since the last tick while the
	// left button is held.
	DragX, DragY  int
	Dragging      bool
	Clicked       bool
	DoubleClicked bool

	Width, Height int
}

func (in Input) Pressed(k ebiten.Key) bool {
	for _, p := range in.JustPressed {
		if p == k {
			return true
		}
	}
	return false
}

func (in Input) Down(k ebiten.Key) bool {
	for _, p := range in.Held {
		if p == k {
			return true
		}
	}
	return false
}

// Clock measures the time between ticks.
type Clock struct {
	now  func() time.Time
	last time.Time
}

// NewClock uses now as its time source, or time.Now when now is nil.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Tick returns the time since the previous Tick; the first call returns 0.
func (c *Clock) Tick() time.Duration {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	dt := t.Sub(c.last)
	c.last = t
	if dt < 0 {
		return 0
	}
	return dt
}

// perFrame scales a per-frame step tuned for 60 ticks a second to dt.
func perFrame(step float64, dt time.Duration) float64 {
	return step * dt.Seconds() * 60
}
