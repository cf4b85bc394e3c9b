package glabs

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const doubleClickInterval = 400 * time.Millisecond

// Game runs one Scene as an ebiten.Game.
type Game struct {
	scene     Scene
	renderer  *ScreenRenderer
	clock     *Clock
	width     int
	height    int
	ready     bool
	showStats bool

	input func() Input

	keys      []ebiten.Key
	held      []ebiten.Key
	dragging  bool
	lastX     int
	lastY     int
	lastClick time.Time
}

type GameOption func(*Game)

func WithClock(c *Clock) GameOption {
	return func(g *Game) { g.clock = c }
}

// WithStats shows the frame overlay from the start; F1 toggles it.
func WithStats(on bool) GameOption {
	return func(g *Game) { g.showStats = on }
}

func NewGame(scene Scene, r *ScreenRenderer, opts ...GameOption) *Game {
	w, h := r.Viewport()
	g := &Game{
		scene:    scene,
		renderer: r,
		clock:    NewClock(nil),
		width:    w,
		height:   h,
	}
	g.input = g.readInput
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) setup() error {
	Logger().Info("setting up lab", "lab", g.scene.Name())
	if err := g.scene.Setup(g.renderer); err != nil {
		return fmt.Errorf("setup %s: %w", g.scene.Name(), err)
	}
	g.ready = true
	Logger().Info("lab ready", "lab", g.scene.Name())
	return nil
}

// Update advances the scene by one tick. A failed Setup ends the game.
func (g *Game) Update() error {
	if !g.ready {
		if err := g.setup(); err != nil {
			return err
		}
	}

	in := g.input()
	if in.Pressed(ebiten.KeyF1) {
		g.showStats = !g.showStats
	}
	if h, ok := g.scene.(InputHandler); ok {
		h.HandleInput(in)
	}
	g.scene.Update(g.clock.Tick())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.ready {
		return
	}

	var stats FrameStats
	if sd, ok := g.scene.(ScreenDrawer); ok {
		if err := sd.DrawScreen(screen); err != nil {
			Logger().Warn("draw failed", "lab", g.scene.Name(), "err", err)
		}
	} else {
		g.renderer.Begin(screen)
		if err := g.scene.Draw(g.renderer); err != nil {
			Logger().Warn("draw failed", "lab", g.scene.Name(), "err", err)
		}
		stats = g.renderer.End()
		Logger().Debug("frame", "triangles", stats.Triangles, "lines", stats.Lines, "culled", stats.Culled, "clipped", stats.Clipped)
	}

	if g.showStats {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  FPS: %0.2f  triangles: %d  culled: %d",
			g.scene.Name(), ebiten.ActualFPS(), stats.Triangles, stats.Culled))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) readInput() Input {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	g.held = inpututil.AppendPressedKeys(g.held[:0])

	in := Input{JustPressed: g.keys, Held: g.held, Width: g.width, Height: g.height}
	in.CursorX, in.CursorY = ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		now := time.Now()
		in.Clicked = true
		in.DoubleClicked = !g.lastClick.IsZero() && now.Sub(g.lastClick) < doubleClickInterval
		g.lastClick = now
		g.dragging = true
		g.lastX, g.lastY = in.CursorX, in.CursorY
	}
	if g.dragging {
		in.Dragging = true
		in.DragX, in.DragY = in.CursorX-g.lastX, in.CursorY-g.lastY
		g.lastX, g.lastY = in.CursorX, in.CursorY
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}
	return in
}
