package glabs

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// shaderToySource is a full-screen fragment shader in the spirit of
// shadertoy.com: rings of colour ripple out from the cursor.
const shaderToySource = `//kage:unit pixels

package main

var Time float
var Cursor vec2
var Resolution vec2

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	p := vec2(dstPos.x, Resolution.y-dstPos.y) / Resolution.y
	m := Cursor / Resolution.y
	d := distance(p, m)
	r := 0.5 + 0.5*cos(Time+d*20.0)
	g := 0.5 + 0.5*cos(Time*0.7+p.x*6.0+2.0)
	b := 0.5 + 0.5*cos(Time*1.3+p.y*6.0+4.0)
	return vec4(r, g, b, 1)
}
`

// shaderToyEpoch keeps the shader clock away from zero so the first frame
// already shows the pattern in motion.
const shaderToyEpoch = 60 * time.Second

// shaderToyLab paints the window with a fragment shader fed the elapsed time,
// the cursor and the resolution. Dragging moves the cursor the shader sees.
type shaderToyLab struct {
	baseLab
	elapsed time.Duration
	cursor  mgl64.Vec2
	width   int
	height  int
	shader  *ebiten.Shader
}

func newShaderToyLab(o labOptions) *shaderToyLab {
	return &shaderToyLab{
		baseLab: baseLab{name: "shadertoy", opts: o},
		elapsed: shaderToyEpoch,
	}
}

func (l *shaderToyLab) Setup(r Renderer) error {
	l.width, l.height = r.Viewport()
	l.cursor = mgl64.Vec2{float64(l.width) / 2, float64(l.height) / 2}
	return l.upload(r, namedShape{"screenQuad", ScreenQuad()})
}

// HandleInput tracks the cursor while dragging, with y measured up from the
// bottom edge.
func (l *shaderToyLab) HandleInput(in Input) {
	if in.Width > 0 && in.Height > 0 {
		l.width, l.height = in.Width, in.Height
	}
	if in.Dragging || in.Clicked {
		l.cursor = mgl64.Vec2{float64(in.CursorX), float64(l.height - in.CursorY)}
	}
}

func (l *shaderToyLab) Update(dt time.Duration) {
	l.elapsed += dt
}

func (l *shaderToyLab) uniforms() map[string]any {
	return map[string]any{
		"Time":       float32(l.elapsed.Seconds()),
		"Cursor":     []float32{float32(l.cursor[0]), float32(l.cursor[1])},
		"Resolution": []float32{float32(l.width), float32(l.height)},
	}
}

func (l *shaderToyLab) DrawScreen(screen *ebiten.Image) error {
	if l.shader == nil {
		s, err := ebiten.NewShader([]byte(shaderToySource))
		if err != nil {
			return err
		}
		l.shader = s
		Logger().Info("shader compiled", "lab", l.name)
	}
	b := screen.Bounds()
	l.width, l.height = b.Dx(), b.Dy()
	op := &ebiten.DrawRectShaderOptions{Uniforms: l.uniforms()}
	screen.DrawRectShader(l.width, l.height, l.shader, op)
	return nil
}

// Draw is the renderer fallback: the screen quad in a colour cycling with
// time.
func (l *shaderToyLab) Draw(r Renderer) error {
	t := l.elapsed.Seconds()
	r.Clear(Black)
	r.SetProjection(mgl64.Ident4())
	r.SetModelView(mgl64.Ident4())
	r.SetLighting(false)
	r.SetCulling(false)
	r.BindTexture(nil)
	r.SetColor(mgl64.Vec4{
		0.5 + 0.5*math.Cos(t),
		0.5 + 0.5*math.Cos(t*0.7+2),
		0.5 + 0.5*math.Cos(t*1.3+4),
		1,
	})
	return l.draw(r, "screenQuad")
}
