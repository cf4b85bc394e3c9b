package glabs

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Sphere colours selectable with keys 1 to 6.
var checkerboardColors = []mgl64.Vec4{Red, Blue, Green, Yellow, Cyan, Magenta}

const (
	checkerboardRotChange = 0.5
	checkerboardMaxSpeed  = 5.0
)

// checkerboardLab turns a checkerboard with a sphere and cube on it.
type checkerboardLab struct {
	baseLab
	rotAngle    float64
	rotChange   float64
	objectColor mgl64.Vec4
}

func newCheckerboardLab(o labOptions) *checkerboardLab {
	return &checkerboardLab{
		baseLab:     baseLab{name: "checkerboard", opts: o},
		rotChange:   checkerboardRotChange,
		objectColor: Red,
	}
}

func (l *checkerboardLab) Setup(r Renderer) error {
	board, err := Checkerboard(10, 0.5, mgl64.Vec4{0.9, 0.9, 0.9, 1}, mgl64.Vec4{0.05, 0.05, 0.05, 1})
	if err != nil {
		return err
	}
	sphere, err := Sphere(0.5, 20, 20)
	if err != nil {
		return err
	}
	cube, err := SolidCube()
	if err != nil {
		return err
	}
	return l.upload(r,
		namedShape{"board", board},
		namedShape{"sphere", sphere},
		namedShape{"cube", cube},
	)
}

func (l *checkerboardLab) HandleInput(in Input) {
	for i, k := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6} {
		if in.Pressed(k) {
			l.objectColor = checkerboardColors[i]
		}
	}
	if in.Pressed(ebiten.KeyR) {
		l.rotChange = -l.rotChange
	}
	if in.Pressed(ebiten.KeyEqual) || in.Pressed(ebiten.KeyNumpadAdd) {
		l.setSpeed(l.rotChange * 2)
	}
	if in.Pressed(ebiten.KeyMinus) || in.Pressed(ebiten.KeyNumpadSubtract) {
		l.setSpeed(l.rotChange / 2)
	}
}

func (l *checkerboardLab) setSpeed(v float64) {
	switch {
	case v > checkerboardMaxSpeed:
		v = checkerboardMaxSpeed
	case v < -checkerboardMaxSpeed:
		v = -checkerboardMaxSpeed
	}
	l.rotChange = v
}

func (l *checkerboardLab) Update(dt time.Duration) {
	l.rotAngle += perFrame(l.rotChange, dt)
}

func (l *checkerboardLab) Draw(r Renderer) error {
	r.Clear(mgl64.Vec4{0.9, 0.9, 0.9, 1})
	r.SetProjection(Perspective(50, l.aspect(r), 0.5, 50))
	r.SetCulling(false)
	r.BindTexture(nil)
	r.SetColor(White)
	r.SetLight(DefaultLight())

	mv := Translate(0, 0, -5).Mul4(RotateX(-20)).Mul4(RotateY(l.rotAngle))

	// The board is seen from both sides as the scene turns, so it keeps its
	// vertex colours unlit.
	r.SetLighting(false)
	r.SetModelView(mv)
	if err := l.draw(r, "board"); err != nil {
		return err
	}
	r.SetLighting(true)

	// Up by the radius, poles turned vertical.
	mv = mv.Mul4(Translate(0, 1, 0)).Mul4(RotateX(90))
	r.SetModelView(mv)
	r.SetMaterial(Material{Ambient: l.objectColor, Diffuse: l.objectColor, Specular: Black, Shininess: 1})
	if err := l.draw(r, "sphere"); err != nil {
		return err
	}

	// The rotation above made local z point down.
	mv = mv.Mul4(Translate(0, 0, -0.75)).Mul4(Scale(0.5, 0.5, 0.5))
	r.SetModelView(mv)
	r.SetMaterial(Material{Ambient: LightBlue, Diffuse: LightBlue, Specular: Black, Shininess: 1})
	return l.draw(r, "cube")
}
