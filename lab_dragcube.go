package glabs

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// dragCubeLab shows a lit flat-shaded cube between two spheres. The cube spins
// on its own until it is dragged; a double click or Space resumes the spin.
type dragCubeLab struct {
	baseLab
	cubeSpin
	camera *Camera
}

func newDragCubeLab(o labOptions) *dragCubeLab {
	return &dragCubeLab{
		baseLab:  baseLab{name: "dragcube", opts: o},
		cubeSpin: newCubeSpin(),
		camera:   NewCamera(mgl64.Vec3{0, 0, 10}, Projection{FovY: 45, Near: 0.1, Far: 100}),
	}
}

func (l *dragCubeLab) Setup(r Renderer) error {
	cube, err := SolidCube()
	if err != nil {
		return err
	}
	sphere, err := Sphere(1, 50, 50)
	if err != nil {
		return err
	}
	return l.upload(r, namedShape{"solidCube", cube}, namedShape{"sphere", sphere})
}

func (l *dragCubeLab) HandleInput(in Input) { l.handleInput(in) }

func (l *dragCubeLab) Update(dt time.Duration) { l.update(dt) }

func (l *dragCubeLab) Draw(r Renderer) error {
	r.Clear(Black)
	r.SetProjection(l.camera.ProjectionMatrix(l.aspect(r)))
	r.SetCulling(true)
	r.BindTexture(nil)
	r.SetLighting(true)
	r.SetLight(DefaultLight())
	r.SetMaterial(DefaultMaterial())

	view := l.camera.View()

	r.SetModelView(view.Mul4(l.cubeRot))
	if err := l.draw(r, "solidCube"); err != nil {
		return err
	}

	r.SetModelView(view.Mul4(Translate(-2, 0, 0)))
	if err := l.draw(r, "sphere"); err != nil {
		return err
	}

	r.SetModelView(view.Mul4(Translate(2, 0, 0)).Mul4(RotateX(l.rx)))
	return l.draw(r, "sphere")
}
