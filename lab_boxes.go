package glabs

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// boxesLab tumbles axes and two wire cubes under an orthographic camera,
// placing each part with a matrix stack.
type boxesLab struct {
	baseLab
	camera *Camera
	spin   mgl64.Mat4
	stack  *MatrixStack
}

func newBoxesLab(o labOptions) *boxesLab {
	return &boxesLab{
		baseLab: baseLab{name: "boxes", opts: o},
		camera:  NewCamera(mgl64.Vec3{0, 1, 10}, Projection{Kind: OrthoProjection, HalfHeight: 3.4, Near: 1, Far: 20}),
		spin:    mgl64.Ident4(),
		stack:   NewMatrixStack(),
	}
}

func (l *boxesLab) Setup(r Renderer) error {
	return l.upload(r,
		namedShape{"wireCube", WireCube(White)},
		namedShape{"blueWireCube", WireCube(Blue)},
		namedShape{"axes", Axes(2)},
	)
}

// Update turns the scene 6 degrees about z and then x per 60th of a second.
func (l *boxesLab) Update(dt time.Duration) {
	step := perFrame(6, dt)
	l.spin = l.spin.Mul4(RotateZ(step)).Mul4(RotateX(step))
}

func (l *boxesLab) Draw(r Renderer) error {
	r.Clear(Black)
	r.SetProjection(l.camera.ProjectionMatrix(l.aspect(r)))
	r.SetLighting(false)
	r.SetCulling(false)
	r.SetColor(White)
	r.BindTexture(nil)

	ms := l.stack
	ms.Load(l.camera.View().Mul4(l.spin))

	ms.Push()
	r.SetModelView(ms.Top())
	if err := l.draw(r, "axes"); err != nil {
		return err
	}
	if err := ms.Pop(); err != nil {
		return err
	}

	// The blue cube hangs off the white cube's frame.
	ms.Push()
	ms.Mul(Translate(1, 0, 0))
	r.SetModelView(ms.Top())
	if err := l.draw(r, "wireCube"); err != nil {
		return err
	}

	ms.Mul(Translate(0, 1, 0))
	ms.Mul(RotateY(45))
	r.SetModelView(ms.Top())
	if err := l.draw(r, "blueWireCube"); err != nil {
		return err
	}
	return ms.Pop()
}
