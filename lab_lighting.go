package glabs

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// lightingLab lights a spinning cube and two spheres with a green directional
// light that W, A, S and D swing around the scene. Dragging and double clicks
// control the cube as in the dragcube lab.
type lightingLab struct {
	baseLab
	cubeSpin
	camera   *Camera
	lightDir mgl64.Vec3
}

// How far the light direction moves per 60th of a second a key is held.
const lightingLabStep = 0.05

func newLightingLab(o labOptions) *lightingLab {
	return &lightingLab{
		baseLab:  baseLab{name: "lighting", opts: o},
		cubeSpin: newCubeSpin(),
		camera:   NewCamera(mgl64.Vec3{0, 0, 10}, Projection{FovY: 45, Near: 0.1, Far: 100}),
		lightDir: mgl64.Vec3{0, 1, 0},
	}
}

func (l *lightingLab) Setup(r Renderer) error {
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

func (l *lightingLab) HandleInput(in Input) {
	l.handleInput(in)
	step := lightingLabStep
	if in.Down(ebiten.KeyA) {
		l.lightDir[0] -= step
	}
	if in.Down(ebiten.KeyD) {
		l.lightDir[0] += step
	}
	if in.Down(ebiten.KeyW) {
		l.lightDir[1] += step
	}
	if in.Down(ebiten.KeyS) {
		l.lightDir[1] -= step
	}
}

func (l *lightingLab) Update(dt time.Duration) { l.update(dt) }

// light returns the scene light in eye space for the given view.
func (l *lightingLab) light(view mgl64.Mat4) Light {
	return Light{
		Position: view.Mul4x1(l.lightDir.Vec4(0)),
		Ambient:  mgl64.Vec4{0.2, 0.2, 0.2, 1},
		Diffuse:  Green,
		Specular: Black,
	}
}

func (l *lightingLab) Draw(r Renderer) error {
	r.Clear(Black)
	r.SetProjection(l.camera.ProjectionMatrix(l.aspect(r)))
	r.SetCulling(true)
	r.BindTexture(nil)
	r.SetLighting(true)

	view := l.camera.View()
	r.SetLight(l.light(view))

	r.SetMaterial(Material{Ambient: mgl64.Vec4{0.4, 0.4, 0.4, 1}, Diffuse: mgl64.Vec4{0.8, 0.8, 0.8, 1}, Shininess: 1})
	r.SetModelView(view.Mul4(l.cubeRot))
	if err := l.draw(r, "solidCube"); err != nil {
		return err
	}

	r.SetMaterial(Material{Ambient: Black, Diffuse: Red, Shininess: 1})
	r.SetModelView(view.Mul4(Translate(-2, 0, 0)))
	if err := l.draw(r, "sphere"); err != nil {
		return err
	}

	r.SetMaterial(Material{Ambient: Black, Diffuse: Green, Shininess: 1})
	r.SetModelView(view.Mul4(Translate(2, 0, 0)))
	return l.draw(r, "sphere")
}
