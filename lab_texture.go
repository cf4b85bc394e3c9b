package glabs

import (
	"fmt"
	"image"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// textureLab spins a lit, textured cube. A pauses the spin and 1, 2 and 3
// pick the texture.
type textureLab struct {
	baseLab
	camera   *Camera
	textures []*Texture
	current  int
	rot      mgl64.Vec3
	animate  bool
}

// Degrees turned about each axis per second.
const textureLabSpin = 60

var textureKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3}

func newTextureLab(o labOptions) *textureLab {
	return &textureLab{
		baseLab: baseLab{name: "texture", opts: o},
		camera:  NewCamera(mgl64.Vec3{0, 0, 2.5}, Projection{FovY: 45, Near: 0.1, Far: 100}),
		animate: true,
	}
}

func (l *textureLab) Setup(r Renderer) error {
	cube, err := TexturedCube(3)
	if err != nil {
		return err
	}
	if err := l.upload(r, namedShape{"cube", cube}); err != nil {
		return err
	}
	l.textures, err = l.loadTextures()
	return err
}

func (l *textureLab) loadTextures() ([]*Texture, error) {
	if len(l.opts.textures) > 0 {
		out := make([]*Texture, 0, len(l.opts.textures))
		for _, path := range l.opts.textures {
			t, err := LoadTexture(path)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", l.name, err)
			}
			out = append(out, t)
		}
		return out, nil
	}

	checker, err := CheckerImage(64, 8, White, Black)
	if err != nil {
		return nil, err
	}
	warm, err := CheckerImage(64, 4, Red, Yellow)
	if err != nil {
		return nil, err
	}
	stripes, err := StripeImage(64, Red, Green, Blue, Yellow)
	if err != nil {
		return nil, err
	}
	out := make([]*Texture, 0, 3)
	for _, img := range []image.Image{checker, warm, stripes} {
		t, err := NewTexture(img)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (l *textureLab) HandleInput(in Input) {
	if in.Pressed(ebiten.KeyA) {
		l.animate = !l.animate
	}
	for i, k := range textureKeys {
		if in.Pressed(k) && i < len(l.textures) {
			l.current = i
		}
	}
}

func (l *textureLab) Update(dt time.Duration) {
	if !l.animate {
		return
	}
	step := textureLabSpin * dt.Seconds()
	l.rot = l.rot.Add(mgl64.Vec3{step, step, step})
}

func (l *textureLab) texture() *Texture {
	if l.current < len(l.textures) {
		return l.textures[l.current]
	}
	return nil
}

func (l *textureLab) Draw(r Renderer) error {
	r.Clear(mgl64.Vec4{0.5, 0.5, 0.5, 1})
	r.SetProjection(l.camera.ProjectionMatrix(l.aspect(r)))
	r.SetCulling(true)
	r.SetLighting(true)

	light := DefaultLight()
	light.Specular = White
	r.SetLight(light)
	r.SetMaterial(Material{
		Ambient:   mgl64.Vec4{0.8, 0.8, 0.8, 1},
		Diffuse:   mgl64.Vec4{0.8, 0.8, 0.8, 1},
		Specular:  mgl64.Vec4{0.3, 0.3, 0.3, 1},
		Shininess: 15,
	})

	mv := l.camera.View().
		Mul4(RotateX(l.rot[0])).
		Mul4(RotateY(l.rot[1])).
		Mul4(RotateZ(l.rot[2]))
	r.SetModelView(mv)
	r.BindTexture(l.texture())
	return l.draw(r, "cube")
}
