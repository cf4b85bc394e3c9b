package glabs

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Light is a single light in eye space. Position with w = 0 is a direction
// towards the light; w = 1 is a point light.
type Light struct {
	Position mgl64.Vec4
	Ambient  mgl64.Vec4
	Diffuse  mgl64.Vec4
	Specular mgl64.Vec4
}

type Material struct {
	Ambient   mgl64.Vec4
	Diffuse   mgl64.Vec4
	Specular  mgl64.Vec4
	Shininess float64
}

// DefaultLight shines white from behind the viewer with 0.2 ambient.
func DefaultLight() Light {
	return Light{
		Position: mgl64.Vec4{0, 0, 1, 0},
		Ambient:  mgl64.Vec4{0.2, 0.2, 0.2, 1},
		Diffuse:  White,
		Specular: Black,
	}
}

func DefaultMaterial() Material {
	return Material{
		Ambient:   mgl64.Vec4{0.8, 0.8, 0.8, 1},
		Diffuse:   mgl64.Vec4{0.8, 0.8, 0.8, 1},
		Specular:  Black,
		Shininess: 1,
	}
}

// Shade lights one vertex. pos and normal are in eye space, where the viewer
// sits at the origin. The result is clamped and takes alpha from the
// material's diffuse colour. A zero normal receives ambient light only.
func Shade(l Light, m Material, pos, normal mgl64.Vec3) mgl64.Vec4 {
	ambient := mulColor(l.Ambient, m.Ambient)
	c := ambient.Vec3()

	n, ok := unit(normal)
	if ok {
		var toLight mgl64.Vec3
		if l.Position[3] == 0 {
			toLight, ok = unit(xyz(l.Position))
		} else {
			toLight, ok = unit(xyz(l.Position).Mul(1 / l.Position[3]).Sub(pos))
		}
		if ok {
			if kd := n.Dot(toLight); kd > 0 {
				c = c.Add(mulColor(l.Diffuse, m.Diffuse).Vec3().Mul(kd))

				toEye, eyeOK := unit(pos.Mul(-1))
				if !eyeOK {
					toEye = mgl64.Vec3{0, 0, 1}
				}
				if h, hOK := unit(toLight.Add(toEye)); hOK {
					if ks := math.Pow(math.Max(n.Dot(h), 0), m.Shininess); ks > 0 {
						c = c.Add(mulColor(l.Specular, m.Specular).Vec3().Mul(ks))
					}
				}
			}
		}
	}

	return mgl64.Vec4{clamp01(c[0]), clamp01(c[1]), clamp01(c[2]), clamp01(m.Diffuse[3])}
}
