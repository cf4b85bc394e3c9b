package glabs

import (
	"github.com/go-gl/mathgl/mgl64"
)

type ProjectionKind int

const (
	PerspectiveProjection ProjectionKind = iota
	OrthoProjection
)

// Projection describes a view volume independent of the window aspect.
// Perspective uses FovY (degrees); ortho uses HalfHeight, widened by aspect.
type Projection struct {
	Kind       ProjectionKind
	FovY       float64
	HalfHeight float64
	Near, Far  float64
}

func (p Projection) Matrix(aspect float64) mgl64.Mat4 {
	if p.Kind == OrthoProjection {
		h := p.HalfHeight
		return Ortho(-h*aspect, h*aspect, -h, h, p.Near, p.Far)
	}
	return Perspective(p.FovY, aspect, p.Near, p.Far)
}

type Camera struct {
	Eye, At, Up mgl64.Vec3
	Projection  Projection
}

// NewCamera looks from eye at the origin with +Y up.
func NewCamera(eye mgl64.Vec3, proj Projection) *Camera {
	return &Camera{Eye: eye, Up: mgl64.Vec3{0, 1, 0}, Projection: proj}
}

func (c *Camera) View() mgl64.Mat4 {
	return LookAt(c.Eye, c.At, c.Up)
}

func (c *Camera) ProjectionMatrix(aspect float64) mgl64.Mat4 {
	return c.Projection.Matrix(aspect)
}

// Orbit swings the eye around At: yaw about Up, then pitch about the
// camera's right axis. Distance to At is preserved.
func (c *Camera) Orbit(yawDeg, pitchDeg float64) {
	offset := c.Eye.Sub(c.At)
	offset = TransformDirection(Rotate(yawDeg, c.Up), offset)

	right, ok := unit(offset.Cross(c.Up))
	if ok {
		offset = TransformDirection(Rotate(pitchDeg, right), offset)
	}
	c.Eye = c.At.Add(offset)
}

// Position moves the eye without changing where the camera looks.
func (c *Camera) Position(x, y, z float64) {
	c.Eye = mgl64.Vec3{x, y, z}
}
