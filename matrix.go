package glabs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/go-gl/mathgl/mgl64/matstack"
)

// Angles in this file are in degrees, as the labs specify them.

func LookAt(eye, at, up mgl64.Vec3) mgl64.Mat4 {
	return mgl64.LookAtV(eye, at, up)
}

// Perspective builds a projection from a vertical field of view in degrees.
func Perspective(fovyDeg, aspect, near, far float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(fovyDeg), aspect, near, far)
}

func Ortho(left, right, bottom, top, near, far float64) mgl64.Mat4 {
	return mgl64.Ortho(left, right, bottom, top, near, far)
}

// Rotate turns deg degrees about axis. A zero axis gives the identity.
func Rotate(deg float64, axis mgl64.Vec3) mgl64.Mat4 {
	a, ok := unit(axis)
	if !ok {
		return mgl64.Ident4()
	}
	return mgl64.HomogRotate3D(mgl64.DegToRad(deg), a)
}

func RotateX(deg float64) mgl64.Mat4 { return mgl64.HomogRotate3DX(mgl64.DegToRad(deg)) }
func RotateY(deg float64) mgl64.Mat4 { return mgl64.HomogRotate3DY(mgl64.DegToRad(deg)) }
func RotateZ(deg float64) mgl64.Mat4 { return mgl64.HomogRotate3DZ(mgl64.DegToRad(deg)) }

func Translate(x, y, z float64) mgl64.Mat4 { return mgl64.Translate3D(x, y, z) }
func Scale(x, y, z float64) mgl64.Mat4     { return mgl64.Scale3D(x, y, z) }

// NormalMatrix is the inverse transpose of the upper 3x3 of mv. Normals moved
// by it stay perpendicular to their surfaces under non-uniform scale.
func NormalMatrix(mv mgl64.Mat4) mgl64.Mat3 {
	return mv.Mat3().Inv().Transpose()
}

// Flatten returns m in column-major order as float32s.
func Flatten(m mgl64.Mat4) [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// TransformPoint applies m to p with w = 1 and divides by the resulting w.
func TransformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(p, m)
}

// TransformDirection applies the linear part of m only.
func TransformDirection(m mgl64.Mat4, d mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformNormal(d, m)
}

// MatrixStack keeps a current model-view matrix with save and restore, the
// way the labs nest transforms for each part of a scene.
type MatrixStack struct {
	s *matstack.MatStack
}

// NewMatrixStack starts with the identity as the only entry.
func NewMatrixStack() *MatrixStack {
	return &MatrixStack{s: matstack.NewMatStack()}
}

// Push saves a copy of the top.
func (ms *MatrixStack) Push() {
	ms.s.Push()
}

// Pop restores the last saved matrix. Popping the only entry is an error.
func (ms *MatrixStack) Pop() error {
	if err := ms.s.Pop(); err != nil {
		return fmt.Errorf("%w: matrix stack: %v", ErrOutOfBounds, err)
	}
	return nil
}

// Mul post-multiplies the top by m, so m applies to vertices first.
func (ms *MatrixStack) Mul(m mgl64.Mat4) {
	ms.s.RightMul(m)
}

func (ms *MatrixStack) Load(m mgl64.Mat4) {
	ms.s.Load(m)
}

func (ms *MatrixStack) Top() mgl64.Mat4 {
	return ms.s.Peek()
}

// Depth is the number of entries, one more than the pushes still open.
func (ms *MatrixStack) Depth() int {
	return len(*ms.s)
}
