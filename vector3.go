package glabs

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// degenerateEpsilon is the shortest vector length still treated as a direction.
const degenerateEpsilon = 1e-12

// xyz drops the homogeneous coordinate.
func xyz(v mgl64.Vec4) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// Point returns a homogeneous point with w = 1.
func Point(x, y, z float64) mgl64.Vec4 {
	return mgl64.Vec4{x, y, z, 1}
}

// unit normalizes v. ok is false when v is too short or not finite, in which
// case the zero vector is returned instead of NaNs. v is scaled by its largest
// component first, so lengths beyond the float64 range still normalize.
func unit(v mgl64.Vec3) (mgl64.Vec3, bool) {
	if !isFinite3(v) {
		return mgl64.Vec3{}, false
	}
	m := math.Max(math.Abs(v[0]), math.Max(math.Abs(v[1]), math.Abs(v[2])))
	if !(m > 0) {
		return mgl64.Vec3{}, false
	}
	scaled := mgl64.Vec3{v[0] / m, v[1] / m, v[2] / m}
	l := scaled.Len()
	if !(l*m > degenerateEpsilon) {
		return mgl64.Vec3{}, false
	}
	return scaled.Mul(1 / l), true
}

func isFinite3(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
