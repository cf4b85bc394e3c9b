package glabs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// NormalOption configures flat-normal generation.
type NormalOption func(*normalOptions)

type normalOptions struct {
	fallback    mgl64.Vec3
	useFallback bool
}

// WithDegenerateFallback substitutes n for the normal of any degenerate
// triangle instead of failing with ErrDegenerateGeometry.
func WithDegenerateFallback(n mgl64.Vec3) NormalOption {
	return func(o *normalOptions) {
		o.fallback = n
		o.useFallback = true
	}
}

// MakeFlatNormals computes one unit normal per triangle of a triangle list and
// writes it to the three vertex slots of that triangle.
//
// Vertices start..start+count-1 are read in groups of three; count is the
// number of vertices as if drawing that range as triangles, so it must be a
// non-negative multiple of 3. Triangles must be wound counter-clockwise when
// seen from the front, otherwise the normal points backwards. The w component
// of each vertex is ignored.
//
// Only normals[start:start+count] is written. Every check, including the
// degenerate-triangle check, happens before the first write, so a failed call
// leaves normals untouched.
func MakeFlatNormals(vertices []mgl64.Vec4, start, count int, normals []mgl64.Vec3, opts ...NormalOption) error {
	var o normalOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.useFallback && !isFinite3(o.fallback) {
		return fmt.Errorf("%w: fallback normal %v is not finite", ErrInvalidArgument, o.fallback)
	}
	if count < 0 || count%3 != 0 {
		return fmt.Errorf("%w: vertex count %d is not a non-negative multiple of 3", ErrInvalidArgument, count)
	}
	if start < 0 {
		return fmt.Errorf("%w: negative start %d", ErrOutOfBounds, start)
	}
	// Compared by subtraction so a huge start cannot wrap around.
	if count > len(vertices)-start {
		return fmt.Errorf("%w: %d vertices from %d exceed %d vertices", ErrOutOfBounds, count, start, len(vertices))
	}
	if count > len(normals)-start {
		return fmt.Errorf("%w: %d vertices from %d exceed %d normal slots", ErrOutOfBounds, count, start, len(normals))
	}
	if count == 0 {
		return nil
	}

	faces := make([]mgl64.Vec3, count/3)
	for k := range faces {
		i := start + 3*k
		n, ok := faceNormal(vertices[i], vertices[i+1], vertices[i+2])
		if !ok {
			if !o.useFallback {
				return fmt.Errorf("%w: triangle %d (vertices %d..%d)", ErrDegenerateGeometry, k, i, i+2)
			}
			n = o.fallback
		}
		faces[k] = n
	}

	for k, n := range faces {
		i := start + 3*k
		normals[i] = n
		normals[i+1] = n
		normals[i+2] = n
	}
	return nil
}

// FlatNormals allocates a normal buffer the size of vertices and fills it with
// MakeFlatNormals over the whole list.
func FlatNormals(vertices []mgl64.Vec4, opts ...NormalOption) ([]mgl64.Vec3, error) {
	normals := make([]mgl64.Vec3, len(vertices))
	if err := MakeFlatNormals(vertices, 0, len(vertices), normals, opts...); err != nil {
		return nil, err
	}
	return normals, nil
}

// faceNormal follows the counter-clockwise convention: edges p0->p1 and
// p1->p2 are normalized before the cross product.
func faceNormal(p0, p1, p2 mgl64.Vec4) (mgl64.Vec3, bool) {
	edge1, ok := unit(xyz(p1).Sub(xyz(p0)))
	if !ok {
		return mgl64.Vec3{}, false
	}
	edge2, ok := unit(xyz(p2).Sub(xyz(p1)))
	if !ok {
		return mgl64.Vec3{}, false
	}
	return unit(edge1.Cross(edge2))
}
