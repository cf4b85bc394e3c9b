package glabs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// stlHeader is the binary STL file header.
type stlHeader struct {
	_     [80]uint8
	Count uint32
}

// stlTriangle is one 50 byte binary STL record.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16
}

// WriteSTL writes the triangles of the given ranges of g as binary STL. With
// no ranges every range is written. Fans and strips are split into triangles;
// line and point ranges are skipped. Each facet keeps the normal its three
// vertices share; otherwise its face normal is computed, zero when degenerate.
func WriteSTL(w io.Writer, g *Geometry, ranges ...DrawRange) error {
	if g == nil {
		return ErrNoGeometry
	}
	if len(ranges) == 0 {
		ranges = g.ranges
	}

	var facets []stlTriangle
	for _, dr := range ranges {
		if !g.contains(dr) {
			return fmt.Errorf("%w: range %q", ErrOutOfBounds, dr.Name)
		}
		for _, tri := range assembleTriangles(dr.Primitive, dr.Count) {
			facets = append(facets, g.stlFacet(dr.Start+tri[0], dr.Start+tri[1], dr.Start+tri[2]))
		}
	}
	if len(facets) == 0 {
		return fmt.Errorf("%w: no triangles to write", ErrInvalidArgument)
	}

	if err := binary.Write(w, binary.LittleEndian, &stlHeader{Count: uint32(len(facets))}); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, facets)
}

// CreateSTL writes the triangles of g to a new file at path.
func CreateSTL(path string, g *Geometry, ranges ...DrawRange) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSTL(f, g, ranges...); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	Logger().Info("stl written", "path", path)
	return f.Close()
}

func (g *Geometry) stlFacet(a, b, c int) stlTriangle {
	p := [3]r3.Vec{stlVec(g.vertices[a]), stlVec(g.vertices[b]), stlVec(g.vertices[c])}

	// Only a normal shared by all three corners is a facet normal; smooth
	// shapes store per-vertex normals that must not end up on the facet.
	n := g.normals[a]
	if n == (mgl64.Vec3{}) || n != g.normals[b] || n != g.normals[c] {
		n, _ = faceNormal(
			Point(p[0].X, p[0].Y, p[0].Z),
			Point(p[1].X, p[1].Y, p[1].Z),
			Point(p[2].X, p[2].Y, p[2].Z),
		)
	}

	return stlTriangle{
		Normal:  [3]float32{float32(n[0]), float32(n[1]), float32(n[2])},
		Vertex1: float3(p[0]),
		Vertex2: float3(p[1]),
		Vertex3: float3(p[2]),
	}
}

// stlVec drops the homogeneous coordinate, dividing it out for points that
// carry one.
func stlVec(v mgl64.Vec4) r3.Vec {
	p := xyz(v)
	if v[3] != 0 && v[3] != 1 {
		p = p.Mul(1 / v[3])
	}
	return r3.Vec{X: p[0], Y: p[1], Z: p[2]}
}

func float3(v r3.Vec) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
