package glabs

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CubeVertices are the corners of a unit cube centred on the origin.
var CubeVertices = [8]mgl64.Vec4{
	{0.5, 0.5, 0.5, 1},    // 0
	{0.5, 0.5, -0.5, 1},   // 1
	{0.5, -0.5, 0.5, 1},   // 2
	{0.5, -0.5, -0.5, 1},  // 3
	{-0.5, 0.5, 0.5, 1},   // 4
	{-0.5, 0.5, -0.5, 1},  // 5
	{-0.5, -0.5, 0.5, 1},  // 6
	{-0.5, -0.5, -0.5, 1}, // 7
}

// SolidCubeLookups index CubeVertices as a counter-clockwise triangle list,
// two triangles per face: front, right, back, left, top, bottom.
var SolidCubeLookups = [36]int{
	0, 4, 6, 0, 6, 2,
	1, 0, 2, 1, 2, 3,
	5, 1, 3, 5, 3, 7,
	4, 5, 7, 4, 7, 6,
	4, 0, 1, 4, 1, 5,
	6, 7, 3, 6, 3, 2,
}

// WireCubeLookups index CubeVertices as a line strip outlining each face.
var WireCubeLookups = [30]int{
	0, 4, 6, 2, 0,
	1, 0, 2, 3, 1,
	5, 1, 3, 7, 5,
	4, 5, 7, 6, 4,
	4, 0, 1, 5, 4,
	6, 7, 3, 2, 6,
}

// expandStatic expands one of the package's own tables, which are always valid.
func expandStatic(lookups []int) []mgl64.Vec4 {
	points, err := ExpandLookups(CubeVertices[:], lookups)
	if err != nil {
		panic(err)
	}
	return points
}

// CubeTexCoords returns texture coordinates for the solid cube, the same on
// every face. repeat > 1 tiles the texture across a face.
func CubeTexCoords(repeat float64) []mgl64.Vec2 {
	face := []mgl64.Vec2{
		{repeat, repeat}, {0, repeat}, {0, 0},
		{repeat, repeat}, {0, 0}, {repeat, 0},
	}
	out := make([]mgl64.Vec2, 0, 36)
	for i := 0; i < 6; i++ {
		out = append(out, face...)
	}
	return out
}

// SolidCube builds the cube as triangles with flat normals. Faces take their
// colour from faceColors in order, cycling when fewer than six are given; with
// none the shape carries no colours.
func SolidCube(faceColors ...mgl64.Vec4) (Shape, error) {
	points := expandStatic(SolidCubeLookups[:])
	normals := make([]mgl64.Vec3, len(points))
	if err := MakeFlatNormals(points, 0, len(points), normals); err != nil {
		return Shape{}, fmt.Errorf("solid cube normals: %w", err)
	}
	s := Shape{Points: points, Normals: normals, Primitive: Triangles}
	if len(faceColors) > 0 {
		s.Colors = make([]mgl64.Vec4, len(points))
		for i := range points {
			s.Colors[i] = faceColors[(i/6)%len(faceColors)]
		}
	}
	return s, nil
}

// TexturedCube is a white solid cube with tiled texture coordinates.
func TexturedCube(repeat float64) (Shape, error) {
	s, err := SolidCube()
	if err != nil {
		return Shape{}, err
	}
	s.TexCoords = CubeTexCoords(repeat)
	return s, nil
}

// WireCube outlines the unit cube as a line strip.
func WireCube(c mgl64.Vec4) Shape {
	points := expandStatic(WireCubeLookups[:])
	return Shape{Points: points, Colors: solid(c, len(points)), Primitive: LineStrip}
}

// Axes draws the three axes as lines of the given half length: x green,
// y red, z blue.
func Axes(length float64) Shape {
	return Shape{
		Points: []mgl64.Vec4{
			Point(length, 0, 0), Point(-length, 0, 0),
			Point(0, length, 0), Point(0, -length, 0),
			Point(0, 0, length), Point(0, 0, -length),
		},
		Colors:    []mgl64.Vec4{Green, Green, Red, Red, Blue, Blue},
		Primitive: Lines,
	}
}

// Fan builds an ellipse in the z = 0 plane as a triangle fan: the centre then
// segments+1 rim points, the last repeating the first so the fan closes.
// rim, if non-nil, colours the rim point at angle theta.
func Fan(cx, cy, rx, ry float64, segments int, center mgl64.Vec4, rim func(theta float64) mgl64.Vec4) (Shape, error) {
	if segments < 3 {
		return Shape{}, fmt.Errorf("%w: fan needs at least 3 segments, got %d", ErrInvalidArgument, segments)
	}
	s := Shape{
		Points:    make([]mgl64.Vec4, 0, segments+2),
		Colors:    make([]mgl64.Vec4, 0, segments+2),
		Primitive: TriangleFan,
	}
	s.Points = append(s.Points, Point(cx, cy, 0))
	s.Colors = append(s.Colors, center)
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		s.Points = append(s.Points, Point(cx+rx*math.Cos(theta), cy+ry*math.Sin(theta), 0))
		if rim != nil {
			s.Colors = append(s.Colors, rim(theta))
		} else {
			s.Colors = append(s.Colors, center)
		}
	}
	return s, nil
}

func Circle(cx, cy, radius float64, segments int, center mgl64.Vec4, rim func(theta float64) mgl64.Vec4) (Shape, error) {
	return Fan(cx, cy, radius, radius, segments, center, rim)
}

// Rect is an axis-aligned rectangle drawn as a four vertex fan.
func Rect(x0, y0, x1, y1 float64, c mgl64.Vec4) Shape {
	return Shape{
		Points:    []mgl64.Vec4{Point(x0, y0, 0), Point(x0, y1, 0), Point(x1, y1, 0), Point(x1, y0, 0)},
		Colors:    solid(c, 4),
		Primitive: TriangleFan,
	}
}

// NestedSquares returns n rectangles, each inset by step from the previous,
// alternating through colors.
func NestedSquares(x0, y0, x1, y1, step float64, n int, colors ...mgl64.Vec4) ([]Shape, error) {
	if n < 0 || len(colors) == 0 {
		return nil, fmt.Errorf("%w: nested squares need n >= 0 and a colour", ErrInvalidArgument)
	}
	out := make([]Shape, 0, n)
	for i := 0; i < n; i++ {
		d := step * float64(i)
		if x0+d >= x1-d || y0+d >= y1-d {
			return nil, fmt.Errorf("%w: square %d collapses with step %g", ErrInvalidArgument, i, step)
		}
		out = append(out, Rect(x0+d, y0+d, x1-d, y1-d, colors[i%len(colors)]))
	}
	return out, nil
}

// Quad2D splits a quad into the two triangles p1,p2,p4 and p4,p2,p3.
func Quad2D(p1, p2, p3, p4 mgl64.Vec4) Shape {
	return Shape{Points: []mgl64.Vec4{p1, p2, p4, p4, p2, p3}, Primitive: Triangles}
}

// ScreenQuad covers normalized device coordinates.
func ScreenQuad() Shape {
	return Quad2D(Point(1, 1, 0), Point(-1, 1, 0), Point(-1, -1, 0), Point(1, -1, 0))
}

// Checkerboard lays (2n+1)^2 tiles of size delta in the y = 0 plane, centred
// near the origin and facing +Y. Tiles alternate c1 and c2 in row-major order.
func Checkerboard(n int, delta float64, c1, c2 mgl64.Vec4) (Shape, error) {
	if n < 0 || !(delta > 0) {
		return Shape{}, fmt.Errorf("%w: checkerboard needs n >= 0 and delta > 0", ErrInvalidArgument)
	}
	side := 2*n + 1
	s := Shape{
		Points:    make([]mgl64.Vec4, 0, side*side*6),
		Colors:    make([]mgl64.Vec4, 0, side*side*6),
		Primitive: Triangles,
	}
	tile := 0
	origin := -float64(n) * delta
	for ix := 0; ix < side; ix++ {
		x := origin + float64(ix)*delta
		for iz := 0; iz < side; iz++ {
			z := origin + float64(iz)*delta
			v1 := Point(x, 0, z)
			v2 := Point(x, 0, z+delta)
			v3 := Point(x+delta, 0, z+delta)
			v4 := Point(x+delta, 0, z)
			s.Points = append(s.Points, v1, v2, v3, v1, v3, v4)

			c := c2
			if tile%2 == 1 {
				c = c1
			}
			s.Colors = append(s.Colors, c, c, c, c, c, c)
			tile++
		}
	}
	normals := make([]mgl64.Vec3, len(s.Points))
	if err := MakeFlatNormals(s.Points, 0, len(s.Points), normals); err != nil {
		return Shape{}, fmt.Errorf("checkerboard normals: %w", err)
	}
	s.Normals = normals
	return s, nil
}

// Sphere tessellates a sphere as a counter-clockwise triangle list with smooth
// per-vertex normals. The poles are single triangles so no face is degenerate.
func Sphere(radius float64, slices, stacks int) (Shape, error) {
	if slices < 3 || stacks < 2 || !(radius > 0) {
		return Shape{}, fmt.Errorf("%w: sphere needs radius > 0, slices >= 3, stacks >= 2", ErrInvalidArgument)
	}
	at := func(i, j int) mgl64.Vec3 {
		phi := math.Pi * float64(i) / float64(stacks)
		theta := 2 * math.Pi * float64(j) / float64(slices)
		return mgl64.Vec3{
			math.Sin(phi) * math.Sin(theta),
			math.Cos(phi),
			math.Sin(phi) * math.Cos(theta),
		}
	}

	s := Shape{Primitive: Triangles}
	emit := func(dirs ...mgl64.Vec3) {
		for _, d := range dirs {
			s.Points = append(s.Points, d.Mul(radius).Vec4(1))
			s.Normals = append(s.Normals, d)
		}
	}
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a, b, c, d := at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1)
			switch {
			case i == 0:
				emit(a, b, c)
			case i == stacks-1:
				emit(a, c, d)
			default:
				emit(a, b, c, a, c, d)
			}
		}
	}
	return s, nil
}

// Triangle2D is the green/blue/red roof triangle from the 2D shapes lab.
func Triangle2D() Shape {
	return Shape{
		Points:    []mgl64.Vec4{Point(-0.25, 0.6, 0), Point(0.25, 0.6, 0), Point(0, 1, 0)},
		Colors:    []mgl64.Vec4{Green, Blue, Red},
		Primitive: Triangles,
	}
}

// SwizzleFan is a six vertex fan with a distinct colour per vertex.
func SwizzleFan() Shape {
	return Shape{
		Points: []mgl64.Vec4{
			Point(0, 0, 0), Point(1, 0, 0), Point(0, 1, 0),
			Point(-1, 0, 0), Point(0, -1, 0), Point(1, 0, 0),
		},
		Colors:    []mgl64.Vec4{Red, Green, Blue, Yellow, Cyan, Magenta},
		Primitive: TriangleFan,
	}
}

func solid(c mgl64.Vec4, n int) []mgl64.Vec4 {
	out := make([]mgl64.Vec4, n)
	for i := range out {
		out[i] = c
	}
	return out
}
