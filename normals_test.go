package glabs

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func almostEqualVec3(a, b mgl64.Vec3) bool {
	return almostEqual(a[0], b[0]) && almostEqual(a[1], b[1]) && almostEqual(a[2], b[2])
}

// sentinelNormals returns a buffer whose contents are easy to recognise as
// "never written".
func sentinelNormals(n int) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, n)
	for i := range out {
		out[i] = mgl64.Vec3{7, 7, 7}
	}
	return out
}

func TestMakeFlatNormalsOrientation(t *testing.T) {
	testCases := []struct {
		name     string
		tri      []mgl64.Vec4
		expected mgl64.Vec3
	}{
		{
			name:     "CCW seen from +Z",
			tri:      []mgl64.Vec4{Point(0, 0, 0), Point(1, 0, 0), Point(0, 1, 0)},
			expected: mgl64.Vec3{0, 0, 1},
		},
		{
			name:     "CW seen from +Z flips",
			tri:      []mgl64.Vec4{Point(0, 0, 0), Point(0, 1, 0), Point(1, 0, 0)},
			expected: mgl64.Vec3{0, 0, -1},
		},
		{
			name:     "Checkerboard tile faces up",
			tri:      []mgl64.Vec4{Point(0, 0, 0), Point(0, 0, 0.5), Point(0.5, 0, 0.5)},
			expected: mgl64.Vec3{0, 1, 0},
		},
		{
			name:     "W component ignored",
			tri:      []mgl64.Vec4{{0, 0, 0, 0}, {3, 0, 0, 9}, {0, 2, 0, -1}},
			expected: mgl64.Vec3{0, 0, 1},
		},
		{
			name:     "Large uneven edges",
			tri:      []mgl64.Vec4{Point(0, 0, 0), Point(1000, 0, 0), Point(0, 0.001, 0)},
			expected: mgl64.Vec3{0, 0, 1},
		},
		{
			name:     "Edges longer than float64 lengths reach",
			tri:      []mgl64.Vec4{Point(0, 0, 0), Point(1e200, 0, 0), Point(0, 1e200, 0)},
			expected: mgl64.Vec3{0, 0, 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			normals := make([]mgl64.Vec3, 3)
			if err := MakeFlatNormals(tc.tri, 0, 3, normals); err != nil {
				t.Fatalf("MakeFlatNormals() error = %v", err)
			}
			for i, n := range normals {
				if !almostEqualVec3(n, tc.expected) {
					t.Errorf("normals[%d] = %v, want %v", i, n, tc.expected)
				}
			}
		})
	}
}

func TestMakeFlatNormalsSolidCube(t *testing.T) {
	points, err := ExpandLookups(CubeVertices[:], SolidCubeLookups[:])
	if err != nil {
		t.Fatalf("ExpandLookups() error = %v", err)
	}
	normals := make([]mgl64.Vec3, len(points))
	if err := MakeFlatNormals(points, 0, len(points), normals); err != nil {
		t.Fatalf("MakeFlatNormals() error = %v", err)
	}

	// front, right, back, left, top, bottom; six vertices per face
	faces := []mgl64.Vec3{{0, 0, 1}, {1, 0, 0}, {0, 0, -1}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}}
	if len(normals) != 36 {
		t.Fatalf("len(normals) = %d, want 36", len(normals))
	}
	for i, n := range normals {
		if want := faces[i/6]; !almostEqualVec3(n, want) {
			t.Errorf("normals[%d] = %v, want %v", i, n, want)
		}
	}
}

func TestMakeFlatNormalsFlatAndUnit(t *testing.T) {
	shape, err := Sphere(1, 12, 8)
	if err != nil {
		t.Fatalf("Sphere() error = %v", err)
	}
	normals := make([]mgl64.Vec3, len(shape.Points))
	if err := MakeFlatNormals(shape.Points, 0, len(shape.Points), normals); err != nil {
		t.Fatalf("MakeFlatNormals() error = %v", err)
	}
	for k := 0; k < len(normals); k += 3 {
		if normals[k] != normals[k+1] || normals[k] != normals[k+2] {
			t.Errorf("triangle %d normals differ: %v %v %v", k/3, normals[k], normals[k+1], normals[k+2])
		}
		if !almostEqual(normals[k].Len(), 1) {
			t.Errorf("triangle %d normal length = %f, want 1", k/3, normals[k].Len())
		}
		// outward: the normal agrees with the direction from the centre
		centroid := xyz(shape.Points[k]).Add(xyz(shape.Points[k+1])).Add(xyz(shape.Points[k+2]))
		if normals[k].Dot(centroid) <= 0 {
			t.Errorf("triangle %d normal %v points inward", k/3, normals[k])
		}
	}
}

func TestMakeFlatNormalsSubRange(t *testing.T) {
	vertices := []mgl64.Vec4{
		Point(9, 9, 9), // not part of the range
		Point(0, 0, 0), Point(1, 0, 0), Point(0, 1, 0),
		Point(0, 0, 0), Point(0, 0, 1), Point(1, 0, 0),
		Point(5, 5, 5), // not part of the range
	}
	normals := sentinelNormals(len(vertices))

	if err := MakeFlatNormals(vertices, 1, 6, normals); err != nil {
		t.Fatalf("MakeFlatNormals() error = %v", err)
	}

	untouched := mgl64.Vec3{7, 7, 7}
	if normals[0] != untouched || normals[7] != untouched {
		t.Errorf("slots outside the range were written: %v, %v", normals[0], normals[7])
	}
	for i := 1; i <= 3; i++ {
		if !almostEqualVec3(normals[i], mgl64.Vec3{0, 0, 1}) {
			t.Errorf("normals[%d] = %v, want (0,0,1)", i, normals[i])
		}
	}
	for i := 4; i <= 6; i++ {
		if !almostEqualVec3(normals[i], mgl64.Vec3{0, 1, 0}) {
			t.Errorf("normals[%d] = %v, want (0,1,0)", i, normals[i])
		}
	}
}

func TestMakeFlatNormalsNoSmoothing(t *testing.T) {
	// Two triangles sharing the edge (1,0,0)-(0,1,0), wound in opposite senses
	// around that edge.
	vertices := []mgl64.Vec4{
		Point(0, 0, 0), Point(1, 0, 0), Point(0, 1, 0),
		Point(1, 0, 0), Point(0, 1, 0), Point(1, 1, 1),
	}
	normals := make([]mgl64.Vec3, 6)
	if err := MakeFlatNormals(vertices, 0, 6, normals); err != nil {
		t.Fatalf("MakeFlatNormals() error = %v", err)
	}

	first, second := normals[0], normals[3]
	if !almostEqualVec3(first, mgl64.Vec3{0, 0, 1}) {
		t.Errorf("first normal = %v, want (0,0,1)", first)
	}
	want := mgl64.Vec3{1, 1, -1}.Normalize()
	if !almostEqualVec3(second, want) {
		t.Errorf("second normal = %v, want %v", second, want)
	}
	if almostEqual(math.Abs(first.Dot(second)), 1) {
		t.Errorf("normals %v and %v are parallel; shared edge was averaged", first, second)
	}
	for i := 3; i < 6; i++ {
		if normals[i] != second {
			t.Errorf("normals[%d] = %v, want %v", i, normals[i], second)
		}
	}
}

func TestMakeFlatNormalsIdempotent(t *testing.T) {
	shape, err := Checkerboard(2, 0.5, White, Black)
	if err != nil {
		t.Fatalf("Checkerboard() error = %v", err)
	}
	a := make([]mgl64.Vec3, len(shape.Points))
	b := make([]mgl64.Vec3, len(shape.Points))
	if err := MakeFlatNormals(shape.Points, 0, len(shape.Points), a); err != nil {
		t.Fatalf("first call error = %v", err)
	}
	if err := MakeFlatNormals(shape.Points, 0, len(shape.Points), b); err != nil {
		t.Fatalf("second call error = %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("call results differ at %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestMakeFlatNormalsErrors(t *testing.T) {
	tri := []mgl64.Vec4{Point(0, 0, 0), Point(1, 0, 0), Point(0, 1, 0)}
	six := append(append([]mgl64.Vec4{}, tri...), tri...)

	testCases := []struct {
		name     string
		vertices []mgl64.Vec4
		start    int
		count    int
		slots    int
		want     error
	}{
		{"Count not a multiple of 3", six, 0, 4, 6, ErrInvalidArgument},
		{"Negative count", six, 0, -3, 6, ErrInvalidArgument},
		{"Negative start", six, -1, 3, 6, ErrOutOfBounds},
		{"Range past vertices", six, 3, 6, 9, ErrOutOfBounds},
		{"Range past normals", six, 0, 6, 5, ErrOutOfBounds},
		{"Start overflows", six, math.MaxInt - 1, 3, 6, ErrOutOfBounds},
		{"Start past end", six, 9, 0, 6, ErrOutOfBounds},
		{"Collinear points", []mgl64.Vec4{Point(0, 0, 0), Point(1, 0, 0), Point(2, 0, 0)}, 0, 3, 3, ErrDegenerateGeometry},
		{"Coincident points", []mgl64.Vec4{Point(1, 1, 1), Point(1, 1, 1), Point(0, 1, 0)}, 0, 3, 3, ErrDegenerateGeometry},
		{"NaN vertex", []mgl64.Vec4{Point(math.NaN(), 0, 0), Point(1, 0, 0), Point(0, 1, 0)}, 0, 3, 3, ErrDegenerateGeometry},
		{"Degenerate second triangle", append(append([]mgl64.Vec4{}, tri...), Point(0, 0, 0), Point(0, 0, 0), Point(0, 0, 0)), 0, 6, 6, ErrDegenerateGeometry},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			normals := sentinelNormals(tc.slots)
			err := MakeFlatNormals(tc.vertices, tc.start, tc.count, normals)
			if !errors.Is(err, tc.want) {
				t.Fatalf("MakeFlatNormals() error = %v, want %v", err, tc.want)
			}
			for i, n := range normals {
				if n != (mgl64.Vec3{7, 7, 7}) {
					t.Errorf("normals[%d] = %v was written by a failed call", i, n)
				}
			}
		})
	}
}

func TestMakeFlatNormalsZeroCount(t *testing.T) {
	normals := sentinelNormals(2)
	if err := MakeFlatNormals(nil, 0, 0, normals); err != nil {
		t.Fatalf("MakeFlatNormals() error = %v, want nil", err)
	}
	if err := MakeFlatNormals([]mgl64.Vec4{Point(0, 0, 0)}, 1, 0, normals); err != nil {
		t.Fatalf("MakeFlatNormals() at end of buffer error = %v, want nil", err)
	}
	for i, n := range normals {
		if n != (mgl64.Vec3{7, 7, 7}) {
			t.Errorf("normals[%d] = %v, want untouched", i, n)
		}
	}
}

func TestMakeFlatNormalsFallback(t *testing.T) {
	vertices := []mgl64.Vec4{
		Point(0, 0, 0), Point(1, 0, 0), Point(2, 0, 0), // collinear
		Point(0, 0, 0), Point(1, 0, 0), Point(0, 1, 0),
	}
	normals := make([]mgl64.Vec3, 6)
	fallback := mgl64.Vec3{0, 1, 0}

	if err := MakeFlatNormals(vertices, 0, 6, normals, WithDegenerateFallback(fallback)); err != nil {
		t.Fatalf("MakeFlatNormals() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		if normals[i] != fallback {
			t.Errorf("normals[%d] = %v, want fallback %v", i, normals[i], fallback)
		}
	}
	for i := 3; i < 6; i++ {
		if !almostEqualVec3(normals[i], mgl64.Vec3{0, 0, 1}) {
			t.Errorf("normals[%d] = %v, want (0,0,1)", i, normals[i])
		}
	}
	for i, n := range normals {
		if !isFinite3(n) {
			t.Errorf("normals[%d] = %v is not finite", i, n)
		}
	}
}

func TestMakeFlatNormalsRejectsNonFiniteFallback(t *testing.T) {
	vertices := []mgl64.Vec4{Point(0, 0, 0), Point(1, 0, 0), Point(0, 1, 0)}
	normals := sentinelNormals(3)

	err := MakeFlatNormals(vertices, 0, 3, normals, WithDegenerateFallback(mgl64.Vec3{math.NaN(), 0, 0}))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("MakeFlatNormals() error = %v, want ErrInvalidArgument", err)
	}
	for i, n := range normals {
		if n != (mgl64.Vec3{7, 7, 7}) {
			t.Errorf("normals[%d] = %v was written", i, n)
		}
	}
}

func TestFlatNormals(t *testing.T) {
	normals, err := FlatNormals([]mgl64.Vec4{Point(0, 0, 0), Point(1, 0, 0), Point(0, 1, 0)})
	if err != nil {
		t.Fatalf("FlatNormals() error = %v", err)
	}
	if len(normals) != 3 {
		t.Fatalf("len(normals) = %d, want 3", len(normals))
	}
	if !almostEqualVec3(normals[2], mgl64.Vec3{0, 0, 1}) {
		t.Errorf("normals[2] = %v, want (0,0,1)", normals[2])
	}

	if _, err := FlatNormals(make([]mgl64.Vec4, 4)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("FlatNormals(4 vertices) error = %v, want ErrInvalidArgument", err)
	}
}
