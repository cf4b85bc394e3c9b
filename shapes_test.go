package glabs

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSolidCube(t *testing.T) {
	palette := []mgl64.Vec4{LightBlue, LightGreen, LightRed, Blue, Red, Green}
	s, err := SolidCube(palette...)
	if err != nil {
		t.Fatalf("SolidCube() error = %v", err)
	}
	if len(s.Points) != 36 || len(s.Normals) != 36 || len(s.Colors) != 36 {
		t.Fatalf("attribute lengths = %d/%d/%d, want 36", len(s.Points), len(s.Normals), len(s.Colors))
	}
	if s.Primitive != Triangles {
		t.Errorf("Primitive = %v, want TRIANGLES", s.Primitive)
	}
	for i, c := range s.Colors {
		if c != palette[i/6] {
			t.Errorf("vertex %d colour = %v, want %v", i, c, palette[i/6])
		}
	}

	plain, err := SolidCube()
	if err != nil {
		t.Fatalf("SolidCube() error = %v", err)
	}
	if plain.Colors != nil {
		t.Errorf("uncoloured cube has %d colours", len(plain.Colors))
	}
}

func TestTexturedCube(t *testing.T) {
	s, err := TexturedCube(3)
	if err != nil {
		t.Fatalf("TexturedCube() error = %v", err)
	}
	if len(s.TexCoords) != 36 {
		t.Fatalf("len(TexCoords) = %d, want 36", len(s.TexCoords))
	}
	want := []mgl64.Vec2{{3, 3}, {0, 3}, {0, 0}, {3, 3}, {0, 0}, {3, 0}}
	for i, tc := range s.TexCoords {
		if tc != want[i%6] {
			t.Errorf("texcoord %d = %v, want %v", i, tc, want[i%6])
		}
	}
}

func TestWireCubeAndAxes(t *testing.T) {
	w := WireCube(White)
	if len(w.Points) != 30 || w.Primitive != LineStrip {
		t.Errorf("wire cube has %d points as %v", len(w.Points), w.Primitive)
	}
	for _, p := range w.Points {
		for i := 0; i < 3; i++ {
			if math.Abs(p[i]) != 0.5 {
				t.Fatalf("wire cube point %v is not a corner", p)
			}
		}
	}

	a := Axes(2)
	if len(a.Points) != 6 || a.Primitive != Lines {
		t.Fatalf("axes have %d points as %v", len(a.Points), a.Primitive)
	}
	if a.Points[0] != Point(2, 0, 0) || a.Colors[0] != Green {
		t.Errorf("x axis = %v %v, want green from (2,0,0)", a.Points[0], a.Colors[0])
	}
}

func TestFan(t *testing.T) {
	rim := func(theta float64) mgl64.Vec4 { return mgl64.Vec4{0.175 * theta, 0, 0, 1} }
	s, err := Circle(0.6, 0.75, 0.2, 36, Black, rim)
	if err != nil {
		t.Fatalf("Circle() error = %v", err)
	}
	if len(s.Points) != 38 || s.Primitive != TriangleFan {
		t.Fatalf("circle has %d points as %v, want 38 as TRIANGLE_FAN", len(s.Points), s.Primitive)
	}
	if s.Points[0] != Point(0.6, 0.75, 0) || s.Colors[0] != Black {
		t.Errorf("centre = %v %v", s.Points[0], s.Colors[0])
	}
	first, last := s.Points[1], s.Points[len(s.Points)-1]
	for i := 0; i < 3; i++ {
		if !almostEqual(first[i], last[i]) {
			t.Fatalf("fan is not closed: first %v last %v", first, last)
		}
	}
	if !almostEqual(s.Colors[len(s.Colors)-1][0], 0.175*2*math.Pi) {
		t.Errorf("last rim colour = %v", s.Colors[len(s.Colors)-1])
	}

	e, err := Fan(-0.6, 0.75, 0.2, 0.12, 36, Red, nil)
	if err != nil {
		t.Fatalf("Fan() error = %v", err)
	}
	top := e.Points[10] // theta = 90 degrees
	if !almostEqual(top[1], 0.75+0.12) || e.Colors[10] != Red {
		t.Errorf("ellipse top = %v %v", top, e.Colors[10])
	}

	if _, err := Fan(0, 0, 1, 1, 2, Red, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Fan(segments=2) error = %v, want ErrInvalidArgument", err)
	}
}

func TestNestedSquares(t *testing.T) {
	squares, err := NestedSquares(-0.6, -0.8, 0.6, 0.4, 0.1, 6, White, Black)
	if err != nil {
		t.Fatalf("NestedSquares() error = %v", err)
	}
	if len(squares) != 6 {
		t.Fatalf("got %d squares, want 6", len(squares))
	}
	innermost := squares[5]
	if !almostEqual(innermost.Points[0][0], -0.1) || !almostEqual(innermost.Points[0][1], -0.3) {
		t.Errorf("innermost corner = %v, want (-0.1,-0.3)", innermost.Points[0])
	}
	if innermost.Colors[0] != Black || squares[4].Colors[0] != White {
		t.Errorf("colours do not alternate")
	}

	if _, err := NestedSquares(-0.6, -0.8, 0.6, 0.4, 0.1, 7, White); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("collapsing squares error = %v, want ErrInvalidArgument", err)
	}
}

func TestQuad2D(t *testing.T) {
	s := ScreenQuad()
	want := []mgl64.Vec4{Point(1, 1, 0), Point(-1, 1, 0), Point(1, -1, 0), Point(1, -1, 0), Point(-1, 1, 0), Point(-1, -1, 0)}
	for i, p := range s.Points {
		if p != want[i] {
			t.Errorf("point %d = %v, want %v", i, p, want[i])
		}
	}
	if _, err := FlatNormals(s.Points); err != nil {
		t.Errorf("screen quad triangles are degenerate: %v", err)
	}
}

func TestCheckerboard(t *testing.T) {
	s, err := Checkerboard(10, 0.5, White, Black)
	if err != nil {
		t.Fatalf("Checkerboard() error = %v", err)
	}
	if len(s.Points) != 21*21*6 {
		t.Fatalf("got %d points, want %d", len(s.Points), 21*21*6)
	}
	for i, n := range s.Normals {
		if !almostEqualVec3(n, mgl64.Vec3{0, 1, 0}) {
			t.Fatalf("normal %d = %v, want +Y", i, n)
		}
	}
	if s.Colors[0] != Black || s.Colors[6] != White {
		t.Errorf("first tiles = %v, %v; want Black then White", s.Colors[0], s.Colors[6])
	}
	if s.Points[0] != Point(-5, 0, -5) {
		t.Errorf("first corner = %v, want (-5,0,-5)", s.Points[0])
	}

	if _, err := Checkerboard(-1, 0.5, White, Black); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Checkerboard(-1) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := Checkerboard(1, 0, White, Black); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Checkerboard(delta 0) error = %v, want ErrInvalidArgument", err)
	}
}

func TestSphere(t *testing.T) {
	s, err := Sphere(2, 12, 8)
	if err != nil {
		t.Fatalf("Sphere() error = %v", err)
	}
	// two pole caps of one triangle per slice, two per slice in between
	want := 3 * (2*12 + 2*12*(8-2))
	if len(s.Points) != want || len(s.Normals) != want {
		t.Fatalf("got %d points, want %d", len(s.Points), want)
	}
	for i, p := range s.Points {
		if !almostEqual(xyz(p).Len(), 2) {
			t.Fatalf("point %d at radius %v, want 2", i, xyz(p).Len())
		}
		if !almostEqualVec3(s.Normals[i], xyz(p).Mul(0.5)) {
			t.Fatalf("normal %d = %v, want radial", i, s.Normals[i])
		}
	}

	testCases := []struct {
		name           string
		radius         float64
		slices, stacks int
	}{
		{"too few slices", 1, 2, 8},
		{"too few stacks", 1, 12, 1},
		{"zero radius", 0, 12, 8},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Sphere(tc.radius, tc.slices, tc.stacks); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestSwizzleFanAndTriangle(t *testing.T) {
	f := SwizzleFan()
	if len(f.Points) != 6 || len(f.Colors) != 6 || f.Primitive != TriangleFan {
		t.Errorf("swizzle fan = %d points, %d colours, %v", len(f.Points), len(f.Colors), f.Primitive)
	}
	tri := Triangle2D()
	if tri.Colors[0] != Green || tri.Colors[1] != Blue || tri.Colors[2] != Red {
		t.Errorf("triangle colours = %v", tri.Colors)
	}
}
