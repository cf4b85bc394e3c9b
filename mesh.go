package glabs

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// Primitive selects how a run of vertices is assembled when drawn.
type Primitive int

const (
	Triangles Primitive = iota
	TriangleFan
	TriangleStrip
	Lines
	LineStrip
	LineLoop
	Points
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "TRIANGLES"
	case TriangleFan:
		return "TRIANGLE_FAN"
	case TriangleStrip:
		return "TRIANGLE_STRIP"
	case Lines:
		return "LINES"
	case LineStrip:
		return "LINE_STRIP"
	case LineLoop:
		return "LINE_LOOP"
	case Points:
		return "POINTS"
	}
	return fmt.Sprintf("Primitive(%d)", int(p))
}

// IsTriangles reports whether p produces filled triangles.
func (p Primitive) IsTriangles() bool {
	return p == Triangles || p == TriangleFan || p == TriangleStrip
}

// Shape is the vertex data of one drawable part. Colors, Normals and TexCoords
// are optional; when set they must have one entry per point.
type Shape struct {
	Points    []mgl64.Vec4
	Colors    []mgl64.Vec4
	Normals   []mgl64.Vec3
	TexCoords []mgl64.Vec2
	Primitive Primitive
}

// DrawRange locates a shape inside a Geometry.
type DrawRange struct {
	Name      string
	Primitive Primitive
	Start     int
	Count     int
}

// MeshBuilder concatenates shapes into one set of parallel attribute arrays.
type MeshBuilder struct {
	vertices  []mgl64.Vec4
	normals   []mgl64.Vec3
	colors    []mgl64.Vec4
	texCoords []mgl64.Vec2
	ranges    []DrawRange
	index     map[string]int
}

func NewMeshBuilder() *MeshBuilder {
	return &MeshBuilder{index: make(map[string]int)}
}

// Add appends s under name and returns where it landed. Missing attributes are
// filled with white, a zero normal and a zero texture coordinate.
func (b *MeshBuilder) Add(name string, s Shape) (DrawRange, error) {
	if name == "" {
		return DrawRange{}, fmt.Errorf("%w: shape name is empty", ErrInvalidArgument)
	}
	if _, found := b.index[name]; found {
		return DrawRange{}, fmt.Errorf("%w: duplicate shape %q", ErrInvalidArgument, name)
	}
	n := len(s.Points)
	if err := checkAttr(name, "colors", len(s.Colors), n); err != nil {
		return DrawRange{}, err
	}
	if err := checkAttr(name, "normals", len(s.Normals), n); err != nil {
		return DrawRange{}, err
	}
	if err := checkAttr(name, "texcoords", len(s.TexCoords), n); err != nil {
		return DrawRange{}, err
	}

	r := DrawRange{Name: name, Primitive: s.Primitive, Start: len(b.vertices), Count: n}
	b.vertices = append(b.vertices, s.Points...)
	for i := 0; i < n; i++ {
		if s.Colors != nil {
			b.colors = append(b.colors, s.Colors[i])
		} else {
			b.colors = append(b.colors, White)
		}
		if s.Normals != nil {
			b.normals = append(b.normals, s.Normals[i])
		} else {
			b.normals = append(b.normals, mgl64.Vec3{})
		}
		if s.TexCoords != nil {
			b.texCoords = append(b.texCoords, s.TexCoords[i])
		} else {
			b.texCoords = append(b.texCoords, mgl64.Vec2{})
		}
	}

	b.index[name] = len(b.ranges)
	b.ranges = append(b.ranges, r)
	return r, nil
}

func checkAttr(shape, attr string, got, want int) error {
	if got != 0 && got != want {
		return fmt.Errorf("%w: shape %q has %d %s for %d points", ErrInvalidArgument, shape, got, attr, want)
	}
	return nil
}

// Build freezes the builder's contents into a Geometry. The builder may keep
// being used; the Geometry does not share memory with it.
func (b *MeshBuilder) Build() *Geometry {
	g := &Geometry{
		vertices:  slices.Clone(b.vertices),
		normals:   slices.Clone(b.normals),
		colors:    slices.Clone(b.colors),
		texCoords: slices.Clone(b.texCoords),
		ranges:    slices.Clone(b.ranges),
		index:     make(map[string]int, len(b.index)),
	}
	for k, v := range b.index {
		g.index[k] = v
	}
	return g
}

// Geometry is an immutable bundle of vertex attributes and the named ranges
// that draw them. It is built once at setup and handed to a Renderer.
type Geometry struct {
	vertices  []mgl64.Vec4
	normals   []mgl64.Vec3
	colors    []mgl64.Vec4
	texCoords []mgl64.Vec2
	ranges    []DrawRange
	index     map[string]int
}

// Len is the number of vertices.
func (g *Geometry) Len() int {
	return len(g.vertices)
}

func (g *Geometry) Range(name string) (DrawRange, bool) {
	i, ok := g.index[name]
	if !ok {
		return DrawRange{}, false
	}
	return g.ranges[i], true
}

// MustRange is Range for names known at compile time.
func (g *Geometry) MustRange(name string) DrawRange {
	r, ok := g.Range(name)
	if !ok {
		panic(fmt.Sprintf("glabs: geometry has no shape %q", name))
	}
	return r
}

// Ranges returns the draw ranges in insertion order.
func (g *Geometry) Ranges() []DrawRange {
	return slices.Clone(g.ranges)
}

func (g *Geometry) Vertices() []mgl64.Vec4  { return slices.Clone(g.vertices) }
func (g *Geometry) Normals() []mgl64.Vec3   { return slices.Clone(g.normals) }
func (g *Geometry) Colors() []mgl64.Vec4    { return slices.Clone(g.colors) }
func (g *Geometry) TexCoords() []mgl64.Vec2 { return slices.Clone(g.texCoords) }

// contains reports whether r addresses vertices of g.
func (g *Geometry) contains(r DrawRange) bool {
	return r.Start >= 0 && r.Count >= 0 && r.Count <= len(g.vertices)-r.Start
}

// Bounds returns the axis-aligned box around all vertices. An empty geometry
// has a zero box.
func (g *Geometry) Bounds() r3.Box {
	if len(g.vertices) == 0 {
		return r3.Box{}
	}
	first := g.vertices[0]
	box := r3.Box{
		Min: r3.Vec{X: first[0], Y: first[1], Z: first[2]},
		Max: r3.Vec{X: first[0], Y: first[1], Z: first[2]},
	}
	for _, v := range g.vertices[1:] {
		box.Min.X = min(box.Min.X, v[0])
		box.Min.Y = min(box.Min.Y, v[1])
		box.Min.Z = min(box.Min.Z, v[2])
		box.Max.X = max(box.Max.X, v[0])
		box.Max.Y = max(box.Max.Y, v[1])
		box.Max.Z = max(box.Max.Z, v[2])
	}
	return box
}

// FlattenVertices packs positions as x,y,z,w float32s, the layout uploaded to
// a vertex buffer.
func (g *Geometry) FlattenVertices() []float32 {
	out := make([]float32, 0, 4*len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3]))
	}
	return out
}

func (g *Geometry) FlattenNormals() []float32 {
	out := make([]float32, 0, 3*len(g.normals))
	for _, n := range g.normals {
		out = append(out, float32(n[0]), float32(n[1]), float32(n[2]))
	}
	return out
}

func (g *Geometry) FlattenColors() []float32 {
	out := make([]float32, 0, 4*len(g.colors))
	for _, c := range g.colors {
		out = append(out, float32(c[0]), float32(c[1]), float32(c[2]), float32(c[3]))
	}
	return out
}

func (g *Geometry) FlattenTexCoords() []float32 {
	out := make([]float32, 0, 2*len(g.texCoords))
	for _, t := range g.texCoords {
		out = append(out, float32(t[0]), float32(t[1]))
	}
	return out
}

// ExpandLookups turns an index table into a flat vertex list, e.g. the 8 cube
// corners and 36 solid-cube indices into 36 triangle-list vertices.
func ExpandLookups(table []mgl64.Vec4, lookups []int) ([]mgl64.Vec4, error) {
	out := make([]mgl64.Vec4, len(lookups))
	for i, idx := range lookups {
		if idx < 0 || idx >= len(table) {
			return nil, fmt.Errorf("%w: lookup %d is index %d, table has %d entries", ErrOutOfBounds, i, idx, len(table))
		}
		out[i] = table[idx]
	}
	return out, nil
}
