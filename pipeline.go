package glabs

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// FrameStats counts what the last frame painted.
type FrameStats struct {
	Triangles int
	Lines     int
	Points    int
	Culled    int
	Clipped   int
}

// ScreenRenderer is a software vertex pipeline painting onto an ebiten image.
// Each frame is bracketed by Begin and End; draws in between are transformed,
// lit and clipped immediately, then painted far to near at End.
type ScreenRenderer struct {
	geom     *Geometry
	proj     mgl64.Mat4
	mv       mgl64.Mat4
	lighting bool
	light    Light
	material Material
	color    mgl64.Vec4
	culling  bool
	texture  *Texture

	lineWidth float32
	width     int
	height    int
	clear     color.RGBA

	store *FaceStore
	sink  polygonSink
	stats FrameStats
}

type RendererOption func(*ScreenRenderer)

// WithCulling starts the renderer with back-face culling on.
func WithCulling(on bool) RendererOption {
	return func(r *ScreenRenderer) { r.culling = on }
}

// WithLineWidth sets the stroke width of lines and the size of points.
func WithLineWidth(w float32) RendererOption {
	return func(r *ScreenRenderer) { r.lineWidth = w }
}

func NewScreenRenderer(width, height int, opts ...RendererOption) *ScreenRenderer {
	r := &ScreenRenderer{
		proj:      mgl64.Ident4(),
		mv:        mgl64.Ident4(),
		light:     DefaultLight(),
		material:  DefaultMaterial(),
		color:     White,
		lineWidth: 1,
		width:     width,
		height:    height,
		clear:     color.RGBA{A: 255},
		store:     NewFaceStore(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Begin starts a frame on screen, painting the clear colour over it.
func (r *ScreenRenderer) Begin(screen *ebiten.Image) {
	b := screen.Bounds()
	r.begin(newEbitenSink(screen), b.Dx(), b.Dy())
}

func (r *ScreenRenderer) begin(sink polygonSink, width, height int) {
	r.sink = sink
	r.width, r.height = width, height
	r.store.Reset()
	r.stats = FrameStats{}
	r.sink.Clear(r.clear)
}

// End paints the queued primitives and closes the frame.
func (r *ScreenRenderer) End() FrameStats {
	if r.sink == nil {
		return FrameStats{}
	}
	r.store.SortFacesByDistance()
	for _, f := range r.store.faces {
		switch f.kind {
		case faceTriangle:
			r.sink.FillTriangle(f.verts, f.texture)
		case faceLine:
			r.sink.StrokeLine(f.verts[0], f.verts[1], r.lineWidth)
		case facePoint:
			r.sink.FillPoint(f.verts[0], r.lineWidth*2)
		}
	}
	r.sink.Flush()
	r.store.Reset()
	r.sink = nil
	return r.stats
}

func (r *ScreenRenderer) Stats() FrameStats { return r.stats }

func (r *ScreenRenderer) Upload(g *Geometry) {
	r.geom = g
	if g != nil {
		Logger().Info("geometry uploaded", "vertices", g.Len(), "ranges", len(g.ranges))
	}
}

// Clear sets the background. Inside a frame it also discards what has been
// drawn so far.
func (r *ScreenRenderer) Clear(c mgl64.Vec4) {
	r.clear = ToRGBA(c)
	if r.sink != nil {
		r.store.Reset()
		r.sink.Clear(r.clear)
	}
}

func (r *ScreenRenderer) SetProjection(p mgl64.Mat4) { r.proj = p }
func (r *ScreenRenderer) SetModelView(mv mgl64.Mat4) { r.mv = mv }
func (r *ScreenRenderer) SetLighting(on bool)        { r.lighting = on }
func (r *ScreenRenderer) SetLight(l Light)           { r.light = l }
func (r *ScreenRenderer) SetMaterial(m Material)     { r.material = m }
func (r *ScreenRenderer) SetColor(c mgl64.Vec4)      { r.color = c }
func (r *ScreenRenderer) SetCulling(on bool)         { r.culling = on }
func (r *ScreenRenderer) BindTexture(t *Texture)     { r.texture = t }

func (r *ScreenRenderer) Viewport() (int, int) {
	return r.width, r.height
}

// Draw runs the vertices of dr through the pipeline and queues the resulting
// primitives.
func (r *ScreenRenderer) Draw(dr DrawRange) error {
	if r.geom == nil {
		return ErrNoGeometry
	}
	if !r.geom.contains(dr) {
		return fmt.Errorf("%w: range %q of %d from %d, geometry has %d vertices", ErrOutOfBounds, dr.Name, dr.Count, dr.Start, r.geom.Len())
	}
	if r.sink == nil {
		return ErrNoFrame
	}

	verts := r.processVertices(dr)
	switch dr.Primitive {
	case Triangles, TriangleFan, TriangleStrip:
		for _, tri := range assembleTriangles(dr.Primitive, len(verts)) {
			r.queueTriangle(verts[tri[0]], verts[tri[1]], verts[tri[2]])
		}
	case Lines, LineStrip, LineLoop:
		for _, seg := range assembleLines(dr.Primitive, len(verts)) {
			r.queueLine(verts[seg[0]], verts[seg[1]])
		}
	case Points:
		for _, v := range verts {
			r.queuePoint(v)
		}
	default:
		return fmt.Errorf("%w: primitive %v", ErrInvalidArgument, dr.Primitive)
	}
	return nil
}

// processVertices is the vertex stage: positions to clip space, colours lit
// or tinted. Lit vertices keep their vertex colour as a filter over the
// material, so uncoloured shapes (white) show the material alone.
func (r *ScreenRenderer) processVertices(dr DrawRange) []clipVertex {
	g := r.geom
	out := make([]clipVertex, dr.Count)

	var nm mgl64.Mat3
	if r.lighting {
		nm = NormalMatrix(r.mv)
	}
	for i := range out {
		k := dr.Start + i
		eye := r.mv.Mul4x1(g.vertices[k])

		var c mgl64.Vec4
		if r.lighting {
			pos := xyz(eye)
			if eye[3] != 0 && eye[3] != 1 {
				pos = pos.Mul(1 / eye[3])
			}
			c = mulColor(Shade(r.light, r.material, pos, nm.Mul3x1(g.normals[k])), g.colors[k])
		} else {
			c = mulColor(g.colors[k], r.color)
		}

		out[i] = clipVertex{pos: r.proj.Mul4x1(eye), color: c, uv: g.texCoords[k]}
	}
	return out
}

func (r *ScreenRenderer) queueTriangle(a, b, c clipVertex) {
	poly := clipDepth([]clipVertex{a, b, c})
	if len(poly) != 3 || poly[0] != a || poly[1] != b || poly[2] != c {
		r.stats.Clipped++
	}
	if len(poly) < 3 {
		return
	}

	sv := make([]screenVertex, len(poly))
	depth := make([]float64, len(poly))
	for i, cv := range poly {
		sv[i], depth[i] = toScreen(cv, r.width, r.height)
	}

	for i := 1; i+1 < len(poly); i++ {
		tri := [3]screenVertex{sv[0], sv[i], sv[i+1]}
		if r.culling && !frontFacing(tri) {
			r.stats.Culled++
			continue
		}
		r.store.add(queuedFace{
			kind:    faceTriangle,
			verts:   tri,
			depth:   (depth[0] + depth[i] + depth[i+1]) / 3,
			texture: r.texture,
		})
		r.stats.Triangles++
	}
}

func (r *ScreenRenderer) queueLine(a, b clipVertex) {
	a, b, ok := clipSegment(a, b)
	if !ok {
		r.stats.Clipped++
		return
	}
	sa, da := toScreen(a, r.width, r.height)
	sb, db := toScreen(b, r.width, r.height)
	r.store.add(queuedFace{kind: faceLine, verts: [3]screenVertex{sa, sb}, depth: (da + db) / 2})
	r.stats.Lines++
}

func (r *ScreenRenderer) queuePoint(v clipVertex) {
	if nearPlane(v.pos) < 0 || farPlane(v.pos) < 0 {
		r.stats.Clipped++
		return
	}
	sv, d := toScreen(v, r.width, r.height)
	r.store.add(queuedFace{kind: facePoint, verts: [3]screenVertex{sv}, depth: d})
	r.stats.Points++
}

// frontFacing reports counter-clockwise winding as seen on screen. Screen y
// grows downwards, which flips the sign of the area.
func frontFacing(t [3]screenVertex) bool {
	area := (t[1].X-t[0].X)*(t[2].Y-t[0].Y) - (t[2].X-t[0].X)*(t[1].Y-t[0].Y)
	return area < 0
}

// assembleTriangles lists vertex indices of the triangles a primitive forms.
// Strips alternate winding so every triangle keeps the first one's facing.
func assembleTriangles(p Primitive, n int) [][3]int {
	var out [][3]int
	switch p {
	case Triangles:
		for i := 0; i+2 < n; i += 3 {
			out = append(out, [3]int{i, i + 1, i + 2})
		}
	case TriangleFan:
		for i := 1; i+1 < n; i++ {
			out = append(out, [3]int{0, i, i + 1})
		}
	case TriangleStrip:
		for i := 0; i+2 < n; i++ {
			if i%2 == 0 {
				out = append(out, [3]int{i, i + 1, i + 2})
			} else {
				out = append(out, [3]int{i + 1, i, i + 2})
			}
		}
	}
	return out
}

func assembleLines(p Primitive, n int) [][2]int {
	var out [][2]int
	switch p {
	case Lines:
		for i := 0; i+1 < n; i += 2 {
			out = append(out, [2]int{i, i + 1})
		}
	case LineStrip, LineLoop:
		for i := 0; i+1 < n; i++ {
			out = append(out, [2]int{i, i + 1})
		}
		if p == LineLoop && n > 2 {
			out = append(out, [2]int{n - 1, 0})
		}
	}
	return out
}
