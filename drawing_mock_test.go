package glabs

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// recordingSink is a polygonSink for tests; it keeps everything it is given.
type recordingSink struct {
	clears    []color.RGBA
	triangles [][3]screenVertex
	textures  []*Texture
	lines     [][2]screenVertex
	points    []screenVertex
	flushes   int
}

func (s *recordingSink) Clear(c color.RGBA) { s.clears = append(s.clears, c) }

func (s *recordingSink) FillTriangle(v [3]screenVertex, tex *Texture) {
	s.triangles = append(s.triangles, v)
	s.textures = append(s.textures, tex)
}

func (s *recordingSink) StrokeLine(a, b screenVertex, width float32) {
	s.lines = append(s.lines, [2]screenVertex{a, b})
}

func (s *recordingSink) FillPoint(v screenVertex, size float32) { s.points = append(s.points, v) }

func (s *recordingSink) Flush() { s.flushes++ }

// recordingRenderer is a Renderer that records calls instead of drawing.
type recordingRenderer struct {
	width, height int
	geom          *Geometry
	uploads       int
	clears        []mgl64.Vec4
	projection    mgl64.Mat4
	modelView     mgl64.Mat4
	lighting      bool
	light         Light
	material      Material
	color         mgl64.Vec4
	culling       bool
	texture       *Texture
	draws         []recordedDraw
}

type recordedDraw struct {
	Range     DrawRange
	ModelView mgl64.Mat4
	Color     mgl64.Vec4
	Material  Material
	Texture   *Texture
	Lighting  bool
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{width: 640, height: 480, projection: mgl64.Ident4(), modelView: mgl64.Ident4(), color: White}
}

func (r *recordingRenderer) Upload(g *Geometry)          { r.geom = g; r.uploads++ }
func (r *recordingRenderer) Clear(c mgl64.Vec4)          { r.clears = append(r.clears, c) }
func (r *recordingRenderer) SetProjection(p mgl64.Mat4)  { r.projection = p }
func (r *recordingRenderer) SetModelView(mv mgl64.Mat4)  { r.modelView = mv }
func (r *recordingRenderer) SetLighting(on bool)         { r.lighting = on }
func (r *recordingRenderer) SetLight(l Light)            { r.light = l }
func (r *recordingRenderer) SetMaterial(m Material)      { r.material = m }
func (r *recordingRenderer) SetColor(c mgl64.Vec4)       { r.color = c }
func (r *recordingRenderer) SetCulling(on bool)          { r.culling = on }
func (r *recordingRenderer) BindTexture(t *Texture)      { r.texture = t }
func (r *recordingRenderer) Viewport() (int, int)        { return r.width, r.height }

func (r *recordingRenderer) Draw(dr DrawRange) error {
	if r.geom == nil {
		return ErrNoGeometry
	}
	if !r.geom.contains(dr) {
		return ErrOutOfBounds
	}
	r.draws = append(r.draws, recordedDraw{
		Range:     dr,
		ModelView: r.modelView,
		Color:     r.color,
		Material:  r.material,
		Texture:   r.texture,
		Lighting:  r.lighting,
	})
	return nil
}

// drawn lists range names in draw order.
func (r *recordingRenderer) drawn() []string {
	out := make([]string, len(r.draws))
	for i, d := range r.draws {
		out[i] = d.Range.Name
	}
	return out
}
