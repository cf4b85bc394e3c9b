package glabs

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// polygonSink receives a frame's primitives in painting order.
type polygonSink interface {
	Clear(c color.RGBA)
	FillTriangle(v [3]screenVertex, tex *Texture)
	StrokeLine(a, b screenVertex, width float32)
	FillPoint(v screenVertex, size float32)
	Flush()
}

// Index buffers are uint16.
const maxBatchVertices = 1<<16 - 1

// ebitenSink batches consecutive triangles that share a source image into
// one DrawTriangles call.
type ebitenSink struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	tex      *Texture
}

func newEbitenSink(dst *ebiten.Image) *ebitenSink {
	return &ebitenSink{
		dst:      dst,
		vertices: make([]ebiten.Vertex, 0, 1024),
		indices:  make([]uint16, 0, 1024),
	}
}

func (s *ebitenSink) Clear(c color.RGBA) {
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	s.dst.Fill(c)
}

func (s *ebitenSink) FillTriangle(v [3]screenVertex, tex *Texture) {
	if tex != s.tex || len(s.vertices)+3 > maxBatchVertices {
		s.Flush()
		s.tex = tex
	}

	base := uint16(len(s.vertices))
	for _, sv := range v {
		vx := ebiten.Vertex{
			DstX:   sv.X,
			DstY:   sv.Y,
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(clamp01(sv.Color[0])),
			ColorG: float32(clamp01(sv.Color[1])),
			ColorB: float32(clamp01(sv.Color[2])),
			ColorA: float32(clamp01(sv.Color[3])),
		}
		if tex != nil {
			w, h := tex.Size()
			vx.SrcX = sv.U * float32(w)
			vx.SrcY = (1 - sv.V) * float32(h)
		}
		s.vertices = append(s.vertices, vx)
	}
	s.indices = append(s.indices, base, base+1, base+2)
}

func (s *ebitenSink) StrokeLine(a, b screenVertex, width float32) {
	s.Flush()
	c := a.Color.Add(b.Color).Mul(0.5)
	vector.StrokeLine(s.dst, a.X, a.Y, b.X, b.Y, width, ToRGBA(c), false)
}

func (s *ebitenSink) FillPoint(v screenVertex, size float32) {
	s.Flush()
	vector.DrawFilledRect(s.dst, v.X-size/2, v.Y-size/2, size, size, ToRGBA(v.Color), false)
}

func (s *ebitenSink) Flush() {
	if len(s.indices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	src := whiteSub
	if s.tex != nil {
		src = s.tex.img
		op.Filter = s.tex.filter
		op.Address = s.tex.address
	}
	s.dst.DrawTriangles(s.vertices, s.indices, src, op)
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
}

// toScreen maps a clip-space vertex to pixels, y down.
func toScreen(cv clipVertex, width, height int) (screenVertex, float64) {
	invW := 1 / cv.pos[3]
	ndc := mgl64.Vec3{cv.pos[0] * invW, cv.pos[1] * invW, cv.pos[2] * invW}
	return screenVertex{
		X:     float32((ndc[0] + 1) / 2 * float64(width)),
		Y:     float32((1 - ndc[1]) / 2 * float64(height)),
		U:     float32(cv.uv[0]),
		V:     float32(cv.uv[1]),
		Color: cv.color,
	}, ndc[2]
}
