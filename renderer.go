package glabs

import "github.com/go-gl/mathgl/mgl64"

// Renderer is what a scene draws through. Geometry is uploaded once and
// drawn by range; the remaining calls set state for the draws that follow.
type Renderer interface {
	Upload(g *Geometry)
	Clear(c mgl64.Vec4)
	SetProjection(p mgl64.Mat4)
	SetModelView(mv mgl64.Mat4)
	SetLighting(on bool)
	SetLight(l Light)
	SetMaterial(m Material)
	// SetColor tints unlit vertex colours.
	SetColor(c mgl64.Vec4)
	SetCulling(on bool)
	// BindTexture selects the texture for following draws; nil unbinds.
	BindTexture(t *Texture)
	Draw(r DrawRange) error
	// Viewport is the drawing surface size in pixels.
	Viewport() (width, height int)
}

// Aspect is width over height of r's viewport, or 1 when it has no size yet.
func Aspect(r Renderer) float64 {
	w, h := r.Viewport()
	if w <= 0 || h <= 0 {
		return 1
	}
	return float64(w) / float64(h)
}
