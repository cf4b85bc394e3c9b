package glabs

import "github.com/go-gl/mathgl/mgl64"

// clipVertex carries a clip-space position and the attributes interpolated
// along with it.
type clipVertex struct {
	pos   mgl64.Vec4
	color mgl64.Vec4
	uv    mgl64.Vec2
}

func lerpClip(a, b clipVertex, t float64) clipVertex {
	return clipVertex{
		pos:   a.pos.Add(b.pos.Sub(a.pos).Mul(t)),
		color: a.color.Add(b.color.Sub(a.color).Mul(t)),
		uv:    a.uv.Add(b.uv.Sub(a.uv).Mul(t)),
	}
}

// clipPlane returns the signed distance of a clip-space point from a plane;
// the visible side is >= 0.
type clipPlane func(p mgl64.Vec4) float64

var (
	nearPlane clipPlane = func(p mgl64.Vec4) float64 { return p[2] + p[3] }
	farPlane  clipPlane = func(p mgl64.Vec4) float64 { return p[3] - p[2] }
)

// clipPolygon cuts a convex polygon against one plane (Sutherland-Hodgman).
// The result is empty when the polygon lies wholly behind the plane.
func clipPolygon(in []clipVertex, plane clipPlane) []clipVertex {
	if len(in) == 0 {
		return nil
	}
	out := make([]clipVertex, 0, len(in)+1)
	prev := in[len(in)-1]
	prevD := plane(prev.pos)
	for _, cur := range in {
		curD := plane(cur.pos)
		if curD >= 0 {
			if prevD < 0 {
				out = append(out, lerpClip(prev, cur, prevD/(prevD-curD)))
			}
			out = append(out, cur)
		} else if prevD >= 0 {
			out = append(out, lerpClip(prev, cur, prevD/(prevD-curD)))
		}
		prev, prevD = cur, curD
	}
	return out
}

// clipDepth clips against the near and far planes, the two that matter for
// avoiding division by w <= 0 and for painter's ordering. Triangles reaching
// past the sides of the view are left to the rasterizer.
func clipDepth(in []clipVertex) []clipVertex {
	return clipPolygon(clipPolygon(in, nearPlane), farPlane)
}

// clipSegment clips a line segment against the near and far planes.
func clipSegment(a, b clipVertex) (clipVertex, clipVertex, bool) {
	for _, plane := range []clipPlane{nearPlane, farPlane} {
		da, db := plane(a.pos), plane(b.pos)
		switch {
		case da < 0 && db < 0:
			return a, b, false
		case da < 0:
			a = lerpClip(a, b, da/(da-db))
		case db < 0:
			b = lerpClip(a, b, da/(da-db))
		}
	}
	return a, b, true
}
