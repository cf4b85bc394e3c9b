package glabs

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// shapes2DLab draws flat shapes straight in normalized device coordinates: a
// roof triangle, nested squares, a circle darkening towards its centre and a
// squashed ellipse.
type shapes2DLab struct {
	baseLab
	order []string
}

func newShapes2DLab(o labOptions) *shapes2DLab {
	return &shapes2DLab{baseLab: baseLab{name: "shapes2d", opts: o}}
}

func (l *shapes2DLab) Setup(r Renderer) error {
	squares, err := NestedSquares(-0.6, -0.8, 0.6, 0.4, 0.1, 6, White, Black)
	if err != nil {
		return err
	}
	reddening := func(theta float64) mgl64.Vec4 { return mgl64.Vec4{0.175 * theta, 0, 0, 1} }
	circle, err := Circle(0.6, 0.75, 0.2, 36, Black, reddening)
	if err != nil {
		return err
	}
	ellipse, err := Fan(-0.6, 0.75, 0.2, 0.2*0.6, 36, Red, nil)
	if err != nil {
		return err
	}

	shapes := []namedShape{{"triangle", Triangle2D()}}
	for i, sq := range squares {
		shapes = append(shapes, namedShape{fmt.Sprintf("square%d", i), sq})
	}
	shapes = append(shapes, namedShape{"circle", circle}, namedShape{"ellipse", ellipse})

	l.order = l.order[:0]
	for _, ns := range shapes {
		l.order = append(l.order, ns.name)
	}
	return l.upload(r, shapes...)
}

func (l *shapes2DLab) Update(time.Duration) {}

func (l *shapes2DLab) Draw(r Renderer) error {
	r.Clear(Black)
	r.SetProjection(mgl64.Ident4())
	r.SetModelView(mgl64.Ident4())
	r.SetLighting(false)
	r.SetCulling(false)
	r.SetColor(White)
	r.BindTexture(nil)
	for _, name := range l.order {
		if err := l.draw(r, name); err != nil {
			return err
		}
	}
	return nil
}
