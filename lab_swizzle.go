package glabs

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// swizzleLab shows colour interpolation across a six vertex fan.
type swizzleLab struct {
	baseLab
}

func newSwizzleLab(o labOptions) *swizzleLab {
	return &swizzleLab{baseLab{name: "swizzle", opts: o}}
}

func (l *swizzleLab) Setup(r Renderer) error {
	return l.upload(r, namedShape{"fan", SwizzleFan()})
}

func (l *swizzleLab) Update(time.Duration) {}

func (l *swizzleLab) Draw(r Renderer) error {
	r.Clear(mgl64.Vec4{0.9, 0.9, 0.9, 1})
	r.SetProjection(mgl64.Ident4())
	r.SetModelView(mgl64.Ident4())
	r.SetLighting(false)
	r.SetCulling(false)
	r.SetColor(White)
	r.BindTexture(nil)
	return l.draw(r, "fan")
}
