package glabs

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture is an image sampled by textured draws.
type Texture struct {
	img     *ebiten.Image
	width   int
	height  int
	filter  ebiten.Filter
	address ebiten.Address
}

type TextureOption func(*Texture)

// WithFilter selects nearest (the default) or linear sampling.
func WithFilter(f ebiten.Filter) TextureOption {
	return func(t *Texture) { t.filter = f }
}

// WithAddress selects what happens outside [0,1]; the default repeats.
func WithAddress(a ebiten.Address) TextureOption {
	return func(t *Texture) { t.address = a }
}

func NewTexture(src image.Image, opts ...TextureOption) (*Texture, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, fmt.Errorf("%w: texture image is empty", ErrInvalidArgument)
	}
	b := src.Bounds()
	t := &Texture{
		width:   b.Dx(),
		height:  b.Dy(),
		filter:  ebiten.FilterNearest,
		address: ebiten.AddressRepeat,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.img = ebiten.NewImageFromImage(src)
	return t, nil
}

// DecodeTexture reads png, jpeg, gif, bmp, tiff or webp data.
func DecodeTexture(r io.Reader, opts ...TextureOption) (*Texture, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode texture: %w", err)
	}
	Logger().Debug("texture decoded", "format", format, "size", src.Bounds().Size())
	return NewTexture(src, opts...)
}

func LoadTexture(path string, opts ...TextureOption) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load texture: %w", err)
	}
	defer f.Close()

	t, err := DecodeTexture(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	Logger().Info("texture loaded", "path", path, "width", t.width, "height", t.height)
	return t, nil
}

// Size is the texture size in texels.
func (t *Texture) Size() (int, int) {
	return t.width, t.height
}

// CheckerImage draws a size x size board of tiles x tiles squares, a in the
// top-left corner.
func CheckerImage(size, tiles int, a, b mgl64.Vec4) (*image.RGBA, error) {
	if size <= 0 || tiles <= 0 || tiles > size {
		return nil, fmt.Errorf("%w: checker image size %d with %d tiles", ErrInvalidArgument, size, tiles)
	}
	ca, cb := ToRGBA(a), ToRGBA(b)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var c color.RGBA
			if (x*tiles/size+y*tiles/size)%2 == 0 {
				c = ca
			} else {
				c = cb
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img, nil
}

// StripeImage draws horizontal bands cycling through colors.
func StripeImage(size int, colors ...mgl64.Vec4) (*image.RGBA, error) {
	if size <= 0 || len(colors) == 0 || len(colors) > size {
		return nil, fmt.Errorf("%w: stripe image size %d with %d colours", ErrInvalidArgument, size, len(colors))
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		c := ToRGBA(colors[y*len(colors)/size])
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img, nil
}
