package glabs

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// LabOption configures a lab created by NewLab.
type LabOption func(*labOptions)

type labOptions struct {
	textures []string
	aspect   float64
}

// WithTextures gives the texture lab image files to use instead of its
// generated ones, in key order 1, 2, 3.
func WithTextures(paths ...string) LabOption {
	return func(o *labOptions) { o.textures = append(o.textures, paths...) }
}

// WithAspect fixes the projection aspect ratio instead of following the
// renderer's viewport.
func WithAspect(aspect float64) LabOption {
	return func(o *labOptions) { o.aspect = aspect }
}

type labEntry struct {
	order int
	title string
	build func(labOptions) Scene
}

var labRegistry = map[string]labEntry{
	"shapes2d":     {0, "Shaded polygons", func(o labOptions) Scene { return newShapes2DLab(o) }},
	"checkerboard": {1, "Checkerboard, sphere and cube", func(o labOptions) Scene { return newCheckerboardLab(o) }},
	"boxes":        {2, "Boxes on a matrix stack", func(o labOptions) Scene { return newBoxesLab(o) }},
	"swizzle":      {3, "Colour swizzle fan", func(o labOptions) Scene { return newSwizzleLab(o) }},
	"dragcube":     {4, "Drag-rotated lit cube", func(o labOptions) Scene { return newDragCubeLab(o) }},
	"lighting":     {5, "Directional lighting", func(o labOptions) Scene { return newLightingLab(o) }},
	"shadertoy":    {6, "Shader toy", func(o labOptions) Scene { return newShaderToyLab(o) }},
	"texture":      {7, "Textured cube", func(o labOptions) Scene { return newTextureLab(o) }},
}

// Labs lists the lab names in course order.
func Labs() []string {
	names := make([]string, 0, len(labRegistry))
	for name := range labRegistry {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return labRegistry[names[i]].order < labRegistry[names[j]].order
	})
	return names
}

// LabTitle is the window title for a lab, or "" for an unknown name.
func LabTitle(name string) string {
	return labRegistry[name].title
}

func NewLab(name string, opts ...LabOption) (Scene, error) {
	entry, ok := labRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLab, name)
	}
	var o labOptions
	for _, opt := range opts {
		opt(&o)
	}
	return entry.build(o), nil
}

// GeometrySource is implemented by labs once Setup has built their geometry.
type GeometrySource interface {
	Geometry() *Geometry
}

type namedShape struct {
	name  string
	shape Shape
}

// baseLab holds what every lab shares: a name, its options and the geometry
// it uploaded.
type baseLab struct {
	name string
	opts labOptions
	geom *Geometry
}

func (b *baseLab) Name() string { return b.name }

func (b *baseLab) Geometry() *Geometry { return b.geom }

// upload builds the shapes into one geometry and hands it to r.
func (b *baseLab) upload(r Renderer, shapes ...namedShape) error {
	mb := NewMeshBuilder()
	for _, ns := range shapes {
		if _, err := mb.Add(ns.name, ns.shape); err != nil {
			return fmt.Errorf("%s: %w", b.name, err)
		}
	}
	b.geom = mb.Build()
	r.Upload(b.geom)
	return nil
}

func (b *baseLab) draw(r Renderer, shape string) error {
	if b.geom == nil {
		return fmt.Errorf("%s: %w", b.name, ErrNoGeometry)
	}
	dr, ok := b.geom.Range(shape)
	if !ok {
		return fmt.Errorf("%w: %s has no shape %q", ErrInvalidArgument, b.name, shape)
	}
	return r.Draw(dr)
}

func (b *baseLab) aspect(r Renderer) float64 {
	if b.opts.aspect > 0 {
		return b.opts.aspect
	}
	return Aspect(r)
}

// dragRotation folds a mouse drag into an accumulated rotation, one degree per
// pixel, turning about the screen axes.
func dragRotation(rot mgl64.Mat4, dx, dy int) mgl64.Mat4 {
	return RotateY(float64(dx)).Mul4(RotateX(float64(dy))).Mul4(rot)
}

// cubeSpin turns a cube rx degrees about x and ry about y, both growing each
// tick. A drag takes over the rotation and stops the spin; a double click or
// Space starts it again from where the angles left off.
type cubeSpin struct {
	cubeRot mgl64.Mat4
	rx, ry  float64
	animate bool
}

func newCubeSpin() cubeSpin {
	return cubeSpin{cubeRot: mgl64.Ident4(), animate: true}
}

func (c *cubeSpin) handleInput(in Input) {
	if in.Dragging && (in.DragX != 0 || in.DragY != 0) {
		c.cubeRot = dragRotation(c.cubeRot, in.DragX, in.DragY)
		c.animate = false
	}
	if in.DoubleClicked || in.Pressed(ebiten.KeySpace) {
		c.animate = true
	}
}

func (c *cubeSpin) update(dt time.Duration) {
	if !c.animate {
		return
	}
	c.rx += perFrame(0.8, dt)
	c.ry += perFrame(2, dt)
	c.cubeRot = RotateX(c.rx).Mul4(RotateY(c.ry))
}
