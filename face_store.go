package glabs

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// screenVertex is a vertex after viewport mapping. U and V are texture
// coordinates in GL convention, not yet scaled to texels.
type screenVertex struct {
	X, Y  float32
	U, V  float32
	Color mgl64.Vec4
}

type faceKind int

const (
	faceTriangle faceKind = iota
	faceLine
	facePoint
)

// queuedFace is one primitive waiting to be painted. Lines use the first two
// vertices and points the first.
type queuedFace struct {
	kind    faceKind
	verts   [3]screenVertex
	depth   float64
	texture *Texture
}

// FaceStore collects a frame's primitives so they can be painted far to near.
type FaceStore struct {
	faces []queuedFace
}

func NewFaceStore() *FaceStore {
	return &FaceStore{faces: make([]queuedFace, 0, 256)}
}

func (fs *FaceStore) add(f queuedFace) {
	fs.faces = append(fs.faces, f)
}

func (fs *FaceStore) FaceCount() int {
	return len(fs.faces)
}

// Reset empties the store and keeps its capacity for the next frame.
func (fs *FaceStore) Reset() {
	fs.faces = fs.faces[:0]
}

// SortFacesByDistance puts the farthest faces first. Faces at equal depth keep
// the order they were drawn in, so flat 2D scenes paint in submission order.
func (fs *FaceStore) SortFacesByDistance() {
	if len(fs.faces) == 0 {
		return
	}
	sort.SliceStable(fs.faces, func(i, j int) bool {
		return fs.faces[i].depth > fs.faces[j].depth
	})
}
