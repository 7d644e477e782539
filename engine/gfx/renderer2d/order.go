package renderer2d

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// TransparentZ is the layer whose sprites are depth sorted for blending.
const TransparentZ = -1

// Camera is the read-only view the order policies need.
type Camera interface {
	// WorldPosition is the eye position used for depth sorting.
	WorldPosition() mgl32.Vec3
	// Viewport is the visible rectangle in the space quads are culled in.
	Viewport() Rect
}

// OrderPolicy decides which quads are drawn and in which order. Order
// appends the result to dst[:0] and returns it; src is not modified.
type OrderPolicy interface {
	Order(dst, src []Quad, cam Camera) []Quad
}

// PolicyFor returns the policy of a layer: back-to-front depth sorting for
// TransparentZ, culled texture sorting otherwise.
func PolicyFor(zIndex int) OrderPolicy {
	if zIndex == TransparentZ {
		return &DepthSort{}
	}
	return &TextureSort{Cull: true, FlipY: true}
}

type depthKey struct {
	dist float32
	idx  int
}

// DepthSort orders quads farthest first from the camera. Equal distances
// keep insertion order. A nil camera sorts around the origin.
type DepthSort struct {
	keys []depthKey
}

func (s *DepthSort) Order(dst, src []Quad, cam Camera) []Quad {
	var eye mgl32.Vec3
	if cam != nil {
		eye = cam.WorldPosition()
	}
	s.keys = s.keys[:0]
	for i := range src {
		s.keys = append(s.keys, depthKey{dist: src[i].Center().Sub(eye).Len(), idx: i})
	}
	slices.SortStableFunc(s.keys, func(a, b depthKey) int {
		return cmp.Compare(b.dist, a.dist)
	})

	dst = dst[:0]
	for _, k := range s.keys {
		dst = append(dst, src[k.idx])
	}
	return dst
}

// TextureSort drops quads outside the camera viewport (when Cull is set) and
// stable-sorts the rest by ascending texture id so same-texture runs merge.
// FlipY must match the layer's packing so bounds are computed the same way.
type TextureSort struct {
	Cull  bool
	FlipY bool
}

func (s *TextureSort) Order(dst, src []Quad, cam Camera) []Quad {
	dst = dst[:0]
	if s.Cull && cam != nil {
		view := cam.Viewport()
		for i := range src {
			if src[i].Bounds(s.FlipY).Intersects(view) {
				dst = append(dst, src[i])
			}
		}
	} else {
		dst = append(dst, src...)
	}
	slices.SortStableFunc(dst, func(a, b Quad) int {
		return cmp.Compare(a.Texture, b.Texture)
	})
	return dst
}
