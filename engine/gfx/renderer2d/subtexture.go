package renderer2d

import "github.com/go-gl/mathgl/mgl32"

// SubTexture describes a UV sub-rect of a full texture.
type SubTexture struct {
	Texture TextureID
	UV0     mgl32.Vec2 // top-left
	UV1     mgl32.Vec2 // bottom-right
}

// FromPixels builds a subtexture from pixel coordinates within an atlas.
func FromPixels(tex TextureID, x, y, w, h, atlasW, atlasH int) SubTexture {
	return SubTexture{
		Texture: tex,
		UV0:     mgl32.Vec2{float32(x) / float32(atlasW), float32(y) / float32(atlasH)},
		UV1:     mgl32.Vec2{float32(x+w) / float32(atlasW), float32(y+h) / float32(atlasH)},
	}
}

// FromGrid builds a subtexture from tile grid coordinates (cx,cy) of cell size (cw,ch).
func FromGrid(tex TextureID, cx, cy, cw, ch, atlasW, atlasH int) SubTexture {
	return FromPixels(tex, cx*cw, cy*ch, cw, ch, atlasW, atlasH)
}

// Apply points q at the subtexture.
func (s SubTexture) Apply(q *Quad) {
	q.Texture = s.Texture
	q.UV0 = s.UV0
	q.UV1 = s.UV1
}
