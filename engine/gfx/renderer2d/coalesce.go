package renderer2d

// DrawCall covers Count indices starting at index Offset with one texture.
type DrawCall struct {
	Offset  int
	Count   int
	Texture TextureID
}

// OffsetBytes is Offset in bytes of a uint32 index buffer.
func (d DrawCall) OffsetBytes() int { return d.Offset * 4 }

// Coalesce merges consecutive quads sharing a texture into one draw call.
// The result partitions [0, 6*len(quads)) in order.
func Coalesce(dst []DrawCall, quads []Quad) []DrawCall {
	dst = dst[:0]
	start := 0
	for i := range quads {
		if i == len(quads)-1 || quads[i].Texture != quads[i+1].Texture {
			dst = append(dst, DrawCall{
				Offset:  start * IndicesPerQuad,
				Count:   (i + 1 - start) * IndicesPerQuad,
				Texture: quads[i].Texture,
			})
			start = i + 1
		}
	}
	return dst
}
