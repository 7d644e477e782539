package renderer2d

// Statistics captures the counts generated during a frame.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	CulledCount  int
	DroppedCount int
	GlyphCount   int
	TextureCount int
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * VertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * IndicesPerQuad }

// Add sums two snapshots. TextureCount adds too, so it becomes an upper bound.
func (s Statistics) Add(o Statistics) Statistics {
	s.DrawCalls += o.DrawCalls
	s.QuadCount += o.QuadCount
	s.CulledCount += o.CulledCount
	s.DroppedCount += o.DroppedCount
	s.GlyphCount += o.GlyphCount
	s.TextureCount += o.TextureCount
	return s
}
