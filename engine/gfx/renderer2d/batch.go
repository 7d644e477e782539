package renderer2d

import (
	"slices"

	"github.com/hubastard/quadbatch/engine/core"
)

// Batch is a frame batch for one layer: a persistent set of quads that
// callers mutate between frames, re-evaluated on every Flush.
type Batch struct {
	buffers *QuadBuffers
	zIndex  int
	policy  OrderPolicy

	quads   []*Quad
	scratch []Quad
	ordered []Quad
	stats   Statistics
	dropped int // Add rejections since the last Flush
}

// NewBatch creates a batch for zIndex. Buffers are allocated by Start.
// Every layer, TransparentZ included, packs Y-down to match the camera.
func NewBatch(dev core.Device, textures TextureProvider, zIndex, maxQuads int) *Batch {
	return &Batch{
		buffers: NewQuadBuffers(dev, textures, SpriteLayout, maxQuads, true),
		zIndex:  zIndex,
		policy:  PolicyFor(zIndex),
	}
}

func (b *Batch) Start() error { return b.buffers.Start() }

func (b *Batch) ZIndex() int   { return b.zIndex }
func (b *Batch) Len() int      { return len(b.quads) }
func (b *Batch) MaxQuads() int { return b.buffers.MaxQuads() }

// IsFull tells the caller to open another batch for the same layer.
func (b *Batch) IsFull() bool { return len(b.quads) >= b.buffers.MaxQuads() }

// Add registers a persistent quad. A full batch logs, drops the quad and
// returns ErrCapacityExceeded.
func (b *Batch) Add(q *Quad) error {
	if q == nil {
		return nil
	}
	if b.IsFull() {
		b.dropped++
		Logger().Warn("sprite batch full, dropping quad", "z", b.zIndex, "max", b.buffers.MaxQuads())
		return ErrCapacityExceeded
	}
	b.quads = append(b.quads, q)
	return nil
}

// Remove unregisters q, reporting whether it was present.
func (b *Batch) Remove(q *Quad) bool {
	i := slices.Index(b.quads, q)
	if i < 0 {
		return false
	}
	b.quads = slices.Delete(b.quads, i, i+1)
	return true
}

// Contains reports whether q is registered.
func (b *Batch) Contains(q *Quad) bool { return slices.Contains(b.quads, q) }

// Begin starts a new frame's statistics. Drops recorded by Add are kept
// until the next Flush reports them.
func (b *Batch) Begin() { b.stats = Statistics{} }

// Flush runs order policy, packing, upload, coalescing and drawing.
func (b *Batch) Flush(cam Camera) error {
	if err := b.buffers.check(); err != nil {
		return err
	}
	b.scratch = b.scratch[:0]
	for _, q := range b.quads {
		b.scratch = append(b.scratch, *q)
	}
	b.ordered = b.policy.Order(b.ordered, b.scratch, cam)

	st, err := b.buffers.Draw(b.ordered)
	if err != nil {
		return err
	}
	st.CulledCount = len(b.scratch) - len(b.ordered)
	st.DroppedCount += b.dropped
	b.dropped = 0
	b.stats = st
	return nil
}

// Ordered returns the quads drawn by the last Flush, in draw order.
func (b *Batch) Ordered() []Quad { return b.ordered }

// DrawCalls returns the calls issued by the last Flush.
func (b *Batch) DrawCalls() []DrawCall { return b.buffers.DrawCalls() }

func (b *Batch) Stats() Statistics { return b.stats }

// Destroy releases the GPU buffers and forgets the quads.
func (b *Batch) Destroy() {
	b.buffers.Destroy()
	b.quads = nil
}
