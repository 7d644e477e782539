package renderer2d

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/quadbatch/engine/core"
)

// Uniform names the sprite program must declare.
const (
	UniformViewProjection = "uVP"
	UniformTexture        = "uTexture"
)

// Renderer2D keeps the sprite batches of every layer. Quads added to a layer
// go to the first batch of that layer with room; a new batch opens when all
// are full. Ordinary layers draw in ascending zIndex, the transparent layer
// draws last.
type Renderer2D struct {
	dev      core.Device
	textures TextureProvider
	program  core.Program
	uVP      int32
	uTex     int32
	maxQuads int

	batches []*Batch
	vp      mgl32.Mat4
	stats   Statistics
}

// New compiles the sprite program and checks its uniforms.
func New(dev core.Device, textures TextureProvider, vertSrc, fragSrc string, maxQuads int) (*Renderer2D, error) {
	if maxQuads <= 0 {
		maxQuads = 1000
	}
	prog, err := dev.CreateProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, err
	}
	uVP, err := RequireUniform(dev, prog, UniformViewProjection)
	if err != nil {
		dev.DeleteProgram(prog)
		return nil, err
	}
	uTex, err := RequireUniform(dev, prog, UniformTexture)
	if err != nil {
		dev.DeleteProgram(prog)
		return nil, err
	}
	return &Renderer2D{
		dev:      dev,
		textures: textures,
		program:  prog,
		uVP:      uVP,
		uTex:     uTex,
		maxQuads: maxQuads,
		vp:       mgl32.Ident4(),
	}, nil
}

// RequireUniform looks up a uniform and fails with ErrUniformMissing.
func RequireUniform(dev core.Device, prog core.Program, name string) (int32, error) {
	loc, ok := dev.UniformLocation(prog, name)
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUniformMissing, name)
	}
	return loc, nil
}

func layerRank(z int) int {
	if z == TransparentZ {
		return math.MaxInt
	}
	return z
}

// Add puts q on layer zIndex.
func (r *Renderer2D) Add(q *Quad, zIndex int) error {
	for _, b := range r.batches {
		if b.ZIndex() == zIndex && !b.IsFull() {
			return b.Add(q)
		}
	}
	b := NewBatch(r.dev, r.textures, zIndex, r.maxQuads)
	if err := b.Start(); err != nil {
		return err
	}
	r.batches = append(r.batches, b)
	slices.SortStableFunc(r.batches, func(a, b *Batch) int {
		return cmp.Compare(layerRank(a.ZIndex()), layerRank(b.ZIndex()))
	})
	Logger().Debug("sprite batch opened", "z", zIndex, "batches", len(r.batches))
	return b.Add(q)
}

// Remove takes q off whichever layer holds it.
func (r *Renderer2D) Remove(q *Quad) bool {
	for _, b := range r.batches {
		if b.Remove(q) {
			return true
		}
	}
	return false
}

// Batches returns the batches in draw order.
func (r *Renderer2D) Batches() []*Batch { return r.batches }

func (r *Renderer2D) BeginScene(vp mgl32.Mat4) {
	r.vp = vp
	r.stats = Statistics{}
	for _, b := range r.batches {
		b.Begin()
	}
}

// EndScene flushes every batch with the given camera.
func (r *Renderer2D) EndScene(cam Camera) error {
	r.dev.UseProgram(r.program)
	defer r.dev.UseProgram(0)
	r.dev.SetUniformMat4(r.uVP, r.vp)
	r.dev.SetUniformInt(r.uTex, 0)

	for _, b := range r.batches {
		if err := b.Flush(cam); err != nil {
			return fmt.Errorf("flush layer %d: %w", b.ZIndex(), err)
		}
		r.stats = r.stats.Add(b.Stats())
	}
	return nil
}

// Stats returns the statistics of the last scene.
func (r *Renderer2D) Stats() Statistics { return r.stats }

func (r *Renderer2D) Destroy() {
	for _, b := range r.batches {
		b.Destroy()
	}
	r.batches = nil
	r.dev.DeleteProgram(r.program)
}
