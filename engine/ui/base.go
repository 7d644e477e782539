// Package ui lays out retained widgets and draws them on a canvas. Each
// element's position is relative to its parent; Draw pushes it onto the
// canvas translate stack before drawing children.
package ui

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/quadbatch/engine/canvas"
	"github.com/hubastard/quadbatch/engine/colors"
)

type SizeMode int

const (
	SizeModeFit SizeMode = iota
	SizeModeFixed
	SizeModeExpand
)

type Constraints struct {
	Min [2]float32
	Max [2]float32
}

type LayoutResult struct {
	Size [2]float32
}

// Context is rebuilt by the caller every frame.
type Context struct {
	Viewport    [4]float32
	DefaultFont canvas.Font
	Canvas      *canvas.Canvas
	Mouse       mgl32.Vec2 // screen pixels
	MouseDown   bool
	Clicked     bool // the button went down this frame
}

// hovered reports whether the mouse is over a w x h box at the current
// canvas origin.
func (ctx *Context) hovered(w, h float32) bool {
	m := ctx.Mouse.Sub(ctx.Canvas.Translate())
	return m[0] >= 0 && m[1] >= 0 && m[0] < w && m[1] < h
}

type UIElement interface {
	Node() *Base
	Layout(ctx *Context, constraints Constraints) LayoutResult
	Draw(ctx *Context)
}

// Sizing state is indexed by axis: 0 is X, 1 is Y.
type Base struct {
	parent   UIElement
	children []UIElement
	position [2]float32
	size     [2]float32
	color    colors.Color
	mode     [2]SizeMode
	fixed    [2]float32
	padding  [4]float32 // left, top, right, bottom
}

func (b *Base) Parent() UIElement       { return b.parent }
func (b *Base) Children() []UIElement   { return b.children }
func (b *Base) Pos() (x, y float32)     { return b.position[0], b.position[1] }
func (b *Base) Size() (w, h float32)    { return b.size[0], b.size[1] }
func (b *Base) SetPos(x, y float32)     { b.position = [2]float32{x, y} }
func (b *Base) SetSize(w, h float32)    { b.size = [2]float32{w, h} }
func (b *Base) SetColor(c colors.Color) { b.color = c }
func (b *Base) Padding() [4]float32     { return b.padding }
func (b *Base) SetPadding(l, t, r, btm float32) {
	b.padding = [4]float32{l, t, r, btm}
}

// pad is the padding on both sides of axis.
func (b *Base) pad(axis int) float32 { return b.padding[axis] + b.padding[axis+2] }

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

// resolveConstraint maps the zero "unbounded" maximum to MaxFloat32.
func resolveConstraint(limit float32) float32 {
	if limit == 0 {
		return float32(math.MaxFloat32)
	}
	return limit
}

// inner shrinks constraints by the padding, for laying out content.
func (b *Base) inner(c Constraints) Constraints {
	var in Constraints
	for a := 0; a < 2; a++ {
		in.Max[a] = max(0, resolveConstraint(c.Max[a])-b.pad(a))
	}
	return in
}

// resolveAxis picks the outer size along axis given the padded content size.
func (b *Base) resolveAxis(axis int, content float32, c Constraints) float32 {
	hi := resolveConstraint(c.Max[axis])
	switch {
	case b.mode[axis] == SizeModeExpand:
		return clamp(hi, c.Min[axis], hi)
	case b.mode[axis] == SizeModeFixed && b.fixed[axis] > 0:
		return clamp(b.fixed[axis], c.Min[axis], hi)
	}
	return clamp(content, c.Min[axis], hi)
}

// resolve sets the element size from its content size and returns it.
func (b *Base) resolve(content [2]float32, c Constraints) [2]float32 {
	for a := 0; a < 2; a++ {
		b.size[a] = b.resolveAxis(a, content[a]+b.pad(a), c)
	}
	return b.size
}

// innerPosition is the content origin in the element's own space.
func (b *Base) innerPosition() (float32, float32) {
	return b.padding[0], b.padding[1]
}

// drawBox fills the element at the current canvas origin.
func (b *Base) drawBox(ctx *Context, col colors.Color) {
	if col[3] > 0 {
		ctx.Canvas.Rect(0, 0, b.size[0], b.size[1], canvas.Style{Color: col})
	}
}

// ------ Helper ------

type Common[T any] struct {
	owner T
	base  Base
}

func NewCommon[T any](owner T) Common[T] {
	return Common[T]{owner: owner}
}

func (c *Common[T]) Node() *Base              { return &c.base }
func (c *Common[T]) Position(x, y float32) T  { c.base.SetPos(x, y); return c.owner }
func (c *Common[T]) Size(w, h float32) T      { c.base.SetSize(w, h); return c.owner }
func (c *Common[T]) Color(col colors.Color) T { c.base.SetColor(col); return c.owner }

func (c *Common[T]) sizing(axis int, m SizeMode, v float32) T {
	c.base.mode[axis] = m
	c.base.fixed[axis] = v
	return c.owner
}

func (c *Common[T]) WidthFit() T                  { return c.sizing(0, SizeModeFit, 0) }
func (c *Common[T]) WidthFixed(width float32) T   { return c.sizing(0, SizeModeFixed, width) }
func (c *Common[T]) WidthExpand() T               { return c.sizing(0, SizeModeExpand, 0) }
func (c *Common[T]) HeightFit() T                 { return c.sizing(1, SizeModeFit, 0) }
func (c *Common[T]) HeightFixed(height float32) T { return c.sizing(1, SizeModeFixed, height) }
func (c *Common[T]) HeightExpand() T              { return c.sizing(1, SizeModeExpand, 0) }

func (c *Common[T]) Padding(all float32) T {
	c.base.SetPadding(all, all, all, all)
	return c.owner
}

func (c *Common[T]) Padding2(horizontal, vertical float32) T {
	c.base.SetPadding(horizontal, vertical, horizontal, vertical)
	return c.owner
}

func (c *Common[T]) Padding4(left, top, right, bottom float32) T {
	c.base.SetPadding(left, top, right, bottom)
	return c.owner
}

func (c *Common[T]) Children(kids ...UIElement) T {
	c.base.children = append(c.base.children, kids...)
	for _, k := range kids {
		k.Node().parent = any(c.owner).(UIElement)
	}
	return c.owner
}
