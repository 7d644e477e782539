package ui

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/quadbatch/engine/canvas"
	"github.com/hubastard/quadbatch/engine/colors"
	"github.com/hubastard/quadbatch/engine/gfx/gputest"
	"github.com/hubastard/quadbatch/engine/gfx/renderer2d"
)

type monoFont struct{}

func (monoFont) Glyph(r rune) (renderer2d.SubTexture, bool) {
	if r < 'A' || r > 'z' {
		return renderer2d.SubTexture{}, false
	}
	return renderer2d.SubTexture{UV1: mgl32.Vec2{1, 1}}, true
}
func (monoFont) AspectRatio() float32 { return 1 }

func newContext(t *testing.T) *Context {
	t.Helper()
	dev := gputest.New()
	ts, err := renderer2d.NewTextureSet(dev)
	if err != nil {
		t.Fatal(err)
	}
	c, err := canvas.New(dev, ts, monoFont{}, canvas.Options{
		VertexShader:   gputest.CanvasVertex,
		FragmentShader: gputest.CanvasFragment,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(c.Destroy)
	c.BeginFrame()
	return &Context{Viewport: [4]float32{10, 20, 400, 300}, DefaultFont: monoFont{}, Canvas: c}
}

func topLeft(q renderer2d.Quad) [2]float32 {
	return [2]float32{q.Position[0] - q.Size[0]/2, q.Position[1] - q.Size[1]/2}
}

func TestViewDrawsThroughTranslateStack(t *testing.T) {
	ctx := newContext(t)
	ctx.Mouse = mgl32.Vec2{20, 45}
	clicks := 0
	btn := Button("C").FontSize(10).HoverColor(colors.Red).OnClick(func() { clicks++ })
	root := View(Label("AB").FontSize(10), btn).
		FlowDirection(LayoutVertical).Gap(5).Padding(2).BgColor(colors.Gray)

	root.Draw(ctx)

	qs := ctx.Canvas.Quads()
	if len(qs) != 5 {
		t.Fatalf("quads = %d, want 5", len(qs))
	}
	want := [][2]float32{{10, 20}, {12, 22}, {22, 22}, {12, 37}, {22, 47}}
	for i, w := range want {
		if got := topLeft(qs[i]); got != w {
			t.Errorf("quad %d at %v, want %v", i, got, w)
		}
	}
	if qs[0].Size != (mgl32.Vec2{34, 49}) {
		t.Errorf("root size = %v, want 34x49", qs[0].Size)
	}
	if qs[3].Tint != colors.Red || !btn.Hovered() {
		t.Errorf("hovered button tint = %v", qs[3].Tint)
	}
	if clicks != 0 {
		t.Error("OnClick fired without a click")
	}
	if ctx.Canvas.TranslateDepth() != 0 {
		t.Errorf("translate depth = %d after Draw", ctx.Canvas.TranslateDepth())
	}

	ctx.Canvas.BeginFrame()
	ctx.Clicked = true
	root.Draw(ctx)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}

	ctx.Canvas.BeginFrame()
	ctx.Mouse = mgl32.Vec2{0, 0}
	root.Draw(ctx)
	if q := ctx.Canvas.Quads()[3]; q.Tint != colors.White || btn.Hovered() {
		t.Errorf("idle button tint = %v", q.Tint)
	}
	if clicks != 1 {
		t.Errorf("click outside fired OnClick")
	}
}

func TestLabelWrap(t *testing.T) {
	ctx := newContext(t)
	l := Label("aa bb cc").FontSize(10).MaxWidth(50)
	res := l.Layout(ctx, Constraints{})
	if res.Size != [2]float32{50, 20} {
		t.Errorf("Layout() = %v, want 50x20", res.Size)
	}
	if l.layoutStr != "aa bb\ncc" {
		t.Errorf("wrapped = %q", l.layoutStr)
	}
}

func TestLabelSetText(t *testing.T) {
	ctx := newContext(t)
	l := Label("a").FontSize(10)
	l.Layout(ctx, Constraints{})
	l.SetText("abc")
	if res := l.Layout(ctx, Constraints{}); res.Size[0] != 30 {
		t.Errorf("width after SetText = %v, want 30", res.Size[0])
	}
	if l.Text() != "abc" {
		t.Errorf("Text() = %q", l.Text())
	}
}

func TestHorizontalCenterAlign(t *testing.T) {
	ctx := newContext(t)
	a := Label("A").FontSize(10)
	b := Label("B").FontSize(20)
	v := View(a, b).Gap(4).AlignCross(AlignCenter).HeightFixed(40).WidthFixed(100).AlignMain(AlignCenter)
	v.Layout(ctx, Constraints{Max: [2]float32{400, 300}})

	ax, ay := a.Node().Pos()
	bx, by := b.Node().Pos()
	// content is 10+4+20 = 34 wide, centred in 100
	if ax != 33 || bx != 47 {
		t.Errorf("x = %v, %v; want 33, 47", ax, bx)
	}
	if ay != 15 || by != 10 {
		t.Errorf("y = %v, %v; want 15, 10", ay, by)
	}
}

func TestWrapWords(t *testing.T) {
	tests := []struct {
		in   string
		cols int
		want string
	}{
		{"aa bb cc", 5, "aa bb\ncc"},
		{"aa bb cc", 8, "aa bb cc"},
		{"toolongword x", 4, "toolongword\nx"},
		{"a  b\n\nc", 3, "a b\n\nc"},
		{"", 3, ""},
	}
	for _, tt := range tests {
		if got := wrapWords(tt.in, tt.cols); got != tt.want {
			t.Errorf("wrapWords(%q, %d) = %q, want %q", tt.in, tt.cols, got, tt.want)
		}
	}
}
