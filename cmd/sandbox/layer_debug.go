package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/quadbatch/engine/canvas"
	"github.com/hubastard/quadbatch/engine/colors"
	"github.com/hubastard/quadbatch/engine/core"
	"github.com/hubastard/quadbatch/engine/text"
	"github.com/hubastard/quadbatch/engine/ui"
)

// ------- Debug overlay drawn on the canvas -------
type LayerDebug struct {
	canvas        *canvas.Canvas
	font          *text.BitmapFont
	sprites       *Layer2D
	frameDuration float32
	tick          int
	visible       bool
	wasDown       bool
	mem           runtime.MemStats
}

func (l *LayerDebug) OnAttach(e *core.Engine) { l.visible = true }

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {
	if l.tick%60 == 0 {
		runtime.ReadMemStats(&l.mem)
	}
}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	w, h := e.Window.FramebufferSize()
	l.canvas.BeginFrame()
	l.canvas.ResetTranslate()

	if l.visible {
		st := l.sprites.Stats()
		ov := l.canvas.Stats()
		mx, my := e.Input.Mouse()
		down := e.Input.IsMouseDown(0)
		ctx := &ui.Context{
			Viewport:    [4]float32{0, 0, float32(w), float32(h)},
			DefaultFont: l.font,
			Canvas:      l.canvas,
			Mouse:       mgl32.Vec2{float32(mx), float32(my)},
			MouseDown:   down,
			Clicked:     down && !l.wasDown,
		}
		l.wasDown = down

		toggle := "Hide tiles"
		if l.sprites.hidden {
			toggle = "Show tiles"
		}
		ui.View(
			ui.View(
				ui.Label(fmt.Sprintf("Frame: %d", l.tick)).Color(colors.Yellow),
				ui.Label(fmt.Sprintf("  %2.3f ms (%.2f FPS)", l.frameDuration, 1000.0/l.frameDuration)),
				ui.Label("Sprites").Padding4(0, 12, 0, 0).Color(colors.Yellow),
				ui.Label(fmt.Sprintf("  Draw Calls: %d", st.DrawCalls)),
				ui.Label(fmt.Sprintf("  Quads: %d (culled %d)", st.QuadCount, st.CulledCount)),
				ui.Label(fmt.Sprintf("  Vertices: %d", st.TotalVertexCount())),
				ui.Label("Overlay").Padding4(0, 12, 0, 0).Color(colors.Yellow),
				ui.Label(fmt.Sprintf("  Draw Calls: %d Glyphs: %d", ov.DrawCalls, ov.GlyphCount)),
				ui.Label("Memory").Padding4(0, 12, 0, 0).Color(colors.Yellow),
				ui.Label(fmt.Sprintf("  Heap: %.3f MB", float32(l.mem.HeapAlloc)/(1<<20))),
				ui.Label(fmt.Sprintf("  Goroutines: %d", runtime.NumGoroutine())),
				ui.Button(toggle).
					FontSize(14).
					BgColor(colors.Gray).
					HoverColor(colors.Gray.Scale(1.4)).
					OnClick(l.sprites.ToggleGround),
			).
				FlowDirection(ui.LayoutVertical).
				Gap(4).
				Padding(12).
				BgColor(colors.Black.WithAlpha(0.5)),
		).
			Padding(16).
			FlowDirection(ui.LayoutVertical).
			Draw(ctx)
	}

	if err := l.canvas.EndFrame(w, h); err != nil {
		log.Fatal(err)
	}
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyF1 {
		l.visible = !l.visible
		return true
	}
	return false
}
