package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/quadbatch/engine/core"
)

func TestTranslateKey(t *testing.T) {
	tests := map[glfw.Key]core.Key{
		glfw.KeyEscape: core.KeyEscape,
		glfw.KeyW:      core.KeyW,
		glfw.KeyP:      core.KeyP,
		glfw.KeyF1:     core.KeyF1,
		glfw.KeyZ:      core.KeyUnknown,
	}
	for in, want := range tests {
		if got := translateKey(in); got != want {
			t.Errorf("translateKey(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestTranslateMods(t *testing.T) {
	got := translateMods(glfw.ModShift | glfw.ModAlt)
	if got != core.ModShift|core.ModAlt {
		t.Errorf("translateMods() = %v", got)
	}
	if translateMods(0) != core.ModNone {
		t.Error("translateMods(0) != ModNone")
	}
}

func TestToFramebuffer(t *testing.T) {
	x, y := toFramebuffer(100, 50, 640, 360, 1280, 720)
	if x != 200 || y != 100 {
		t.Errorf("toFramebuffer() = %v,%v, want 200,100", x, y)
	}
	x, y = toFramebuffer(3, 4, 0, 0, 10, 10)
	if x != 3 || y != 4 {
		t.Errorf("toFramebuffer(minimised) = %v,%v", x, y)
	}
}
