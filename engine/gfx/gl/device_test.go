package glbackend

import (
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/quadbatch/engine/core"
)

func TestEnumMapping(t *testing.T) {
	if bufferTarget(core.BufferIndex) != gl.ELEMENT_ARRAY_BUFFER || bufferTarget(core.BufferVertex) != gl.ARRAY_BUFFER {
		t.Error("bufferTarget mapping")
	}
	if bufferUsage(core.UsageDynamic) != gl.DYNAMIC_DRAW || bufferUsage(core.UsageStatic) != gl.STATIC_DRAW {
		t.Error("bufferUsage mapping")
	}
	if primitiveMode(core.PrimitiveLines) != gl.LINES || primitiveMode(core.PrimitiveTriangles) != gl.TRIANGLES {
		t.Error("primitiveMode mapping")
	}
	if filterMode("linear") != gl.LINEAR || filterMode("") != gl.NEAREST {
		t.Error("filterMode mapping")
	}
	if wrapMode("repeat") != gl.REPEAT || wrapMode("clamp") != gl.CLAMP_TO_EDGE {
		t.Error("wrapMode mapping")
	}
}

func TestCStr(t *testing.T) {
	if got := cstr("abc"); got != "abc\x00" {
		t.Errorf("cstr(abc) = %q", got)
	}
	if got := cstr("abc\x00"); got != "abc\x00" {
		t.Errorf("cstr twice = %q", got)
	}
}
