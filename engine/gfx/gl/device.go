package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/quadbatch/engine/core"
)

func bufferTarget(kind core.BufferKind) uint32 {
	if kind == core.BufferIndex {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func bufferUsage(u core.BufferUsage) uint32 {
	if u == core.UsageDynamic {
		return gl.DYNAMIC_DRAW
	}
	return gl.STATIC_DRAW
}

func primitiveMode(p core.Primitive) uint32 {
	if p == core.PrimitiveLines {
		return gl.LINES
	}
	return gl.TRIANGLES
}

func filterMode(f string) int32 {
	if f == "linear" {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func wrapMode(w string) int32 {
	if w == "repeat" {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

func (r *RendererGL) CreateVertexArray() (core.VertexArray, error) {
	var va uint32
	gl.GenVertexArrays(1, &va)
	if va == 0 {
		return 0, fmt.Errorf("glGenVertexArrays returned 0")
	}
	return core.VertexArray(va), nil
}

func (r *RendererGL) BindVertexArray(va core.VertexArray) { gl.BindVertexArray(uint32(va)) }

func (r *RendererGL) DeleteVertexArray(va core.VertexArray) {
	h := uint32(va)
	gl.DeleteVertexArrays(1, &h)
}

// CreateBuffer allocates sizeBytes and leaves the buffer bound, so index
// buffers attach to the vertex array currently bound.
func (r *RendererGL) CreateBuffer(kind core.BufferKind, sizeBytes int, usage core.BufferUsage) (core.Buffer, error) {
	var b uint32
	gl.GenBuffers(1, &b)
	if b == 0 {
		return 0, fmt.Errorf("glGenBuffers returned 0")
	}
	target := bufferTarget(kind)
	gl.BindBuffer(target, b)
	gl.BufferData(target, sizeBytes, nil, bufferUsage(usage))
	r.buffers[core.Buffer(b)] = target
	return core.Buffer(b), nil
}

func (r *RendererGL) UpdateBuffer(buf core.Buffer, offsetBytes int, data any) error {
	target, ok := r.buffers[buf]
	if !ok {
		return fmt.Errorf("update of unknown buffer %d", buf)
	}
	n, ok := core.SizeOfData(data)
	if !ok {
		return fmt.Errorf("unsupported buffer data %T", data)
	}
	if n == 0 {
		return nil
	}
	gl.BindBuffer(target, uint32(buf))
	switch d := data.(type) {
	case []float32:
		gl.BufferSubData(target, offsetBytes, n, gl.Ptr(d))
	case []uint32:
		gl.BufferSubData(target, offsetBytes, n, gl.Ptr(d))
	}
	return nil
}

func (r *RendererGL) DeleteBuffer(buf core.Buffer) {
	if _, ok := r.buffers[buf]; !ok {
		return
	}
	h := uint32(buf)
	gl.DeleteBuffers(1, &h)
	delete(r.buffers, buf)
}

// SetVertexAttribute describes a float attribute of the bound vertex buffer.
func (r *RendererGL) SetVertexAttribute(index, size, strideBytes, offsetBytes int) {
	gl.VertexAttribPointerWithOffset(uint32(index), int32(size), gl.FLOAT, false, int32(strideBytes), uintptr(offsetBytes))
}

func (r *RendererGL) EnableVertexAttribute(index int)  { gl.EnableVertexAttribArray(uint32(index)) }
func (r *RendererGL) DisableVertexAttribute(index int) { gl.DisableVertexAttribArray(uint32(index)) }

func (r *RendererGL) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 || len(desc.Pixels) != desc.Width*desc.Height*4 {
		return 0, fmt.Errorf("texture %dx%d with %d bytes", desc.Width, desc.Height, len(desc.Pixels))
	}
	var t uint32
	gl.GenTextures(1, &t)
	gl.BindTexture(gl.TEXTURE_2D, t)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filterMode(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filterMode(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrapMode(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrapMode(desc.WrapV))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return core.Texture(t), nil
}

func (r *RendererGL) BindTexture(tex core.Texture) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
}

func (r *RendererGL) DeleteTexture(tex core.Texture) {
	h := uint32(tex)
	gl.DeleteTextures(1, &h)
}
