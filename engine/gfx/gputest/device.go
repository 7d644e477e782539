// Package gputest provides an in-memory core.Device that records every call,
// so batching code can be tested without a graphics context.
package gputest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hubastard/quadbatch/engine/core"
)

// Buffer is the recorded state of one device buffer.
type Buffer struct {
	Kind    core.BufferKind
	Usage   core.BufferUsage
	Size    int // bytes
	Floats  []float32
	Indices []uint32
	Writes  int
	// LastWrite is the byte length of the most recent UpdateBuffer.
	LastWrite int
}

// Draw is one recorded DrawIndexed call.
type Draw struct {
	Prim        core.Primitive
	Count       int
	OffsetBytes int
	Texture     core.Texture
	VertexArray core.VertexArray
	// Enabled is the number of vertex attributes enabled at draw time.
	Enabled int
}

// Device implements core.Device in memory.
type Device struct {
	Buffers      map[core.Buffer]*Buffer
	VertexArrays map[core.VertexArray]bool
	Textures     map[core.Texture]core.TextureDesc
	Programs     map[core.Program][]string // declared uniforms
	Uniforms     map[int32]any             // last value per location
	Attributes   map[int]core.VertexAttrib
	Draws        []Draw
	Ops          []string

	Viewport   [4]int
	Blend      bool
	DepthTest  bool
	BoundVA    core.VertexArray
	BoundTex   core.Texture
	BoundProg  core.Program
	enabled    map[int]bool
	next       uint32
	uniformLoc map[string]int32

	// FailCreate makes the next Create* call return an error.
	FailCreate bool
}

func New() *Device {
	return &Device{
		Buffers:      make(map[core.Buffer]*Buffer),
		VertexArrays: make(map[core.VertexArray]bool),
		Textures:     make(map[core.Texture]core.TextureDesc),
		Programs:     make(map[core.Program][]string),
		Uniforms:     make(map[int32]any),
		Attributes:   make(map[int]core.VertexAttrib),
		enabled:      make(map[int]bool),
		uniformLoc:   make(map[string]int32),
	}
}

var _ core.Device = (*Device)(nil)

func (d *Device) handle() uint32 {
	d.next++
	return d.next
}

func (d *Device) op(format string, args ...any) {
	d.Ops = append(d.Ops, fmt.Sprintf(format, args...))
}

func (d *Device) fail(what string) error {
	if d.FailCreate {
		d.FailCreate = false
		return fmt.Errorf("gputest: create %s failed", what)
	}
	return nil
}

// Reset clears the recorded draws and ops, keeping resources.
func (d *Device) Reset() {
	d.Draws = d.Draws[:0]
	d.Ops = d.Ops[:0]
}

func (d *Device) CreateVertexArray() (core.VertexArray, error) {
	if err := d.fail("vertex array"); err != nil {
		return 0, err
	}
	va := core.VertexArray(d.handle())
	d.VertexArrays[va] = true
	d.op("CreateVertexArray %d", va)
	return va, nil
}

func (d *Device) BindVertexArray(va core.VertexArray) {
	d.BoundVA = va
	d.op("BindVertexArray %d", va)
}

func (d *Device) DeleteVertexArray(va core.VertexArray) {
	delete(d.VertexArrays, va)
	d.op("DeleteVertexArray %d", va)
}

func (d *Device) CreateBuffer(kind core.BufferKind, sizeBytes int, usage core.BufferUsage) (core.Buffer, error) {
	if err := d.fail("buffer"); err != nil {
		return 0, err
	}
	b := core.Buffer(d.handle())
	buf := &Buffer{Kind: kind, Usage: usage, Size: sizeBytes}
	if kind == core.BufferVertex {
		buf.Floats = make([]float32, sizeBytes/4)
	} else {
		buf.Indices = make([]uint32, sizeBytes/4)
	}
	d.Buffers[b] = buf
	d.op("CreateBuffer %d kind=%d size=%d", b, kind, sizeBytes)
	return b, nil
}

func (d *Device) UpdateBuffer(b core.Buffer, offsetBytes int, data any) error {
	buf, ok := d.Buffers[b]
	if !ok {
		return fmt.Errorf("gputest: unknown buffer %d", b)
	}
	n, ok := core.SizeOfData(data)
	if !ok {
		return fmt.Errorf("gputest: unsupported buffer data %T", data)
	}
	if offsetBytes < 0 || offsetBytes+n > buf.Size {
		return fmt.Errorf("gputest: write [%d,%d) out of bounds of buffer %d (%d bytes)", offsetBytes, offsetBytes+n, b, buf.Size)
	}
	switch v := data.(type) {
	case []float32:
		if buf.Kind != core.BufferVertex {
			return fmt.Errorf("gputest: float data into index buffer %d", b)
		}
		copy(buf.Floats[offsetBytes/4:], v)
	case []uint32:
		if buf.Kind != core.BufferIndex {
			return fmt.Errorf("gputest: index data into vertex buffer %d", b)
		}
		copy(buf.Indices[offsetBytes/4:], v)
	}
	buf.Writes++
	buf.LastWrite = n
	d.op("UpdateBuffer %d off=%d len=%d", b, offsetBytes, n)
	return nil
}

func (d *Device) DeleteBuffer(b core.Buffer) {
	delete(d.Buffers, b)
	d.op("DeleteBuffer %d", b)
}

func (d *Device) SetVertexAttribute(index, size, strideBytes, offsetBytes int) {
	d.Attributes[index] = core.VertexAttrib{Location: index, Size: size, Type: core.AttribFloat32, Offset: offsetBytes}
	d.op("SetVertexAttribute %d size=%d stride=%d off=%d", index, size, strideBytes, offsetBytes)
}

func (d *Device) EnableVertexAttribute(index int) {
	d.enabled[index] = true
	d.op("EnableVertexAttribute %d", index)
}

func (d *Device) DisableVertexAttribute(index int) {
	delete(d.enabled, index)
	d.op("DisableVertexAttribute %d", index)
}

// EnabledAttributes is the number of currently enabled attributes.
func (d *Device) EnabledAttributes() int { return len(d.enabled) }

func (d *Device) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if err := d.fail("texture"); err != nil {
		return 0, err
	}
	if len(desc.Pixels) != desc.Width*desc.Height*4 {
		return 0, fmt.Errorf("gputest: texture %dx%d with %d bytes", desc.Width, desc.Height, len(desc.Pixels))
	}
	t := core.Texture(d.handle())
	d.Textures[t] = desc
	d.op("CreateTexture %d %dx%d", t, desc.Width, desc.Height)
	return t, nil
}

func (d *Device) BindTexture(t core.Texture) {
	d.BoundTex = t
	d.op("BindTexture %d", t)
}

func (d *Device) DeleteTexture(t core.Texture) {
	delete(d.Textures, t)
	d.op("DeleteTexture %d", t)
}

var uniformDecl = regexp.MustCompile(`uniform\s+[a-zA-Z0-9]+\s+([a-zA-Z0-9_]+)`)

// CreateProgram records the uniforms declared in both sources.
func (d *Device) CreateProgram(vertexSrc, fragmentSrc string) (core.Program, error) {
	if err := d.fail("program"); err != nil {
		return 0, err
	}
	if strings.TrimSpace(vertexSrc) == "" || strings.TrimSpace(fragmentSrc) == "" {
		return 0, fmt.Errorf("gputest: empty shader source")
	}
	p := core.Program(d.handle())
	var names []string
	for _, src := range []string{vertexSrc, fragmentSrc} {
		for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
			names = append(names, m[1])
		}
	}
	d.Programs[p] = names
	d.op("CreateProgram %d", p)
	return p, nil
}

func (d *Device) UseProgram(p core.Program) {
	d.BoundProg = p
	d.op("UseProgram %d", p)
}

func (d *Device) DeleteProgram(p core.Program) {
	delete(d.Programs, p)
	d.op("DeleteProgram %d", p)
}

func (d *Device) UniformLocation(p core.Program, name string) (int32, bool) {
	for _, n := range d.Programs[p] {
		if n == name {
			key := fmt.Sprintf("%d/%s", p, name)
			loc, ok := d.uniformLoc[key]
			if !ok {
				loc = int32(len(d.uniformLoc))
				d.uniformLoc[key] = loc
			}
			return loc, true
		}
	}
	return -1, false
}

func (d *Device) SetUniformMat4(loc int32, m [16]float32) {
	d.Uniforms[loc] = m
	d.op("SetUniformMat4 %d", loc)
}

func (d *Device) SetUniformInt(loc int32, v int32) {
	d.Uniforms[loc] = v
	d.op("SetUniformInt %d %d", loc, v)
}

func (d *Device) SetViewport(x, y, w, h int) {
	d.Viewport = [4]int{x, y, w, h}
	d.op("SetViewport %d %d %d %d", x, y, w, h)
}

func (d *Device) SetBlend(enabled bool) {
	d.Blend = enabled
	d.op("SetBlend %t", enabled)
}

func (d *Device) SetDepthTest(enabled bool) {
	d.DepthTest = enabled
	d.op("SetDepthTest %t", enabled)
}

func (d *Device) DrawIndexed(prim core.Primitive, indexCount, indexOffsetBytes int) {
	d.Draws = append(d.Draws, Draw{
		Prim:        prim,
		Count:       indexCount,
		OffsetBytes: indexOffsetBytes,
		Texture:     d.BoundTex,
		VertexArray: d.BoundVA,
		Enabled:     len(d.enabled),
	})
	d.op("DrawIndexed %d %d", indexCount, indexOffsetBytes)
}

// Program sources declaring the uniforms the renderers look up.
const (
	SpriteVertex = `#version 330 core
uniform mat4 uVP;
void main() {}
`
	SpriteFragment = `#version 330 core
uniform sampler2D uTexture;
void main() {}
`
	CanvasVertex = `#version 330 core
uniform mat4 uProjection;
void main() {}
`
	CanvasFragment = SpriteFragment
)
