package core

// Handles returned by a Device. Zero is never a valid handle.
type (
	Buffer      uint32
	VertexArray uint32
	Program     uint32
	Texture     uint32
)

type BufferKind int

const (
	BufferVertex BufferKind = iota
	BufferIndex
)

type BufferUsage int

const (
	UsageStatic BufferUsage = iota
	UsageDynamic
)

type Primitive int

const (
	PrimitiveTriangles Primitive = iota
	PrimitiveLines
)

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

// VertexAttrib describes one interleaved attribute. Offset is in bytes.
type VertexAttrib struct {
	Location int
	Size     int
	Type     AttribType
	Offset   int
}

// VertexLayout is the stride (bytes) plus the attribute list of a vertex buffer.
type VertexLayout struct {
	Stride     int
	Attributes []VertexAttrib
}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type TextureDesc struct {
	Width, Height        int
	Format               TextureFormat
	Pixels               []byte
	MinFilter, MagFilter string // "nearest" | "linear"
	WrapU, WrapV         string // "clamp" | "repeat"
}

// Device is the narrow GPU surface the renderers are written against.
// Buffer data passed to UpdateBuffer is either []float32 or []uint32.
type Device interface {
	CreateVertexArray() (VertexArray, error)
	BindVertexArray(va VertexArray)
	DeleteVertexArray(va VertexArray)

	CreateBuffer(kind BufferKind, sizeBytes int, usage BufferUsage) (Buffer, error)
	UpdateBuffer(buf Buffer, offsetBytes int, data any) error
	DeleteBuffer(buf Buffer)

	SetVertexAttribute(index, size, strideBytes, offsetBytes int)
	EnableVertexAttribute(index int)
	DisableVertexAttribute(index int)

	CreateTexture(desc TextureDesc) (Texture, error)
	BindTexture(tex Texture)
	DeleteTexture(tex Texture)

	CreateProgram(vertexSrc, fragmentSrc string) (Program, error)
	UseProgram(p Program)
	DeleteProgram(p Program)
	UniformLocation(p Program, name string) (int32, bool)
	SetUniformMat4(location int32, m [16]float32)
	SetUniformInt(location int32, v int32)

	SetViewport(x, y, w, h int)
	SetBlend(enabled bool)
	SetDepthTest(enabled bool)

	DrawIndexed(prim Primitive, indexCount, indexOffsetBytes int)
}

// SizeOfData returns the byte length of a buffer payload accepted by UpdateBuffer.
func SizeOfData(data any) (int, bool) {
	switch d := data.(type) {
	case []float32:
		return len(d) * 4, true
	case []uint32:
		return len(d) * 4, true
	default:
		return 0, false
	}
}
