package colors

// Color is straight (non-premultiplied) RGBA in [0..1].
type Color [4]float32

var (
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Magenta     = Color{1, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
	Transparent = Color{}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Scale multiplies the RGB channels by f, clamped to 1. Alpha is kept.
func (c Color) Scale(f float32) Color {
	for i := 0; i < 3; i++ {
		c[i] *= f
		if c[i] > 1 {
			c[i] = 1
		}
	}
	return c
}

// Mul is the component-wise product, used for tinting.
func (c Color) Mul(o Color) Color {
	return Color{c[0] * o[0], c[1] * o[1], c[2] * o[2], c[3] * o[3]}
}

// IsZero reports the zero value, which style structs treat as "unset".
func (c Color) IsZero() bool { return c == Color{} }

// Or returns c, or def when c is the zero value.
func (c Color) Or(def Color) Color {
	if c.IsZero() {
		return def
	}
	return c
}
