package canvas

import "github.com/go-gl/mathgl/mgl32"

// PushTranslate moves the origin of every following draw by (dx,dy).
func (c *Canvas) PushTranslate(dx, dy float32) {
	d := mgl32.Vec2{dx, dy}
	c.stack = append(c.stack, d)
	c.translate = c.translate.Add(d)
}

// PopTranslate undoes the most recent PushTranslate. It panics with
// ErrUnbalancedTranslate when nothing was pushed.
func (c *Canvas) PopTranslate() {
	n := len(c.stack)
	if n == 0 {
		panic(ErrUnbalancedTranslate)
	}
	c.translate = c.translate.Sub(c.stack[n-1])
	c.stack = c.stack[:n-1]
}

// ResetTranslate clears the stack back to the screen origin.
func (c *Canvas) ResetTranslate() {
	c.stack = c.stack[:0]
	c.translate = mgl32.Vec2{}
}

// Translate is the current cumulative offset.
func (c *Canvas) Translate() mgl32.Vec2 { return c.translate }

// TranslateDepth is the number of unpopped pushes.
func (c *Canvas) TranslateDepth() int { return len(c.stack) }
