package renderer2d

import "errors"

var (
	// ErrCapacityExceeded is reported when a quad would overflow a fixed-size
	// buffer. The quad is dropped and rendering continues.
	ErrCapacityExceeded = errors.New("renderer2d: quad capacity exceeded")
	// ErrInvalidTexture means a TextureID could not be resolved at bind time.
	ErrInvalidTexture = errors.New("renderer2d: invalid texture reference")
	// ErrUniformMissing means the shader program lacks a uniform the pass needs.
	ErrUniformMissing = errors.New("renderer2d: shader uniform missing")
	ErrNotStarted     = errors.New("renderer2d: buffers not started")
	ErrDestroyed      = errors.New("renderer2d: buffers destroyed")
)
