package renderer2d

import (
	"fmt"

	"github.com/hubastard/quadbatch/engine/core"
)

// TextureProvider resolves a TextureID to a device texture. NoTexture must
// resolve to an opaque 1x1 white texture.
type TextureProvider interface {
	Texture(id TextureID) (core.Texture, error)
}

// TextureSet is the default TextureProvider: a registry of device textures
// plus the white texture behind NoTexture.
type TextureSet struct {
	dev   core.Device
	white core.Texture
	byID  map[TextureID]core.Texture
	next  TextureID
}

func NewTextureSet(dev core.Device) (*TextureSet, error) {
	white, err := dev.CreateTexture(core.TextureDesc{
		Width: 1, Height: 1,
		Format:    core.TextureRGBA8,
		Pixels:    []byte{255, 255, 255, 255},
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return nil, fmt.Errorf("white texture: %w", err)
	}
	return &TextureSet{
		dev:   dev,
		white: white,
		byID:  make(map[TextureID]core.Texture),
		next:  1,
	}, nil
}

// Register adopts an existing device texture and returns its id.
func (s *TextureSet) Register(tex core.Texture) TextureID {
	id := s.next
	s.next++
	s.byID[id] = tex
	return id
}

// Create uploads a texture and registers it.
func (s *TextureSet) Create(desc core.TextureDesc) (TextureID, error) {
	tex, err := s.dev.CreateTexture(desc)
	if err != nil {
		return NoTexture, err
	}
	return s.Register(tex), nil
}

func (s *TextureSet) Texture(id TextureID) (core.Texture, error) {
	if id == NoTexture {
		return s.white, nil
	}
	tex, ok := s.byID[id]
	if !ok {
		return 0, fmt.Errorf("%w: id %d", ErrInvalidTexture, id)
	}
	return tex, nil
}

// Release deletes one texture. Releasing NoTexture or an unknown id is a no-op.
func (s *TextureSet) Release(id TextureID) {
	if tex, ok := s.byID[id]; ok {
		s.dev.DeleteTexture(tex)
		delete(s.byID, id)
	}
}

func (s *TextureSet) Len() int { return len(s.byID) }

// Destroy deletes every texture including the white one.
func (s *TextureSet) Destroy() {
	for id, tex := range s.byID {
		s.dev.DeleteTexture(tex)
		delete(s.byID, id)
	}
	if s.white != 0 {
		s.dev.DeleteTexture(s.white)
		s.white = 0
	}
}
