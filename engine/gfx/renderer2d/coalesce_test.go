package renderer2d

import (
	"testing"
	"testing/quick"
)

func TestCoalesceRuns(t *testing.T) {
	const t1, t2 TextureID = 1, 2
	quads := quadsWithTextures(t1, t1, t2, t1)
	sorted := (&TextureSort{}).Order(nil, quads, nil)

	calls := Coalesce(nil, sorted)
	want := []DrawCall{{Offset: 0, Count: 18, Texture: t1}, {Offset: 18, Count: 6, Texture: t2}}
	if len(calls) != len(want) {
		t.Fatalf("Coalesce() = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, calls[i], want[i])
		}
	}
}

func TestCoalesceBounds(t *testing.T) {
	if calls := Coalesce(nil, nil); len(calls) != 0 {
		t.Errorf("Coalesce(nil) = %v, want empty", calls)
	}
	if calls := Coalesce(nil, quadsWithTextures(4, 4, 4)); len(calls) != 1 || calls[0].Count != 18 {
		t.Errorf("same texture = %v, want one call of 18", calls)
	}
	if calls := Coalesce(nil, quadsWithTextures(1, 2, 1, 2)); len(calls) != 4 {
		t.Errorf("alternating = %v, want 4 calls", calls)
	}
	// untextured quads batch with each other
	if calls := Coalesce(nil, quadsWithTextures(0, 0)); len(calls) != 1 || calls[0].Texture != NoTexture {
		t.Errorf("untextured = %v, want one NoTexture call", calls)
	}
}

func TestCoalescePartition(t *testing.T) {
	f := func(raw []uint8) bool {
		texs := make([]TextureID, len(raw))
		for i, r := range raw {
			texs[i] = TextureID(r % 4)
		}
		quads := quadsWithTextures(texs...)
		calls := Coalesce(nil, quads)

		next := 0
		for i, c := range calls {
			if c.Offset != next || c.Count <= 0 || c.Count%IndicesPerQuad != 0 {
				return false
			}
			for q := c.Offset / 6; q < (c.Offset+c.Count)/6; q++ {
				if quads[q].Texture != c.Texture {
					return false
				}
			}
			if i > 0 && calls[i-1].Texture == c.Texture {
				return false
			}
			next += c.Count
		}
		return next == IndicesPerQuad*len(quads)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
