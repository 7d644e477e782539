package assets

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ErrShaderFormat is returned for sources without both a vertex and a
// fragment section.
var ErrShaderFormat = errors.New("assets: malformed shader source")

// Shader holds the two stages of a single-file shader.
type Shader struct {
	Vertex   string
	Fragment string
}

var typeDirective = regexp.MustCompile(`(?m)^[ \t]*#type[ \t]+([a-zA-Z0-9]+)[ \t]*\r?$`)

// ParseShader splits a source of the form
//
//	#type vertex
//	...
//	#type fragment
//	...
//
// Sections may come in either order. Text before the first directive is ignored.
func ParseShader(src string) (Shader, error) {
	var sh Shader
	marks := typeDirective.FindAllStringSubmatchIndex(src, -1)
	if len(marks) == 0 {
		return sh, fmt.Errorf("%w: no #type directive", ErrShaderFormat)
	}
	for i, m := range marks {
		end := len(src)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		body := strings.TrimLeft(src[m[1]:end], "\r\n")
		switch kind := src[m[2]:m[3]]; kind {
		case "vertex":
			sh.Vertex = body
		case "fragment":
			sh.Fragment = body
		default:
			return sh, fmt.Errorf("%w: unknown stage %q", ErrShaderFormat, kind)
		}
	}
	if strings.TrimSpace(sh.Vertex) == "" {
		return sh, fmt.Errorf("%w: missing vertex stage", ErrShaderFormat)
	}
	if strings.TrimSpace(sh.Fragment) == "" {
		return sh, fmt.Errorf("%w: missing fragment stage", ErrShaderFormat)
	}
	return sh, nil
}

// LoadShader reads and parses a single-file shader.
func LoadShader(path string) (Shader, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Shader{}, fmt.Errorf("load shader %q: %w", path, err)
	}
	sh, err := ParseShader(string(b))
	if err != nil {
		return Shader{}, fmt.Errorf("load shader %q: %w", path, err)
	}
	return sh, nil
}
