package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/quadbatch/engine/core"
)

// cstr returns s null-terminated for gl.Strs.
func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func (r *RendererGL) CreateProgram(vertexSrc, fragmentSrc string) (core.Program, error) {
	prog, err := makeProgram(cstr(vertexSrc), cstr(fragmentSrc))
	if err != nil {
		return 0, err
	}
	p := core.Program(prog)
	r.uniforms[p] = activeUniforms(prog)
	return p, nil
}

func (r *RendererGL) UseProgram(p core.Program) { gl.UseProgram(uint32(p)) }

func (r *RendererGL) DeleteProgram(p core.Program) {
	if _, ok := r.uniforms[p]; !ok {
		return
	}
	gl.DeleteProgram(uint32(p))
	delete(r.uniforms, p)
}

// UniformLocation reports uniforms the linker kept; unused declarations are
// optimised out and count as missing.
func (r *RendererGL) UniformLocation(p core.Program, name string) (int32, bool) {
	loc, ok := r.uniforms[p][name]
	return loc, ok
}

func (r *RendererGL) SetUniformMat4(location int32, m [16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (r *RendererGL) SetUniformInt(location int32, v int32) { gl.Uniform1i(location, v) }

// activeUniforms lists the program's active uniforms by name.
func activeUniforms(prog uint32) map[string]int32 {
	var count, maxLen int32
	gl.GetProgramiv(prog, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(prog, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	out := make(map[string]int32, count)
	buf := make([]uint8, maxLen+1)
	for i := int32(0); i < count; i++ {
		var n, size int32
		var typ uint32
		gl.GetActiveUniform(prog, uint32(i), int32(len(buf)), &n, &size, &typ, &buf[0])
		name := string(buf[:n])
		// arrays report "name[0]"
		name = strings.TrimSuffix(name, "[0]")
		out[name] = gl.GetUniformLocation(prog, gl.Str(cstr(name)))
	}
	return out
}

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DetachShader(prog, vs)
	gl.DetachShader(prog, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
