// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"
	"github.com/therjak/goinvaders/screen"
)

func shaderType(s screen.Stage) (uint32, error) {
	switch s {
	case screen.VertexStage:
		return gl.VERTEX_SHADER, nil
	case screen.FragmentStage:
		return gl.FRAGMENT_SHADER, nil
	}
	return 0, errors.Errorf("unknown shader stage %d", s)
}

// CompileShader compiles src. A failed compile returns the info log wrapped
// around screen.ErrShaderCompile and leaves no shader behind.
func (d *Device) CompileShader(stage screen.Stage, src string) (uint32, error) {
	st, err := shaderType(stage)
	if err != nil {
		return 0, err
	}
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	shader := gl.CreateShader(st)
	if shader == 0 {
		return 0, errors.Wrapf(screen.ErrShaderCompile, "%v shader: %v", stage, CheckError())
	}
	csource, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(shader, 1, csource, nil)
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := shaderLog(shader)
		gl.DeleteShader(shader)
		return 0, errors.Wrapf(screen.ErrShaderCompile, "%v shader %d: %s", stage, shader, log)
	}
	return shader, nil
}

func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

// LinkProgram links the shaders. As in the tutorial a non-empty info log is
// treated as a failure even when the link status is ok.
func (d *Device) LinkProgram(shaders ...uint32) (uint32, error) {
	p := gl.CreateProgram()
	if p == 0 {
		return 0, errors.Wrapf(screen.ErrProgramLink, "create program: %v", CheckError())
	}
	for _, s := range shaders {
		gl.AttachShader(p, s)
	}
	gl.LinkProgram(p)
	for _, s := range shaders {
		gl.DetachShader(p, s)
	}
	var status int32
	gl.GetProgramiv(p, gl.LINK_STATUS, &status)
	log := programLog(p)
	if status == gl.FALSE || log != "" {
		gl.DeleteProgram(p)
		return 0, errors.Wrapf(screen.ErrProgramLink, "program %d: %s", p, log)
	}
	return p, nil
}

func (d *Device) UseProgram(program uint32, sampler string) {
	gl.UseProgram(program)
	loc := gl.GetUniformLocation(program, gl.Str(sampler+"\x00"))
	gl.Uniform1i(loc, 0)
}

func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func shaderLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}

func programLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}
