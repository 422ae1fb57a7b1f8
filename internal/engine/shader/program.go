package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/bunnylight/internal/logger"
)

// Program is a linked shader program with its uniform and attribute
// locations resolved once at construction.
type Program struct {
	ID       uint32
	uniforms map[string]int32
	attribs  map[string]int32
}

// NewProgram compiles and links the sources and resolves the named
// uniforms and attributes. Names the driver reports as inactive are kept
// with location -1, which GL treats as a no-op target.
func NewProgram(vertexSrc, fragmentSrc string, uniforms, attribs []string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	p := &Program{
		ID:       id,
		uniforms: make(map[string]int32, len(uniforms)),
		attribs:  make(map[string]int32, len(attribs)),
	}
	for _, name := range uniforms {
		loc := GetUniform(id, name)
		if loc < 0 {
			logger.Warn("uniform inactive", zap.String("name", name), zap.Uint32("program", id))
		}
		p.uniforms[name] = loc
	}
	for _, name := range attribs {
		loc := GetAttrib(id, name)
		if loc < 0 {
			gl.DeleteProgram(id)
			return nil, fmt.Errorf("attribute %q not found in program %d", name, id)
		}
		p.attribs[name] = loc
	}

	logger.Debug("shader program linked",
		zap.Uint32("program", id),
		zap.Int("uniforms", len(p.uniforms)),
		zap.Int("attribs", len(p.attribs)),
	)
	return p, nil
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Uniform returns the cached location of name, or -1 if it was not resolved.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

// Attrib returns the cached location of name, or -1 if it was not resolved.
func (p *Program) Attrib(name string) int32 {
	if loc, ok := p.attribs[name]; ok {
		return loc
	}
	return -1
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}
