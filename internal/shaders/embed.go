// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// BlinnVertexShader transforms the mesh and passes world-space position
// and normal to the fragment stage.
//
//go:embed blinn.vert
var BlinnVertexShader string

// BlinnFragmentShader shades with one directional and one point light.
//
//go:embed blinn.frag
var BlinnFragmentShader string

// Attribute names bound by the renderer.
const (
	AttribPosition = "vPosition"
	AttribNormal   = "vNormal"
)

// Uniform names set every frame.
const (
	UniformMatrix         = "mat"
	UniformLightDir       = "lightDir"
	UniformPointerLight   = "lightDirM"
	UniformLightColor     = "lightColor"
	UniformPointerColor   = "lightColorM"
	UniformAmbientColor   = "ambientColor"
	UniformSurfaceDiffuse = "surfaceDiffuse"
	UniformSurfaceSpec    = "surfaceSpec"
	UniformSurfaceSpecM   = "surfaceSpecM"
)

// Uniforms lists every uniform the program is expected to expose.
var Uniforms = []string{
	UniformMatrix,
	UniformLightDir,
	UniformPointerLight,
	UniformLightColor,
	UniformPointerColor,
	UniformAmbientColor,
	UniformSurfaceDiffuse,
	UniformSurfaceSpec,
	UniformSurfaceSpecM,
}

// Attribs lists the vertex attributes, normals first to match upload order.
var Attribs = []string{AttribNormal, AttribPosition}
