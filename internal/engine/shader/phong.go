package shader

import _ "embed"

// Vertex attribute names and their fixed locations.
const (
	AttribPosition = "a_position"
	AttribColor    = "a_color"
	AttribNormal   = "a_normal"

	LocationPosition = 0
	LocationColor    = 1
	LocationNormal   = 2
)

// Uniform names shared by the Phong program and the renderer.
const (
	UniformModel          = "modelMatrix"
	UniformView           = "viewMatrix"
	UniformProjection     = "projectionMatrix"
	UniformNormal         = "normalMatrix"
	UniformLightDirection = "lightDirection"
	UniformCameraPosition = "cameraPosition"
	UniformAmbient        = "ambientCoeff"
	UniformDiffuse        = "diffuseCoeff"
	UniformSpecular       = "specularCoeff"
	UniformShininess      = "shininess"
	UniformLightColor     = "lightColor"
	UniformGamma          = "gamma"
)

// PhongUniforms lists every uniform of the Phong program.
var PhongUniforms = []string{
	UniformModel,
	UniformView,
	UniformProjection,
	UniformNormal,
	UniformLightDirection,
	UniformCameraPosition,
	UniformAmbient,
	UniformDiffuse,
	UniformSpecular,
	UniformShininess,
	UniformLightColor,
	UniformGamma,
}

// PhongVertex transforms to clip space and passes world-space position and
// normal to the fragment stage.
//
//go:embed phong.vert
var PhongVertex string

// PhongFragment must stay in step with shading.Evaluate.
//
//go:embed phong.frag
var PhongFragment string
