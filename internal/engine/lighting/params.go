package lighting

import (
	"github.com/Faultbox/bunnylight/internal/config"
	m "github.com/Faultbox/bunnylight/pkg/math"
)

// Params holds the constant colors and reflectances of the scene.
type Params struct {
	LightColor     m.Vec3
	PointerColor   m.Vec3
	Ambient        m.Vec3
	SurfaceDiffuse m.Vec3
	SurfaceSpec    m.Vec3
	SurfaceSpecM   m.Vec3
}

// ParamsFromConfig converts the configured constants.
func ParamsFromConfig(cfg config.LightingConfig) Params {
	return Params{
		LightColor:     vec(cfg.LightColor),
		PointerColor:   vec(cfg.PointerColor),
		Ambient:        vec(cfg.AmbientColor),
		SurfaceDiffuse: vec(cfg.SurfaceDiffuse),
		SurfaceSpec:    vec(cfg.SurfaceSpec),
		SurfaceSpecM:   vec(cfg.SurfaceSpecM),
	}
}

func vec(a [3]float32) m.Vec3 {
	return m.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
