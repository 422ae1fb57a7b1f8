// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Controls ControlsConfig `yaml:"controls"`
	Lighting LightingConfig `yaml:"lighting"`
	Mesh     MeshConfig     `yaml:"mesh"`
	Capture  CaptureConfig  `yaml:"capture"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	ClearColor [4]float32 `yaml:"clear_color"`
}

// ControlConfig describes one numeric range control.
type ControlConfig struct {
	Initial float32 `yaml:"initial"`
	Min     float32 `yaml:"min"`
	Max     float32 `yaml:"max"`
	Step    float32 `yaml:"step"`
}

// ControlsConfig holds the six transform controls.
type ControlsConfig struct {
	RotX  ControlConfig `yaml:"rot_x"`
	RotY  ControlConfig `yaml:"rot_y"`
	RotZ  ControlConfig `yaml:"rot_z"`
	Scale ControlConfig `yaml:"scale"`
	TX    ControlConfig `yaml:"translate_x"`
	TY    ControlConfig `yaml:"translate_y"`
}

// LightingConfig holds the fixed lighting constants.
// None of these are adjustable at runtime.
type LightingConfig struct {
	PhaseStep      float64    `yaml:"phase_step"`
	OrbitSpeed     float64    `yaml:"orbit_speed"`
	PointerZ       float32    `yaml:"pointer_z"`
	LightColor     [3]float32 `yaml:"light_color"`
	PointerColor   [3]float32 `yaml:"pointer_color"`
	AmbientColor   [3]float32 `yaml:"ambient_color"`
	SurfaceDiffuse [3]float32 `yaml:"surface_diffuse"`
	SurfaceSpec    [3]float32 `yaml:"surface_spec"`
	SurfaceSpecM   [3]float32 `yaml:"surface_spec_pointer"`
}

// MeshConfig selects the built-in mesh to render.
type MeshConfig struct {
	Name string `yaml:"name"`
	// Fit recentres the mesh and scales its largest half-extent to this
	// value. Zero renders the mesh as authored.
	Fit float32 `yaml:"fit"`
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "bunnylight",
			Width:      512,
			Height:     512,
			Fullscreen: false,
			VSync:      true,
			ClearColor: [4]float32{0.8, 0.8, 0.8, 1.0},
		},
		Controls: ControlsConfig{
			RotX:  ControlConfig{Initial: 0, Min: -180, Max: 180, Step: 1},
			RotY:  ControlConfig{Initial: 0, Min: -180, Max: 180, Step: 1},
			RotZ:  ControlConfig{Initial: 0, Min: -180, Max: 180, Step: 1},
			Scale: ControlConfig{Initial: 1, Min: 0, Max: 2, Step: 0.01},
			TX:    ControlConfig{Initial: 0, Min: -1, Max: 1, Step: 0.01},
			TY:    ControlConfig{Initial: 0, Min: -1, Max: 1, Step: 0.01},
		},
		Lighting: LightingConfig{
			PhaseStep:      0.1,
			OrbitSpeed:     10,
			PointerZ:       3.0,
			LightColor:     [3]float32{0.831, 0.686, 0.216},
			PointerColor:   [3]float32{0.753, 0.753, 0.753},
			AmbientColor:   [3]float32{0.1, 0.1, 0.3},
			SurfaceDiffuse: [3]float32{0.3, 0.2, 0.3},
			SurfaceSpec:    [3]float32{0.8, 0.8, 0.8},
			SurfaceSpecM:   [3]float32{0.8, 0.8, 0.8},
		},
		Mesh: MeshConfig{
			Name: "icosphere",
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Prefix: "bunnylight",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
