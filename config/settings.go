package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Range of the panel sliders
const (
	SliderMin = 0.0
	SliderMax = 10.0
)

var (
	ErrViewportSize = errors.New("config: viewport width and height must be positive")
	ErrClipPlanes   = errors.New("config: near must be positive and less than far")
	ErrCubeCount    = errors.New("config: cube count must not be negative")
	ErrUnknownField = errors.New("config: unknown slider field")
)

// Field names a float slider of the settings panel
type Field string

const (
	FieldOrbitRadius        Field = "orbit_radius"
	FieldOrbitSpeed         Field = "orbit_speed"
	FieldFieldOfView        Field = "field_of_view"
	FieldOrthographicHeight Field = "orthographic_height"
)

// Sliders lists the panel sliders in display order
var Sliders = []Field{FieldOrbitRadius, FieldOrbitSpeed, FieldFieldOfView, FieldOrthographicHeight}

// Settings is the per-frame scene state edited by the panel and by the settings file.
type Settings struct {
	OrbitRadius        float64    `yaml:"orbit_radius"`
	OrbitSpeed         float64    `yaml:"orbit_speed"`
	FieldOfView        float64    `yaml:"field_of_view"` // degrees
	OrthographicHeight float64    `yaml:"orthographic_height"`
	Orthographic       bool       `yaml:"orthographic"`
	Background         [3]float64 `yaml:"background"` // RGB in [0,1]

	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Near   float64 `yaml:"near"`
	Far    float64 `yaml:"far"`

	Cubes int    `yaml:"cubes"`
	Seed  uint64 `yaml:"seed"` // 0 lets the caller pick one
}

// Default returns the settings the scene starts with
func Default() Settings {
	return Settings{
		OrbitRadius:        4,
		OrbitSpeed:         1,
		FieldOfView:        8,
		OrthographicHeight: 5,
		Orthographic:       false,
		Background:         [3]float64{0, 0, 0},
		Width:              1080,
		Height:             720,
		Near:               0.1,
		Far:                50,
		Cubes:              8,
	}
}

// Load reads a YAML settings file; keys missing from the file keep their default value.
func Load(filename string) (Settings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Settings{}, fmt.Errorf("config: load %s: %w", filename, err)
	}

	settings, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("config: %s: %w", filename, err)
	}

	return settings, nil
}

// Parse decodes YAML over the defaults, then validates and clamps the result
func Parse(data []byte) (Settings, error) {
	settings := Default()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("unmarshal: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	settings.Clamp()

	return settings, nil
}

// Validate rejects settings the projection math would divide by zero on
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrViewportSize, s.Width, s.Height)
	}
	if s.Near <= 0 || s.Near >= s.Far {
		return fmt.Errorf("%w: near=%v far=%v", ErrClipPlanes, s.Near, s.Far)
	}
	if s.Cubes < 0 {
		return fmt.Errorf("%w: %d", ErrCubeCount, s.Cubes)
	}

	return nil
}

// Clamp keeps every slider value inside [SliderMin, SliderMax]
func (s *Settings) Clamp() {
	for _, field := range Sliders {
		v, _ := s.value(field)
		*v = clamp(*v)
	}
}

// Get returns the value of a slider field
func (s *Settings) Get(field Field) (float64, error) {
	v, err := s.value(field)
	if err != nil {
		return 0, err
	}

	return *v, nil
}

// Step moves a slider by delta and returns the clamped result
func (s *Settings) Step(field Field, delta float64) (float64, error) {
	v, err := s.value(field)
	if err != nil {
		return 0, err
	}
	*v = clamp(*v + delta)

	return *v, nil
}

func (s *Settings) value(field Field) (*float64, error) {
	switch field {
	case FieldOrbitRadius:
		return &s.OrbitRadius, nil
	case FieldOrbitSpeed:
		return &s.OrbitSpeed, nil
	case FieldFieldOfView:
		return &s.FieldOfView, nil
	case FieldOrthographicHeight:
		return &s.OrthographicHeight, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
}

func clamp(v float64) float64 {
	return min(max(v, SliderMin), SliderMax)
}

// Label is the panel caption of a slider field
func (f Field) Label() string {
	switch f {
	case FieldOrbitRadius:
		return "Orbit Radius"
	case FieldOrbitSpeed:
		return "Orbit Speed"
	case FieldFieldOfView:
		return "Field of View"
	case FieldOrthographicHeight:
		return "Orthographic Height"
	default:
		return string(f)
	}
}
