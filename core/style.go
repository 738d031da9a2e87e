package core

import (
	"errors"
	"fmt"
)

// Color is a linear RGBA colour.
type Color [4]float32

func RGB(r, g, b float32) Color     { return Color{r, g, b, 1} }
func RGBA(r, g, b, a float32) Color { return Color{r, g, b, a} }

// StateColors holds the colours of one element for each interaction state.
type StateColors struct {
	Idle   Color `yaml:"idle"`
	Hover  Color `yaml:"hover"`
	Active Color `yaml:"active"`
}

// Pick resolves the colour by priority: active, then hovered, then idle.
func (c StateColors) Pick(active, hovered bool) Color {
	switch {
	case active:
		return c.Active
	case hovered:
		return c.Hover
	default:
		return c.Idle
	}
}

func DefaultStateColors() StateColors {
	return StateColors{
		Idle:   RGB(0.8, 0.8, 0.8),
		Hover:  RGB(1.0, 1.0, 1.0),
		Active: RGB(1.0, 1.0, 0.8),
	}
}

// AxisColors holds per-axis colours of a handle group.
type AxisColors struct {
	X StateColors `yaml:"x"`
	Y StateColors `yaml:"y"`
	Z StateColors `yaml:"z"`
}

// UniformAxisColors uses the same colours for all three axes.
func UniformAxisColors(c StateColors) AxisColors {
	return AxisColors{X: c, Y: c, Z: c}
}

func DefaultAxisColors() AxisColors {
	return AxisColors{
		X: StateColors{Idle: RGB(1.0, 0.25, 0.25), Hover: RGB(1.0, 0.7, 0.7), Active: RGB(1.0, 0.9, 0.9)},
		Y: StateColors{Idle: RGB(0.25, 1.0, 0.25), Hover: RGB(0.7, 1.0, 0.7), Active: RGB(0.9, 1.0, 0.9)},
		Z: StateColors{Idle: RGB(0.25, 0.5, 1.0), Hover: RGB(0.7, 0.8, 1.0), Active: RGB(0.9, 0.95, 1.0)},
	}
}

func (c AxisColors) For(axis Axis) StateColors {
	switch axis {
	case AxisX:
		return c.X
	case AxisY:
		return c.Y
	default:
		return c.Z
	}
}

// AxisToggles enables handles per axis.
type AxisToggles struct {
	X bool `yaml:"x"`
	Y bool `yaml:"y"`
	Z bool `yaml:"z"`
}

func AllAxes() AxisToggles { return AxisToggles{X: true, Y: true, Z: true} }
func NoAxes() AxisToggles  { return AxisToggles{} }

func (t AxisToggles) Enabled(axis Axis) bool {
	switch axis {
	case AxisX:
		return t.X
	case AxisY:
		return t.Y
	default:
		return t.Z
	}
}

// Style controls visibility, sizing and colours of the gizmo. It may be
// changed at any time; changes apply on the next hit-test and render.
type Style struct {
	ShowAxisLines bool        `yaml:"show_axis_lines"`
	ShowTranslate bool        `yaml:"show_translate"`
	TranslateAxes AxisToggles `yaml:"translate_axes"`
	ShowRotate    bool        `yaml:"show_rotate"`
	RotateAxes    AxisToggles `yaml:"rotate_axes"`
	ShowScale     bool        `yaml:"show_scale"`
	ScaleAxes     AxisToggles `yaml:"scale_axes"`

	LineWidth  float32 `yaml:"line_width"`
	DepthBias  float32 `yaml:"depth_bias"`
	AxisLength float32 `yaml:"axis_length"`

	AxisLineColors  AxisColors `yaml:"axis_line_colors"`
	TranslateColors AxisColors `yaml:"translate_colors"`
	RotateColors    AxisColors `yaml:"rotate_colors"`
	ScaleColors     AxisColors `yaml:"scale_colors"`

	TranslateConeLength float32 `yaml:"translate_cone_length"`
	TranslateConeRadius float32 `yaml:"translate_cone_radius"`
	TranslateHitRadius  float32 `yaml:"translate_hit_radius"`

	ScaleCubeSize   float32 `yaml:"scale_cube_size"`
	ScaleCubeOffset float32 `yaml:"scale_cube_offset"` // fraction of AxisLength
	ScaleHitRadius  float32 `yaml:"scale_hit_radius"`

	RotationArcDegrees   float32 `yaml:"rotation_arc_degrees"`
	RotationArcSegments  int     `yaml:"rotation_arc_segments"`
	RotationArcThickness float32 `yaml:"rotation_arc_thickness"`
	RotationHitThickness float32 `yaml:"rotation_hit_thickness"`

	BoundsRadius float32 `yaml:"bounds_radius"`

	ShowTranslatePlanes        bool    `yaml:"show_translate_planes"`
	TranslatePlaneSize         float32 `yaml:"translate_plane_size"`
	TranslatePlaneOffset       float32 `yaml:"translate_plane_offset"`
	TranslatePlaneHitThickness float32 `yaml:"translate_plane_hit_thickness"`

	ShowScaleUniform      bool        `yaml:"show_scale_uniform"`
	ScaleUniformSize      float32     `yaml:"scale_uniform_size"`
	ScaleUniformHitRadius float32     `yaml:"scale_uniform_hit_radius"`
	ScaleUniformColors    StateColors `yaml:"scale_uniform_colors"`

	ShowOriginDot  bool    `yaml:"show_origin_dot"`
	OriginDotSize  float32 `yaml:"origin_dot_size"`
	OriginDotColor Color   `yaml:"origin_dot_color"`
}

func DefaultStyle() Style {
	const (
		axisLength          = 2.0
		translateConeLength = 0.4
		scaleCubeSize       = 0.2
	)
	colors := DefaultAxisColors()

	return Style{
		ShowAxisLines: true,
		ShowTranslate: true,
		TranslateAxes: AllAxes(),
		ShowRotate:    true,
		RotateAxes:    AllAxes(),
		ShowScale:     true,
		ScaleAxes:     AllAxes(),

		LineWidth:  4.0,
		DepthBias:  -1.0,
		AxisLength: axisLength,

		AxisLineColors:  colors,
		TranslateColors: colors,
		RotateColors:    colors,
		ScaleColors:     colors,

		TranslateConeLength: translateConeLength,
		TranslateConeRadius: 0.12,
		TranslateHitRadius:  translateConeLength * 0.9,

		ScaleCubeSize:   scaleCubeSize,
		ScaleCubeOffset: 0.7,
		ScaleHitRadius:  scaleCubeSize * 0.9,

		RotationArcDegrees:   30,
		RotationArcSegments:  20,
		RotationArcThickness: 0.05,
		RotationHitThickness: 0.25,

		BoundsRadius: axisLength + translateConeLength + scaleCubeSize,

		ShowTranslatePlanes:        true,
		TranslatePlaneSize:         0.5,
		TranslatePlaneOffset:       0.35,
		TranslatePlaneHitThickness: 0.1,

		ShowScaleUniform:      true,
		ScaleUniformSize:      0.27,
		ScaleUniformHitRadius: 0.35,
		ScaleUniformColors: StateColors{
			Idle:   RGBA(1.0, 1.0, 1.0, 0.9),
			Hover:  RGBA(1.0, 1.0, 1.0, 1.0),
			Active: RGBA(1.0, 0.9, 0.8, 1.0),
		},

		ShowOriginDot:  true,
		OriginDotSize:  0.1,
		OriginDotColor: RGB(1.0, 0.6, 0.2),
	}
}

// ShowOnly restricts the visible handle groups to those editing mode.
func (s *Style) ShowOnly(mode Mode) {
	s.ShowTranslate = mode == ModeTranslate
	s.ShowRotate = mode == ModeRotate
	s.ShowScale = mode == ModeScale
}

// ShowAll makes every handle group visible.
func (s *Style) ShowAll() {
	s.ShowTranslate = true
	s.ShowRotate = true
	s.ShowScale = true
}

var ErrNegativeSize = errors.New("style size must not be negative")

// Validate reports the first negative size or radius.
func (s *Style) Validate() error {
	sizes := []struct {
		name string
		v    float32
	}{
		{"line_width", s.LineWidth},
		{"axis_length", s.AxisLength},
		{"translate_cone_length", s.TranslateConeLength},
		{"translate_cone_radius", s.TranslateConeRadius},
		{"translate_hit_radius", s.TranslateHitRadius},
		{"scale_cube_size", s.ScaleCubeSize},
		{"scale_cube_offset", s.ScaleCubeOffset},
		{"scale_hit_radius", s.ScaleHitRadius},
		{"rotation_arc_degrees", s.RotationArcDegrees},
		{"rotation_arc_thickness", s.RotationArcThickness},
		{"rotation_hit_thickness", s.RotationHitThickness},
		{"bounds_radius", s.BoundsRadius},
		{"translate_plane_size", s.TranslatePlaneSize},
		{"translate_plane_offset", s.TranslatePlaneOffset},
		{"translate_plane_hit_thickness", s.TranslatePlaneHitThickness},
		{"scale_uniform_size", s.ScaleUniformSize},
		{"scale_uniform_hit_radius", s.ScaleUniformHitRadius},
		{"origin_dot_size", s.OriginDotSize},
	}
	for _, sz := range sizes {
		if sz.v < 0 {
			return fmt.Errorf("%s = %v: %w", sz.name, sz.v, ErrNegativeSize)
		}
	}
	if s.RotationArcSegments < 0 {
		return fmt.Errorf("rotation_arc_segments = %d: %w", s.RotationArcSegments, ErrNegativeSize)
	}
	return nil
}
