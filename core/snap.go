package core

import "github.com/go-gl/mathgl/mgl32"

// AxisSnap holds optional snap increments per axis. A nil entry disables
// snapping on that axis.
type AxisSnap struct {
	X *float32 `yaml:"x,omitempty"`
	Y *float32 `yaml:"y,omitempty"`
	Z *float32 `yaml:"z,omitempty"`
}

func NoSnap() AxisSnap { return AxisSnap{} }

// UniformSnap uses the same increment on every axis.
func UniformSnap(increment float32) AxisSnap {
	x, y, z := increment, increment, increment
	return AxisSnap{X: &x, Y: &y, Z: &z}
}

// Get returns the increment for axis and whether one is configured.
func (s AxisSnap) Get(axis Axis) (float32, bool) {
	var p *float32
	switch axis {
	case AxisX:
		p = s.X
	case AxisY:
		p = s.Y
	default:
		p = s.Z
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// With returns a copy with the increment for axis set.
func (s AxisSnap) With(axis Axis, increment float32) AxisSnap {
	v := increment
	switch axis {
	case AxisX:
		s.X = &v
	case AxisY:
		s.Y = &v
	default:
		s.Z = &v
	}
	return s
}

// Without returns a copy with snapping on axis disabled.
func (s AxisSnap) Without(axis Axis) AxisSnap {
	switch axis {
	case AxisX:
		s.X = nil
	case AxisY:
		s.Y = nil
	default:
		s.Z = nil
	}
	return s
}

// Snap holds snap increments per operation class: translation in world
// units, rotation in radians and scale as an absolute multiplier.
type Snap struct {
	Translate AxisSnap `yaml:"translate"`
	Rotate    AxisSnap `yaml:"rotate"`
	Scale     AxisSnap `yaml:"scale"`
}

// SnapDelta rounds delta to the nearest multiple of the axis increment.
// Without a positive increment the delta is returned unchanged.
func (s AxisSnap) SnapDelta(axis Axis, delta float32) float32 {
	step, ok := s.Get(axis)
	if !ok {
		return delta
	}
	return roundTo(delta, step)
}

// snapScaleRatio converts a relative change into a multiplier for base,
// snapping the resulting absolute scale when an increment is configured.
func snapScaleRatio(base, delta float32, step float32, ok bool) float32 {
	raw := 1 + delta
	if !ok || step <= 0 {
		return raw
	}
	snapped := roundTo(base*raw, step)
	if mgl32.Abs(base) > Epsilon {
		return snapped / base
	}
	return raw
}
