package core

import "github.com/go-gl/mathgl/mgl32"

// Frame holds the per-target origin and handle directions for one frame.
// Translate and rotate handles follow the gizmo space; scale handles always
// follow the target rotation.
type Frame struct {
	Origin    mgl32.Vec3
	translate [3]mgl32.Vec3
	scale     [3]mgl32.Vec3
}

func NewFrame(world Transform, space Space) Frame {
	rot := world.Rotation
	local := [3]mgl32.Vec3{
		rot.Rotate(AxisX.Vec3()),
		rot.Rotate(AxisY.Vec3()),
		rot.Rotate(AxisZ.Vec3()),
	}

	f := Frame{Origin: world.Translation, scale: local}
	if space == SpaceWorld {
		f.translate = [3]mgl32.Vec3{AxisX.Vec3(), AxisY.Vec3(), AxisZ.Vec3()}
	} else {
		f.translate = local
	}
	return f
}

func (f Frame) AxisDir(axis Axis, kind AxisKind) mgl32.Vec3 {
	if kind == KindScale {
		return f.scale[axis]
	}
	return f.translate[axis]
}

// PlaneAxes returns the two axes spanning the plane whose normal is axis.
func PlaneAxes(normal Axis) (Axis, Axis) {
	switch normal {
	case AxisX:
		return AxisY, AxisZ
	case AxisY:
		return AxisX, AxisZ
	default:
		return AxisX, AxisY
	}
}

// RingNeighbors returns the axes a rotation arc is drawn between.
func RingNeighbors(axis Axis) (Axis, Axis) {
	switch axis {
	case AxisX:
		return AxisY, AxisZ
	case AxisY:
		return AxisZ, AxisX
	default:
		return AxisX, AxisY
	}
}

// arcCenterAngle is the angle, in the AxisBasis of axisDir, of the bisector
// of the two neighbour directions projected into the rotation plane.
func arcCenterAngle(axisDir, n1, n2 mgl32.Vec3) float32 {
	t1, t2 := AxisBasis(axisDir)
	mid := normalizeOrZero(rejectFrom(n1, axisDir).Add(rejectFrom(n2, axisDir)))
	if isZero(mid) {
		return 0
	}
	return planarAngle(mid, t1, t2)
}
