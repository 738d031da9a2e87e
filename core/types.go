package core

import "github.com/go-gl/mathgl/mgl32"

// Axis identifies which axis a handle operates on.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Axes lists the three axes in iteration order.
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

// Vec3 returns the unit vector for the axis.
func (a Axis) Vec3() mgl32.Vec3 {
	switch a {
	case AxisX:
		return mgl32.Vec3{1, 0, 0}
	case AxisY:
		return mgl32.Vec3{0, 1, 0}
	default:
		return mgl32.Vec3{0, 0, 1}
	}
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "?"
}

// Operation is the kind of manipulation a handle performs.
type Operation int

const (
	OpTranslateAxis Operation = iota
	OpTranslatePlane
	OpRotate
	OpScaleAxis
	OpScaleUniform
)

func (op Operation) String() string {
	switch op {
	case OpTranslateAxis:
		return "TranslateAxis"
	case OpTranslatePlane:
		return "TranslatePlane"
	case OpRotate:
		return "Rotate"
	case OpScaleAxis:
		return "ScaleAxis"
	case OpScaleUniform:
		return "ScaleUniform"
	}
	return "Unknown"
}

// Mode is the transform component being edited, for UI display only.
// Interaction uses Operation.
type Mode int

const (
	ModeTranslate Mode = iota
	ModeRotate
	ModeScale
)

func (m Mode) String() string {
	switch m {
	case ModeTranslate:
		return "Translate"
	case ModeRotate:
		return "Rotate"
	case ModeScale:
		return "Scale"
	}
	return "Unknown"
}

// Space selects the coordinate space of the translate and rotate handles.
type Space int

const (
	SpaceLocal Space = iota
	SpaceWorld
)

func (s Space) String() string {
	if s == SpaceWorld {
		return "World"
	}
	return "Local"
}

// Toggle returns the other space.
func (s Space) Toggle() Space {
	if s == SpaceWorld {
		return SpaceLocal
	}
	return SpaceWorld
}

// AxisKind selects which basis of a Frame to read.
type AxisKind int

const (
	KindTranslate AxisKind = iota
	KindRotate
	KindScale
)

// TargetID identifies a target owned by the host.
type TargetID uint64

// Transform is a decomposed world transform.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Target is one object the gizmo can manipulate.
type Target struct {
	ID    TargetID
	World Transform
}

// Ray is a world-space ray. Direction is expected to be normalized.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// View is the camera basis in world space.
type View struct {
	Forward mgl32.Vec3
	Right   mgl32.Vec3
	Up      mgl32.Vec3
}

// ViewFromRotation derives a View from a camera orientation, using -Z as forward.
func ViewFromRotation(rot mgl32.Quat) View {
	return View{
		Forward: rot.Rotate(mgl32.Vec3{0, 0, -1}),
		Right:   rot.Rotate(mgl32.Vec3{1, 0, 0}),
		Up:      rot.Rotate(mgl32.Vec3{0, 1, 0}),
	}
}
