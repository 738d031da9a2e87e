package core

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

const (
	// MinScaleDivisor bounds the start distance used as a divisor while scaling.
	MinScaleDivisor float32 = 1e-3
	// MinUniformScale is the smallest uniform factor applied to the start scale.
	MinUniformScale float32 = 0.001
)

// Drag is the snapshot captured when a drag starts. Only the live ray is
// new input while it is in progress.
type Drag struct {
	ID     uuid.UUID
	Target TargetID
	Op     Operation
	Axis   Axis
	Space  Space

	Origin      mgl32.Vec3
	AxisDir     mgl32.Vec3
	PlaneNormal mgl32.Vec3
	PlaneOrigin mgl32.Vec3
	PlaneDir1   mgl32.Vec3
	PlaneDir2   mgl32.Vec3
	PlaneAxis1  Axis
	PlaneAxis2  Axis

	StartTranslation mgl32.Vec3
	StartRotation    mgl32.Quat
	StartScale       mgl32.Vec3

	// StartT is the projected distance, angle or uniform distance at start.
	StartT float32
	// StartVector is the in-plane start vector for planar and rotation drags.
	StartVector mgl32.Vec3
}

// NewDrag captures the drag snapshot for op/axis on target.
func NewDrag(ray Ray, view View, target Target, space Space, op Operation, axis Axis) Drag {
	frame := NewFrame(target.World, space)
	origin := frame.Origin

	var axisVec mgl32.Vec3
	switch op {
	case OpTranslateAxis, OpTranslatePlane:
		axisVec = frame.AxisDir(axis, KindTranslate)
	case OpRotate:
		axisVec = frame.AxisDir(axis, KindRotate)
	case OpScaleAxis:
		axisVec = frame.AxisDir(axis, KindScale)
	case OpScaleUniform:
		axisVec = view.Forward
	}
	axisDir := normalizeOrZero(axisVec)

	d := Drag{
		ID:               uuid.New(),
		Target:           target.ID,
		Op:               op,
		Axis:             axis,
		Space:            space,
		Origin:           origin,
		AxisDir:          axisDir,
		PlaneNormal:      dragPlaneNormal(op, axisDir, view),
		PlaneOrigin:      origin,
		PlaneAxis1:       AxisX,
		PlaneAxis2:       AxisY,
		StartTranslation: target.World.Translation,
		StartRotation:    target.World.Rotation,
		StartScale:       target.World.Scale,
	}

	v := d.hitVector(ray)

	switch op {
	case OpTranslateAxis, OpScaleAxis:
		d.StartT = v.Dot(axisDir)
	case OpRotate:
		t1, t2 := AxisBasis(axisDir)
		d.StartT = planarAngle(v, t1, t2)
		d.StartVector = v
	case OpTranslatePlane:
		d.PlaneAxis1, d.PlaneAxis2 = PlaneAxes(axis)
		d.PlaneDir1 = normalizeOrZero(frame.AxisDir(d.PlaneAxis1, KindTranslate))
		d.PlaneDir2 = normalizeOrZero(frame.AxisDir(d.PlaneAxis2, KindTranslate))
		n := d.PlaneNormal
		d.StartVector = v.Sub(n.Mul(v.Dot(n)))
	case OpScaleUniform:
		d.StartT = v.Len()
	}

	return d
}

// dragPlaneNormal picks the plane the cursor ray is projected onto.
func dragPlaneNormal(op Operation, axisDir mgl32.Vec3, view View) mgl32.Vec3 {
	toCamera := view.Forward.Mul(-1)

	switch op {
	case OpTranslateAxis, OpScaleAxis:
		// Contains the axis and faces the camera as much as possible.
		n := normalizeOrZero(axisDir.Cross(toCamera).Cross(axisDir))
		if isZero(n) {
			return axisDir
		}
		return n
	case OpScaleUniform:
		n := normalizeOrZero(toCamera.Cross(perpendicularHelper(toCamera)))
		if isZero(n) {
			return toCamera
		}
		return n
	default:
		return axisDir
	}
}

// hitVector is the vector from the drag origin to where ray meets the drag
// plane. A missed plane yields the zero vector.
func (d *Drag) hitVector(ray Ray) mgl32.Vec3 {
	p, ok := RayPlane(ray, d.PlaneOrigin, d.PlaneNormal)
	if !ok {
		p = d.Origin
	}
	return p.Sub(d.Origin)
}

// Apply returns current with the drag delta for ray applied. Only the
// transform component the operation edits is replaced.
func (d *Drag) Apply(ray Ray, snap *Snap, current Transform) Transform {
	if snap == nil {
		snap = &Snap{}
	}
	v := d.hitVector(ray)
	out := current

	switch d.Op {
	case OpTranslateAxis:
		delta := snap.Translate.SnapDelta(d.Axis, v.Dot(d.AxisDir)-d.StartT)
		out.Translation = d.StartTranslation.Add(d.AxisDir.Mul(delta))

	case OpTranslatePlane:
		n := d.PlaneNormal
		delta := v.Sub(n.Mul(v.Dot(n))).Sub(d.StartVector)
		u := snap.Translate.SnapDelta(d.PlaneAxis1, delta.Dot(d.PlaneDir1))
		w := snap.Translate.SnapDelta(d.PlaneAxis2, delta.Dot(d.PlaneDir2))
		out.Translation = d.StartTranslation.Add(d.PlaneDir1.Mul(u)).Add(d.PlaneDir2.Mul(w))

	case OpScaleAxis:
		t := v.Dot(d.AxisDir)
		delta := (t - d.StartT) / max(d.StartT, MinScaleDivisor)
		step, ok := snap.Scale.Get(d.Axis)
		scale := d.StartScale
		scale[d.Axis] *= snapScaleRatio(scale[d.Axis], delta, step, ok)
		out.Scale = scale

	case OpScaleUniform:
		factor := float32(1)
		if mgl32.Abs(d.StartT) > MinScaleDivisor {
			factor = v.Len() / d.StartT
		}
		base := d.StartScale
		if step, ok := snap.Scale.Get(AxisX); ok && step > 0 && mgl32.Abs(base.X()) > Epsilon {
			factor = roundTo(base.X()*factor, step) / base.X()
		}
		out.Scale = base.Mul(max(factor, MinUniformScale))

	case OpRotate:
		t1, t2 := AxisBasis(d.AxisDir)
		angle := snap.Rotate.SnapDelta(d.Axis, planarAngle(v, t1, t2)-d.StartT)
		delta := mgl32.QuatRotate(angle, d.AxisDir)
		out.Rotation = delta.Mul(d.StartRotation)
	}

	return out
}
