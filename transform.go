package gizmo

import (
	"github.com/gekko3d/gizmo/core"
	"github.com/go-gl/mathgl/mgl32"
)

// TransformComponent is the world transform of an entity.
type TransformComponent struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// LocalTransformComponent is the transform relative to the Parent entity.
type LocalTransformComponent struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

type Parent struct {
	Entity EntityId
}

func NewTransform(position mgl32.Vec3) TransformComponent {
	return TransformComponent{
		Position: position,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func NewLocalTransform(position mgl32.Vec3) LocalTransformComponent {
	return LocalTransformComponent{
		Position: position,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func (t TransformComponent) Core() core.Transform {
	return core.Transform{Translation: t.Position, Rotation: t.Rotation, Scale: t.Scale}
}

func (t *TransformComponent) Set(ct core.Transform) {
	t.Position = ct.Translation
	t.Rotation = ct.Rotation
	t.Scale = ct.Scale
}

// composeWorld returns parent * local.
// WorldPos = ParentPos + ParentRot * (ParentScale * LocalPos).
func composeWorld(parent TransformComponent, local LocalTransformComponent) TransformComponent {
	return TransformComponent{
		Position: transformPoint(parent, local.Position),
		Rotation: parent.Rotation.Mul(local.Rotation).Normalize(),
		Scale:    mulElem(parent.Scale, local.Scale),
	}
}

// worldToLocal inverts composeWorld for a child of parent. Near-zero
// parent scale components are guarded by a small offset.
func worldToLocal(parent, world TransformComponent) LocalTransformComponent {
	const guard = 1e-6
	inv := parent.Rotation.Conjugate()
	p := inv.Rotate(world.Position.Sub(parent.Position))
	return LocalTransformComponent{
		Position: divElem(p, parent.Scale, guard),
		Rotation: inv.Mul(world.Rotation).Normalize(),
		Scale:    divElem(world.Scale, parent.Scale, guard),
	}
}

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

func divElem(a, b mgl32.Vec3, guard float32) mgl32.Vec3 {
	var out mgl32.Vec3
	for i := range out {
		d := b[i]
		if mgl32.Abs(d) < guard {
			d = guard
		}
		out[i] = a[i] / d
	}
	return out
}

func transformPoint(t TransformComponent, p mgl32.Vec3) mgl32.Vec3 {
	return t.Position.Add(t.Rotation.Rotate(mulElem(t.Scale, p)))
}
