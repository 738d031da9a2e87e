package gizmo

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestTransformHierarchy(t *testing.T) {
	app := NewAppBuilder().UseModule(HierarchyModule{}).Build()
	cmd := app.Commands()

	parent := cmd.AddEntity(
		&TransformComponent{
			Position: mgl32.Vec3{10, 0, 0},
			Rotation: mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}),
			Scale:    mgl32.Vec3{2, 2, 2},
		},
	)
	child := cmd.AddEntity(
		&Parent{Entity: parent},
		&LocalTransformComponent{
			Position: mgl32.Vec3{1, 0, 0},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
		&TransformComponent{},
	)
	grandchild := cmd.AddEntity(
		&Parent{Entity: child},
		NewLocalTransform(mgl32.Vec3{0, 3, 0}),
		&TransformComponent{},
	)
	app.FlushCommands()

	app.Step()

	childWorld := componentOf[TransformComponent](cmd, child)
	require.NotNil(t, childWorld)
	// 90° about Y maps local +X to world -Z; parent scale doubles it.
	assertVec(t, mgl32.Vec3{10, 0, -2}, childWorld.Position)
	assertVec(t, mgl32.Vec3{2, 2, 2}, childWorld.Scale)

	grandWorld := componentOf[TransformComponent](cmd, grandchild)
	require.NotNil(t, grandWorld)
	assertVec(t, mgl32.Vec3{10, 6, -2}, grandWorld.Position)
}

func TestTransformHierarchy_ChildBeforeParent(t *testing.T) {
	app := NewAppBuilder().UseModule(HierarchyModule{}).Build()
	cmd := app.Commands()

	// Ids run against the chain, so one pass is not enough.
	grandchild := cmd.AddEntity(NewTransform(mgl32.Vec3{}), NewLocalTransform(mgl32.Vec3{0, 1, 0}))
	child := cmd.AddEntity(NewTransform(mgl32.Vec3{}), NewLocalTransform(mgl32.Vec3{0, 1, 0}))
	parent := cmd.AddEntity(NewTransform(mgl32.Vec3{5, 0, 0}))
	cmd.AddComponents(grandchild, Parent{Entity: child})
	cmd.AddComponents(child, Parent{Entity: parent})
	app.FlushCommands()

	app.Step()

	assertVec(t, mgl32.Vec3{5, 2, 0}, componentOf[TransformComponent](cmd, grandchild).Position)
}

func TestTransformHierarchy_RootMirrorsWorldIntoLocal(t *testing.T) {
	app := NewAppBuilder().UseModule(HierarchyModule{}).Build()
	cmd := app.Commands()

	root := cmd.AddEntity(NewTransform(mgl32.Vec3{1, 2, 3}), NewLocalTransform(mgl32.Vec3{}))
	app.FlushCommands()
	app.Step()

	assertVec(t, mgl32.Vec3{1, 2, 3}, componentOf[LocalTransformComponent](cmd, root).Position)
}

func TestWriteWorldTransform_ConvertsChildToLocal(t *testing.T) {
	app := NewAppBuilder().Build()
	cmd := app.Commands()

	parent := cmd.AddEntity(TransformComponent{
		Position: mgl32.Vec3{0, -5, 0},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{2, 2, 2},
	})
	child := cmd.AddEntity(NewTransform(mgl32.Vec3{}), NewLocalTransform(mgl32.Vec3{0, 2.5, 0}), Parent{Entity: parent})
	app.FlushCommands()

	world := componentOf[TransformComponent](cmd, child)
	next := NewTransform(mgl32.Vec3{1, 0, 0})
	next.Scale = mgl32.Vec3{4, 2, 2}
	writeWorldTransform(cmd, child, world, next)

	local := componentOf[LocalTransformComponent](cmd, child)
	assertVec(t, mgl32.Vec3{0.5, 2.5, 0}, local.Position)
	assertVec(t, mgl32.Vec3{2, 1, 1}, local.Scale)
	assertVec(t, mgl32.Vec3{1, 0, 0}, world.Position)
}

func TestWorldToLocal_InvertsCompose(t *testing.T) {
	parent := TransformComponent{
		Position: mgl32.Vec3{1, 2, 3},
		Rotation: mgl32.QuatRotate(0.7, mgl32.Vec3{1, 1, 0}.Normalize()),
		Scale:    mgl32.Vec3{2, 3, 0.5},
	}
	local := LocalTransformComponent{
		Position: mgl32.Vec3{-1, 0.5, 4},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}

	back := worldToLocal(parent, composeWorld(parent, local))

	assertVec(t, local.Position, back.Position)
	assertVec(t, local.Scale, back.Scale)
}

func TestWorldToLocal_ZeroParentScaleIsFinite(t *testing.T) {
	parent := NewTransform(mgl32.Vec3{})
	parent.Scale = mgl32.Vec3{0, 1, 1}

	local := worldToLocal(parent, NewTransform(mgl32.Vec3{1, 1, 1}))

	for _, v := range local.Position {
		require.False(t, math.IsNaN(float64(v)) || math.IsInf(float64(v), 0), "non-finite %v", local.Position)
	}
}
