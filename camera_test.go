package gizmo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamera_ViewBasis(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{})
	v := cam.View()

	assertVec(t, mgl32.Vec3{0, 0, -1}, v.Forward)
	assertVec(t, mgl32.Vec3{1, 0, 0}, v.Right)
	assertVec(t, mgl32.Vec3{0, 1, 0}, v.Up)
	assert.InDelta(t, 0, cam.Yaw, tol)
	assert.InDelta(t, 0, cam.Pitch, tol)
}

func TestCamera_ViewStraightDown(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{})
	v := cam.View()

	assertVec(t, mgl32.Vec3{0, -1, 0}, v.Forward)
	assert.InDelta(t, 1, v.Right.Len(), tol)
	assert.InDelta(t, 0, v.Right.Dot(v.Forward), tol)
	assert.InDelta(t, -90, cam.Pitch, tol)
}

func TestCamera_ScreenCenterRayIsForward(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, -7})

	ray, ok := cam.ScreenToWorldRay(400, 300, 800, 600)

	require.True(t, ok)
	assertVec(t, mgl32.Vec3{1, 2, 3}, ray.Origin)
	assertVec(t, mgl32.Vec3{0, 0, -1}, ray.Direction)
}

func TestCamera_ScreenCornersSpanFov(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1})
	cam.Fov = 90

	top, ok := cam.ScreenToWorldRay(50, 0, 100, 100)
	require.True(t, ok)
	// Top edge of a 90° frustum is 45° above forward.
	assertVec(t, mgl32.Vec3{0, 1, -1}.Normalize(), top.Direction)

	right, _ := cam.ScreenToWorldRay(100, 50, 100, 100)
	assertVec(t, mgl32.Vec3{1, 0, -1}.Normalize(), right.Direction)
}

func TestCamera_ScreenToWorldRayEmptyViewport(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{})
	_, ok := cam.ScreenToWorldRay(0, 0, 0, 600)
	assert.False(t, ok)
}

func TestCamera_ProjectionMatchesPickRay(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{3, 4, 8}, mgl32.Vec3{0, 0, 0})
	w, h := 800, 600
	p := mgl32.Vec3{0.5, -0.25, 1}

	vp := cam.ProjectionMatrix(w, h).Mul4(cam.ViewMatrix())
	clip := vp.Mul4x1(p.Vec4(1))
	ndc := clip.Vec3().Mul(1 / clip.W())
	x := float64((ndc.X() + 1) * 0.5 * float32(w))
	y := float64((1 - ndc.Y()) * 0.5 * float32(h))

	ray, ok := cam.ScreenToWorldRay(x, y, w, h)
	require.True(t, ok)
	want := p.Sub(cam.Position).Normalize()
	assertVec(t, want, ray.Direction)
}

func TestFindGizmoCamera(t *testing.T) {
	app := NewAppBuilder().Build()
	cmd := app.Commands()

	_, ok := FindGizmoCamera(cmd)
	assert.False(t, ok)

	cmd.AddEntity(NewCamera(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{}))
	marked := NewCamera(mgl32.Vec3{0, 0, 2}, mgl32.Vec3{})
	cmd.AddEntity(marked, GizmoCameraComponent{})
	app.FlushCommands()

	cam, ok := FindGizmoCamera(cmd)
	require.True(t, ok)
	assertVec(t, mgl32.Vec3{0, 0, 2}, cam.Position)
}
