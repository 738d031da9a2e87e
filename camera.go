package gizmo

import (
	"math"

	"github.com/gekko3d/gizmo/core"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraComponent is a perspective camera looking from Position to LookAt.
type CameraComponent struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
	Up       mgl32.Vec3
	Yaw      float32 // degrees
	Pitch    float32 // degrees
	Fov      float32 // vertical, degrees
	Near     float32
	Far      float32
}

// NewCamera returns a camera at position looking at target, with yaw and
// pitch derived from the look direction.
func NewCamera(position, target mgl32.Vec3) CameraComponent {
	cam := CameraComponent{
		Position: position,
		LookAt:   target,
		Up:       mgl32.Vec3{0, 1, 0},
		Fov:      60,
		Near:     0.1,
		Far:      1000,
	}
	if f := target.Sub(position); f.Len() > core.Epsilon {
		f = f.Normalize()
		cam.Pitch = mgl32.RadToDeg(float32(math.Asin(float64(mgl32.Clamp(f.Y(), -1, 1)))))
		cam.Yaw = mgl32.RadToDeg(float32(math.Atan2(float64(f.X()), float64(-f.Z()))))
	}
	return cam
}

func (c *CameraComponent) up() mgl32.Vec3 {
	if c.Up.Len() < core.Epsilon {
		return mgl32.Vec3{0, 1, 0}
	}
	return c.Up
}

// View returns the camera basis. Forward points from Position to LookAt.
func (c *CameraComponent) View() core.View {
	forward := c.LookAt.Sub(c.Position)
	if forward.Len() < core.Epsilon {
		forward = mgl32.Vec3{0, 0, -1}
	}
	forward = forward.Normalize()

	right := forward.Cross(c.up())
	if right.Len() < core.Epsilon {
		right = forward.Cross(mgl32.Vec3{0, 0, 1})
	}
	right = right.Normalize()

	return core.View{
		Forward: forward,
		Right:   right,
		Up:      right.Cross(forward),
	}
}

func (c *CameraComponent) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.LookAt, c.up())
}

func (c *CameraComponent) ProjectionMatrix(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.fov()), aspect, c.Near, c.Far)
}

func (c *CameraComponent) fov() float32 {
	if c.Fov <= 0 {
		return 60
	}
	return c.Fov
}

// ScreenToWorldRay builds the pick ray through window pixel (x, y). It
// reports false for an empty viewport.
func (c *CameraComponent) ScreenToWorldRay(x, y float64, width, height int) (core.Ray, bool) {
	if width <= 0 || height <= 0 {
		return core.Ray{}, false
	}

	nx := (2.0*float32(x))/float32(width) - 1.0
	ny := 1.0 - (2.0*float32(y))/float32(height)

	v := c.View()
	aspect := float32(width) / float32(height)
	tanHalfFov := float32(math.Tan(float64(mgl32.DegToRad(c.fov()) / 2.0)))

	dir := v.Forward.Add(v.Right.Mul(nx * aspect * tanHalfFov)).Add(v.Up.Mul(ny * tanHalfFov))
	return core.Ray{Origin: c.Position, Direction: dir.Normalize()}, true
}

// GizmoCameraComponent marks the camera the gizmo picks and orients with.
type GizmoCameraComponent struct{}

// FindGizmoCamera returns the first marked camera by entity id, falling
// back to the first camera of any kind.
func FindGizmoCamera(cmd *Commands) (*CameraComponent, bool) {
	var found *CameraComponent
	MakeQuery2[CameraComponent, GizmoCameraComponent](cmd).Map(func(eid EntityId, cam *CameraComponent, _ *GizmoCameraComponent) bool {
		found = cam
		return false
	})
	if found == nil {
		MakeQuery1[CameraComponent](cmd).Map(func(eid EntityId, cam *CameraComponent) bool {
			found = cam
			return false
		})
	}
	return found, found != nil
}
