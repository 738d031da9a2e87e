package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FlyingCameraModule moves cameras carrying a FlyingCameraComponent while
// the right mouse button is held: WASD to move, Space/Control for up and
// down, mouse to look.
type FlyingCameraModule struct{}

func (m FlyingCameraModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(FlyingCameraInputSystem).
			InStage(PreUpdate),
	)
	app.UseSystem(
		System(FlyingCameraControlSystem).
			InStage(Update),
	)
}

type FlyingCameraComponent struct {
	Speed       float32
	Sensitivity float32
	Move        mgl32.Vec3
	Look        mgl32.Vec2
}

// Flying reports whether camera navigation currently owns the input.
func (input *Input) Flying() bool {
	return input.Pressed[MouseButtonRight]
}

func FlyingCameraInputSystem(input *Input, cmd *Commands) {
	input.MouseCaptured = input.Flying()

	MakeQuery1[FlyingCameraComponent](cmd).Map(func(eid EntityId, fly *FlyingCameraComponent) bool {
		fly.Move = mgl32.Vec3{}
		fly.Look = mgl32.Vec2{}
		if !input.Flying() {
			return true
		}

		if input.Pressed[KeyW] {
			fly.Move[2] += 1
		}
		if input.Pressed[KeyS] {
			fly.Move[2] -= 1
		}
		if input.Pressed[KeyA] {
			fly.Move[0] -= 1
		}
		if input.Pressed[KeyD] {
			fly.Move[0] += 1
		}
		if input.Pressed[KeySpace] {
			fly.Move[1] += 1
		}
		if input.Pressed[KeyControl] {
			fly.Move[1] -= 1
		}

		// The first captured frame carries the jump from the free cursor.
		if !input.JustPressed[MouseButtonRight] {
			fly.Look[0] = float32(input.MouseDeltaX)
			fly.Look[1] = float32(input.MouseDeltaY)
		}
		return true
	})
}

func FlyingCameraControlSystem(cmd *Commands, time *Time) {
	dt := time.Seconds()

	MakeQuery2[CameraComponent, FlyingCameraComponent](cmd).Map(func(eid EntityId, cam *CameraComponent, fly *FlyingCameraComponent) bool {
		if fly.Look == (mgl32.Vec2{}) && fly.Move == (mgl32.Vec3{}) {
			return true
		}
		if fly.Sensitivity == 0 {
			fly.Sensitivity = 0.1
		}
		if fly.Speed == 0 {
			fly.Speed = 5.0
		}

		cam.Yaw += fly.Look[0] * fly.Sensitivity
		cam.Pitch = mgl32.Clamp(cam.Pitch-fly.Look[1]*fly.Sensitivity, -89, 89)

		yawRad := float64(mgl32.DegToRad(cam.Yaw))
		pitchRad := float64(mgl32.DegToRad(cam.Pitch))

		forward := mgl32.Vec3{
			float32(math.Sin(yawRad) * math.Cos(pitchRad)),
			float32(math.Sin(pitchRad)),
			float32(-math.Cos(yawRad) * math.Cos(pitchRad)),
		}.Normalize()
		up := mgl32.Vec3{0, 1, 0}
		right := forward.Cross(up).Normalize()

		move := right.Mul(fly.Move[0]).Add(up.Mul(fly.Move[1])).Add(forward.Mul(fly.Move[2]))
		if move.Len() > 0 && dt > 0 {
			cam.Position = cam.Position.Add(move.Normalize().Mul(fly.Speed * dt))
		}

		cam.LookAt = cam.Position.Add(forward)
		cam.Up = up
		return true
	})
}
