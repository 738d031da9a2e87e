package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFrame_AxisDirections(t *testing.T) {
	rot := mgl32.QuatRotate(0.7, mgl32.Vec3{1, 2, 3}.Normalize())
	world := Transform{Translation: mgl32.Vec3{4, -1, 2}, Rotation: rot, Scale: mgl32.Vec3{2, 2, 2}}

	for _, space := range []Space{SpaceWorld, SpaceLocal} {
		f := NewFrame(world, space)
		assertVec(t, world.Translation, f.Origin)

		for _, axis := range Axes {
			rotated := rot.Rotate(axis.Vec3())

			wantTranslate := rotated
			if space == SpaceWorld {
				wantTranslate = axis.Vec3()
			}
			assertVec(t, wantTranslate, f.AxisDir(axis, KindTranslate), "translate %s %s", space, axis)
			assertVec(t, wantTranslate, f.AxisDir(axis, KindRotate), "rotate %s %s", space, axis)
			assertVec(t, rotated, f.AxisDir(axis, KindScale), "scale %s %s", space, axis)
		}
	}
}

func TestPlaneAxesAndRingNeighbors(t *testing.T) {
	cases := []struct {
		axis           Axis
		plane1, plane2 Axis
		ring1, ring2   Axis
	}{
		{AxisX, AxisY, AxisZ, AxisY, AxisZ},
		{AxisY, AxisX, AxisZ, AxisZ, AxisX},
		{AxisZ, AxisX, AxisY, AxisX, AxisY},
	}
	for _, c := range cases {
		p1, p2 := PlaneAxes(c.axis)
		if p1 != c.plane1 || p2 != c.plane2 {
			t.Errorf("PlaneAxes(%s) = %s,%s; want %s,%s", c.axis, p1, p2, c.plane1, c.plane2)
		}
		r1, r2 := RingNeighbors(c.axis)
		if r1 != c.ring1 || r2 != c.ring2 {
			t.Errorf("RingNeighbors(%s) = %s,%s; want %s,%s", c.axis, r1, r2, c.ring1, c.ring2)
		}
	}
}
