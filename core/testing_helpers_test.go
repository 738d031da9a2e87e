package core

import "github.com/go-gl/mathgl/mgl32"

// frontView looks down -Z from a camera placed on +Z.
var frontView = View{
	Forward: mgl32.Vec3{0, 0, -1},
	Right:   mgl32.Vec3{1, 0, 0},
	Up:      mgl32.Vec3{0, 1, 0},
}

func downRay(x, y float32) Ray {
	return Ray{Origin: mgl32.Vec3{x, y, 10}, Direction: mgl32.Vec3{0, 0, -1}}
}

func targetAt(id TargetID, pos mgl32.Vec3) Target {
	w := IdentityTransform()
	w.Translation = pos
	return Target{ID: id, World: w}
}
