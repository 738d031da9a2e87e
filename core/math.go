package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Epsilon is the squared-length threshold for zero vectors.
	Epsilon float32 = 1e-6

	planeEpsilon          float32 = 1e-5
	axisParallelThreshold float32 = 0.9
)

func normalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 || math.IsNaN(float64(l)) || math.IsInf(float64(l), 0) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

func isZero(v mgl32.Vec3) bool {
	return v.LenSqr() < Epsilon
}

func absVec(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{mgl32.Abs(v[0]), mgl32.Abs(v[1]), mgl32.Abs(v[2])}
}

// perpendicularHelper returns Y, or X when v is nearly parallel to Y.
func perpendicularHelper(v mgl32.Vec3) mgl32.Vec3 {
	if absVec(v).Dot(mgl32.Vec3{0, 1, 0}) < axisParallelThreshold {
		return mgl32.Vec3{0, 1, 0}
	}
	return mgl32.Vec3{1, 0, 0}
}

// AxisBasis builds an orthonormal pair (t1, t2) spanning the plane
// perpendicular to axis. A zero axis yields (X, Y).
func AxisBasis(axis mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	axis = normalizeOrZero(axis)
	if isZero(axis) {
		return mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}
	}

	t1 := normalizeOrZero(axis.Cross(perpendicularHelper(axis)))
	t2 := normalizeOrZero(axis.Cross(t1))
	return t1, t2
}

// RaySphere returns the distance along the ray to the sphere surface.
// A ray starting inside the sphere reports t = 0.
func RaySphere(ray Ray, center mgl32.Vec3, radius float32) (float32, bool) {
	m := ray.Origin.Sub(center)
	b := m.Dot(ray.Direction)
	c := m.LenSqr() - radius*radius

	// Origin outside and pointing away.
	if c > 0 && b > 0 {
		return 0, false
	}

	discr := b*b - c
	if discr < 0 {
		return 0, false
	}

	t := -b - float32(math.Sqrt(float64(discr)))
	if t < 0 {
		return 0, true
	}
	return t, true
}

// RayPlane intersects the ray with the plane through origin with the given
// normal. Parallel rays and hits behind the ray origin report false.
func RayPlane(ray Ray, origin, normal mgl32.Vec3) (mgl32.Vec3, bool) {
	denom := normal.Dot(ray.Direction)
	if mgl32.Abs(denom) < planeEpsilon {
		return mgl32.Vec3{}, false
	}
	t := origin.Sub(ray.Origin).Dot(normal) / denom
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return ray.At(t), true
}

// planarAngle is the signed angle of v in the (t1, t2) basis.
func planarAngle(v, t1, t2 mgl32.Vec3) float32 {
	v = normalizeOrZero(v)
	return float32(math.Atan2(float64(v.Dot(t2)), float64(v.Dot(t1))))
}

// wrapAngle maps an angle into [-π, π).
func wrapAngle(a float32) float32 {
	twoPi := 2 * math.Pi
	w := math.Mod(float64(a)+math.Pi, twoPi)
	if w < 0 {
		w += twoPi
	}
	return float32(w - math.Pi)
}

// rejectFrom removes the component of v along unit axis n and normalizes.
func rejectFrom(v, n mgl32.Vec3) mgl32.Vec3 {
	return normalizeOrZero(v.Sub(n.Mul(n.Dot(v))))
}

// roundTo rounds v to the nearest multiple of step; step <= 0 is identity.
func roundTo(v, step float32) float32 {
	if step <= 0 {
		return v
	}
	return float32(math.Round(float64(v/step))) * step
}
