package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const minRingRadius float32 = 1e-4

// Hit is the closest handle under a ray.
type Hit struct {
	Target TargetID
	Op     Operation
	Axis   Axis
	T      float32
}

type hitScan struct {
	ray   Ray
	style *Style
	best  Hit
	found bool
}

func (h *hitScan) offer(target TargetID, op Operation, axis Axis, t float32) {
	if h.found && t >= h.best.T {
		return
	}
	h.best = Hit{Target: target, Op: op, Axis: axis, T: t}
	h.found = true
}

func (h *hitScan) bestT() float32 {
	if !h.found {
		return math.MaxFloat32
	}
	return h.best.T
}

// HitTest returns the handle nearest to the ray origin across all targets.
// Targets are scanned in the given order; on equal t the first wins.
func HitTest(ray Ray, targets []Target, space Space, style *Style) (Hit, bool) {
	h := hitScan{ray: ray, style: style}

	for _, target := range targets {
		frame := NewFrame(target.World, space)

		boundsT, ok := RaySphere(ray, frame.Origin, style.BoundsRadius)
		if !ok || boundsT > h.bestT() {
			continue
		}

		if style.ShowTranslate {
			h.translateCones(target.ID, frame)
		}
		if style.ShowScale {
			h.scaleCubes(target.ID, frame)
		}
		if style.ShowRotate {
			h.rotationRings(target.ID, frame)
		}
		if style.ShowTranslate && style.ShowTranslatePlanes {
			h.translatePlanes(target.ID, frame)
		}
		if style.ShowScale && style.ShowScaleUniform {
			// Axis is unused for uniform scale.
			if t, ok := RaySphere(ray, frame.Origin, style.ScaleUniformHitRadius); ok {
				h.offer(target.ID, OpScaleUniform, AxisX, t)
			}
		}
	}

	return h.best, h.found
}

func (h *hitScan) translateCones(id TargetID, frame Frame) {
	s := h.style
	for _, axis := range Axes {
		if !s.TranslateAxes.Enabled(axis) {
			continue
		}
		dir := normalizeOrZero(frame.AxisDir(axis, KindTranslate))
		if isZero(dir) {
			continue
		}

		// Centred between the end of the axis line and the cone tip.
		lineEnd := frame.Origin.Add(dir.Mul(s.AxisLength))
		tip := lineEnd.Add(dir.Mul(s.TranslateConeLength))
		center := lineEnd.Add(tip).Mul(0.5)

		if t, ok := RaySphere(h.ray, center, s.TranslateHitRadius); ok {
			h.offer(id, OpTranslateAxis, axis, t)
		}
	}
}

func (h *hitScan) scaleCubes(id TargetID, frame Frame) {
	s := h.style
	for _, axis := range Axes {
		if !s.ScaleAxes.Enabled(axis) {
			continue
		}
		dir := normalizeOrZero(frame.AxisDir(axis, KindScale))
		if isZero(dir) {
			continue
		}

		center := frame.Origin.Add(dir.Mul(s.AxisLength * s.ScaleCubeOffset))
		if t, ok := RaySphere(h.ray, center, s.ScaleHitRadius); ok {
			h.offer(id, OpScaleAxis, axis, t)
		}
	}
}

func (h *hitScan) rotationRings(id TargetID, frame Frame) {
	s := h.style
	half := mgl32.DegToRad(s.RotationArcDegrees) * 0.5

	for _, axis := range Axes {
		if !s.RotateAxes.Enabled(axis) {
			continue
		}
		dir := normalizeOrZero(frame.AxisDir(axis, KindRotate))
		if isZero(dir) {
			continue
		}

		hitPoint, ok := RayPlane(h.ray, frame.Origin, dir)
		if !ok {
			continue
		}

		v := hitPoint.Sub(frame.Origin)
		radius := v.Len()
		if radius < minRingRadius {
			continue
		}
		if mgl32.Abs(radius-s.AxisLength) > s.RotationHitThickness {
			continue
		}

		a1, a2 := RingNeighbors(axis)
		t1, t2 := AxisBasis(dir)
		angle := planarAngle(v, t1, t2)
		center := arcCenterAngle(dir, frame.AxisDir(a1, KindRotate), frame.AxisDir(a2, KindRotate))
		if mgl32.Abs(wrapAngle(angle-center)) > half {
			continue
		}

		if t, ok := RaySphere(h.ray, hitPoint, s.RotationHitThickness); ok {
			h.offer(id, OpRotate, axis, t)
		}
	}
}

func (h *hitScan) translatePlanes(id TargetID, frame Frame) {
	s := h.style
	lo := s.TranslatePlaneOffset - s.TranslatePlaneHitThickness
	hi := s.TranslatePlaneOffset + s.TranslatePlaneSize + s.TranslatePlaneHitThickness

	for _, axis := range Axes {
		if !s.TranslateAxes.Enabled(axis) {
			continue
		}
		a1, a2 := PlaneAxes(axis)
		normal := normalizeOrZero(frame.AxisDir(axis, KindTranslate))
		dir1 := normalizeOrZero(frame.AxisDir(a1, KindTranslate))
		dir2 := normalizeOrZero(frame.AxisDir(a2, KindTranslate))
		if isZero(normal) || isZero(dir1) || isZero(dir2) {
			continue
		}

		hitPoint, ok := RayPlane(h.ray, frame.Origin, normal)
		if !ok {
			continue
		}

		local := hitPoint.Sub(frame.Origin)
		u := local.Dot(dir1)
		v := local.Dot(dir2)
		if u < lo || u > hi || v < lo || v > hi {
			continue
		}

		t := hitPoint.Sub(h.ray.Origin).Dot(h.ray.Direction)
		if t >= 0 {
			h.offer(id, OpTranslatePlane, axis, t)
		}
	}
}
