package gizmo

import (
	"math"

	"github.com/gekko3d/gizmo/core"
	"github.com/go-gl/mathgl/mgl32"
)

// GizmoDrawList holds the line segments produced this frame: wireframes
// first, then the transform gizmo handles. Backends read it after the
// Render stage.
type GizmoDrawList struct {
	core.DrawList
	// HandleStart is the index of the first gizmo handle line.
	HandleStart int
}

// Wireframes returns the scene wireframe lines.
func (dl *GizmoDrawList) Wireframes() []core.Line {
	return dl.Lines[:min(dl.HandleStart, len(dl.Lines))]
}

// Handles returns the transform gizmo lines.
func (dl *GizmoDrawList) Handles() []core.Line {
	return dl.Lines[min(dl.HandleStart, len(dl.Lines)):]
}

type WireframeType int

const (
	WireLine WireframeType = iota
	WireCube
	WireSphere
	WireCircle
)

const wireSegments = 32

// WireframeComponent draws an entity as a wireframe shape. With a
// TransformComponent the shape is placed in that transform's space;
// otherwise Position, Rotation and Scale are world space.
type WireframeComponent struct {
	Type  WireframeType
	Color core.Color

	// Center for shapes, start point for lines.
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3

	LineEnd mgl32.Vec3
	Radius  float32
}

func NewWireLine(start, end mgl32.Vec3, color core.Color) WireframeComponent {
	return WireframeComponent{
		Type:     WireLine,
		Position: start,
		LineEnd:  end,
		Color:    color,
		Scale:    mgl32.Vec3{1, 1, 1},
		Rotation: mgl32.QuatIdent(),
	}
}

func NewWireCube(center mgl32.Vec3, size mgl32.Vec3, color core.Color) WireframeComponent {
	return WireframeComponent{
		Type:     WireCube,
		Position: center,
		Scale:    size,
		Color:    color,
		Rotation: mgl32.QuatIdent(),
	}
}

func NewWireSphere(center mgl32.Vec3, radius float32, color core.Color) WireframeComponent {
	return WireframeComponent{
		Type:     WireSphere,
		Position: center,
		Radius:   radius,
		Scale:    mgl32.Vec3{1, 1, 1},
		Color:    color,
		Rotation: mgl32.QuatIdent(),
	}
}

// NewWireCircle lies in the local XZ plane.
func NewWireCircle(center mgl32.Vec3, radius float32, color core.Color) WireframeComponent {
	c := NewWireSphere(center, radius, color)
	c.Type = WireCircle
	return c
}

// shapeTransform places the shape's own transform inside the entity's.
func (w *WireframeComponent) shapeTransform(tr *TransformComponent) TransformComponent {
	own := TransformComponent{Position: w.Position, Rotation: w.Rotation, Scale: w.Scale}
	if own.Rotation == (mgl32.Quat{}) {
		own.Rotation = mgl32.QuatIdent()
	}
	if own.Scale == (mgl32.Vec3{}) {
		own.Scale = mgl32.Vec3{1, 1, 1}
	}
	if tr == nil {
		return own
	}
	return composeWorld(*tr, LocalTransformComponent(own))
}

func (w *WireframeComponent) draw(dl *core.DrawList, tr *TransformComponent) {
	xf := w.shapeTransform(tr)
	point := func(p mgl32.Vec3) mgl32.Vec3 {
		return transformPoint(xf, p)
	}

	switch w.Type {
	case WireLine:
		start, end := w.Position, w.LineEnd
		if tr != nil {
			start, end = transformPoint(*tr, start), transformPoint(*tr, end)
		}
		dl.AddLine(start, end, w.Color)

	case WireCube:
		var corners [8]mgl32.Vec3
		for i := range corners {
			c := mgl32.Vec3{-0.5, -0.5, -0.5}
			for axis := 0; axis < 3; axis++ {
				if i&(4>>axis) != 0 {
					c[axis] = 0.5
				}
			}
			corners[i] = point(c)
		}
		for _, e := range wireCubeEdges {
			dl.AddLine(corners[e[0]], corners[e[1]], w.Color)
		}

	case WireSphere:
		r := w.radius()
		wireCircle(dl, point, mgl32.Vec3{r, 0, 0}, mgl32.Vec3{0, r, 0}, w.Color)
		wireCircle(dl, point, mgl32.Vec3{r, 0, 0}, mgl32.Vec3{0, 0, r}, w.Color)
		wireCircle(dl, point, mgl32.Vec3{0, r, 0}, mgl32.Vec3{0, 0, r}, w.Color)

	case WireCircle:
		r := w.radius()
		wireCircle(dl, point, mgl32.Vec3{r, 0, 0}, mgl32.Vec3{0, 0, r}, w.Color)
	}
}

func (w *WireframeComponent) radius() float32 {
	if w.Radius <= 0 {
		return 1
	}
	return w.Radius
}

var wireCubeEdges = [12][2]int{
	{0, 1}, {0, 2}, {0, 4}, {1, 3}, {1, 5}, {2, 3},
	{2, 6}, {3, 7}, {4, 5}, {4, 6}, {5, 7}, {6, 7},
}

func wireCircle(dl *core.DrawList, point func(mgl32.Vec3) mgl32.Vec3, u, v mgl32.Vec3, c core.Color) {
	prev := point(u)
	for i := 1; i <= wireSegments; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / wireSegments)
		p := point(u.Mul(float32(cos)).Add(v.Mul(float32(sin))))
		dl.AddLine(prev, p, c)
		prev = p
	}
}

func wireframeDrawSystem(cmd *Commands, dl *GizmoDrawList) {
	MakeQuery2[WireframeComponent, TransformComponent](cmd).Map(func(eid EntityId, w *WireframeComponent, tr *TransformComponent) bool {
		w.draw(&dl.DrawList, tr)
		return true
	}, TransformComponent{})
}
