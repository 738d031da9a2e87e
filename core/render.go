package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	coneSegments = 16
	// Camera-facing shapes are pulled toward the camera by this distance.
	billboardNudge float32 = 0.02
)

// Line is one coloured world-space segment.
type Line struct {
	From  mgl32.Vec3
	To    mgl32.Vec3
	Color Color
}

// DrawList collects the gizmo geometry for one frame.
type DrawList struct {
	Lines     []Line
	LineWidth float32
	DepthBias float32
}

func (dl *DrawList) Reset(style *Style) {
	dl.Lines = dl.Lines[:0]
	dl.LineWidth = style.LineWidth
	dl.DepthBias = style.DepthBias
}

func (dl *DrawList) AddLine(a, b mgl32.Vec3, c Color) {
	dl.Lines = append(dl.Lines, Line{From: a, To: b, Color: c})
}

// axesInvolved lists the axis lines that react to a handle.
func axesInvolved(h Handle) []Axis {
	switch h.Op {
	case OpTranslatePlane:
		a, b := PlaneAxes(h.Axis)
		return []Axis{a, b}
	case OpScaleUniform:
		return Axes[:]
	default:
		return []Axis{h.Axis}
	}
}

func containsAxis(axes []Axis, a Axis) bool {
	for _, x := range axes {
		if x == a {
			return true
		}
	}
	return false
}

type renderCtx struct {
	dl     *DrawList
	id     TargetID
	frame  Frame
	state  *State
	style  *Style
	view   View
	hover  []Axis
	active []Axis
}

func (c *renderCtx) color(group AxisColors, op Operation, axis Axis) Color {
	h := Handle{Op: op, Axis: axis}
	return group.For(axis).Pick(c.state.IsActive(c.id, h), c.state.IsHovered(c.id, h))
}

// Render appends the gizmo geometry for target to dl. It does not mutate
// state.
func Render(dl *DrawList, target Target, state *State, style *Style, view View) {
	c := renderCtx{
		dl:    dl,
		id:    target.ID,
		frame: NewFrame(target.World, state.Space),
		state: state,
		style: style,
		view:  view,
	}

	if h, ok := state.Hovered(); ok {
		if id, active := state.ActiveTarget(); active && id == target.ID {
			c.hover = axesInvolved(h)
		}
	}
	if d, ok := state.Drag(); ok && d.Target == target.ID {
		c.active = axesInvolved(Handle{Op: d.Op, Axis: d.Axis})
	}

	if style.ShowAxisLines {
		c.axisLines()
	}
	if style.ShowTranslate {
		c.translationCones()
		if style.ShowTranslatePlanes {
			c.translationPlanes()
		}
	}
	if style.ShowScale {
		c.scaleCubes()
		if style.ShowScaleUniform {
			c.uniformSquare()
		}
	}
	if style.ShowRotate {
		c.rotationArcs()
	}
	if style.ShowOriginDot {
		c.originDot()
	}
}

func (c *renderCtx) axisLines() {
	for _, axis := range Axes {
		dir := normalizeOrZero(c.frame.AxisDir(axis, KindTranslate))
		if isZero(dir) {
			continue
		}
		col := c.style.AxisLineColors.For(axis).Pick(containsAxis(c.active, axis), containsAxis(c.hover, axis))
		c.dl.AddLine(c.frame.Origin, c.frame.Origin.Add(dir.Mul(c.style.AxisLength)), col)
	}
}

func (c *renderCtx) translationCones() {
	s := c.style
	for _, axis := range Axes {
		if !s.TranslateAxes.Enabled(axis) {
			continue
		}
		dir := normalizeOrZero(c.frame.AxisDir(axis, KindTranslate))
		if isZero(dir) {
			continue
		}
		col := c.color(s.TranslateColors, OpTranslateAxis, axis)

		base := c.frame.Origin.Add(dir.Mul(s.AxisLength))
		tip := base.Add(dir.Mul(s.TranslateConeLength))
		t1, t2 := AxisBasis(dir)

		for i := 0; i < coneSegments; i++ {
			a0 := 2 * math.Pi * float64(i) / coneSegments
			a1 := 2 * math.Pi * float64(i+1) / coneSegments
			b0 := base.Add(circlePoint(t1, t2, float32(a0)).Mul(s.TranslateConeRadius))
			b1 := base.Add(circlePoint(t1, t2, float32(a1)).Mul(s.TranslateConeRadius))

			c.dl.AddLine(tip, b0, col)
			c.dl.AddLine(tip, b1, col)
			c.dl.AddLine(b0, b1, col)
		}
	}
}

func (c *renderCtx) translationPlanes() {
	s := c.style
	for _, axis := range Axes {
		if !s.TranslateAxes.Enabled(axis) {
			continue
		}
		a1, a2 := PlaneAxes(axis)
		n := normalizeOrZero(c.frame.AxisDir(axis, KindTranslate))
		d1 := normalizeOrZero(c.frame.AxisDir(a1, KindTranslate))
		d2 := normalizeOrZero(c.frame.AxisDir(a2, KindTranslate))
		if isZero(n) || isZero(d1) || isZero(d2) {
			continue
		}
		col := c.color(s.TranslateColors, OpTranslatePlane, axis)

		base := c.frame.Origin.Add(d1.Mul(s.TranslatePlaneOffset)).Add(d2.Mul(s.TranslatePlaneOffset))
		u := d1.Mul(s.TranslatePlaneSize)
		v := d2.Mul(s.TranslatePlaneSize)
		c.quad(base, base.Add(u), base.Add(u).Add(v), base.Add(v), col)
	}
}

var cubeEdges = [12][2]int{
	{0, 1}, {0, 2}, {0, 4}, {1, 3}, {1, 5}, {2, 3},
	{2, 6}, {3, 7}, {4, 5}, {4, 6}, {5, 7}, {6, 7},
}

func (c *renderCtx) scaleCubes() {
	s := c.style
	half := s.ScaleCubeSize * 0.5
	for _, axis := range Axes {
		if !s.ScaleAxes.Enabled(axis) {
			continue
		}
		dir := normalizeOrZero(c.frame.AxisDir(axis, KindScale))
		if isZero(dir) {
			continue
		}
		col := c.color(s.ScaleColors, OpScaleAxis, axis)
		center := c.frame.Origin.Add(dir.Mul(s.AxisLength * s.ScaleCubeOffset))

		// Corner i has bit 2 = x, bit 1 = y, bit 0 = z.
		var corners [8]mgl32.Vec3
		for i := range corners {
			off := mgl32.Vec3{-half, -half, -half}
			if i&4 != 0 {
				off[0] = half
			}
			if i&2 != 0 {
				off[1] = half
			}
			if i&1 != 0 {
				off[2] = half
			}
			corners[i] = center.Add(off)
		}
		for _, e := range cubeEdges {
			c.dl.AddLine(corners[e[0]], corners[e[1]], col)
		}
	}
}

func (c *renderCtx) uniformSquare() {
	s := c.style
	active := false
	if d, ok := c.state.Drag(); ok {
		active = d.Target == c.id && d.Op == OpScaleUniform
	}
	hovered := false
	if h, ok := c.state.Hovered(); ok {
		id, has := c.state.ActiveTarget()
		hovered = has && id == c.id && h.Op == OpScaleUniform
	}
	col := s.ScaleUniformColors.Pick(active, hovered)

	half := s.ScaleUniformSize * 0.5
	r := c.view.Right.Mul(half)
	u := c.view.Up.Mul(half)
	o := c.frame.Origin.Sub(c.view.Forward.Mul(billboardNudge))
	c.quad(o.Sub(r).Sub(u), o.Add(r).Sub(u), o.Add(r).Add(u), o.Sub(r).Add(u), col)
}

func (c *renderCtx) rotationArcs() {
	s := c.style
	total := mgl32.DegToRad(s.RotationArcDegrees)
	steps := s.RotationArcSegments
	if steps < 2 {
		steps = 2
	}

	for _, axis := range Axes {
		if !s.RotateAxes.Enabled(axis) {
			continue
		}
		dir := normalizeOrZero(c.frame.AxisDir(axis, KindRotate))
		if isZero(dir) {
			continue
		}
		col := c.color(s.RotateColors, OpRotate, axis)

		n1, n2 := RingNeighbors(axis)
		center := arcCenterAngle(dir, c.frame.AxisDir(n1, KindRotate), c.frame.AxisDir(n2, KindRotate))
		t1, t2 := AxisBasis(dir)
		start := center - total*0.5

		prev := c.frame.Origin.Add(circlePoint(t1, t2, start).Mul(s.AxisLength))
		for i := 1; i <= steps; i++ {
			a := start + total*float32(i)/float32(steps)
			p := c.frame.Origin.Add(circlePoint(t1, t2, a).Mul(s.AxisLength))
			c.dl.AddLine(prev, p, col)
			prev = p
		}
	}
}

func (c *renderCtx) originDot() {
	s := c.style
	half := s.OriginDotSize * 0.5
	o := c.frame.Origin.Sub(c.view.Forward.Mul(billboardNudge))
	d1 := normalizeOrZero(c.view.Right.Add(c.view.Up)).Mul(half)
	d2 := normalizeOrZero(c.view.Right.Sub(c.view.Up)).Mul(half)
	c.dl.AddLine(o.Sub(d1), o.Add(d1), s.OriginDotColor)
	c.dl.AddLine(o.Sub(d2), o.Add(d2), s.OriginDotColor)
}

func (c *renderCtx) quad(p0, p1, p2, p3 mgl32.Vec3, col Color) {
	c.dl.AddLine(p0, p1, col)
	c.dl.AddLine(p1, p2, col)
	c.dl.AddLine(p2, p3, col)
	c.dl.AddLine(p3, p0, col)
}

func circlePoint(t1, t2 mgl32.Vec3, angle float32) mgl32.Vec3 {
	sin, cos := math.Sincos(float64(angle))
	return t1.Mul(float32(cos)).Add(t2.Mul(float32(sin)))
}
