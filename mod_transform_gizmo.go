package gizmo

import (
	"errors"
	"math"

	"github.com/gekko3d/gizmo/core"
)

// GizmoTargetComponent marks an entity the gizmo can manipulate. The entity
// also needs a TransformComponent.
type GizmoTargetComponent struct{}

// GizmoActiveComponent attaches the gizmo to a target. With several marked
// targets the one with the lowest entity id wins.
type GizmoActiveComponent struct{}

// Increments toggled by the snap shortcuts.
const (
	shortcutTranslateSnap float32 = 0.5
	shortcutRotateSnap    float32 = 15 * math.Pi / 180
	shortcutScaleSnap     float32 = 0.25
)

// TransformGizmoModule installs the interaction state, style, snap and draw
// list resources and the per-frame gizmo pipeline.
type TransformGizmoModule struct {
	Style     core.Style
	Snap      core.Snap
	Space     core.Space
	Mode      core.Mode
	Shortcuts bool
}

// NewTransformGizmoModule returns a module with the default style and
// shortcuts enabled.
func NewTransformGizmoModule() TransformGizmoModule {
	return TransformGizmoModule{
		Style:     core.DefaultStyle(),
		Space:     core.SpaceLocal,
		Mode:      core.ModeTranslate,
		Shortcuts: true,
	}
}

// TransformGizmoModuleFromConfig validates cfg and builds a module from it.
func TransformGizmoModuleFromConfig(cfg *Config) (TransformGizmoModule, error) {
	if err := cfg.Validate(); err != nil {
		return TransformGizmoModule{}, err
	}
	space, _ := ParseSpace(cfg.Space)
	mode, _ := ParseMode(cfg.Mode)
	return TransformGizmoModule{
		Style:     cfg.Style,
		Snap:      cfg.Snap,
		Space:     space,
		Mode:      mode,
		Shortcuts: true,
	}, nil
}

// gizmoFrame is the per-frame input gathered once for the Update systems.
type gizmoFrame struct {
	ray     core.Ray
	hasRay  bool
	view    core.View
	hasView bool
	targets []core.Target

	markedActive int
}

func (m TransformGizmoModule) Install(app *App, cmd *Commands) {
	state := core.NewState()
	state.Space = m.Space
	state.Mode = m.Mode

	style := m.Style
	snap := m.Snap
	app.addResources(state, &style, &snap, &GizmoDrawList{}, &gizmoFrame{})

	if m.Shortcuts {
		app.UseSystem(System(gizmoShortcutSystem).InStage(PreUpdate))
	}
	app.UseSystem(System(gizmoPrepareSystem).InStage(Update))
	app.UseSystem(System(gizmoSyncActiveSystem).InStage(Update))
	app.UseSystem(System(gizmoHoverSystem).InStage(Update))
	app.UseSystem(System(gizmoBeginDragSystem).InStage(Update))
	app.UseSystem(System(gizmoDragSystem).InStage(Update))
	app.UseSystem(System(gizmoEndDragSystem).InStage(Update))
	app.UseSystem(System(gizmoClearSystem).InStage(PreRender))
	app.UseSystem(System(wireframeDrawSystem).InStage(Render))
	app.UseSystem(System(gizmoDrawSystem).InStage(Render))

	app.Logger().Debugf("gizmo installed space=%s mode=%s", state.Space, state.Mode)
}

// gizmoShortcutSystem: T/R/S pick the mode and toggle that handle group,
// Q/Space toggle the space, Z/X/C toggle translate snap per axis, V toggles
// rotate snap and B toggles scale snap. Ignored while flying or dragging.
func gizmoShortcutSystem(cmd *Commands, input *Input, state *core.State, style *core.Style, snap *core.Snap) {
	if input.Flying() || state.IsDragging() {
		return
	}
	log := cmd.Logger()

	modeKeys := []struct {
		key  int
		mode core.Mode
		show *bool
	}{
		{KeyT, core.ModeTranslate, &style.ShowTranslate},
		{KeyR, core.ModeRotate, &style.ShowRotate},
		{KeyS, core.ModeScale, &style.ShowScale},
	}
	for _, mk := range modeKeys {
		if input.JustPressed[mk.key] {
			state.Mode = mk.mode
			*mk.show = !*mk.show
			log.Infof("gizmo mode %s (visible=%t)", mk.mode, *mk.show)
		}
	}

	if input.JustPressed[KeyQ] || input.JustPressed[KeySpace] {
		state.Space = state.Space.Toggle()
		log.Infof("gizmo space %s", state.Space)
	}

	axisKeys := []struct {
		key  int
		axis core.Axis
	}{
		{KeyZ, core.AxisX},
		{KeyX, core.AxisY},
		{KeyC, core.AxisZ},
	}
	for _, ak := range axisKeys {
		if input.JustPressed[ak.key] {
			snap.Translate = toggleAxisSnap(snap.Translate, ak.axis, shortcutTranslateSnap)
			log.Infof("translate snap %s %s", ak.axis, describeSnap(snap.Translate, ak.axis))
		}
	}
	if input.JustPressed[KeyV] {
		snap.Rotate = toggleAllSnap(snap.Rotate, shortcutRotateSnap)
		log.Infof("rotate snap %s", describeSnap(snap.Rotate, core.AxisX))
	}
	if input.JustPressed[KeyB] {
		snap.Scale = toggleAllSnap(snap.Scale, shortcutScaleSnap)
		log.Infof("scale snap %s", describeSnap(snap.Scale, core.AxisX))
	}
}

func toggleAxisSnap(s core.AxisSnap, axis core.Axis, increment float32) core.AxisSnap {
	if _, ok := s.Get(axis); ok {
		return s.Without(axis)
	}
	return s.With(axis, increment)
}

// toggleAllSnap follows the X axis: on if X was off, otherwise off.
func toggleAllSnap(s core.AxisSnap, increment float32) core.AxisSnap {
	if _, ok := s.Get(core.AxisX); ok {
		return core.NoSnap()
	}
	return core.UniformSnap(increment)
}

func describeSnap(s core.AxisSnap, axis core.Axis) string {
	if _, ok := s.Get(axis); ok {
		return "on"
	}
	return "off"
}

// gizmoPrepareSystem gathers the pick ray, the camera basis and the target
// list for this frame.
func gizmoPrepareSystem(cmd *Commands, input *Input, frame *gizmoFrame) {
	frame.hasRay = false
	frame.hasView = false
	frame.targets = frame.targets[:0]

	if cam, ok := FindGizmoCamera(cmd); ok {
		frame.view = cam.View()
		frame.hasView = true
		if input.CursorInWindow && !input.Flying() {
			frame.ray, frame.hasRay = cam.ScreenToWorldRay(input.MouseX, input.MouseY, input.WindowWidth, input.WindowHeight)
		}
	}

	MakeQuery2[GizmoTargetComponent, TransformComponent](cmd).Map(func(eid EntityId, _ *GizmoTargetComponent, tr *TransformComponent) bool {
		frame.targets = append(frame.targets, core.Target{ID: core.TargetID(eid), World: tr.Core()})
		return true
	})
}

// gizmoSyncActiveSystem attaches the gizmo to the first marked target.
func gizmoSyncActiveSystem(cmd *Commands, state *core.State, frame *gizmoFrame) {
	var first EntityId
	marked := 0
	MakeQuery3[GizmoTargetComponent, GizmoActiveComponent, TransformComponent](cmd).Map(func(eid EntityId, _ *GizmoTargetComponent, _ *GizmoActiveComponent, _ *TransformComponent) bool {
		if marked == 0 {
			first = eid
		}
		marked++
		return true
	})

	if marked != frame.markedActive {
		if marked > 1 {
			cmd.Logger().Warnf("%d entities carry GizmoActiveComponent, using entity %d", marked, first)
		}
		frame.markedActive = marked
	}
	if marked > 0 {
		state.SetActiveTarget(core.TargetID(first))
	}
}

func gizmoHoverSystem(state *core.State, style *core.Style, frame *gizmoFrame) {
	if state.IsDragging() {
		return
	}
	if !frame.hasRay {
		state.ClearHover()
		return
	}
	state.UpdateHover(frame.ray, frame.targets, style)
}

func gizmoBeginDragSystem(cmd *Commands, input *Input, state *core.State, frame *gizmoFrame) {
	if !input.JustPressed[MouseButtonLeft] || !frame.hasRay || !frame.hasView {
		return
	}

	d, err := state.BeginDrag(frame.ray, frame.view, frame.targets)
	if err != nil {
		if !errors.Is(err, core.ErrNothingHovered) {
			cmd.Logger().Debugf("gizmo: drag not started: %v", err)
		}
		return
	}
	cmd.Logger().Infof("drag %s begin target=%d op=%s axis=%s space=%s", d.ID, d.Target, d.Op, d.Axis, d.Space)
}

func gizmoDragSystem(cmd *Commands, input *Input, state *core.State, snap *core.Snap, frame *gizmoFrame) {
	if !state.IsDragging() || !input.Pressed[MouseButtonLeft] || !frame.hasRay {
		return
	}
	d, _ := state.Drag()

	eid := EntityId(d.Target)
	tr := componentOf[TransformComponent](cmd, eid)
	if tr == nil {
		return
	}

	next, ok := state.UpdateDrag(frame.ray, snap, tr.Core())
	if !ok {
		return
	}
	var world TransformComponent
	world.Set(next)
	writeWorldTransform(cmd, eid, tr, world)
}

func gizmoEndDragSystem(cmd *Commands, input *Input, state *core.State) {
	if input.Pressed[MouseButtonLeft] {
		return
	}
	if d, ok := state.EndDrag(); ok {
		cmd.Logger().Infof("drag %s end target=%d op=%s axis=%s", d.ID, d.Target, d.Op, d.Axis)
	}
}

func gizmoClearSystem(dl *GizmoDrawList, style *core.Style) {
	dl.Reset(style)
	dl.HandleStart = 0
}

func gizmoDrawSystem(state *core.State, style *core.Style, frame *gizmoFrame, dl *GizmoDrawList) {
	dl.HandleStart = len(dl.Lines)
	if !frame.hasView {
		return
	}
	for _, t := range frame.targets {
		core.Render(&dl.DrawList, t, state, style, frame.view)
	}
}
