package core

import "errors"

var (
	ErrDragInProgress = errors.New("gizmo: drag already in progress")
	ErrNothingHovered = errors.New("gizmo: no handle hovered")
	ErrNoActiveTarget = errors.New("gizmo: no active target")
	ErrTargetNotFound = errors.New("gizmo: active target not among targets")
)

// Handle is an (operation, axis) pair.
type Handle struct {
	Op   Operation
	Axis Axis
}

// State is the gizmo interaction state. It has a single writer per frame
// phase and is not safe for concurrent use.
type State struct {
	Mode  Mode
	Space Space

	activeTarget TargetID
	hasActive    bool

	hovered    Handle
	hasHovered bool

	drag *Drag
}

func NewState() *State {
	return &State{Mode: ModeTranslate, Space: SpaceLocal}
}

// ActiveTarget returns the target the gizmo is attached to.
func (s *State) ActiveTarget() (TargetID, bool) {
	return s.activeTarget, s.hasActive
}

func (s *State) SetActiveTarget(id TargetID) {
	s.activeTarget = id
	s.hasActive = true
}

// ClearActiveTarget detaches the gizmo. An in-progress drag is unaffected.
func (s *State) ClearActiveTarget() {
	s.activeTarget = 0
	s.hasActive = false
}

func (s *State) Hovered() (Handle, bool) {
	return s.hovered, s.hasHovered
}

func (s *State) ClearHover() {
	s.hovered = Handle{}
	s.hasHovered = false
}

func (s *State) IsDragging() bool {
	return s.drag != nil
}

// Drag returns a copy of the current drag snapshot.
func (s *State) Drag() (Drag, bool) {
	if s.drag == nil {
		return Drag{}, false
	}
	return *s.drag, true
}

// UpdateHover hit-tests ray against targets. The winning target becomes
// active and its handle hovered; a miss clears the hover but keeps the
// active target. It does nothing while dragging.
func (s *State) UpdateHover(ray Ray, targets []Target, style *Style) (Hit, bool) {
	if s.drag != nil {
		return Hit{}, false
	}

	hit, ok := HitTest(ray, targets, s.Space, style)
	if !ok {
		s.ClearHover()
		return Hit{}, false
	}

	s.SetActiveTarget(hit.Target)
	s.hovered = Handle{Op: hit.Op, Axis: hit.Axis}
	s.hasHovered = true
	return hit, true
}

// BeginDrag starts dragging the hovered handle of the active target and
// returns a copy of the captured snapshot.
func (s *State) BeginDrag(ray Ray, view View, targets []Target) (Drag, error) {
	if s.drag != nil {
		return Drag{}, ErrDragInProgress
	}
	if !s.hasHovered {
		return Drag{}, ErrNothingHovered
	}
	if !s.hasActive {
		return Drag{}, ErrNoActiveTarget
	}

	for _, t := range targets {
		if t.ID != s.activeTarget {
			continue
		}
		d := NewDrag(ray, view, t, s.Space, s.hovered.Op, s.hovered.Axis)
		s.drag = &d
		return d, nil
	}
	return Drag{}, ErrTargetNotFound
}

// UpdateDrag returns current with the drag applied for ray. It reports
// false when no drag is in progress.
func (s *State) UpdateDrag(ray Ray, snap *Snap, current Transform) (Transform, bool) {
	if s.drag == nil {
		return current, false
	}
	return s.drag.Apply(ray, snap, current), true
}

// EndDrag clears the drag and returns the finished snapshot.
func (s *State) EndDrag() (Drag, bool) {
	if s.drag == nil {
		return Drag{}, false
	}
	d := *s.drag
	s.drag = nil
	return d, true
}

// IsActive reports whether handle h of target is being dragged.
func (s *State) IsActive(target TargetID, h Handle) bool {
	return s.drag != nil && s.drag.Target == target && s.drag.Op == h.Op && s.drag.Axis == h.Axis
}

// IsHovered reports whether handle h of target is under the cursor.
func (s *State) IsHovered(target TargetID, h Handle) bool {
	return s.hasActive && s.activeTarget == target && s.hasHovered && s.hovered == h
}
