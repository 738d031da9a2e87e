package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Defaults(t *testing.T) {
	s := NewState()
	assert.Equal(t, ModeTranslate, s.Mode)
	assert.Equal(t, SpaceLocal, s.Space)
	_, ok := s.ActiveTarget()
	assert.False(t, ok)
	_, ok = s.Hovered()
	assert.False(t, ok)
	assert.False(t, s.IsDragging())
}

func TestState_UpdateHoverSetsActiveTarget(t *testing.T) {
	s := NewState()
	style := DefaultStyle()
	targets := []Target{targetAt(1, mgl32.Vec3{}), targetAt(2, mgl32.Vec3{10, 0, 0})}

	_, ok := s.UpdateHover(downRay(12.2, 0), targets, &style)
	require.True(t, ok)

	id, ok := s.ActiveTarget()
	require.True(t, ok)
	assert.Equal(t, TargetID(2), id)
	h, ok := s.Hovered()
	require.True(t, ok)
	assert.Equal(t, Handle{Op: OpTranslateAxis, Axis: AxisX}, h)

	// A miss clears the hover but keeps the active target.
	_, ok = s.UpdateHover(downRay(50, 50), targets, &style)
	assert.False(t, ok)
	_, ok = s.Hovered()
	assert.False(t, ok)
	id, ok = s.ActiveTarget()
	assert.True(t, ok)
	assert.Equal(t, TargetID(2), id)
}

func TestState_BeginDragErrors(t *testing.T) {
	style := DefaultStyle()
	targets := []Target{targetAt(1, mgl32.Vec3{})}

	s := NewState()
	_, err := s.BeginDrag(downRay(2.2, 0), frontView, targets)
	assert.ErrorIs(t, err, ErrNothingHovered)

	s.UpdateHover(downRay(2.2, 0), targets, &style)
	s.ClearActiveTarget()
	_, err = s.BeginDrag(downRay(2.2, 0), frontView, targets)
	assert.ErrorIs(t, err, ErrNoActiveTarget)

	s.SetActiveTarget(99)
	_, err = s.BeginDrag(downRay(2.2, 0), frontView, targets)
	assert.ErrorIs(t, err, ErrTargetNotFound)
	assert.False(t, s.IsDragging())
}

func TestState_DragLifecycle(t *testing.T) {
	s := NewState()
	s.Space = SpaceWorld
	style := DefaultStyle()
	tgt := targetAt(1, mgl32.Vec3{})
	targets := []Target{tgt}

	s.UpdateHover(downRay(2.2, 0), targets, &style)
	d, err := s.BeginDrag(downRay(2.2, 0), frontView, targets)
	require.NoError(t, err)
	assert.Equal(t, OpTranslateAxis, d.Op)
	assert.Equal(t, SpaceWorld, d.Space)
	assert.True(t, s.IsDragging())

	got, ok := s.UpdateDrag(downRay(4.2, 0), nil, tgt.World)
	require.True(t, ok)
	assertVec(t, mgl32.Vec3{2, 0, 0}, got.Translation)

	ended, ok := s.EndDrag()
	require.True(t, ok)
	assert.Equal(t, d, ended)
	assert.False(t, s.IsDragging())

	_, ok = s.UpdateDrag(downRay(4.2, 0), nil, tgt.World)
	assert.False(t, ok)
	_, ok = s.EndDrag()
	assert.False(t, ok)
}

func TestState_BeginDragReturnsCopy(t *testing.T) {
	s := NewState()
	style := DefaultStyle()
	tgt := targetAt(1, mgl32.Vec3{})
	targets := []Target{tgt}

	s.UpdateHover(downRay(2.2, 0), targets, &style)
	d, err := s.BeginDrag(downRay(2.2, 0), frontView, targets)
	require.NoError(t, err)

	d.StartTranslation = mgl32.Vec3{9, 9, 9}
	d.AxisDir = mgl32.Vec3{0, 1, 0}

	live, ok := s.Drag()
	require.True(t, ok)
	assertVec(t, mgl32.Vec3{}, live.StartTranslation)
	assertVec(t, mgl32.Vec3{1, 0, 0}, live.AxisDir)

	got, ok := s.UpdateDrag(downRay(4.2, 0), nil, tgt.World)
	require.True(t, ok)
	assertVec(t, mgl32.Vec3{2, 0, 0}, got.Translation)
}

func TestState_SecondDragRejected(t *testing.T) {
	s := NewState()
	style := DefaultStyle()
	targets := []Target{targetAt(1, mgl32.Vec3{}), targetAt(2, mgl32.Vec3{0, 0, 5})}

	s.UpdateHover(downRay(2.2, 0), targets[:1], &style)
	first, err := s.BeginDrag(downRay(2.2, 0), frontView, targets)
	require.NoError(t, err)
	before := first

	// Hover is frozen while dragging.
	_, ok := s.UpdateHover(downRay(0, 0), targets, &style)
	assert.False(t, ok)
	h, _ := s.Hovered()
	assert.Equal(t, Handle{Op: OpTranslateAxis, Axis: AxisX}, h)

	_, err = s.BeginDrag(downRay(0, 0), frontView, targets)
	assert.ErrorIs(t, err, ErrDragInProgress)

	after, ok := s.Drag()
	require.True(t, ok)
	assert.Equal(t, before, after)
}

func TestState_IsActiveAndHovered(t *testing.T) {
	s := NewState()
	style := DefaultStyle()
	targets := []Target{targetAt(1, mgl32.Vec3{})}
	cone := Handle{Op: OpTranslateAxis, Axis: AxisX}

	s.UpdateHover(downRay(2.2, 0), targets, &style)
	assert.True(t, s.IsHovered(1, cone))
	assert.False(t, s.IsHovered(2, cone))
	assert.False(t, s.IsActive(1, cone))

	_, err := s.BeginDrag(downRay(2.2, 0), frontView, targets)
	require.NoError(t, err)
	assert.True(t, s.IsActive(1, cone))
	assert.False(t, s.IsActive(1, Handle{Op: OpTranslateAxis, Axis: AxisY}))
}
