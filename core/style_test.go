package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStyle_Valid(t *testing.T) {
	s := DefaultStyle()
	require.NoError(t, s.Validate())
	assert.InDelta(t, 2.6, s.BoundsRadius, 1e-6)
	assert.InDelta(t, 0.36, s.TranslateHitRadius, 1e-6)
	assert.InDelta(t, 0.18, s.ScaleHitRadius, 1e-6)
}

func TestStyle_ValidateRejectsNegative(t *testing.T) {
	s := DefaultStyle()
	s.TranslateHitRadius = -1
	err := s.Validate()
	assert.ErrorIs(t, err, ErrNegativeSize)
	assert.Contains(t, err.Error(), "translate_hit_radius")

	s = DefaultStyle()
	s.RotationArcSegments = -3
	assert.ErrorIs(t, s.Validate(), ErrNegativeSize)
}

func TestStyle_ShowOnly(t *testing.T) {
	s := DefaultStyle()
	s.ShowOnly(ModeRotate)
	assert.False(t, s.ShowTranslate)
	assert.True(t, s.ShowRotate)
	assert.False(t, s.ShowScale)

	s.ShowAll()
	assert.True(t, s.ShowTranslate && s.ShowRotate && s.ShowScale)
}

func TestStateColors_Pick(t *testing.T) {
	c := DefaultStateColors()
	assert.Equal(t, c.Active, c.Pick(true, true))
	assert.Equal(t, c.Active, c.Pick(true, false))
	assert.Equal(t, c.Hover, c.Pick(false, true))
	assert.Equal(t, c.Idle, c.Pick(false, false))
}
