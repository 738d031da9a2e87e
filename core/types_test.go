package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestSpace_Toggle(t *testing.T) {
	assert.Equal(t, SpaceWorld, SpaceLocal.Toggle())
	assert.Equal(t, SpaceLocal, SpaceWorld.Toggle())
	assert.Equal(t, "World", SpaceWorld.String())
}

func TestViewFromRotation(t *testing.T) {
	v := ViewFromRotation(mgl32.QuatIdent())
	assertVec(t, mgl32.Vec3{0, 0, -1}, v.Forward)
	assertVec(t, mgl32.Vec3{1, 0, 0}, v.Right)
	assertVec(t, mgl32.Vec3{0, 1, 0}, v.Up)

	// Yaw left by 90 degrees looks down -X.
	v = ViewFromRotation(mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}))
	assertVec(t, mgl32.Vec3{-1, 0, 0}, v.Forward)
}
