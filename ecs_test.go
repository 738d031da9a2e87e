package gizmo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type posComp struct{ X, Y int }
type nameComp struct{ Name string }
type tagComp struct{}

func TestEcs_MakeEcs(t *testing.T) {
	ecs := MakeEcs()

	if len(ecs.archetypes) != 0 {
		t.Errorf("Expected archetypes to be empty, got %v", ecs.archetypes)
	}
	if len(ecs.entityIndex) != 0 {
		t.Errorf("Expected entityIndex to be empty, got %v", ecs.entityIndex)
	}
}

func TestEcs_IdsStartAtOne(t *testing.T) {
	ecs := MakeEcs()

	a := ecs.addEntity()
	b := ecs.addEntity(posComp{})

	assert.Equal(t, EntityId(1), a)
	assert.Equal(t, EntityId(2), b)
}

func TestEcs_AddEntity(t *testing.T) {
	ecs := MakeEcs()

	empty := ecs.addEntity()
	withPos := ecs.addEntity(posComp{X: 1})

	require.True(t, ecs.hasEntity(empty))
	require.True(t, ecs.hasEntity(withPos))
	assert.NotEqual(t, ecs.entityIndex[empty], ecs.entityIndex[withPos],
		"entities with different components must not share an archetype")
}

func TestEcs_SameComponentsShareArchetype(t *testing.T) {
	ecs := MakeEcs()

	a := ecs.addEntity(posComp{}, nameComp{})
	b := ecs.addEntity(&nameComp{}, &posComp{})

	assert.Equal(t, ecs.entityIndex[a], ecs.entityIndex[b])
}

func TestEcs_AddComponentsKeepsValues(t *testing.T) {
	ecs := MakeEcs()

	eid := ecs.addEntity(posComp{X: 3, Y: 4})
	ecs.addComponents(eid, nameComp{Name: "box"}, &tagComp{})

	comps := ecs.componentsOf(eid)
	require.Len(t, comps, 3)
	assert.Contains(t, comps, posComp{X: 3, Y: 4})
	assert.Contains(t, comps, nameComp{Name: "box"})
	assert.Contains(t, comps, tagComp{})
}

func TestEcs_AddComponentsOverwritesExisting(t *testing.T) {
	ecs := MakeEcs()

	eid := ecs.addEntity(posComp{X: 1})
	ecs.addComponents(eid, posComp{X: 2})

	assert.Equal(t, []any{posComp{X: 2}}, ecs.componentsOf(eid))
}

func TestEcs_RemoveComponents(t *testing.T) {
	ecs := MakeEcs()

	eid := ecs.addEntity(posComp{X: 7}, nameComp{Name: "n"})
	ecs.removeComponents(eid, nameComp{})

	assert.Equal(t, []any{posComp{X: 7}}, ecs.componentsOf(eid))
}

func TestEcs_RemoveEntityRecyclesRow(t *testing.T) {
	ecs := MakeEcs()

	a := ecs.addEntity(posComp{X: 1})
	ecs.removeEntity(a)
	assert.False(t, ecs.hasEntity(a))

	b := ecs.addEntity(posComp{X: 2})
	arch := ecs.archetypes[ecs.entityIndex[b]]
	assert.Equal(t, 1, arch.size, "row of the removed entity should be reused")
	assert.Equal(t, []any{posComp{X: 2}}, ecs.componentsOf(b))
}

func TestEcs_UnknownEntityIsIgnored(t *testing.T) {
	ecs := MakeEcs()

	assert.NotPanics(t, func() {
		ecs.removeEntity(42)
		ecs.addComponents(42, posComp{})
		ecs.removeComponents(42, posComp{})
	})
	assert.Nil(t, ecs.componentsOf(42))
}

func TestEcs_NonStructComponentPanics(t *testing.T) {
	ecs := MakeEcs()
	assert.Panics(t, func() { ecs.addEntity(5) })
}
