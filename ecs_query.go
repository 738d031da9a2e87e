package gizmo

import (
	"reflect"
	"slices"
)

// Queries visit matching entities in ascending EntityId order. Passing a
// zero component value as an optional lets the query match entities that
// lack it; the callback then receives nil for that argument. Returning
// false from the callback stops the iteration.
type Query1[A any] struct{ ecs *Ecs }
type Query2[A, B any] struct{ ecs *Ecs }
type Query3[A, B, C any] struct{ ecs *Ecs }
type Query4[A, B, C, D any] struct{ ecs *Ecs }

func MakeQuery1[A any](cmd *Commands) Query1[A]             { return Query1[A]{ecs: cmd.app.ecs} }
func MakeQuery2[A, B any](cmd *Commands) Query2[A, B]       { return Query2[A, B]{ecs: cmd.app.ecs} }
func MakeQuery3[A, B, C any](cmd *Commands) Query3[A, B, C] { return Query3[A, B, C]{ecs: cmd.app.ecs} }
func MakeQuery4[A, B, C, D any](cmd *Commands) Query4[A, B, C, D] {
	return Query4[A, B, C, D]{ecs: cmd.app.ecs}
}

type match struct {
	eid  EntityId
	arch *archetype
	row  row
}

// collect returns the rows of every entity whose archetype holds all of
// ids, except those listed in opt, sorted by entity id.
func (ecs *Ecs) collect(ids []componentId, opt set[componentId]) []match {
	var res []match
	for _, arch := range ecs.archetypes {
		if !archMatches(arch, ids, opt) {
			continue
		}
		for eid, r := range arch.entities {
			res = append(res, match{eid: eid, arch: arch, row: r})
		}
	}
	slices.SortFunc(res, func(a, b match) int {
		switch {
		case a.eid < b.eid:
			return -1
		case a.eid > b.eid:
			return 1
		}
		return 0
	})
	return res
}

func archMatches(arch *archetype, ids []componentId, opt set[componentId]) bool {
	for _, id := range ids {
		if _, ok := arch.columns[id]; ok {
			continue
		}
		if _, ok := opt[id]; ok {
			continue
		}
		return false
	}
	return true
}

// cell returns a pointer into the typed column of m's archetype, or nil
// when the archetype lacks the component.
func cell[T any](m match, id componentId) *T {
	col, ok := m.arch.columns[id]
	if !ok {
		return nil
	}
	return &col.([]T)[m.row]
}

func (q Query1[A]) Map(m func(EntityId, *A) bool, optionals ...any) {
	a := idOf[A](q.ecs)
	for _, e := range q.ecs.collect([]componentId{a}, identifyOptionals(q.ecs, optionals...)) {
		if !m(e.eid, cell[A](e, a)) {
			return
		}
	}
}

func (q Query2[A, B]) Map(m func(EntityId, *A, *B) bool, optionals ...any) {
	a, b := idOf[A](q.ecs), idOf[B](q.ecs)
	for _, e := range q.ecs.collect([]componentId{a, b}, identifyOptionals(q.ecs, optionals...)) {
		if !m(e.eid, cell[A](e, a), cell[B](e, b)) {
			return
		}
	}
}

func (q Query3[A, B, C]) Map(m func(EntityId, *A, *B, *C) bool, optionals ...any) {
	a, b, c := idOf[A](q.ecs), idOf[B](q.ecs), idOf[C](q.ecs)
	for _, e := range q.ecs.collect([]componentId{a, b, c}, identifyOptionals(q.ecs, optionals...)) {
		if !m(e.eid, cell[A](e, a), cell[B](e, b), cell[C](e, c)) {
			return
		}
	}
}

func (q Query4[A, B, C, D]) Map(m func(EntityId, *A, *B, *C, *D) bool, optionals ...any) {
	a, b, c, d := idOf[A](q.ecs), idOf[B](q.ecs), idOf[C](q.ecs), idOf[D](q.ecs)
	for _, e := range q.ecs.collect([]componentId{a, b, c, d}, identifyOptionals(q.ecs, optionals...)) {
		if !m(e.eid, cell[A](e, a), cell[B](e, b), cell[C](e, c), cell[D](e, d)) {
			return
		}
	}
}

func identifyOptionals(ecs *Ecs, optionals ...any) set[componentId] {
	res := make(set[componentId], len(optionals))
	for _, o := range optionals {
		res[ecs.getComponentId(componentType(o))] = struct{}{}
	}
	return res
}

func idOf[T any](ecs *Ecs) componentId {
	return ecs.getComponentId(reflect.TypeFor[T]())
}

// componentOf returns the live component T of entity, or nil.
func componentOf[T any](cmd *Commands, entity EntityId) *T {
	ecs := cmd.app.ecs
	arch, r, ok := ecs.locate(entity)
	if !ok {
		return nil
	}
	return cell[T](match{eid: entity, arch: arch, row: r}, idOf[T](ecs))
}
