package gizmo

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"reflect"
	"slices"
	"sync"
)

// EntityId identifies an entity. Ids start at 1; 0 is never allocated.
type EntityId uint64

type archetypeId uint64
type archetypeKey []componentId
type componentId uint32
type row int
type set[T comparable] = map[T]struct{}

type Ecs struct {
	archetypes  map[archetypeId]*archetype
	entityIndex map[EntityId]archetypeId

	idLock       sync.Mutex
	lastEntityId EntityId

	componentLock  sync.Mutex
	componentIds   map[reflect.Type]componentId
	componentTypes []reflect.Type
}

func MakeEcs() Ecs {
	return Ecs{
		archetypes:   make(map[archetypeId]*archetype),
		entityIndex:  make(map[EntityId]archetypeId),
		componentIds: make(map[reflect.Type]componentId),
	}
}

// archetype stores every entity sharing one exact component set. Each
// component lives in a typed slice (column); an entity owns one row across
// all columns.
type archetype struct {
	id       archetypeId
	key      archetypeKey
	entities map[EntityId]row
	columns  map[componentId]any
	size     int
	recycled []row
}

func (ecs *Ecs) addEntity(components ...any) EntityId {
	return ecs.insertEntity(ecs.nextEntityId(), components...)
}

func (ecs *Ecs) insertEntity(entityId EntityId, components ...any) EntityId {
	archId, arch := ecs.getOrMakeArchetype(ecs.keyOf(components...))

	r := ecs.reserveRow(arch)
	for _, c := range components {
		ecs.writeComponent(arch, r, c)
	}

	arch.entities[entityId] = r
	ecs.entityIndex[entityId] = archId
	return entityId
}

func (ecs *Ecs) hasEntity(entityId EntityId) bool {
	_, ok := ecs.entityIndex[entityId]
	return ok
}

func (ecs *Ecs) removeEntity(entityId EntityId) {
	if !ecs.hasEntity(entityId) {
		return
	}
	ecs.releaseRow(entityId)
}

func (ecs *Ecs) addComponents(entityId EntityId, components ...any) {
	src, srcRow, ok := ecs.locate(entityId)
	if !ok {
		return
	}

	dstKey := mergeKeys(src.key, ecs.keyOf(components...))
	dstId, dst := ecs.getOrMakeArchetype(dstKey)
	dstRow := ecs.reserveRow(dst)

	copyRow(src, srcRow, dst, dstRow, src.key)
	for _, c := range components {
		ecs.writeComponent(dst, dstRow, c)
	}

	ecs.releaseRow(entityId)
	dst.entities[entityId] = dstRow
	ecs.entityIndex[entityId] = dstId
}

func (ecs *Ecs) removeComponents(entityId EntityId, components ...any) {
	src, srcRow, ok := ecs.locate(entityId)
	if !ok {
		return
	}

	drop := make(set[componentId], len(components))
	for _, c := range components {
		drop[ecs.getComponentId(componentType(c))] = struct{}{}
	}

	dstKey := make(archetypeKey, 0, len(src.key))
	for _, id := range src.key {
		if _, ok := drop[id]; !ok {
			dstKey = append(dstKey, id)
		}
	}

	dstId, dst := ecs.getOrMakeArchetype(dstKey)
	dstRow := ecs.reserveRow(dst)
	copyRow(src, srcRow, dst, dstRow, dstKey)

	ecs.releaseRow(entityId)
	dst.entities[entityId] = dstRow
	ecs.entityIndex[entityId] = dstId
}

func (ecs *Ecs) locate(entityId EntityId) (*archetype, row, bool) {
	archId, ok := ecs.entityIndex[entityId]
	if !ok {
		return nil, 0, false
	}
	arch := ecs.archetypes[archId]
	return arch, arch.entities[entityId], true
}

func (ecs *Ecs) componentsOf(entityId EntityId) []any {
	arch, r, ok := ecs.locate(entityId)
	if !ok {
		return nil
	}
	res := make([]any, 0, len(arch.key))
	for _, id := range arch.key {
		res = append(res, reflect.ValueOf(arch.columns[id]).Index(int(r)).Interface())
	}
	return res
}

// copyRow copies the columns in key from one archetype row to another.
// Both archetypes must contain every component of key.
func copyRow(src *archetype, srcRow row, dst *archetype, dstRow row, key archetypeKey) {
	for _, id := range key {
		srcCol, ok := src.columns[id]
		if !ok {
			continue
		}
		dstCol, ok := dst.columns[id]
		if !ok {
			continue
		}
		v := reflect.ValueOf(srcCol).Index(int(srcRow))
		reflect.ValueOf(dstCol).Index(int(dstRow)).Set(v)
	}
}

func (ecs *Ecs) writeComponent(arch *archetype, r row, component any) {
	v := reflect.ValueOf(component)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	id := ecs.getComponentId(v.Type())
	reflect.ValueOf(arch.columns[id]).Index(int(r)).Set(v)
}

func (ecs *Ecs) releaseRow(entityId EntityId) {
	arch, r, ok := ecs.locate(entityId)
	if !ok {
		return
	}
	for _, id := range arch.key {
		col := reflect.ValueOf(arch.columns[id]).Index(int(r))
		col.Set(reflect.Zero(col.Type()))
	}
	arch.recycled = append(arch.recycled, r)

	delete(arch.entities, entityId)
	delete(ecs.entityIndex, entityId)
}

func (ecs *Ecs) getOrMakeArchetype(key archetypeKey) (archetypeId, *archetype) {
	id := hashKey(key)
	if arch, ok := ecs.archetypes[id]; ok {
		return id, arch
	}

	arch := &archetype{
		id:       id,
		key:      key,
		entities: make(map[EntityId]row),
		columns:  make(map[componentId]any, len(key)),
	}
	for _, cid := range key {
		arch.columns[cid] = reflect.MakeSlice(reflect.SliceOf(ecs.componentTypes[cid]), 0, 4).Interface()
	}

	ecs.archetypes[id] = arch
	return id, arch
}

func (ecs *Ecs) reserveRow(arch *archetype) row {
	if n := len(arch.recycled); n > 0 {
		r := arch.recycled[n-1]
		arch.recycled = arch.recycled[:n-1]
		return r
	}

	r := row(arch.size)
	arch.size++
	for _, cid := range arch.key {
		col := reflect.ValueOf(arch.columns[cid])
		arch.columns[cid] = reflect.Append(col, reflect.Zero(ecs.componentTypes[cid])).Interface()
	}
	return r
}

// keyOf returns the sorted, duplicate-free component ids of components.
func (ecs *Ecs) keyOf(components ...any) archetypeKey {
	key := make(archetypeKey, 0, len(components))
	for _, c := range components {
		key = append(key, ecs.getComponentId(componentType(c)))
	}
	return normalizeKey(key)
}

func componentType(component any) reflect.Type {
	t := reflect.TypeOf(component)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("component must be a struct or a pointer to a struct, got %v", t))
	}
	return t
}

func mergeKeys(a, b archetypeKey) archetypeKey {
	merged := make(archetypeKey, 0, len(a)+len(b))
	merged = append(merged, a...)
	return normalizeKey(append(merged, b...))
}

func normalizeKey(key archetypeKey) archetypeKey {
	slices.Sort(key)
	return slices.Compact(key)
}

func hashKey(key archetypeKey) archetypeId {
	h := fnv.New64a()
	var b [4]byte
	for _, id := range key {
		binary.LittleEndian.PutUint32(b[:], uint32(id))
		h.Write(b[:])
	}
	return archetypeId(h.Sum64())
}

func (ecs *Ecs) nextEntityId() EntityId {
	ecs.idLock.Lock()
	defer ecs.idLock.Unlock()

	ecs.lastEntityId++
	return ecs.lastEntityId
}

func (ecs *Ecs) getComponentId(t reflect.Type) componentId {
	ecs.componentLock.Lock()
	defer ecs.componentLock.Unlock()

	if id, ok := ecs.componentIds[t]; ok {
		return id
	}
	id := componentId(len(ecs.componentTypes))
	ecs.componentIds[t] = id
	ecs.componentTypes = append(ecs.componentTypes, t)
	return id
}
