// Package ecs stores game objects as entities made of plain component values,
// grouped by archetype, and runs systems over them once per frame.
package ecs

import (
	"cmp"
	"reflect"
	"slices"
	"sort"
	"unsafe"
)

// Storage is the main ECS storage interface
type Storage struct {
	archetypes map[uint32]*Archetype
	registry   *ComponentRegistry
	singletons map[reflect.Type]*singletonEntry
}

type singletonEntry struct {
	typ     reflect.Type
	dataPtr unsafe.Pointer
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: make(map[uint32]*Archetype),
		registry:   registry,
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// GetArchetypes returns every archetype ordered by ID.
func (s *Storage) GetArchetypes() []*Archetype {
	out := make([]*Archetype, 0, len(s.archetypes))
	for _, a := range s.archetypes {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b *Archetype) int { return cmp.Compare(a.id, b.id) })
	return out
}

// GetArchetypeById returns the archetype with the given ID, or nil.
func (s *Storage) GetArchetypeById(id uint32) *Archetype {
	return s.archetypes[id]
}

// GetArchetype returns an archetype storage (if one exists)
func (s *Storage) GetArchetype(components ...any) *Archetype {
	types := extractComponentTypes(components)
	return s.archetypes[hashTypesToUint32(types)]
}

// Spawn creates a new entity with the provided components
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	types := extractComponentTypes(components)
	archetypeId := hashTypesToUint32(types)

	archetype, exists := s.archetypes[archetypeId]
	if !exists {
		archetype = NewArchetype(archetypeId, types, s.registry)
		s.archetypes[archetypeId] = archetype
	}

	entityIndex := archetype.Spawn(components)
	return NewEntityId(archetypeId, entityIndex)
}

// Delete removes all data related to the entity ID
func (s *Storage) Delete(id EntityId) {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return
	}
	archetype.Delete(id.Index())
}

// Count returns the number of live entities.
func (s *Storage) Count() int {
	n := 0
	for _, a := range s.archetypes {
		n += a.Len()
	}
	return n
}

// GetComponent returns the component for the given entity ID and component type
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return nil
	}
	return archetype.GetComponent(id.Index(), compType)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return false
	}
	return archetype.HasComponent(compType)
}

// AddSingleton stores value as the single instance of its type. Adding a
// second value of the same type overwrites the first in place, so pointers
// handed out earlier observe the new value.
func (s *Storage) AddSingleton(value any) {
	typ := componentType(value)
	if entry, ok := s.singletons[typ]; ok {
		reflect.NewAt(typ, entry.dataPtr).Elem().Set(reflect.Indirect(reflect.ValueOf(value)))
		return
	}

	v := reflect.New(typ)
	v.Elem().Set(reflect.Indirect(reflect.ValueOf(value)))
	s.singletons[typ] = &singletonEntry{typ: typ, dataPtr: v.UnsafePointer()}
}

func (s *Storage) getSingletonEntry(typ reflect.Type) *singletonEntry {
	return s.singletons[typ]
}

// ReadSingleton points *ptr at the singleton of type T, where ptr is a **T.
// It reports whether the singleton exists.
func (s *Storage) ReadSingleton(ptr any) bool {
	target := reflect.ValueOf(ptr)
	if target.Kind() != reflect.Ptr || target.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton requires a pointer to a pointer")
	}

	typ := target.Elem().Type().Elem()
	entry := s.getSingletonEntry(typ)
	if entry == nil {
		return false
	}
	target.Elem().Set(reflect.NewAt(typ, entry.dataPtr))
	return true
}

// SingletonTypes returns the types of every stored singleton sorted by name.
func (s *Storage) SingletonTypes() []reflect.Type {
	types := make([]reflect.Type, 0, len(s.singletons))
	for t := range s.singletons {
		types = append(types, t)
	}
	sort.Sort(byTypeName(types))
	return types
}

// GetSingleton returns a pointer to the singleton of the given type, or nil.
func (s *Storage) GetSingleton(typ reflect.Type) any {
	entry := s.getSingletonEntry(typ)
	if entry == nil {
		return nil
	}
	return reflect.NewAt(typ, entry.dataPtr).Interface()
}

func componentType(comp any) reflect.Type {
	compType := reflect.TypeOf(comp)
	if compType == nil {
		panic("components cannot be nil")
	}

	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}

	// Components are value types: structs or primitives, never references.
	if compType.Kind() == reflect.Ptr || compType.Kind() == reflect.Map ||
		compType.Kind() == reflect.Chan || compType.Kind() == reflect.Func {
		panic("components cannot be pointers, maps, channels, or functions")
	}
	return compType
}

// extractComponentTypes extracts and sorts component types from a slice of components
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		types = append(types, componentType(comp))
	}
	sort.Sort(byTypeName(types))
	return types
}

// hashTypesToUint32 generates a uint32 hash for a sorted slice of types
func hashTypesToUint32(types []reflect.Type) uint32 {
	var h uint32 = 2166136261     // FNV-1a 32-bit offset basis
	const prime uint32 = 16777619 // FNV-1a 32-bit prime

	for _, t := range types {
		// The type descriptor's address identifies it uniquely
		ptr := dataPointer(t)
		val := uint32(uintptr(ptr))

		if unsafe.Sizeof(uintptr(0)) == 8 {
			val ^= uint32(uintptr(ptr) >> 32)
		}

		h ^= val
		h *= prime
	}

	return h
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's component of type T, or nil.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
