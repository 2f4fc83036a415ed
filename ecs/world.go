package ecs

import "slices"

// World manages all entities and components.
//
// Removal is deferred: Despawn only marks an entity, and Purge drops every
// marked entity together with its components. Between the two, a marked
// entity is invisible to queries and IsAlive reports false, so a handle can
// never be acted on twice within the same pass.
type World struct {
	nextID     EntityID
	entities   map[EntityID]*Entity
	components map[EntityID]componentSet

	// Entities marked for removal at the next Purge
	pending map[EntityID]struct{}

	// Event manager for system communication
	eventManager *EventManager
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		entities:     make(map[EntityID]*Entity),
		components:   make(map[EntityID]componentSet),
		pending:      make(map[EntityID]struct{}),
		eventManager: NewEventManager(),
	}
}

// CreateEntity creates a new entity and adds it to the world
func (w *World) CreateEntity() *Entity {
	w.nextID++
	entity := &Entity{ID: w.nextID}
	w.entities[entity.ID] = entity
	w.components[entity.ID] = make(componentSet)
	return entity
}

// Despawn marks an entity for removal. It returns false if the entity is
// unknown or already marked; calling it twice is a no-op.
func (w *World) Despawn(entityID EntityID) bool {
	if _, exists := w.entities[entityID]; !exists {
		return false
	}
	if _, marked := w.pending[entityID]; marked {
		return false
	}
	w.pending[entityID] = struct{}{}
	return true
}

// IsPending reports whether the entity is marked for removal
func (w *World) IsPending(entityID EntityID) bool {
	_, marked := w.pending[entityID]
	return marked
}

// IsAlive reports whether the entity exists and is not marked for removal
func (w *World) IsAlive(entityID EntityID) bool {
	if _, exists := w.entities[entityID]; !exists {
		return false
	}
	return !w.IsPending(entityID)
}

// PendingCount returns the number of entities waiting for Purge
func (w *World) PendingCount() int {
	return len(w.pending)
}

// Purge removes every marked entity and all its components, returning how many were removed
func (w *World) Purge() int {
	n := len(w.pending)
	for id := range w.pending {
		delete(w.components, id)
		delete(w.entities, id)
	}
	clear(w.pending)
	return n
}

// TagEntity adds tags to an entity
func (w *World) TagEntity(entityID EntityID, tags TagSet) {
	if entity, exists := w.entities[entityID]; exists {
		entity.AddTag(tags)
	}
}

// HasTag reports whether the entity carries every tag in tags
func (w *World) HasTag(entityID EntityID, tags TagSet) bool {
	entity, exists := w.entities[entityID]
	return exists && entity.HasTag(tags)
}

// Tags returns the tag set of an entity, or zero if it does not exist
func (w *World) Tags(entityID EntityID) TagSet {
	if entity, exists := w.entities[entityID]; exists {
		return entity.Tags
	}
	return 0
}

// Query returns the live entities that carry every tag in tags and every
// listed component, in ascending ID order.
func (w *World) Query(tags TagSet, componentIDs ...ComponentID) []EntityID {
	result := make([]EntityID, 0)
	for id, entity := range w.entities {
		if !entity.HasTag(tags) || w.IsPending(id) {
			continue
		}
		if !w.hasAll(id, componentIDs) {
			continue
		}
		result = append(result, id)
	}
	slices.Sort(result)
	return result
}

// CountTagged returns the number of live entities carrying every tag in tags
func (w *World) CountTagged(tags TagSet) int {
	n := 0
	for id, entity := range w.entities {
		if entity.HasTag(tags) && !w.IsPending(id) {
			n++
		}
	}
	return n
}

// GetEntity returns an entity by its ID
func (w *World) GetEntity(entityID EntityID) *Entity {
	entity, exists := w.entities[entityID]
	if !exists {
		return nil
	}
	return entity
}

// Count returns the number of live entities
func (w *World) Count() int {
	return len(w.entities) - len(w.pending)
}

// Clear removes all entities and components. IDs keep increasing.
func (w *World) Clear() {
	clear(w.entities)
	clear(w.components)
	clear(w.pending)
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}
