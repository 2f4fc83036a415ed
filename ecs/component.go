package ecs

// ComponentID identifies a component type. Each entity holds at most one
// component per ID.
type ComponentID uint

// Component is any pointer to a component record
type Component any

type componentSet map[ComponentID]Component

// AddComponent attaches a component, replacing any previous one with the
// same ID. Unknown and purged entities are ignored.
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	set, exists := w.components[entityID]
	if !exists {
		return
	}
	set[componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	component, exists := w.components[entityID][componentID]
	return component, exists
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	_, exists := w.components[entityID][componentID]
	return exists
}

// RemoveComponent detaches a component from an entity
func (w *World) RemoveComponent(entityID EntityID, componentID ComponentID) {
	delete(w.components[entityID], componentID)
}

func (w *World) hasAll(entityID EntityID, componentIDs []ComponentID) bool {
	set := w.components[entityID]
	for _, cid := range componentIDs {
		if _, ok := set[cid]; !ok {
			return false
		}
	}
	return true
}

// Get fetches a component and asserts it to *T. ok is false when the
// component is missing or has a different type.
func Get[T any](w *World, entityID EntityID, componentID ComponentID) (*T, bool) {
	comp, ok := w.GetComponent(entityID, componentID)
	if !ok {
		return nil, false
	}
	typed, ok := comp.(*T)
	return typed, ok
}
