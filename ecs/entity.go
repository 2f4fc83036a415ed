package ecs

// EntityID is an opaque handle for an entity. IDs are never reused within a World.
type EntityID uint64

// TagSet is a bitset of zero-data category markers
type TagSet uint32

// Has reports whether every tag in want is present
func (s TagSet) Has(want TagSet) bool {
	return s&want == want
}

// Any reports whether at least one tag in want is present
func (s TagSet) Any(want TagSet) bool {
	return s&want != 0
}

// Entity represents a game object in the ECS architecture
type Entity struct {
	ID   EntityID
	Tags TagSet
}

// AddTag adds tags to the entity
func (e *Entity) AddTag(tags TagSet) {
	e.Tags |= tags
}

// HasTag checks if the entity has all of the given tags
func (e *Entity) HasTag(tags TagSet) bool {
	return e.Tags.Has(tags)
}

// RemoveTag removes tags from the entity
func (e *Entity) RemoveTag(tags TagSet) {
	e.Tags &^= tags
}
