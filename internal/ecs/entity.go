package ecs

// EntityID uniquely identifies an entity in a Store. IDs are never reused.
type EntityID uint64

// NilEntity is the zero value. No valid entity has this ID.
const NilEntity EntityID = 0

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct attached to an entity.
type Component interface {
	Type() ComponentType
}
