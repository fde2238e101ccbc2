// Package ecs implements a fixed-capacity entity-component-system registry.
// All storage is sized up front from the registry configuration; no pool,
// component buffer, or system list ever grows after New returns. The design
// targets allocation-averse main loops where memory must be bounded and known
// ahead of time.
package ecs

// Entity encodes both the slot index (lower 16 bits) and the slot generation
// (upper 16 bits). A handle is only meaningful to the registry that issued it,
// and only while the slot's stored generation matches the encoded one.
type Entity uint32

// NewEntity creates an Entity handle from a slot index and a generation.
func NewEntity(index uint16, generation uint16) Entity {
	return Entity(uint32(generation)<<16 | uint32(index))
}

// Index extracts the slot index from the handle.
func (e Entity) Index() uint16 {
	return uint16(e & 0xFFFF)
}

// Generation extracts the generation from the handle. If this is not the
// generation currently stored for the slot, the handle is stale.
func (e Entity) Generation() uint16 {
	return uint16(e >> 16)
}
