package ecs

// ComponentID identifies a declared component type within a registry.
// IDs are assigned in declaration order and are stable for the registry's
// lifetime.
type ComponentID uint8

// InvalidComponent is returned by lookups when no component type matches.
// It is never a valid ID; MaxComponents is capped well below it.
const InvalidComponent ComponentID = 0xFF

// ComponentMask is a set of component types, one bit per declared type.
// An entity matches a mask when its own mask is a superset of it.
type ComponentMask uint32

// Mask builds a ComponentMask from a set of component type IDs.
func Mask(ids ...ComponentID) ComponentMask {
	var mask ComponentMask
	for _, id := range ids {
		mask |= 1 << id
	}
	return mask
}

// Has reports whether the bit for the given component type is set.
func (m ComponentMask) Has(id ComponentID) bool {
	return m&(1<<id) != 0
}

// ContainsAll reports whether every bit set in sub is also set in m.
func (m ComponentMask) ContainsAll(sub ComponentMask) bool {
	return m&sub == sub
}

func (m ComponentMask) with(id ComponentID) ComponentMask {
	return m | 1<<id
}

func (m ComponentMask) without(id ComponentID) ComponentMask {
	return m &^ (1 << id)
}
