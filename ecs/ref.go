package ecs

import "weak"

// Ref is a stable reference to an entity. Unlike a raw handle, which callers
// must re-validate with IsValid, a Ref is invalidated in place the moment its
// entity is destroyed, so holders can branch on Valid without touching the
// registry. The registry keeps only weak pointers to outstanding refs;
// dropping every strong reference lets the ref be collected.
type Ref struct {
	entity Entity
	live   bool
}

// Valid reports whether the referenced entity still exists.
func (ref *Ref) Valid() bool {
	return ref != nil && ref.live
}

// Entity returns the referenced handle and whether it is still valid.
func (ref *Ref) Entity() (Entity, bool) {
	if !ref.Valid() {
		return 0, false
	}
	return ref.entity, true
}

// NewRef returns a stable reference to the entity, or nil when the handle is
// already invalid. Calling it twice for the same live entity returns the same
// Ref as long as someone still holds it.
func (r *Registry) NewRef(e Entity) *Ref {
	if !r.IsValid(e) {
		return nil
	}

	if ptr, ok := r.refs.Get(e); ok {
		if ref := ptr.Value(); ref != nil {
			return ref
		}
		// The weak pointer died; drop the stale entry.
		r.refs.Del(e)
	}

	ref := &Ref{entity: e, live: true}
	r.refs.Put(e, weak.Make(ref))
	return ref
}

// invalidateRefs marks any outstanding Ref for the handle as dead. Called
// from Destroy before the slot's generation advances.
func (r *Registry) invalidateRefs(e Entity) {
	ptr, ok := r.refs.Get(e)
	if !ok {
		return
	}
	if ref := ptr.Value(); ref != nil {
		ref.live = false
	}
	r.refs.Del(e)
}
