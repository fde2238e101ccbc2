package ecs

import (
	"reflect"
	"unsafe"
)

// componentStore is the per-type flat storage block: one fixed-size record
// per possible entity slot, allocated in full at declaration time. A record
// is always physically present; it is only logically valid while the owning
// slot's mask bit is set.
type componentStore struct {
	name string
	size int
	data []byte
}

// record returns the byte range backing the given slot's record. The slice is
// capped so callers cannot write past their own record.
func (c *componentStore) record(index uint16) []byte {
	off := int(index) * c.size
	return c.data[off : off+c.size : off+c.size]
}

// Declare registers a component type under a stable name and returns its ID.
// Declaring an already-known name returns the existing ID, so call sites can
// declare-or-get without coordinating. Re-declaring a name with a different
// record size is fatal: the storage was sized for the first declaration and
// records of another size would alias it. Declaring past MaxComponents is
// fatal as well.
func (r *Registry) Declare(name string, size int) ComponentID {
	id := r.ComponentID(name)
	if id != InvalidComponent {
		if r.comps[id].size != size {
			r.check("ecs.Declare", "component re-declared with a different size")
		}
		return id
	}
	if len(r.comps) >= r.cfg.MaxComponents {
		r.fatal("ecs.Declare", "too many component types")
		return InvalidComponent
	}
	r.comps = append(r.comps, &componentStore{
		name: name,
		size: size,
		data: make([]byte, r.cfg.MaxEntities*size),
	})
	return ComponentID(len(r.comps) - 1)
}

// ComponentID looks up a declared type by name. It returns InvalidComponent
// when the name is unknown; callers must treat that sentinel as distinct from
// every valid ID. The scan is linear over a small bounded set, which is the
// point: the registry never holds more than MaxComponents descriptors.
func (r *Registry) ComponentID(name string) ComponentID {
	for i, store := range r.comps {
		if store.name == name {
			return ComponentID(i)
		}
	}
	return InvalidComponent
}

// ComponentName returns the name a type was declared under, or "" for an
// out-of-range ID.
func (r *Registry) ComponentName(id ComponentID) string {
	if int(id) >= len(r.comps) {
		return ""
	}
	return r.comps[id].name
}

// ComponentCount returns the number of declared component types.
func (r *Registry) ComponentCount() int {
	return len(r.comps)
}

// Add attaches a component to the entity and returns the record's bytes.
// The registry does not clear or default the record; the caller owns its
// initialization, and whatever a previous tenant of the slot wrote is still
// there. Invalid handles and out-of-range IDs are programmer errors.
func (r *Registry) Add(e Entity, id ComponentID) []byte {
	if int(id) >= len(r.comps) {
		r.check("ecs.Add", "component ID out of range")
		return nil
	}
	if !r.IsValid(e) {
		r.check("ecs.Add", "invalid entity handle")
		return nil
	}
	index := e.Index()
	s := r.entities.at(index)
	s.mask = s.mask.with(id)
	return r.comps[id].record(index)
}

// Get returns the entity's record for the given type, or (nil, false) when
// the component is not attached. Absence is a normal outcome, not an error;
// only a stale handle or a bad ID is a programmer error.
func (r *Registry) Get(e Entity, id ComponentID) ([]byte, bool) {
	if int(id) >= len(r.comps) {
		r.check("ecs.Get", "component ID out of range")
		return nil, false
	}
	if !r.IsValid(e) {
		r.check("ecs.Get", "invalid entity handle")
		return nil, false
	}
	index := e.Index()
	if !r.entities.at(index).mask.Has(id) {
		return nil, false
	}
	return r.comps[id].record(index), true
}

// Remove detaches a component from the entity. Only the mask bit is cleared;
// the record bytes are left as-is, so re-adding the same type later exposes
// them until overwritten. Removing a component that is not attached is a
// no-op on an already-clear bit.
func (r *Registry) Remove(e Entity, id ComponentID) {
	if int(id) >= len(r.comps) {
		r.check("ecs.Remove", "component ID out of range")
		return
	}
	if !r.IsValid(e) {
		r.check("ecs.Remove", "invalid entity handle")
		return
	}
	s := r.entities.at(e.Index())
	s.mask = s.mask.without(id)
}

// typeName returns the declaration name used by the generic helpers: the
// Go type's string form, matching what the original's stringizing macro
// produced from the type name.
func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// hasPointers reports whether a type contains any Go pointers. Component
// records live in raw byte buffers the garbage collector does not scan, so
// pointer-bearing types cannot be stored there.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func,
		reflect.Slice, reflect.String, reflect.Interface, reflect.UnsafePointer:
		return true
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	case reflect.Array:
		return hasPointers(t.Elem())
	}
	return false
}

// Declare registers the Go type T as a component type, using the type's name
// and size, and returns its ID. Idempotent per registry and type. T must be
// plain fixed-size data: no pointers, maps, slices, strings, channels, or
// funcs, directly or in any field.
func Declare[T any](r *Registry) ComponentID {
	t := reflect.TypeFor[T]()
	if hasPointers(t) {
		r.check("ecs.Declare", "component types must not contain pointers")
	}
	return r.Declare(t.String(), int(t.Size()))
}

// ComponentIDFor looks up the ID the type T was declared under, or
// InvalidComponent if it never was.
func ComponentIDFor[T any](r *Registry) ComponentID {
	return r.ComponentID(typeName[T]())
}

// MaskFor returns the single-type mask for T, declaring it if needed.
func MaskFor[T any](r *Registry) ComponentMask {
	return Mask(Declare[T](r))
}

// Add attaches a T to the entity, declaring the type if needed, and returns
// a pointer into the type's flat storage. The pointed-to value is whatever
// the record last held; the caller initializes it.
func Add[T any](r *Registry, e Entity) *T {
	raw := r.Add(e, Declare[T](r))
	if raw == nil {
		return nil
	}
	if len(raw) == 0 {
		// Zero-size tag component: any pointer will do.
		var tag T
		return &tag
	}
	return (*T)(unsafe.Pointer(&raw[0]))
}

// Get returns a pointer to the entity's T record, or nil when the component
// is not attached.
func Get[T any](r *Registry, e Entity) *T {
	id := ComponentIDFor[T](r)
	if id == InvalidComponent {
		return nil
	}
	raw, ok := r.Get(e, id)
	if !ok {
		return nil
	}
	if len(raw) == 0 {
		var tag T
		return &tag
	}
	return (*T)(unsafe.Pointer(&raw[0]))
}

// Remove detaches the component of type T from the entity. No-op when T was
// never declared.
func Remove[T any](r *Registry, e Entity) {
	id := ComponentIDFor[T](r)
	if id == InvalidComponent {
		return
	}
	r.Remove(e, id)
}
