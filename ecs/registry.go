package ecs

import (
	"fmt"
	"os"
	"weak"

	"github.com/kamstrup/intmap"
)

// Default capacities, matching the original engine's build-time constants.
const (
	DefaultMaxEntities   = 128
	DefaultMaxComponents = 8
	DefaultMaxSystems    = 32
)

// maxComponentLimit bounds MaxComponents so every declared type fits in a
// ComponentMask bit.
const maxComponentLimit = 32

// FatalFunc reports an unrecoverable condition: a location description and
// the condition that failed. The registry calls it for programmer errors
// (stale handles passed to mutators, capacity exhaustion, double releases)
// and expects it not to return. This is the registry's only outward
// dependency; hosts substitute their own reporting.
type FatalFunc func(location, condition string)

// DefaultFatal writes the failed condition to stderr and panics. It is used
// when Config.Fatal is nil.
func DefaultFatal(location, condition string) {
	msg := fmt.Sprintf("%s: assertion `%s' failed", location, condition)
	fmt.Fprintln(os.Stderr, msg)
	panic(msg)
}

// Config holds the capacity constants and host hooks for a registry. The
// zero value is usable: capacities default to the package constants and
// Fatal defaults to DefaultFatal.
type Config struct {
	MaxEntities   int
	MaxComponents int
	MaxSystems    int

	// Fatal receives programmer-error reports. See FatalFunc.
	Fatal FatalFunc

	// DisableChecks skips the programmer-error assertions entirely, the
	// optimized-build analogue of compiling them out. Violations then leave
	// the registry in an undefined state. Capacity exhaustion on entity
	// creation is still reported: there is no meaningful way to continue
	// without a slot.
	DisableChecks bool
}

func (c Config) withDefaults() Config {
	if c.MaxEntities <= 0 {
		c.MaxEntities = DefaultMaxEntities
	}
	if c.MaxComponents <= 0 {
		c.MaxComponents = DefaultMaxComponents
	}
	if c.MaxSystems <= 0 {
		c.MaxSystems = DefaultMaxSystems
	}
	if c.Fatal == nil {
		c.Fatal = DefaultFatal
	}
	return c
}

// slot is the per-index entity record. The generation counts destructions and
// is the sole authority on handle validity; live tracks whether the slot is
// currently allocated and is what the matcher consults.
type slot struct {
	generation uint16
	live       bool
	mask       ComponentMask
}

// Registry owns the entity slot table, its free-list pool, the component
// type descriptors, and the registered systems. Handles and IDs are
// meaningless outside the registry that produced them.
//
// A Registry is single-threaded and non-reentrant: no operation blocks or
// yields, and no locking is performed. Mutating the registry from inside a
// system callback is permitted for the entity currently being visited;
// changes to other entities during the same scan carry no ordering guarantee.
type Registry struct {
	cfg   Config
	fatal FatalFunc
	check FatalFunc

	entities *pool[slot]
	comps    []*componentStore

	systems      []systemRecord
	nextSystemID SystemID

	refs *intmap.Map[Entity, weak.Pointer[Ref]]
}

// New creates a registry with the given configuration. All pools and tables
// are allocated here; nothing grows afterwards.
func New(cfg Config) *Registry {
	cfg = cfg.withDefaults()
	if cfg.MaxEntities > 1<<16 {
		cfg.Fatal("ecs.New", "MaxEntities exceeds the 16-bit index range")
	}
	if cfg.MaxComponents > maxComponentLimit {
		cfg.Fatal("ecs.New", "MaxComponents exceeds the component mask width")
	}

	r := &Registry{
		cfg:   cfg,
		fatal: cfg.Fatal,
		comps: make([]*componentStore, 0, cfg.MaxComponents),
		refs:  intmap.New[Entity, weak.Pointer[Ref]](cfg.MaxEntities),
	}
	if cfg.DisableChecks {
		r.check = func(string, string) {}
	} else {
		r.check = cfg.Fatal
	}
	r.entities = newPool[slot](cfg.MaxEntities, r.check)
	r.systems = make([]systemRecord, 0, cfg.MaxSystems)
	return r
}

// Capacity returns the configured maximum entity count.
func (r *Registry) Capacity() int {
	return r.entities.capacity()
}

// Create allocates a new entity and returns its handle. The slot's component
// mask starts empty and its generation is whatever the slot last held;
// generations only advance on destruction. Running out of slots is fatal:
// the target this engine comes from cannot allocate more memory, so there is
// nothing to recover to.
func (r *Registry) Create() Entity {
	if r.entities.freeCount() == 0 {
		r.fatal("ecs.Create", "no free entity slot")
		return 0
	}
	index := r.entities.acquire()
	s := r.entities.at(index)
	s.mask = 0
	s.live = true
	return NewEntity(index, s.generation)
}

// CreateWithArchetype creates an entity whose component mask is set to the
// given archetype up front. The mask only authorizes later lookups; no
// component record is initialized here.
func (r *Registry) CreateWithArchetype(mask ComponentMask) Entity {
	e := r.Create()
	r.entities.at(e.Index()).mask = mask
	return e
}

// IsValid reports whether the handle refers to a live entity: the slot's
// stored generation must equal the handle's. An entity with no components is
// still valid; the mask plays no part in liveness.
func (r *Registry) IsValid(e Entity) bool {
	index := e.Index()
	if int(index) >= r.entities.capacity() {
		return false
	}
	return r.entities.at(index).generation == e.Generation()
}

// Destroy frees the entity's slot and advances its generation, invalidating
// every outstanding copy of the handle. Destroying an already-invalid handle
// is a no-op. The generation wraps modulo 2^16, so a handle that survives
// 65536 destroy cycles of the same slot would alias a fresh one; this is an
// accepted limitation.
func (r *Registry) Destroy(e Entity) {
	if !r.IsValid(e) {
		return
	}
	index := e.Index()
	r.invalidateRefs(e)
	s := r.entities.at(index)
	s.generation++
	s.mask = 0
	s.live = false
	r.entities.release(index)
}

// MaskOf returns the entity's current component mask, or zero for an
// invalid handle.
func (r *Registry) MaskOf(e Entity) ComponentMask {
	if !r.IsValid(e) {
		return 0
	}
	return r.entities.at(e.Index()).mask
}

// Live returns the number of currently allocated entities.
func (r *Registry) Live() int {
	return r.entities.capacity() - r.entities.freeCount()
}
