package ecs

import (
	"context"
	"time"
)

// SystemID identifies a registered system. IDs are strictly increasing and
// never reused within a registry's lifetime, even after unregistration.
type SystemID uint32

// IteratorFunc is invoked once per matching entity during a scan. The context
// value is the one supplied at registration (or to Match) and is opaque to
// the registry.
type IteratorFunc func(r *Registry, e Entity, ctx any)

// systemRecord pairs a required-component mask with its callback. Execution
// timing is tracked in place for CollectStats.
type systemRecord struct {
	id   SystemID
	mask ComponentMask
	fn   IteratorFunc
	ctx  any

	executions    int64
	minDuration   time.Duration
	maxDuration   time.Duration
	lastDuration  time.Duration
	totalDuration time.Duration
}

// RegisterSystem adds a system that Tick will run against every live entity
// whose mask is a superset of the given one. Returns the system's unique ID.
// Registering past MaxSystems is fatal, as is a nil callback.
func (r *Registry) RegisterSystem(mask ComponentMask, fn IteratorFunc, ctx any) SystemID {
	if fn == nil {
		r.check("ecs.RegisterSystem", "nil system callback")
		return 0
	}
	if len(r.systems) >= r.cfg.MaxSystems {
		r.fatal("ecs.RegisterSystem", "too many systems")
		return 0
	}
	id := r.nextSystemID
	r.nextSystemID++
	r.systems = append(r.systems, systemRecord{
		id:          id,
		mask:        mask,
		fn:          fn,
		ctx:         ctx,
		minDuration: time.Duration(1<<63 - 1),
	})
	return id
}

// UnregisterSystem removes the system with the given ID, keeping the list
// dense and preserving the relative order of the remaining systems. Unknown
// IDs are a no-op. A system removed from inside a Tick pass stops running on
// subsequent ticks; entities it already visited are unaffected.
func (r *Registry) UnregisterSystem(id SystemID) {
	for i := range r.systems {
		if r.systems[i].id == id {
			r.systems = append(r.systems[:i], r.systems[i+1:]...)
			return
		}
	}
}

// SystemCount returns the number of currently registered systems.
func (r *Registry) SystemCount() int {
	return len(r.systems)
}

// Match scans every slot in ascending index order and invokes fn for each
// live entity whose component mask contains all the bits in mask. Callbacks
// may freely mutate the entity they are handed; mutations to other entities
// during the scan carry no guarantee about whether this pass observes them.
func (r *Registry) Match(mask ComponentMask, fn IteratorFunc, ctx any) {
	for index := 0; index < r.entities.capacity(); index++ {
		s := r.entities.at(uint16(index))
		if !s.live {
			continue
		}
		if !s.mask.ContainsAll(mask) {
			continue
		}
		fn(r, NewEntity(uint16(index), s.generation), ctx)
	}
}

// Tick runs every registered system once, in registration order, each to
// completion before the next starts. There is no interleaving and no
// concurrency; everything happens on the caller's goroutine.
func (r *Registry) Tick() {
	for i := 0; i < len(r.systems); i++ {
		sys := r.systems[i]

		start := time.Now()
		r.Match(sys.mask, sys.fn, sys.ctx)
		elapsed := time.Since(start)

		// The callback may have unregistered systems, shifting the list;
		// find the record again before touching its stats.
		for j := range r.systems {
			if r.systems[j].id != sys.id {
				continue
			}
			rec := &r.systems[j]
			rec.executions++
			rec.lastDuration = elapsed
			rec.totalDuration += elapsed
			if elapsed < rec.minDuration {
				rec.minDuration = elapsed
			}
			if elapsed > rec.maxDuration {
				rec.maxDuration = elapsed
			}
			break
		}
	}
}

// Run calls Tick at the given interval until the context is cancelled.
// Convenience driver for hosts without their own frame loop.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Tick()
		}
	}
}
