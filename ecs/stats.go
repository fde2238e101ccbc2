package ecs

import "time"

// Stats is a point-in-time snapshot of a registry's occupancy and system
// timings, suitable for diagnostics overlays and stress reports.
type Stats struct {
	EntityCapacity int
	LiveEntities   int
	FreeSlots      int

	ComponentTypes []ComponentTypeStats
	Systems        []SystemStats
}

// ComponentTypeStats describes one declared component type.
type ComponentTypeStats struct {
	ID         ComponentID
	Name       string
	RecordSize int
	// BufferBytes is the full flat-buffer allocation for the type
	// (capacity x record size), present whether or not any entity uses it.
	BufferBytes int
	// Attached counts live entities with this type's mask bit set.
	Attached int
}

// SystemStats describes one registered system and its execution timings, in
// registration order.
type SystemStats struct {
	ID             SystemID
	Mask           ComponentMask
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// CollectStats walks the registry and builds a snapshot. Cost is linear in
// entity capacity times declared types; intended for debug surfaces, not the
// per-frame hot path.
func (r *Registry) CollectStats() Stats {
	stats := Stats{
		EntityCapacity: r.entities.capacity(),
		LiveEntities:   r.Live(),
		FreeSlots:      r.entities.freeCount(),
		ComponentTypes: make([]ComponentTypeStats, len(r.comps)),
		Systems:        make([]SystemStats, len(r.systems)),
	}

	for i, store := range r.comps {
		stats.ComponentTypes[i] = ComponentTypeStats{
			ID:          ComponentID(i),
			Name:        store.name,
			RecordSize:  store.size,
			BufferBytes: len(store.data),
		}
	}

	for index := 0; index < r.entities.capacity(); index++ {
		s := r.entities.at(uint16(index))
		if !s.live {
			continue
		}
		for i := range r.comps {
			if s.mask.Has(ComponentID(i)) {
				stats.ComponentTypes[i].Attached++
			}
		}
	}

	for i := range r.systems {
		sys := &r.systems[i]
		avg := time.Duration(0)
		minDur := sys.minDuration
		if sys.executions > 0 {
			avg = sys.totalDuration / time.Duration(sys.executions)
		} else {
			minDur = 0
		}
		stats.Systems[i] = SystemStats{
			ID:             sys.id,
			Mask:           sys.mask,
			ExecutionCount: sys.executions,
			MinDuration:    minDur,
			MaxDuration:    sys.maxDuration,
			AvgDuration:    avg,
			LastDuration:   sys.lastDuration,
			TotalDuration:  sys.totalDuration,
		}
	}

	return stats
}
