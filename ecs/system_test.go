package ecs_test

import (
	"testing"

	"github.com/amyinorbit/pd-ecs/ecs"
	"github.com/stretchr/testify/assert"
)

func TestMatchSupersetOrdering(t *testing.T) {
	r := newTestRegistry()

	// Entities with masks {0b01, 0b11, 0b10, 0b11} at slots {0,1,2,3}.
	r.CreateWithArchetype(0b01)
	r.CreateWithArchetype(0b11)
	r.CreateWithArchetype(0b10)
	r.CreateWithArchetype(0b11)

	var visited []uint16
	r.Match(0b01, func(_ *ecs.Registry, e ecs.Entity, _ any) {
		visited = append(visited, e.Index())
	}, nil)

	// Superset match: 0b11 contains 0b01, 0b10 does not.
	assert.Equal(t, []uint16{0, 1, 3}, visited)
}

func TestMatchSkipsDeadSlots(t *testing.T) {
	r := newTestRegistry()

	a := r.Create()
	b := r.Create()
	r.Destroy(a)

	var visited []ecs.Entity
	r.Match(0, func(_ *ecs.Registry, e ecs.Entity, _ any) {
		visited = append(visited, e)
	}, nil)

	// A zero mask matches every live entity and nothing else: destroyed
	// slots never show up, componentless ones do.
	assert.Equal(t, []ecs.Entity{b}, visited)
}

func TestMatchPassesContext(t *testing.T) {
	r := newTestRegistry()
	r.Create()

	type counter struct{ n int }
	c := &counter{}
	r.Match(0, func(_ *ecs.Registry, _ ecs.Entity, ctx any) {
		ctx.(*counter).n++
	}, c)

	assert.Equal(t, 1, c.n)
}

func TestRegisterSystemIDsIncrease(t *testing.T) {
	r := newTestRegistry()
	noop := func(*ecs.Registry, ecs.Entity, any) {}

	a := r.RegisterSystem(0, noop, nil)
	b := r.RegisterSystem(0, noop, nil)
	r.UnregisterSystem(a)
	c := r.RegisterSystem(0, noop, nil)

	// IDs are never reused, even after unregistration.
	assert.Less(t, a, b)
	assert.Less(t, b, c)
	assert.Equal(t, 2, r.SystemCount())
}

func TestRegisterPastCapacityIsFatal(t *testing.T) {
	r := ecs.New(ecs.Config{MaxSystems: 1})
	noop := func(*ecs.Registry, ecs.Entity, any) {}

	r.RegisterSystem(0, noop, nil)
	assert.Panics(t, func() { r.RegisterSystem(0, noop, nil) })
}

func TestUnregisterUnknownIsNoOp(t *testing.T) {
	r := newTestRegistry()
	r.RegisterSystem(0, func(*ecs.Registry, ecs.Entity, any) {}, nil)

	r.UnregisterSystem(12345)
	assert.Equal(t, 1, r.SystemCount())
}

func TestUnregisterPreservesOrder(t *testing.T) {
	r := newTestRegistry()
	r.Create()

	var order []string
	record := func(tag string) ecs.IteratorFunc {
		return func(*ecs.Registry, ecs.Entity, any) {
			order = append(order, tag)
		}
	}

	r.RegisterSystem(0, record("a"), nil)
	b := r.RegisterSystem(0, record("b"), nil)
	r.RegisterSystem(0, record("c"), nil)

	r.UnregisterSystem(b)
	r.Tick()

	assert.Equal(t, []string{"a", "c"}, order)
}

// The documented two-tick scenario: Position starts at the origin, Speed is
// (0.2, 0.2), and a movement system adds Speed into Position each tick.
func TestTickMovementScenario(t *testing.T) {
	r := newTestRegistry()

	e := r.Create()
	pos := ecs.Add[Position](r, e)
	pos.X, pos.Y = 0, 0
	spd := ecs.Add[Speed](r, e)
	spd.X, spd.Y = 0.2, 0.2

	mask := ecs.MaskFor[Position](r) | ecs.MaskFor[Speed](r)
	r.RegisterSystem(mask, func(r *ecs.Registry, e ecs.Entity, _ any) {
		p := ecs.Get[Position](r, e)
		s := ecs.Get[Speed](r, e)
		p.X += s.X
		p.Y += s.Y
	}, nil)

	r.Tick()
	assert.Equal(t, float32(0.2), pos.X)
	assert.Equal(t, float32(0.2), pos.Y)

	r.Tick()
	assert.Equal(t, float32(0.4), pos.X)
	assert.Equal(t, float32(0.4), pos.Y)
}

func TestTickRunsSystemsInRegistrationOrder(t *testing.T) {
	r := newTestRegistry()
	r.Create()

	var order []int
	for i := 0; i < 3; i++ {
		r.RegisterSystem(0, func(*ecs.Registry, ecs.Entity, any) {
			order = append(order, i)
		}, nil)
	}

	r.Tick()
	assert.Equal(t, []int{0, 1, 2}, order)
}

// A system that unregisters another mid-tick stops it from running on later
// ticks without disturbing entities already visited in the current pass.
func TestUnregisterDuringTick(t *testing.T) {
	r := newTestRegistry()
	r.Create()
	r.Create()

	var firstRuns, victimRuns int
	var victim ecs.SystemID

	r.RegisterSystem(0, func(r *ecs.Registry, _ ecs.Entity, _ any) {
		firstRuns++
		r.UnregisterSystem(victim)
	}, nil)
	victim = r.RegisterSystem(0, func(*ecs.Registry, ecs.Entity, any) {
		victimRuns++
	}, nil)

	r.Tick()
	r.Tick()

	// The first system still visited both entities on both ticks; the
	// victim was gone before its first scan ever started.
	assert.Equal(t, 4, firstRuns)
	assert.Equal(t, 0, victimRuns)
	assert.Equal(t, 1, r.SystemCount())
}

// Callbacks may mutate the entity they are handed, including destroying it.
func TestCallbackMayDestroyCurrentEntity(t *testing.T) {
	r := newTestRegistry()
	id := ecs.Declare[Health](r)

	doomed := r.CreateWithArchetype(ecs.Mask(id))
	survivor := r.Create()

	r.Match(ecs.Mask(id), func(r *ecs.Registry, e ecs.Entity, _ any) {
		r.Destroy(e)
	}, nil)

	assert.False(t, r.IsValid(doomed))
	assert.True(t, r.IsValid(survivor))
	assert.Equal(t, 1, r.Live())
}

func TestNilSystemCallbackIsFatal(t *testing.T) {
	r := newTestRegistry()
	assert.Panics(t, func() { r.RegisterSystem(0, nil, nil) })
}
