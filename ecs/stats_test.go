package ecs

import (
	"testing"
	"time"
)

func TestCollectStats(t *testing.T) {
	r := New(Config{MaxEntities: 16})

	pos := r.Declare("Position", 8)
	r.Declare("Speed", 8)

	a := r.Create()
	b := r.Create()
	r.Add(a, pos)
	r.Add(b, pos)
	r.Destroy(b)

	stats := r.CollectStats()

	if stats.EntityCapacity != 16 {
		t.Errorf("expected capacity 16, got %d", stats.EntityCapacity)
	}
	if stats.LiveEntities != 1 {
		t.Errorf("expected 1 live entity, got %d", stats.LiveEntities)
	}
	if stats.FreeSlots != 15 {
		t.Errorf("expected 15 free slots, got %d", stats.FreeSlots)
	}
	if len(stats.ComponentTypes) != 2 {
		t.Fatalf("expected 2 component types, got %d", len(stats.ComponentTypes))
	}

	posStats := stats.ComponentTypes[0]
	if posStats.Name != "Position" {
		t.Errorf("expected Position first, got %q", posStats.Name)
	}
	if posStats.RecordSize != 8 {
		t.Errorf("expected record size 8, got %d", posStats.RecordSize)
	}
	if posStats.BufferBytes != 16*8 {
		t.Errorf("expected buffer of %d bytes, got %d", 16*8, posStats.BufferBytes)
	}
	if posStats.Attached != 1 {
		t.Errorf("expected 1 attached Position, got %d", posStats.Attached)
	}
	if stats.ComponentTypes[1].Attached != 0 {
		t.Errorf("expected 0 attached Speed, got %d", stats.ComponentTypes[1].Attached)
	}
}

func TestCollectStatsSystems(t *testing.T) {
	r := New(Config{MaxEntities: 16})
	r.Create()

	sleepy := r.RegisterSystem(0, func(*Registry, Entity, any) {
		time.Sleep(time.Millisecond)
	}, nil)

	stats := r.CollectStats()
	if len(stats.Systems) != 1 {
		t.Fatalf("expected 1 system, got %d", len(stats.Systems))
	}
	if stats.Systems[0].ExecutionCount != 0 {
		t.Errorf("expected 0 executions before first tick")
	}
	if stats.Systems[0].MinDuration != 0 {
		t.Errorf("expected zeroed min duration before first tick")
	}

	r.Tick()
	r.Tick()

	stats = r.CollectStats()
	sys := stats.Systems[0]
	if sys.ID != sleepy {
		t.Errorf("expected system ID %d, got %d", sleepy, sys.ID)
	}
	if sys.ExecutionCount != 2 {
		t.Errorf("expected 2 executions, got %d", sys.ExecutionCount)
	}
	if sys.MinDuration < time.Millisecond {
		t.Errorf("min duration %s below the sleep floor", sys.MinDuration)
	}
	if sys.TotalDuration < 2*time.Millisecond {
		t.Errorf("total duration %s below the sleep floor", sys.TotalDuration)
	}
	if sys.AvgDuration < time.Millisecond {
		t.Errorf("avg duration %s below the sleep floor", sys.AvgDuration)
	}
	if sys.MaxDuration < sys.MinDuration {
		t.Errorf("max %s below min %s", sys.MaxDuration, sys.MinDuration)
	}
}
