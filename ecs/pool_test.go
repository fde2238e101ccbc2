package ecs

import (
	"testing"
)

func testFatal(t *testing.T) FatalFunc {
	return func(location, condition string) {
		t.Helper()
		t.Fatalf("%s: %s", location, condition)
	}
}

func TestPoolAcquireOrder(t *testing.T) {
	p := newPool[slot](4, testFatal(t))

	// Index 0 comes off the free list first, then 1, 2, 3.
	for want := uint16(0); want < 4; want++ {
		if got := p.acquire(); got != want {
			t.Errorf("acquire() = %d, want %d", got, want)
		}
	}
	if p.freeCount() != 0 {
		t.Errorf("freeCount() = %d, want 0", p.freeCount())
	}
}

func TestPoolReuseIsLIFO(t *testing.T) {
	p := newPool[slot](4, testFatal(t))
	for i := 0; i < 4; i++ {
		p.acquire()
	}

	p.release(2)
	p.release(1)

	if got := p.acquire(); got != 1 {
		t.Errorf("acquire() after release = %d, want 1 (last freed)", got)
	}
	if got := p.acquire(); got != 2 {
		t.Errorf("acquire() after release = %d, want 2", got)
	}
}

func TestPoolExhaustionIsFatal(t *testing.T) {
	var called bool
	p := newPool[slot](1, func(location, condition string) {
		called = true
		if condition != "pool exhausted" {
			t.Errorf("condition = %q", condition)
		}
	})

	p.acquire()
	p.acquire()
	if !called {
		t.Error("expected fatal report on exhausted pool")
	}
}

func TestPoolDoubleReleaseIsFatal(t *testing.T) {
	var called bool
	p := newPool[slot](2, func(location, condition string) {
		called = true
		if condition != "double release" {
			t.Errorf("condition = %q", condition)
		}
	})

	i := p.acquire()
	p.release(i)
	p.release(i)
	if !called {
		t.Error("expected fatal report on double release")
	}
}

// The pool is generic over its element type; make sure a second
// instantiation behaves identically.
func TestPoolGenericInstantiation(t *testing.T) {
	type record struct{ n int }
	p := newPool[record](2, testFatal(t))

	i := p.acquire()
	p.at(i).n = 99
	p.release(i)

	j := p.acquire()
	if i != j {
		t.Errorf("expected recycled index %d, got %d", i, j)
	}
	if p.at(j).n != 99 {
		t.Errorf("slot storage not preserved across recycle: %d", p.at(j).n)
	}
}
