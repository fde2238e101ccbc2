package ecs_test

import "github.com/amyinorbit/pd-ecs/ecs"

// Common test component types
type Position struct {
	X, Y float32
}

type Speed struct {
	X, Y float32
}

type Health struct {
	Current int32
	Max     int32
}

type Heading struct {
	Angle float64
}

// Zero-size tag component
type Frozen struct{}

func newTestRegistry() *ecs.Registry {
	return ecs.New(ecs.Config{})
}

// fatalRecorder captures fatal reports instead of aborting, then panics so
// the code path under test does not keep running past the violation.
type fatalRecorder struct {
	locations  []string
	conditions []string
}

func (f *fatalRecorder) report(location, condition string) {
	f.locations = append(f.locations, location)
	f.conditions = append(f.conditions, condition)
	panic("fatal: " + condition)
}
