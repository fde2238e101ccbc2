package ecs_test

import (
	"testing"

	"github.com/amyinorbit/pd-ecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRefResolvesWhileAlive(t *testing.T) {
	r := newTestRegistry()
	e := r.Create()

	ref := r.NewRef(e)
	require.NotNil(t, ref)
	assert.True(t, ref.Valid())

	got, ok := ref.Entity()
	require.True(t, ok)
	assert.Equal(t, e, got)
}

func TestNewRefForInvalidHandle(t *testing.T) {
	r := newTestRegistry()
	e := r.Create()
	r.Destroy(e)

	assert.Nil(t, r.NewRef(e))
}

func TestRefInvalidatedOnDestroy(t *testing.T) {
	r := newTestRegistry()
	e := r.Create()
	ref := r.NewRef(e)

	r.Destroy(e)

	assert.False(t, ref.Valid())
	_, ok := ref.Entity()
	assert.False(t, ok)
}

// Two NewRef calls for the same live entity return the same Ref while a
// strong reference is held.
func TestNewRefIsStable(t *testing.T) {
	r := newTestRegistry()
	e := r.Create()

	first := r.NewRef(e)
	second := r.NewRef(e)
	assert.Same(t, first, second)
}

// A recycled slot must not resurrect a ref taken against the old tenant.
func TestRefDoesNotOutliveSlotRecycling(t *testing.T) {
	r := newTestRegistry()

	old := r.Create()
	ref := r.NewRef(old)
	r.Destroy(old)

	fresh := r.Create()
	require.Equal(t, old.Index(), fresh.Index())

	assert.False(t, ref.Valid())
	freshRef := r.NewRef(fresh)
	assert.NotSame(t, ref, freshRef)
}

func TestNilRefAccessors(t *testing.T) {
	var ref *ecs.Ref
	assert.False(t, ref.Valid())
	_, ok := ref.Entity()
	assert.False(t, ok)
}
