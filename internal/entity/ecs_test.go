package entity

import (
	"testing"

	"go-survivors/internal/component"
	"go-survivors/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntityIsAlive(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	b := ecs.NewEntity()

	assert.NotEqual(t, a, b)
	assert.True(t, ecs.Alive(a))
	assert.True(t, ecs.Alive(b))
	assert.Equal(t, 2, ecs.Count())
	assert.False(t, a.IsZero())
}

func TestDespawnInvalidatesStaleHandle(t *testing.T) {
	ecs := NewECS()
	old := ecs.NewEntity()
	ecs.Positions.Set(old, &component.Position{X: 1, Y: 2})
	ecs.Healths.Set(old, component.NewHealth(10))

	require.True(t, ecs.Despawn(old))
	assert.False(t, ecs.Alive(old))
	assert.False(t, ecs.Positions.Has(old))
	assert.False(t, ecs.Healths.Has(old))

	// Слот переиспользуется с новым поколением.
	fresh := ecs.NewEntity()
	assert.Equal(t, old.Index, fresh.Index)
	assert.NotEqual(t, old.Generation, fresh.Generation)
	assert.False(t, ecs.Alive(old))
	assert.True(t, ecs.Alive(fresh))

	// Повторный деспавн устаревшего дескриптора — no-op.
	assert.False(t, ecs.Despawn(old))
	assert.True(t, ecs.Alive(fresh))
}

func TestZeroHandleNeverAlive(t *testing.T) {
	ecs := NewECS()
	var zero types.EntityID
	assert.False(t, ecs.Alive(zero))
	assert.False(t, ecs.Despawn(zero))
	_, ok := ecs.PlayerPosition()
	assert.False(t, ok)
}

func TestStoreKeepsInsertionOrder(t *testing.T) {
	ecs := NewECS()
	ids := make([]types.EntityID, 0, 4)
	for i := 0; i < 4; i++ {
		id := ecs.NewEntity()
		ecs.Enemies.Set(id, &component.Enemy{})
		ids = append(ids, id)
	}
	ecs.Despawn(ecs.Enemies.Entities()[1])

	got := ecs.Enemies.Entities()
	require.Len(t, got, 3)
	assert.Equal(t, ids[0], got[0])
	assert.Equal(t, ids[2], got[1])
	assert.Equal(t, ids[3], got[2])

	// Новая сущность в переиспользованном слоте идёт в конец обхода.
	id := ecs.NewEntity()
	ecs.Enemies.Set(id, &component.Enemy{})
	assert.Equal(t, id, ecs.Enemies.Entities()[3])
}

func TestStoreSetOverwrites(t *testing.T) {
	s := NewStore[int]()
	ecs := NewECS()
	id := ecs.NewEntity()
	s.Set(id, 1)
	s.Set(id, 2)
	assert.Equal(t, 1, s.Len())
	v, ok := s.Get(id)
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(id))
}
