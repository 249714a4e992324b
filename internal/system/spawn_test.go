package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivors/internal/defs"
)

func TestSpawnInterval(t *testing.T) {
	assert.InDelta(t, 1.25, SpawnInterval(0, 0.1), 1e-9)
	assert.InDelta(t, 0.75, SpawnInterval(100, 0.1), 1e-9)

	prev := SpawnInterval(0, 0.1)
	for elapsed := 10.0; elapsed <= 10000; elapsed *= 2 {
		cur := SpawnInterval(elapsed, 0.1)
		assert.LessOrEqual(t, cur, prev)
		assert.Greater(t, cur, 0.25)
		prev = cur
	}

	// Пол побеждает кривую.
	assert.Equal(t, 0.9, SpawnInterval(1000, 0.9))
}

func TestSpawnSystemSpawnsInRing(t *testing.T) {
	w := newWorld()
	s := NewSpawnSystem(w.ecs, w.cfg, w.rng, w.queues)

	s.Update(1.0)
	assert.Equal(t, 0, w.ecs.Enemies.Len())

	for i := 0; i < 50; i++ {
		s.Update(1.25)
	}
	require.Equal(t, 50, w.ecs.Enemies.Len())
	require.Len(t, w.queues.Spawned, 50)

	for _, id := range w.ecs.Enemies.Entities() {
		pos, ok := w.ecs.Positions.Get(id)
		require.True(t, ok)
		dist := pos.Vec().Length()
		assert.GreaterOrEqual(t, dist, w.cfg.SpawnRingMin-1e-9)
		assert.Less(t, dist, w.cfg.SpawnRingMax)

		enemy, _ := w.ecs.Enemies.Get(id)
		vel, _ := w.ecs.Velocities.Get(id)
		health, _ := w.ecs.Healths.Get(id)
		def := defs.EnemyLibrary[enemy.Kind]
		assert.Equal(t, def.Speed, vel.Speed)
		assert.Equal(t, def.MaxHealth, health.Current)
	}
}

func TestSpawnSystemTracksDifficulty(t *testing.T) {
	w := newWorld()
	s := NewSpawnSystem(w.ecs, w.cfg, w.rng, w.queues)
	assert.InDelta(t, 1.25, s.Interval(), 1e-9)

	w.ecs.GameTime = 100
	s.Update(0)
	assert.InDelta(t, 0.75, s.Interval(), 1e-9)
}

func TestSpawnSystemWithoutPlayer(t *testing.T) {
	w := newWorld()
	w.ecs.Despawn(w.player)
	s := NewSpawnSystem(w.ecs, w.cfg, w.rng, w.queues)
	s.Update(5)
	assert.Equal(t, 0, w.ecs.Enemies.Len())
}
