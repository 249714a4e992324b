package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivors/internal/defs"
	"go-survivors/internal/event"
	"go-survivors/internal/types"
	vec "go-survivors/pkg/utils"
)

func damageTargets(q *event.Queues) []types.EntityID {
	out := make([]types.EntityID, 0, len(q.Damage))
	for _, ev := range q.Damage {
		out = append(out, ev.Target)
	}
	return out
}

func TestNormalAndIceProjectilesHitOnce(t *testing.T) {
	for _, kind := range []defs.ProjectileKind{defs.ShotNormal, defs.ShotIce} {
		t.Run(kind.String(), func(t *testing.T) {
			w := newWorld()
			a := SpawnEnemy(w.ecs, defs.EnemyOrc, vec.Vec2{X: 500})
			SpawnEnemy(w.ecs, defs.EnemyOrc, vec.Vec2{X: 505})
			proj := SpawnProjectile(w.ecs, vec.Vec2{X: 498}, vec.UnitX, kind, 10)

			NewCombatSystem(w.ecs, w.cfg, w.queues).Update(0.016)

			assert.Equal(t, []types.EntityID{a}, damageTargets(w.queues))
			assert.Equal(t, 10.0, w.queues.Damage[0].Amount)
			assert.False(t, w.ecs.Alive(proj))
		})
	}
}

func TestHitRadiusIsStrict(t *testing.T) {
	w := newWorld()
	SpawnEnemy(w.ecs, defs.EnemyOrc, vec.Vec2{X: 500})
	proj := SpawnProjectile(w.ecs, vec.Vec2{X: 500 - w.cfg.HitRadius}, vec.UnitX, defs.ShotNormal, 10)

	NewCombatSystem(w.ecs, w.cfg, w.queues).Update(0.016)
	assert.Empty(t, w.queues.Damage)
	assert.True(t, w.ecs.Alive(proj))
}

func TestFireballDamagesArea(t *testing.T) {
	w := newWorld()
	hit := SpawnEnemy(w.ecs, defs.EnemyOrc, vec.Vec2{X: 500})
	near := SpawnEnemy(w.ecs, defs.EnemyOrc, vec.Vec2{X: 540})
	SpawnEnemy(w.ecs, defs.EnemyOrc, vec.Vec2{X: 560})
	proj := SpawnProjectile(w.ecs, vec.Vec2{X: 505}, vec.UnitX, defs.ShotFireball, 10)

	NewCombatSystem(w.ecs, w.cfg, w.queues).Update(0.016)

	// Каждый враг в радиусе получает ровно одно событие.
	assert.Equal(t, []types.EntityID{hit, near}, damageTargets(w.queues))
	assert.False(t, w.ecs.Alive(proj))
}

func TestPiercingKeepsFlying(t *testing.T) {
	w := newWorld()
	enemy := SpawnEnemy(w.ecs, defs.EnemyOrc, vec.Vec2{X: 500})
	proj := SpawnProjectile(w.ecs, vec.Vec2{X: 495}, vec.UnitX, defs.ShotPiercing, 10)
	combat := NewCombatSystem(w.ecs, w.cfg, w.queues)

	combat.Update(0.016)
	assert.Equal(t, []types.EntityID{enemy}, damageTargets(w.queues))
	assert.True(t, w.ecs.Alive(proj))

	// Пока снаряд внутри радиуса, он бьёт ту же цель снова.
	combat.Update(0.016)
	assert.Equal(t, []types.EntityID{enemy, enemy}, damageTargets(w.queues))
}

func TestContactDamageOncePerTick(t *testing.T) {
	w := newWorld()
	SpawnEnemy(w.ecs, defs.EnemySkeleton, vec.Vec2{X: 5})
	SpawnEnemy(w.ecs, defs.EnemyWerewolf, vec.Vec2{X: -5})
	SpawnEnemy(w.ecs, defs.EnemyOrc, vec.Vec2{X: 100})

	NewCombatSystem(w.ecs, w.cfg, w.queues).Update(0.016)

	require.Len(t, w.queues.Damage, 1)
	assert.Equal(t, w.player, w.queues.Damage[0].Target)
	assert.Equal(t, w.cfg.ContactDamage, w.queues.Damage[0].Amount)
}
