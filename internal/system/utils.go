// internal/system/utils.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/types"
	"go-survivors/pkg/utils"
)

// SpawnEnemy создаёт врага заданного типа. Скорость копируется из таблицы в экземпляр.
func SpawnEnemy(ecs *entity.ECS, kind defs.EnemyKind, pos utils.Vec2) types.EntityID {
	def := defs.EnemyLibrary[kind]
	id := ecs.NewEntity()
	ecs.Positions.Set(id, &component.Position{X: pos.X, Y: pos.Y})
	ecs.Velocities.Set(id, &component.Velocity{Speed: def.Speed})
	ecs.Healths.Set(id, component.NewHealth(def.MaxHealth))
	ecs.Enemies.Set(id, &component.Enemy{Kind: kind})
	return id
}

// SpawnProjectile создаёт снаряд в точке pos.
func SpawnProjectile(ecs *entity.ECS, pos, direction utils.Vec2, kind defs.ProjectileKind, damage float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions.Set(id, &component.Position{X: pos.X, Y: pos.Y})
	ecs.Projectiles.Set(id, &component.Projectile{
		Direction: direction,
		Kind:      kind,
		Damage:    damage,
	})
	return id
}

// SpawnOrb создаёт сферу опыта.
func SpawnOrb(ecs *entity.ECS, pos utils.Vec2) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions.Set(id, &component.Position{X: pos.X, Y: pos.Y})
	ecs.Orbs.Set(id, &component.Orb{})
	return id
}

// SpawnPlayer создаёт игрока и запоминает его дескриптор в ECS.
func SpawnPlayer(ecs *entity.ECS, pos utils.Vec2, maxHealth, moveSpeed, cooldown float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions.Set(id, &component.Position{X: pos.X, Y: pos.Y})
	ecs.Healths.Set(id, component.NewHealth(maxHealth))
	ecs.Players.Set(id, &component.Player{MoveSpeed: moveSpeed})
	ecs.DamageCooldowns.Set(id, &component.DamageCooldown{Duration: cooldown})
	ecs.PlayerID = id
	return id
}

// findNearestEnemy линейно ищет врага с минимальным квадратом расстояния до from.
// При равенстве побеждает первый в порядке обхода.
func findNearestEnemy(ecs *entity.ECS, from utils.Vec2) (types.EntityID, utils.Vec2, bool) {
	var nearest types.EntityID
	var nearestPos utils.Vec2
	found := false
	minDistSq := 0.0
	for _, id := range ecs.Enemies.Entities() {
		pos, ok := ecs.Positions.Get(id)
		if !ok {
			continue
		}
		d := pos.Vec().DistanceSq(from)
		if !found || d < minDistSq {
			found = true
			minDistSq = d
			nearest = id
			nearestPos = pos.Vec()
		}
	}
	return nearest, nearestPos, found
}
