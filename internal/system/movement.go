// internal/system/movement.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
)

// MovementSystem обновляет позиции игрока, врагов и снарядов.
type MovementSystem struct {
	ecs *entity.ECS
	cfg config.Config
}

func NewMovementSystem(ecs *entity.ECS, cfg config.Config) *MovementSystem {
	return &MovementSystem{ecs: ecs, cfg: cfg}
}

func (s *MovementSystem) Update(deltaTime float64, intent component.MoveIntent) {
	s.movePlayer(deltaTime, intent)
	s.moveEnemies(deltaTime)
	s.moveProjectiles(deltaTime)
}

func (s *MovementSystem) movePlayer(deltaTime float64, intent component.MoveIntent) {
	player, ok := s.ecs.Players.Get(s.ecs.PlayerID)
	if !ok {
		return
	}
	pos, ok := s.ecs.Positions.Get(s.ecs.PlayerID)
	if !ok {
		return
	}
	velocity := intent.Vector().NormalizeOrZero().Mul(player.MoveSpeed)
	pos.Set(pos.Vec().Add(velocity.Mul(deltaTime)))
}

// moveEnemies — поведение преследования: направление пересчитывается каждый тик,
// без поиска пути и без расталкивания врагов.
func (s *MovementSystem) moveEnemies(deltaTime float64) {
	playerPos, ok := s.ecs.PlayerPosition()
	if !ok {
		return
	}
	target := playerPos.Vec()
	for _, id := range s.ecs.Enemies.Entities() {
		pos, hasPos := s.ecs.Positions.Get(id)
		vel, hasVel := s.ecs.Velocities.Get(id)
		if !hasPos || !hasVel {
			continue
		}
		dir := target.Sub(pos.Vec()).NormalizeOrZero()
		pos.Set(pos.Vec().Add(dir.Mul(vel.Speed * deltaTime)))
	}
}

// moveProjectiles двигает снаряды по прямой с текущей скоростью оружия
// и удаляет улетевшие дальше ProjectileCullRange от игрока.
func (s *MovementSystem) moveProjectiles(deltaTime float64) {
	speed := s.ecs.Weapon.ProjectileSpeed
	playerPos, hasPlayer := s.ecs.PlayerPosition()
	cullSq := s.cfg.ProjectileCullRange * s.cfg.ProjectileCullRange

	for _, id := range s.ecs.Projectiles.Entities() {
		proj, _ := s.ecs.Projectiles.Get(id)
		pos, ok := s.ecs.Positions.Get(id)
		if !ok {
			s.ecs.Despawn(id)
			continue
		}
		pos.Set(pos.Vec().Add(proj.Direction.Mul(speed * deltaTime)))

		if hasPlayer && pos.Vec().DistanceSq(playerPos.Vec()) > cullSq {
			s.ecs.Despawn(id)
		}
	}
}
