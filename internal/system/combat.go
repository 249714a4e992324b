// internal/system/combat.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/types"
	"go-survivors/pkg/utils"
)

// CombatSystem проверяет попадания снарядов по врагам и контакт врагов с игроком
// и пишет DamageEvent в очередь тика. Здоровье здесь не меняется.
type CombatSystem struct {
	ecs    *entity.ECS
	cfg    config.Config
	queues *event.Queues
}

func NewCombatSystem(ecs *entity.ECS, cfg config.Config, queues *event.Queues) *CombatSystem {
	return &CombatSystem{ecs: ecs, cfg: cfg, queues: queues}
}

func (s *CombatSystem) Update(deltaTime float64) {
	enemies := s.ecs.Enemies.Entities()
	for _, projID := range s.ecs.Projectiles.Entities() {
		proj, _ := s.ecs.Projectiles.Get(projID)
		pos, ok := s.ecs.Positions.Get(projID)
		if !ok {
			continue
		}
		s.resolveProjectile(projID, proj, pos.Vec(), enemies)
	}
	s.resolveContact(enemies)
}

// resolveProjectile ищет первого врага в радиусе попадания и применяет политику типа снаряда.
func (s *CombatSystem) resolveProjectile(projID types.EntityID, proj *component.Projectile, impact utils.Vec2, enemies []types.EntityID) {
	for _, enemyID := range enemies {
		enemyPos, ok := s.ecs.Positions.Get(enemyID)
		if !ok || enemyPos.Vec().Distance(impact) >= s.cfg.HitRadius {
			continue
		}

		switch proj.Kind {
		case defs.ShotFireball:
			// Урон по области, включая врага, в которого попали.
			for _, otherID := range enemies {
				otherPos, ok := s.ecs.Positions.Get(otherID)
				if ok && otherPos.Vec().Distance(impact) < s.cfg.AoeRadius {
					s.damage(otherID, proj.Damage)
				}
			}
			s.ecs.Despawn(projID)
		case defs.ShotPiercing:
			// Снаряд летит дальше и может попасть в того же врага в следующем тике.
			s.damage(enemyID, proj.Damage)
		default:
			// ShotNormal и ShotIce: лёд пока без замедления.
			s.damage(enemyID, proj.Damage)
			s.ecs.Despawn(projID)
		}
		return
	}
}

// resolveContact наносит фиксированный урон игроку, если хотя бы один враг рядом.
// Срабатывает каждый тик, пока условие выполняется.
func (s *CombatSystem) resolveContact(enemies []types.EntityID) {
	playerPos, ok := s.ecs.PlayerPosition()
	if !ok {
		return
	}
	for _, enemyID := range enemies {
		enemyPos, ok := s.ecs.Positions.Get(enemyID)
		if ok && enemyPos.Vec().Distance(playerPos.Vec()) < s.cfg.HitRadius {
			s.damage(s.ecs.PlayerID, s.cfg.ContactDamage)
			return
		}
	}
}

func (s *CombatSystem) damage(target types.EntityID, amount float64) {
	s.queues.Damage = append(s.queues.Damage, event.DamageEvent{Target: target, Amount: amount})
}
