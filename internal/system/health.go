// internal/system/health.go
package system

import (
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/types"
)

// HealthSystem применяет урон из очереди тика, ставит в очередь смерти
// и обрабатывает их: враг оставляет сферу опыта, смерть игрока завершает игру.
type HealthSystem struct {
	ecs        *entity.ECS
	queues     *event.Queues
	playerDead bool
	kills      int
}

func NewHealthSystem(ecs *entity.ECS, queues *event.Queues) *HealthSystem {
	return &HealthSystem{ecs: ecs, queues: queues}
}

func (s *HealthSystem) Update(deltaTime float64) {
	s.applyDamage()
	s.processDeaths()
}

// PlayerDead сообщает, что игрок погиб.
func (s *HealthSystem) PlayerDead() bool {
	return s.playerDead
}

// Kills возвращает число убитых врагов.
func (s *HealthSystem) Kills() int {
	return s.kills
}

func (s *HealthSystem) applyDamage() {
	queued := make(map[types.EntityID]bool)
	for _, ev := range s.queues.Damage {
		if !s.ecs.Alive(ev.Target) {
			continue
		}
		health, ok := s.ecs.Healths.Get(ev.Target)
		if !ok {
			continue
		}
		health.Current -= ev.Amount

		if cooldown, ok := s.ecs.DamageCooldowns.Get(ev.Target); ok {
			cooldown.Remaining = cooldown.Duration
		}

		if health.Current <= 0 && !queued[ev.Target] {
			queued[ev.Target] = true
			s.queues.Death = append(s.queues.Death, event.DeathEvent{Target: ev.Target})
		}
	}
}

func (s *HealthSystem) processDeaths() {
	for _, ev := range s.queues.Death {
		if enemy, ok := s.ecs.Enemies.Get(ev.Target); ok {
			pos, hasPos := s.ecs.Positions.Get(ev.Target)
			if hasPos {
				SpawnOrb(s.ecs, pos.Vec())
				s.queues.Killed = append(s.queues.Killed, event.EnemyKilledData{
					ID:       ev.Target,
					Kind:     enemy.Kind,
					Position: pos.Vec(),
				})
			}
			s.ecs.Despawn(ev.Target)
			s.kills++
			continue
		}
		if s.ecs.Players.Has(ev.Target) {
			s.ecs.Despawn(ev.Target)
			s.playerDead = true
		}
	}
}
