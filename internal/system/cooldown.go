// internal/system/cooldown.go
package system

import "go-survivors/internal/entity"

// CooldownSystem отсчитывает таймеры после полученного урона.
type CooldownSystem struct {
	ecs *entity.ECS
}

func NewCooldownSystem(ecs *entity.ECS) *CooldownSystem {
	return &CooldownSystem{ecs: ecs}
}

func (s *CooldownSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.DamageCooldowns.Entities() {
		cd, _ := s.ecs.DamageCooldowns.Get(id)
		if cd.Remaining <= 0 {
			continue
		}
		cd.Remaining -= deltaTime
		if cd.Remaining < 0 {
			cd.Remaining = 0
		}
	}
}
