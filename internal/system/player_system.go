// internal/system/player_system.go
package system

import (
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
)

// PlayerSystem отвечает за опыт игрока: притягивает и собирает сферы,
// начисляет опыт и повышает уровень.
type PlayerSystem struct {
	ecs    *entity.ECS
	cfg    config.Config
	queues *event.Queues
}

func NewPlayerSystem(ecs *entity.ECS, cfg config.Config, queues *event.Queues) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, cfg: cfg, queues: queues}
}

func (s *PlayerSystem) Update(deltaTime float64) {
	playerPos, ok := s.ecs.PlayerPosition()
	if !ok {
		return
	}
	target := playerPos.Vec()

	for _, id := range s.ecs.Orbs.Entities() {
		pos, ok := s.ecs.Positions.Get(id)
		if !ok {
			continue
		}
		dist := pos.Vec().Distance(target)
		switch {
		case dist < s.cfg.OrbCollectRadius:
			s.ecs.Despawn(id)
			s.collect()
		case dist < s.cfg.OrbAttractRadius:
			dir := target.Sub(pos.Vec()).NormalizeOrZero()
			pos.Set(pos.Vec().Add(dir.Mul(s.cfg.OrbAttractSpeed * deltaTime)))
		}
	}
}

// collect начисляет опыт за одну сферу и ставит в очередь повышения уровня.
func (s *PlayerSystem) collect() {
	xp := s.ecs.XP
	levels := GainXP(xp, xp.OrbValue, s.cfg.XPOverflowLoop)
	for i := 0; i < levels; i++ {
		s.queues.LevelUp = append(s.queues.LevelUp, event.LevelUpEvent{})
	}
	if levels > 0 {
		s.queues.Levels = append(s.queues.Levels, event.LevelUpData{Level: xp.Level, Required: xp.Required})
	}
}

// GainXP добавляет amount опыта и возвращает число полученных уровней.
// Без loop переносится только один порог за вызов: остаток может
// превышать новый Required до следующего сбора.
func GainXP(xp *component.PlayerXP, amount int, loop bool) int {
	xp.Current += amount
	levels := 0
	for xp.Current >= xp.Required {
		xp.Current -= xp.Required
		xp.Level++
		xp.Required = int(math.Ceil(float64(xp.Required) * 1.5))
		levels++
		if !loop {
			break
		}
	}
	return levels
}
