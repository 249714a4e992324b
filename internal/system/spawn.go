// internal/system/spawn.go
package system

import (
	"math"

	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/utils"
	vec "go-survivors/pkg/utils"
)

// SpawnInterval — кривая сложности: начинается около 1.25с и асимптотически
// стремится к 0.25с, но не опускается ниже floor.
func SpawnInterval(elapsed, floor float64) float64 {
	return math.Max(floor, config.DifficultyBase+config.DifficultyScale/(elapsed+config.DifficultyScale))
}

// SpawnSystem создаёт врагов в кольце вокруг игрока.
type SpawnSystem struct {
	ecs    *entity.ECS
	cfg    config.Config
	rng    *utils.PRNGService
	queues *event.Queues
	timer  *RepeatingTimer
}

func NewSpawnSystem(ecs *entity.ECS, cfg config.Config, rng *utils.PRNGService, queues *event.Queues) *SpawnSystem {
	return &SpawnSystem{
		ecs:    ecs,
		cfg:    cfg,
		rng:    rng,
		queues: queues,
		timer:  NewRepeatingTimer(SpawnInterval(0, cfg.SpawnIntervalFloor)),
	}
}

// Interval возвращает текущий интервал спавна.
func (s *SpawnSystem) Interval() float64 {
	return s.timer.Duration()
}

func (s *SpawnSystem) Update(deltaTime float64) {
	s.timer.SetDuration(SpawnInterval(s.ecs.GameTime, s.cfg.SpawnIntervalFloor))
	if !s.timer.Tick(deltaTime) {
		return
	}

	playerPos, ok := s.ecs.PlayerPosition()
	if !ok {
		return
	}

	kind := defs.EnemyKinds[s.rng.Intn(len(defs.EnemyKinds))]
	angle := s.rng.Range(0, 2*math.Pi)
	radius := s.rng.Range(s.cfg.SpawnRingMin, s.cfg.SpawnRingMax)
	pos := playerPos.Vec().Add(vec.FromAngle(angle, radius))

	id := SpawnEnemy(s.ecs, kind, pos)
	s.queues.Spawned = append(s.queues.Spawned, event.EnemySpawnedData{ID: id, Kind: kind, Position: pos})
}
