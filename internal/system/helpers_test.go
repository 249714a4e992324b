package system

import (
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"
	vec "go-survivors/pkg/utils"
)

type world struct {
	ecs    *entity.ECS
	cfg    config.Config
	queues *event.Queues
	rng    *utils.PRNGService
	player types.EntityID
}

// newWorld создаёт мир с игроком в начале координат.
func newWorld() *world {
	cfg := config.Default()
	ecs := entity.NewECS()
	w := &world{
		ecs:    ecs,
		cfg:    cfg,
		queues: event.NewQueues(),
		rng:    utils.NewPRNGService(42),
	}
	w.player = SpawnPlayer(ecs, vec.Vec2{}, cfg.PlayerMaxHealth, cfg.PlayerMoveSpeed, cfg.DamageCooldown)
	return w
}
