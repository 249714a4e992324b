// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/interfaces"
	"go-survivors/internal/system"
	"go-survivors/internal/utils"
	vec "go-survivors/pkg/utils"
)

var (
	_ interfaces.Game            = (*Game)(nil)
	_ interfaces.UpgradeSelector = (*Game)(nil)
)

// Game holds the simulation state and runs the ordered tick.
type Game struct {
	ECS             *entity.ECS
	Config          config.Config
	Queues          *event.Queues
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	CooldownSystem *system.CooldownSystem
	SpawnSystem    *system.SpawnSystem
	MovementSystem *system.MovementSystem
	WeaponSystem   *system.WeaponSystem
	CombatSystem   *system.CombatSystem
	HealthSystem   *system.HealthSystem
	PlayerSystem   *system.PlayerSystem
	UpgradeSystem  *system.UpgradeSystem

	intent component.MoveIntent
	over   bool
}

// NewGame собирает мир из конфигурации. Игрок появляется в начале координат.
func NewGame(cfg config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	ecs := entity.NewECS()
	queues := event.NewQueues()
	rng := utils.NewPRNGService(cfg.Seed)
	g := &Game{
		ECS:             ecs,
		Config:          cfg,
		Queues:          queues,
		EventDispatcher: event.NewDispatcher(),
		Rng:             rng,
	}
	g.CooldownSystem = system.NewCooldownSystem(ecs)
	g.SpawnSystem = system.NewSpawnSystem(ecs, cfg, rng, queues)
	g.MovementSystem = system.NewMovementSystem(ecs, cfg)
	g.WeaponSystem = system.NewWeaponSystem(ecs, cfg)
	g.CombatSystem = system.NewCombatSystem(ecs, cfg, queues)
	g.HealthSystem = system.NewHealthSystem(ecs, queues)
	g.PlayerSystem = system.NewPlayerSystem(ecs, cfg, queues)
	g.UpgradeSystem = system.NewUpgradeSystem(ecs, rng, queues)

	g.createPlayerEntity()
	log.Printf("game created, seed %d", rng.Seed())
	return g, nil
}

func (g *Game) createPlayerEntity() {
	system.SpawnPlayer(g.ECS, vec.Vec2{}, g.Config.PlayerMaxHealth, g.Config.PlayerMoveSpeed, g.Config.DamageCooldown)
}

// SetIntent запоминает ввод движения для следующих тиков.
func (g *Game) SetIntent(intent component.MoveIntent) {
	g.intent = intent
}

// Update выполняет один тик. После смерти игрока ничего не делает.
// Очереди событий очищаются в начале тика, поэтому после Update
// в них лежат события именно этого тика.
func (g *Game) Update(deltaTime float64) {
	if g.over {
		return
	}
	dt := vec.Clamp(deltaTime, 0, config.MaxDeltaTime)

	g.Queues.Reset()
	g.ECS.GameTime += dt
	menuWasOpen := g.ECS.Menu.State == component.MenuOpen

	g.CooldownSystem.Update(dt)
	g.SpawnSystem.Update(dt)
	g.MovementSystem.Update(dt, g.intent)
	g.WeaponSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.HealthSystem.Update(dt)
	g.PlayerSystem.Update(dt)
	g.UpgradeSystem.Update(dt)

	g.publish(!menuWasOpen && g.ECS.Menu.State == component.MenuOpen)

	if g.HealthSystem.PlayerDead() {
		g.over = true
	}
}

// SelectUpgrade применяет предложенное улучшение с индексом index.
func (g *Game) SelectUpgrade(index int) bool {
	effect, ok := g.UpgradeSystem.Select(index)
	if !ok {
		return false
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.UpgradeChosen, Data: effect})
	return true
}

// IsOver сообщает, что игрок погиб.
func (g *Game) IsOver() bool {
	return g.over
}

// publish рассылает события тика подписчикам. Данные передаются копиями.
func (g *Game) publish(offered bool) {
	d := g.EventDispatcher
	for _, ev := range g.Queues.Spawned {
		d.Dispatch(event.Event{Type: event.EnemySpawned, Data: ev})
	}
	for _, ev := range g.Queues.Damage {
		d.Dispatch(event.Event{Type: event.DamageDealt, Data: ev})
	}
	for _, ev := range g.Queues.Death {
		d.Dispatch(event.Event{Type: event.EntityDied, Data: ev})
	}
	for _, ev := range g.Queues.Killed {
		d.Dispatch(event.Event{Type: event.EnemyKilled, Data: ev})
	}
	for _, ev := range g.Queues.Levels {
		d.Dispatch(event.Event{Type: event.LevelUp, Data: ev})
	}
	if offered {
		options := append([]defs.UpgradeEffect(nil), g.ECS.Menu.Offered...)
		d.Dispatch(event.Event{Type: event.UpgradeOffered, Data: options})
	}
	if g.HealthSystem.PlayerDead() && !g.over {
		d.Dispatch(event.Event{Type: event.PlayerDied})
	}
}
