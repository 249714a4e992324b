package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/event"
	"go-survivors/internal/system"
	vec "go-survivors/pkg/utils"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 42
	g, err := NewGame(cfg)
	require.NoError(t, err)
	return g
}

// recorder собирает опубликованные события по типам.
func recorder(g *Game, types ...event.EventType) map[event.EventType][]event.Event {
	got := make(map[event.EventType][]event.Event)
	for _, et := range types {
		g.EventDispatcher.Subscribe(et, event.ListenerFunc(func(e event.Event) {
			got[e.Type] = append(got[e.Type], e)
		}))
	}
	return got
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.WeaponInterval = 0
	_, err := NewGame(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewGameStartState(t *testing.T) {
	g := newTestGame(t)

	pos, ok := g.PlayerPosition()
	require.True(t, ok)
	assert.Equal(t, vec.Vec2{}, pos)
	cur, maxHealth := g.PlayerHealth()
	assert.Equal(t, 100.0, cur)
	assert.Equal(t, 100.0, maxHealth)
	assert.Equal(t, Healthy, g.HealthBand())
	assert.Equal(t, 1, g.Level())
	assert.Equal(t, 0.0, g.XPFill())
	assert.False(t, g.MenuOpen())
	assert.Nil(t, g.UpgradeOptions())
	assert.Equal(t, 0, g.MenuGeneration())
	assert.False(t, g.Recovering())
	assert.False(t, g.IsOver())
}

func TestUpdateClampsDelta(t *testing.T) {
	g := newTestGame(t)
	g.Update(1.0)
	assert.InDelta(t, config.MaxDeltaTime, g.Elapsed(), 1e-12)
	g.Update(-1)
	assert.InDelta(t, config.MaxDeltaTime, g.Elapsed(), 1e-12)
}

func TestEnemiesSpawnAndArePublished(t *testing.T) {
	g := newTestGame(t)
	got := recorder(g, event.EnemySpawned)

	for i := 0; i < 30; i++ {
		g.Update(0.05)
	}
	require.NotEmpty(t, got[event.EnemySpawned])
	assert.Equal(t, len(got[event.EnemySpawned]), len(g.Enemies())+g.Kills())

	data, ok := got[event.EnemySpawned][0].Data.(event.EnemySpawnedData)
	require.True(t, ok)
	assert.Contains(t, defs.EnemyKinds, data.Kind)

	// Оружие уже успело выстрелить.
	assert.NotEmpty(t, g.Projectiles())
}

func TestPlayerMovesWithIntent(t *testing.T) {
	g := newTestGame(t)
	g.SetIntent(component.MoveIntent{Right: true})
	g.Update(0.05)

	pos, ok := g.PlayerPosition()
	require.True(t, ok)
	assert.InDelta(t, g.Config.PlayerMoveSpeed*0.05, pos.X, 1e-9)
}

func TestLevelUpOffersUpgrades(t *testing.T) {
	g := newTestGame(t)
	got := recorder(g, event.LevelUp, event.UpgradeOffered, event.UpgradeChosen)

	g.ECS.XP.Current = 9
	system.SpawnOrb(g.ECS, vec.Vec2{X: 1})
	g.Update(0.016)

	require.True(t, g.MenuOpen())
	require.Len(t, got[event.LevelUp], 1)
	require.Len(t, got[event.UpgradeOffered], 1)
	offered, ok := got[event.UpgradeOffered][0].Data.([]defs.UpgradeEffect)
	require.True(t, ok)
	assert.Len(t, offered, defs.UpgradeChoices)

	options := g.UpgradeOptions()
	require.Len(t, options, defs.UpgradeChoices)
	for i, opt := range options {
		assert.Equal(t, offered[i], opt.Effect)
		assert.Equal(t, opt.Effect.Label(), opt.Label)
	}

	// Симуляция продолжается при открытом меню.
	before := g.Elapsed()
	g.Update(0.016)
	assert.Greater(t, g.Elapsed(), before)
	assert.Len(t, got[event.UpgradeOffered], 1)

	assert.False(t, g.SelectUpgrade(5))
	require.True(t, g.SelectUpgrade(0))
	assert.False(t, g.MenuOpen())
	require.Len(t, got[event.UpgradeChosen], 1)
	assert.Equal(t, offered[0], got[event.UpgradeChosen][0].Data)
	assert.False(t, g.SelectUpgrade(0))
}

func TestMenuReopensWithinOneTick(t *testing.T) {
	g := newTestGame(t)
	got := recorder(g, event.UpgradeOffered)

	g.ECS.XP.Current = g.ECS.XP.Required - 1
	system.SpawnOrb(g.ECS, vec.Vec2{X: 1})
	g.Update(0.016)
	require.True(t, g.MenuOpen())
	gen := g.MenuGeneration()

	// Выбор и новое повышение уровня в одном кадре.
	require.True(t, g.SelectUpgrade(0))
	g.ECS.XP.Current = g.ECS.XP.Required - 1
	system.SpawnOrb(g.ECS, vec.Vec2{X: 1})
	g.Update(0.016)

	require.True(t, g.MenuOpen())
	assert.Equal(t, gen+1, g.MenuGeneration())
	require.Len(t, got[event.UpgradeOffered], 2)
	offered, ok := got[event.UpgradeOffered][1].Data.([]defs.UpgradeEffect)
	require.True(t, ok)
	options := g.UpgradeOptions()
	require.Len(t, options, len(offered))
	for i, opt := range options {
		assert.Equal(t, offered[i], opt.Effect)
		assert.Equal(t, g.ECS.Menu.Offered[i], opt.Effect)
	}
}

func TestPlayerDeathEndsGame(t *testing.T) {
	g := newTestGame(t)
	got := recorder(g, event.PlayerDied, event.DamageDealt, event.EntityDied)

	health, ok := g.ECS.Healths.Get(g.ECS.PlayerID)
	require.True(t, ok)
	health.Current = 5
	system.SpawnEnemy(g.ECS, defs.EnemyOrc, vec.Vec2{X: 5})

	g.Update(0.016)
	require.True(t, g.IsOver())
	assert.Len(t, got[event.PlayerDied], 1)
	assert.Len(t, got[event.DamageDealt], 1)
	assert.Len(t, got[event.EntityDied], 1)

	_, alive := g.PlayerPosition()
	assert.False(t, alive)
	assert.Equal(t, Critical, g.HealthBand())

	elapsed := g.Elapsed()
	g.Update(0.016)
	assert.Equal(t, elapsed, g.Elapsed())
	assert.Len(t, got[event.PlayerDied], 1)
}

func TestContactDamageIsNotGated(t *testing.T) {
	g := newTestGame(t)
	system.SpawnEnemy(g.ECS, defs.EnemyOrc, vec.Vec2{X: 5})

	g.Update(0.016)
	g.Update(0.016)
	cur, _ := g.PlayerHealth()
	assert.Equal(t, 80.0, cur)
	assert.True(t, g.Recovering())
}

func TestKillCountAndOrbs(t *testing.T) {
	g := newTestGame(t)
	id := system.SpawnEnemy(g.ECS, defs.EnemyWerewolf, vec.Vec2{X: 400})
	health, _ := g.ECS.Healths.Get(id)
	health.Current = 5

	// Снаряд прямо в цель.
	system.SpawnProjectile(g.ECS, vec.Vec2{X: 395}, vec.UnitX, defs.ShotNormal, 10)
	g.Update(0.001)

	assert.Equal(t, 1, g.Kills())
	assert.Len(t, g.Orbs(), 1)
	assert.Empty(t, g.Enemies())
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, Healthy, BandFor(1))
	assert.Equal(t, Healthy, BandFor(0.51))
	assert.Equal(t, Wounded, BandFor(0.5))
	assert.Equal(t, Wounded, BandFor(0.2))
	assert.Equal(t, Critical, BandFor(0.19))
	assert.Equal(t, Critical, BandFor(0))
}
