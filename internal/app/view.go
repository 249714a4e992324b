// internal/app/view.go
package app

import (
	"go-survivors/internal/component"
	"go-survivors/internal/defs"
	vec "go-survivors/pkg/utils"
)

// HealthBand — цветовая зона полосы здоровья.
type HealthBand int

const (
	Healthy HealthBand = iota
	Wounded
	Critical
)

// BandFor выбирает зону по доле здоровья: > 0.5, [0.2, 0.5], < 0.2.
func BandFor(ratio float64) HealthBand {
	switch {
	case ratio > 0.5:
		return Healthy
	case ratio >= 0.2:
		return Wounded
	default:
		return Critical
	}
}

// EnemyView — то, что нужно для отрисовки врага.
type EnemyView struct {
	Position vec.Vec2
	Kind     defs.EnemyKind
}

// ProjectileView — то, что нужно для отрисовки снаряда.
type ProjectileView struct {
	Position vec.Vec2
	Kind     defs.ProjectileKind
}

// UpgradeOption — вариант улучшения с подписью для кнопки.
type UpgradeOption struct {
	Effect defs.UpgradeEffect
	Label  string
}

// PlayerPosition возвращает позицию игрока; после смерти false.
func (g *Game) PlayerPosition() (vec.Vec2, bool) {
	pos, ok := g.ECS.PlayerPosition()
	if !ok {
		return vec.Vec2{}, false
	}
	return pos.Vec(), true
}

// PlayerHealth возвращает здоровье игрока, ограниченное [0, max].
func (g *Game) PlayerHealth() (current, maxHealth float64) {
	health, ok := g.ECS.Healths.Get(g.ECS.PlayerID)
	if !ok {
		return 0, g.Config.PlayerMaxHealth
	}
	return health.Display(), health.Max
}

// HealthRatio возвращает долю здоровья игрока в [0, 1].
func (g *Game) HealthRatio() float64 {
	health, ok := g.ECS.Healths.Get(g.ECS.PlayerID)
	if !ok {
		return 0
	}
	return health.Ratio()
}

// HealthBand возвращает зону полосы здоровья игрока.
func (g *Game) HealthBand() HealthBand {
	return BandFor(g.HealthRatio())
}

// Recovering сообщает, идёт ли таймер после урона игрока.
func (g *Game) Recovering() bool {
	cd, ok := g.ECS.DamageCooldowns.Get(g.ECS.PlayerID)
	return ok && !cd.Ready()
}

// MenuGeneration меняется при каждом новом наборе вариантов.
func (g *Game) MenuGeneration() int {
	return g.ECS.Menu.Generation
}

func (g *Game) Enemies() []EnemyView {
	views := make([]EnemyView, 0, g.ECS.Enemies.Len())
	for _, id := range g.ECS.Enemies.Entities() {
		enemy, _ := g.ECS.Enemies.Get(id)
		pos, ok := g.ECS.Positions.Get(id)
		if !ok {
			continue
		}
		views = append(views, EnemyView{Position: pos.Vec(), Kind: enemy.Kind})
	}
	return views
}

func (g *Game) Projectiles() []ProjectileView {
	views := make([]ProjectileView, 0, g.ECS.Projectiles.Len())
	for _, id := range g.ECS.Projectiles.Entities() {
		proj, _ := g.ECS.Projectiles.Get(id)
		pos, ok := g.ECS.Positions.Get(id)
		if !ok {
			continue
		}
		views = append(views, ProjectileView{Position: pos.Vec(), Kind: proj.Kind})
	}
	return views
}

func (g *Game) Orbs() []vec.Vec2 {
	out := make([]vec.Vec2, 0, g.ECS.Orbs.Len())
	for _, id := range g.ECS.Orbs.Entities() {
		if pos, ok := g.ECS.Positions.Get(id); ok {
			out = append(out, pos.Vec())
		}
	}
	return out
}

// XPFill возвращает заполненность полосы опыта в [0, 1].
func (g *Game) XPFill() float64 {
	return g.ECS.XP.Fill()
}

func (g *Game) Level() int {
	return g.ECS.XP.Level
}

// MenuOpen сообщает, что игрок должен выбрать улучшение.
func (g *Game) MenuOpen() bool {
	return g.ECS.Menu.State == component.MenuOpen
}

// UpgradeOptions возвращает предложенные улучшения; при закрытом меню nil.
func (g *Game) UpgradeOptions() []UpgradeOption {
	if !g.MenuOpen() {
		return nil
	}
	options := make([]UpgradeOption, 0, len(g.ECS.Menu.Offered))
	for _, effect := range g.ECS.Menu.Offered {
		options = append(options, UpgradeOption{Effect: effect, Label: effect.Label()})
	}
	return options
}

// Elapsed возвращает время симуляции в секундах.
func (g *Game) Elapsed() float64 {
	return g.ECS.GameTime
}

func (g *Game) Kills() int {
	return g.HealthSystem.Kills()
}

// Weapon возвращает копию текущих параметров оружия.
func (g *Game) Weapon() component.WeaponStats {
	return *g.ECS.Weapon
}
