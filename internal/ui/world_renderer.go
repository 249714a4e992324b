// internal/ui/world_renderer.go
package ui

import (
	"go-survivors/internal/app"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	vec "go-survivors/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WorldRenderer рисует мир с камерой, центрированной на игроке.
// Ось Y мира направлена вверх, экрана вниз.
type WorldRenderer struct {
	camera vec.Vec2
}

func NewWorldRenderer() *WorldRenderer {
	return &WorldRenderer{}
}

// ToScreen переводит мировые координаты в экранные.
func (r *WorldRenderer) ToScreen(p vec.Vec2) (float32, float32) {
	x := p.X - r.camera.X + config.ScreenWidth/2
	y := config.ScreenHeight/2 - (p.Y - r.camera.Y)
	return float32(x), float32(y)
}

func (r *WorldRenderer) Draw(screen *ebiten.Image, g *app.Game) {
	screen.Fill(config.BackgroundColor)

	// После смерти камера остаётся на последней позиции.
	if pos, ok := g.PlayerPosition(); ok {
		r.camera = pos
	}

	for _, orb := range g.Orbs() {
		x, y := r.ToScreen(orb)
		vector.DrawFilledCircle(screen, x, y, config.OrbRadius, config.OrbColor, true)
	}

	for _, enemy := range g.Enemies() {
		def := defs.EnemyLibrary[enemy.Kind]
		x, y := r.ToScreen(enemy.Position)
		radius := float32(config.EnemyRadius * def.Visuals.RadiusFactor)
		vector.DrawFilledCircle(screen, x, y, radius, def.Visuals.Color, true)
	}

	for _, proj := range g.Projectiles() {
		x, y := r.ToScreen(proj.Position)
		vector.DrawFilledCircle(screen, x, y, config.ProjectileRadius, defs.ShotColors[proj.Kind], true)
	}

	if pos, ok := g.PlayerPosition(); ok {
		x, y := r.ToScreen(pos)
		vector.DrawFilledCircle(screen, x, y, config.PlayerRadius, config.PlayerColor, true)
		if g.Recovering() {
			vector.StrokeCircle(screen, x, y, config.PlayerRadius+3, 2, config.CriticalColor, true)
		}
	}
}
