// internal/state/game_state.go
package state

import (
	"fmt"

	"go-survivors/internal/app"
	"go-survivors/internal/component"
	"go-survivors/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GameState)(nil)

// GameState — состояние игры
type GameState struct {
	sm           *StateMachine
	game         *app.Game
	renderer     *ui.WorldRenderer
	health       *ui.PlayerHealthIndicator
	level        *ui.PlayerLevelIndicator
	upgradePanel *ui.UpgradePanel
	menuGen      int
}

// NewGameState создаёт новую партию и подписывает на неё внешних слушателей.
func NewGameState(sm *StateMachine) (*GameState, error) {
	session := sm.Session()
	gameLogic, err := app.NewGame(session.Config)
	if err != nil {
		return nil, err
	}
	if session.OnNewGame != nil {
		session.OnNewGame(gameLogic.EventDispatcher)
	}

	return &GameState{
		sm:           sm,
		game:         gameLogic,
		renderer:     ui.NewWorldRenderer(),
		health:       ui.NewPlayerHealthIndicator(10, 10, session.Font),
		level:        ui.NewPlayerLevelIndicator(10, 34, session.Font),
		upgradePanel: ui.NewUpgradePanel(session.Font),
	}, nil
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.game.SetIntent(readIntent())
	g.upgradePanel.Update(g.game)
	g.game.Update(deltaTime)

	// Меню могло закрыться и открыться заново за один кадр.
	switch gen := g.game.MenuGeneration(); {
	case !g.game.MenuOpen():
		g.upgradePanel.Layout(nil)
	case gen != g.menuGen:
		g.upgradePanel.Layout(g.game.UpgradeOptions())
		g.menuGen = gen
	}

	if g.game.IsOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

// readIntent читает WASD и стрелки. Ось Y направлена вверх.
func readIntent() component.MoveIntent {
	return component.MoveIntent{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game)

	current, maxHealth := g.game.PlayerHealth()
	g.health.Draw(screen, current, maxHealth, g.game.HealthRatio(), g.game.HealthBand())
	g.level.Draw(screen, g.game.Level(), g.game.XPFill())
	g.upgradePanel.Draw(screen)

	// Debug text
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Time: %.0fs  Kills: %d  Enemies: %d", g.game.Elapsed(), g.game.Kills(), len(g.game.Enemies())), 10, 56)
}

func (g *GameState) Exit() {}
