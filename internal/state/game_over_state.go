// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-survivors/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог партии поверх последнего кадра.
type GameOverState struct {
	sm      *StateMachine
	last    *GameState
	summary string
}

func NewGameOverState(sm *StateMachine, last *GameState) *GameOverState {
	g := last.game
	summary := fmt.Sprintf("Survived %.0fs, level %d, %d kills", g.Elapsed(), g.Level(), g.Kills())
	return &GameOverState{sm: sm, last: last, summary: summary}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		startGame(s.sm)
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.last.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PanelColor, false)

	face := s.sm.Session().Font
	drawCentered(screen, face, "GAME OVER", config.ScreenHeight/2-30)
	drawCentered(screen, face, s.summary, config.ScreenHeight/2)
	drawCentered(screen, face, "Press R to restart", config.ScreenHeight/2+30)
}

func (s *GameOverState) Exit() {}
