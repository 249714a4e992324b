// internal/state/menu_state.go
package state

import (
	"log"

	"go-survivors/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

var _ State = (*MenuState)(nil)

// MenuState — стартовый экран.
type MenuState struct {
	sm *StateMachine
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		startGame(m.sm)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := m.sm.Session().Font
	drawCentered(screen, face, "SURVIVORS", config.ScreenHeight/2-30)
	drawCentered(screen, face, "WASD - move, weapon fires automatically", config.ScreenHeight/2)
	drawCentered(screen, face, "Press SPACE to start", config.ScreenHeight/2+30)
}

func (m *MenuState) Exit() {}

// startGame создаёт новую партию и переключается на неё.
// Ошибка возможна только при неверной конфигурации, её ловит main до старта.
func startGame(sm *StateMachine) {
	gs, err := NewGameState(sm)
	if err != nil {
		log.Printf("failed to start game: %v", err)
		return
	}
	sm.SetState(gs)
}

func drawCentered(screen *ebiten.Image, face font.Face, s string, y int) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, (config.ScreenWidth-bounds.Dx())/2, y, config.TextColor)
}
