// internal/state/state.go
package state

import (
	"go-survivors/internal/config"
	"go-survivors/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Session — общее для всех партий: конфигурация, шрифт и подписка
// внешних слушателей на диспетчер каждой новой партии.
type Session struct {
	Config    config.Config
	Font      font.Face
	OnNewGame func(d *event.Dispatcher)
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	session *Session
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(session *Session) *StateMachine {
	return &StateMachine{session: session}
}

// Session возвращает общие параметры.
func (sm *StateMachine) Session() *Session {
	return sm.session
}

// Current возвращает текущее состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
