// internal/component/game_state.go
package component

import "go-survivors/internal/defs"

// MenuState — состояние меню улучшений
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}

// UpgradeMenu — компонент меню выбора улучшений.
type UpgradeMenu struct {
	State   MenuState
	Offered []defs.UpgradeEffect
	// Generation растёт при каждом открытии меню.
	Generation int
}
