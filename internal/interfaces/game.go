// internal/interfaces/game.go
package interfaces

import "go-survivors/internal/component"

// Game — то, что состояния презентации делают с симуляцией.
type Game interface {
	SetIntent(intent component.MoveIntent)
	Update(deltaTime float64)
	IsOver() bool
}
