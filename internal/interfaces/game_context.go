// internal/interfaces/game_context.go
package interfaces

// UpgradeSelector принимает выбор улучшения из UI.
type UpgradeSelector interface {
	MenuOpen() bool
	SelectUpgrade(index int) bool
}
