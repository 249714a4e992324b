// internal/event/logger_listener.go
package event

import (
	"log"

	"go-survivors/internal/defs"
)

// LogListener пишет в стандартный лог редкие события партии.
// Урон и спавн не логируются: они приходят каждый тик.
type LogListener struct{}

// Subscribe подписывает LogListener на события, которые он логирует.
func (l *LogListener) Subscribe(d *Dispatcher) {
	d.SubscribeAll(l, EnemyKilled, LevelUp, UpgradeOffered, UpgradeChosen, PlayerDied)
}

func (l *LogListener) OnEvent(e Event) {
	switch e.Type {
	case EnemyKilled:
		if data, ok := e.Data.(EnemyKilledData); ok {
			log.Printf("[Event] %s killed at (%.0f, %.0f)", data.Kind, data.Position.X, data.Position.Y)
		}
	case LevelUp:
		if data, ok := e.Data.(LevelUpData); ok {
			log.Printf("[Event] level up: %d, next at %d xp", data.Level, data.Required)
		}
	case UpgradeOffered:
		if options, ok := e.Data.([]defs.UpgradeEffect); ok {
			labels := make([]string, 0, len(options))
			for _, opt := range options {
				labels = append(labels, opt.Label())
			}
			log.Printf("[Event] upgrades offered: %v", labels)
		}
	case UpgradeChosen:
		if effect, ok := e.Data.(defs.UpgradeEffect); ok {
			log.Printf("[Event] upgrade chosen: %s", effect.Label())
		}
	case PlayerDied:
		log.Println("[Event] player died")
	}
}
