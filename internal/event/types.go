// internal/event/types.go
package event

import (
	"go-survivors/internal/defs"
	"go-survivors/internal/types"
	"go-survivors/pkg/utils"
)

const (
	EnemySpawned   EventType = "EnemySpawned"   // Data: EnemySpawnedData
	DamageDealt    EventType = "DamageDealt"    // Data: DamageEvent
	EntityDied     EventType = "EntityDied"     // Data: DeathEvent
	EnemyKilled    EventType = "EnemyKilled"    // Data: EnemyKilledData
	PlayerDied     EventType = "PlayerDied"     // Data: nil
	LevelUp        EventType = "LevelUp"        // Data: LevelUpData
	UpgradeOffered EventType = "UpgradeOffered" // Data: []defs.UpgradeEffect
	UpgradeChosen  EventType = "UpgradeChosen"  // Data: defs.UpgradeEffect
)

// DamageEvent — запрос урона по сущности.
type DamageEvent struct {
	Target types.EntityID
	Amount float64
}

// DeathEvent — сущность погибла в этом тике.
type DeathEvent struct {
	Target types.EntityID
}

// LevelUpEvent не несёт данных.
type LevelUpEvent struct{}

// EnemySpawnedData описывает нового врага.
type EnemySpawnedData struct {
	ID       types.EntityID
	Kind     defs.EnemyKind
	Position utils.Vec2
}

// EnemyKilledData — враг погиб и оставил сферу опыта.
type EnemyKilledData struct {
	ID       types.EntityID
	Kind     defs.EnemyKind
	Position utils.Vec2
}

// LevelUpData — уровень после повышения.
type LevelUpData struct {
	Level    int
	Required int
}
