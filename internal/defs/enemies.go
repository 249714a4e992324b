// internal/defs/enemies.go
package defs

import "image/color"

// EnemyKind — тип врага.
type EnemyKind int

const (
	EnemySkeleton EnemyKind = iota
	EnemyOrc
	EnemyWerewolf
)

func (k EnemyKind) String() string {
	if def, ok := EnemyLibrary[k]; ok {
		return def.Name
	}
	return "Unknown"
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Kind      EnemyKind
	Name      string
	Speed     float64
	MaxHealth float64
	Visuals   Visuals
}

// EnemyKinds — порядок, в котором спавнер выбирает тип врага.
var EnemyKinds = []EnemyKind{EnemySkeleton, EnemyOrc, EnemyWerewolf}

// EnemyLibrary is the table of enemy definitions, keyed by kind.
// LoadEnemyDefinitions may override it once at startup.
var EnemyLibrary = map[EnemyKind]EnemyDefinition{
	EnemySkeleton: {
		Kind:      EnemySkeleton,
		Name:      "Skeleton",
		Speed:     100,
		MaxHealth: 30,
		Visuals:   Visuals{Color: color.RGBA{220, 220, 200, 255}, RadiusFactor: 1.0},
	},
	EnemyOrc: {
		Kind:      EnemyOrc,
		Name:      "Orc",
		Speed:     70,
		MaxHealth: 60,
		Visuals:   Visuals{Color: color.RGBA{90, 140, 60, 255}, RadiusFactor: 1.3},
	},
	EnemyWerewolf: {
		Kind:      EnemyWerewolf,
		Name:      "Werewolf",
		Speed:     150,
		MaxHealth: 20,
		Visuals:   Visuals{Color: color.RGBA{120, 80, 50, 255}, RadiusFactor: 0.9},
	},
}
