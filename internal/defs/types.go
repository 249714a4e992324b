// internal/defs/types.go
package defs

import "image/color"

// ProjectileKind определяет политику столкновения снаряда.
type ProjectileKind int

const (
	ShotNormal ProjectileKind = iota
	ShotFireball
	ShotIce
	ShotPiercing
)

func (k ProjectileKind) String() string {
	switch k {
	case ShotNormal:
		return "Normal"
	case ShotFireball:
		return "Fireball"
	case ShotIce:
		return "Ice"
	case ShotPiercing:
		return "Piercing"
	default:
		return "Unknown"
	}
}

// ShotColors — цвет снаряда по типу выстрела.
var ShotColors = map[ProjectileKind]color.RGBA{
	ShotNormal:   {255, 179, 77, 255},
	ShotFireball: {255, 80, 20, 255},
	ShotIce:      {150, 220, 255, 255},
	ShotPiercing: {230, 230, 230, 255},
}

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color        color.RGBA
	RadiusFactor float64
}
