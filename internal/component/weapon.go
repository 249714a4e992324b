// internal/component/weapon.go
package component

import "go-survivors/internal/defs"

// WeaponStats — параметры автоматического оружия игрока.
// Меняются только выбором улучшений.
type WeaponStats struct {
	Multishot       int     // Количество снарядов за залп, не меньше 1
	SpreadDegrees   float64 // Полный угол веера
	ProjectileSpeed float64
	ShotKind        defs.ProjectileKind
}

// NewWeaponStats возвращает стартовое оружие.
func NewWeaponStats() *WeaponStats {
	return &WeaponStats{
		Multishot:       1,
		SpreadDegrees:   10,
		ProjectileSpeed: 300,
		ShotKind:        defs.ShotNormal,
	}
}
