// internal/entity/ecs.go
package entity

import (
	"go-survivors/internal/component"
	"go-survivors/internal/types"
)

// ECS — арена сущностей с проверкой поколений и разреженными хранилищами компонентов.
// Глобальное состояние одного игрока (оружие, опыт, меню) хранится здесь же
// явными полями, а не в глобальных переменных.
type ECS struct {
	GameTime float64

	generations []uint32
	alive       []bool
	free        []uint32

	Positions       *Store[*component.Position]
	Velocities      *Store[*component.Velocity]
	Healths         *Store[*component.Health]
	DamageCooldowns *Store[*component.DamageCooldown]
	Players         *Store[*component.Player]
	Enemies         *Store[*component.Enemy]
	Projectiles     *Store[*component.Projectile]
	Orbs            *Store[*component.Orb]

	PlayerID types.EntityID
	Weapon   *component.WeaponStats
	XP       *component.PlayerXP
	Menu     *component.UpgradeMenu
}

func NewECS() *ECS {
	return &ECS{
		Positions:       NewStore[*component.Position](),
		Velocities:      NewStore[*component.Velocity](),
		Healths:         NewStore[*component.Health](),
		DamageCooldowns: NewStore[*component.DamageCooldown](),
		Players:         NewStore[*component.Player](),
		Enemies:         NewStore[*component.Enemy](),
		Projectiles:     NewStore[*component.Projectile](),
		Orbs:            NewStore[*component.Orb](),
		Weapon:          component.NewWeaponStats(),
		XP:              component.NewPlayerXP(),
		Menu:            &component.UpgradeMenu{State: component.MenuClosed},
	}
}

// NewEntity выдаёт новый дескриптор, переиспользуя освобождённые слоты.
func (ecs *ECS) NewEntity() types.EntityID {
	if n := len(ecs.free); n > 0 {
		idx := ecs.free[n-1]
		ecs.free = ecs.free[:n-1]
		ecs.alive[idx] = true
		return types.EntityID{Index: idx, Generation: ecs.generations[idx]}
	}
	idx := uint32(len(ecs.generations))
	ecs.generations = append(ecs.generations, 1)
	ecs.alive = append(ecs.alive, true)
	return types.EntityID{Index: idx, Generation: 1}
}

// Alive сообщает, что дескриптор указывает на живую сущность.
func (ecs *ECS) Alive(id types.EntityID) bool {
	if id.IsZero() || int(id.Index) >= len(ecs.generations) {
		return false
	}
	return ecs.alive[id.Index] && ecs.generations[id.Index] == id.Generation
}

// Despawn удаляет сущность со всеми компонентами.
// Для устаревшего дескриптора ничего не делает и возвращает false.
func (ecs *ECS) Despawn(id types.EntityID) bool {
	if !ecs.Alive(id) {
		return false
	}
	ecs.Positions.Remove(id)
	ecs.Velocities.Remove(id)
	ecs.Healths.Remove(id)
	ecs.DamageCooldowns.Remove(id)
	ecs.Players.Remove(id)
	ecs.Enemies.Remove(id)
	ecs.Projectiles.Remove(id)
	ecs.Orbs.Remove(id)

	ecs.alive[id.Index] = false
	ecs.generations[id.Index]++
	ecs.free = append(ecs.free, id.Index)
	return true
}

// Count возвращает число живых сущностей.
func (ecs *ECS) Count() int {
	return len(ecs.generations) - len(ecs.free)
}

// PlayerPosition возвращает позицию игрока, если он ещё существует.
func (ecs *ECS) PlayerPosition() (*component.Position, bool) {
	if !ecs.Alive(ecs.PlayerID) {
		return nil, false
	}
	return ecs.Positions.Get(ecs.PlayerID)
}
