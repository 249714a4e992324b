// internal/component/movement.go
package component

import "go-survivors/pkg/utils"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Vec возвращает позицию как вектор.
func (p *Position) Vec() utils.Vec2 {
	return utils.Vec2{X: p.X, Y: p.Y}
}

// Set записывает вектор в позицию.
func (p *Position) Set(v utils.Vec2) {
	p.X, p.Y = v.X, v.Y
}

// Velocity — собственная скорость сущности (единиц в секунду).
// Копируется из определения при спавне, чтобы модификаторы экземпляра не трогали таблицу.
type Velocity struct {
	Speed float64
}

// MoveIntent — логический ввод движения: по два бита на ось (W/S/A/D).
type MoveIntent struct {
	Up, Down, Left, Right bool
}

// Vector возвращает ненормализованный вектор намерения (ось Y направлена вверх).
func (m MoveIntent) Vector() utils.Vec2 {
	var v utils.Vec2
	if m.Up {
		v.Y += 1
	}
	if m.Down {
		v.Y -= 1
	}
	if m.Left {
		v.X -= 1
	}
	if m.Right {
		v.X += 1
	}
	return v
}
