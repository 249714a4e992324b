// pkg/utils/math.go
package utils

import "math"

// Vec2 — двумерный вектор (позиция, направление, скорость).
type Vec2 struct {
	X, Y float64
}

// UnitX — каноническая ось +X.
var UnitX = Vec2{X: 1, Y: 0}

// Add складывает два вектора
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub вычитает вектор
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul умножает вектор на скаляр
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// LengthSq возвращает квадрат длины.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length возвращает длину вектора
func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// Distance вычисляет расстояние до другой точки
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// DistanceSq вычисляет квадрат расстояния до другой точки.
func (v Vec2) DistanceSq(o Vec2) float64 {
	return v.Sub(o).LengthSq()
}

// NormalizeOrZero возвращает единичный вектор или нулевой, если длина 0 или не конечна.
func (v Vec2) NormalizeOrZero() Vec2 {
	l := v.Length()
	if l == 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rotate поворачивает вектор на angle радиан против часовой стрелки.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Angle возвращает угол вектора относительно +X в радианах.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle строит вектор длины length под углом angle.
func FromAngle(angle, length float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: length * cos, Y: length * sin}
}

// Clamp ограничивает x диапазоном [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
