// internal/component/player.go
package component

// Player — маркер игрока и его параметры движения.
type Player struct {
	MoveSpeed float64
}

// PlayerXP хранит опыт и уровень игрока.
type PlayerXP struct {
	Current  int // Текущее количество очков опыта
	Level    int // Текущий уровень игрока
	Required int // Опыт, необходимый для следующего уровня
	OrbValue int // Опыт за одну сферу
}

// NewPlayerXP возвращает начальное состояние прогресса.
func NewPlayerXP() *PlayerXP {
	return &PlayerXP{
		Current:  0,
		Level:    1,
		Required: 10,
		OrbValue: 1,
	}
}

// Fill возвращает заполненность полосы опыта в [0, 1].
func (x *PlayerXP) Fill() float64 {
	if x.Required <= 0 {
		return 0
	}
	f := float64(x.Current) / float64(x.Required)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
