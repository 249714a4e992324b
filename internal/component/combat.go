// internal/component/combat.go
package component

import "go-survivors/pkg/utils"

// Health — компонент здоровья.
// Current может временно уйти в минус между уроном и обработкой смерти.
type Health struct {
	Current float64
	Max     float64
}

// NewHealth создаёт полное здоровье.
func NewHealth(max float64) *Health {
	return &Health{Current: max, Max: max}
}

// Display возвращает Current, ограниченное [0, Max], для отображения.
func (h *Health) Display() float64 {
	return utils.Clamp(h.Current, 0, h.Max)
}

// Ratio возвращает долю здоровья в [0, 1].
func (h *Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Display() / h.Max
}

// DamageCooldown — таймер после полученного урона.
// Тикается каждый кадр, но проверка контактного урона его не учитывает.
type DamageCooldown struct {
	Remaining float64
	Duration  float64
}

// Ready сообщает, что таймер истёк.
func (c *DamageCooldown) Ready() bool {
	return c.Remaining <= 0
}
