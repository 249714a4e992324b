// internal/system/timer.go
package system

import (
	"fmt"
	"math"
)

// RepeatingTimer — повторяющийся таймер, который двигается внешними дельтами времени.
type RepeatingTimer struct {
	duration float64
	elapsed  float64
}

// NewRepeatingTimer создаёт таймер. Неположительная длительность — ошибка программиста.
func NewRepeatingTimer(duration float64) *RepeatingTimer {
	mustPositive(duration)
	return &RepeatingTimer{duration: duration}
}

func mustPositive(duration float64) {
	if !(duration > 0) || math.IsInf(duration, 0) {
		panic(fmt.Sprintf("timer duration must be positive and finite, got %v", duration))
	}
}

// SetDuration меняет интервал, не сбрасывая накопленное время.
func (t *RepeatingTimer) SetDuration(duration float64) {
	mustPositive(duration)
	t.duration = duration
}

// Duration возвращает текущий интервал.
func (t *RepeatingTimer) Duration() float64 {
	return t.duration
}

// Tick продвигает таймер и сообщает, сработал ли он в этом тике.
// Срабатывает не больше одного раза за вызов, остаток переносится.
func (t *RepeatingTimer) Tick(deltaTime float64) bool {
	if deltaTime > 0 {
		t.elapsed += deltaTime
	}
	if t.elapsed < t.duration {
		return false
	}
	t.elapsed = math.Mod(t.elapsed, t.duration)
	return true
}

// Remaining возвращает время до следующего срабатывания.
func (t *RepeatingTimer) Remaining() float64 {
	return math.Max(0, t.duration-t.elapsed)
}
