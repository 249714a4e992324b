// internal/metrics/collector.go
package metrics

import (
	"go-survivors/internal/defs"
	"go-survivors/internal/event"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector переводит исходящие события игры в метрики Prometheus.
// Только читает события, на симуляцию не влияет.
type Collector struct {
	spawned  *prometheus.CounterVec
	killed   *prometheus.CounterVec
	damage   prometheus.Counter
	upgrades *prometheus.CounterVec
	deaths   prometheus.Counter
	level    prometheus.Gauge
}

// NewCollector создаёт метрики и регистрирует их в reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		spawned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "survivors",
			Name:      "enemies_spawned_total",
			Help:      "Число появившихся врагов по типам.",
		}, []string{"kind"}),
		killed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "survivors",
			Name:      "enemies_killed_total",
			Help:      "Число убитых врагов по типам.",
		}, []string{"kind"}),
		damage: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "survivors",
			Name:      "damage_dealt_total",
			Help:      "Суммарный нанесённый урон.",
		}),
		upgrades: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "survivors",
			Name:      "upgrades_chosen_total",
			Help:      "Выбранные улучшения.",
		}, []string{"upgrade"}),
		deaths: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "survivors",
			Name:      "player_deaths_total",
			Help:      "Число смертей игрока.",
		}),
		level: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "survivors",
			Name:      "player_level",
			Help:      "Текущий уровень игрока.",
		}),
	}
	c.level.Set(1)
	reg.MustRegister(c.spawned, c.killed, c.damage, c.upgrades, c.deaths, c.level)
	return c
}

// Subscribe подписывает коллектор на события новой партии и сбрасывает уровень.
func (c *Collector) Subscribe(d *event.Dispatcher) {
	c.level.Set(1)
	d.SubscribeAll(c, event.EnemySpawned, event.EnemyKilled, event.DamageDealt,
		event.UpgradeChosen, event.PlayerDied, event.LevelUp)
}

func (c *Collector) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		if data, ok := e.Data.(event.EnemySpawnedData); ok {
			c.spawned.WithLabelValues(data.Kind.String()).Inc()
		}
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyKilledData); ok {
			c.killed.WithLabelValues(data.Kind.String()).Inc()
		}
	case event.DamageDealt:
		if data, ok := e.Data.(event.DamageEvent); ok && data.Amount > 0 {
			c.damage.Add(data.Amount)
		}
	case event.UpgradeChosen:
		if effect, ok := e.Data.(defs.UpgradeEffect); ok {
			c.upgrades.WithLabelValues(effect.Label()).Inc()
		}
	case event.PlayerDied:
		c.deaths.Inc()
	case event.LevelUp:
		if data, ok := e.Data.(event.LevelUpData); ok {
			c.level.Set(float64(data.Level))
		}
	}
}
