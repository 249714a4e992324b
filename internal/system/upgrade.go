// internal/system/upgrade.go
package system

import (
	"log"

	"go-survivors/internal/component"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/utils"
)

// UpgradeSystem — конечный автомат меню улучшений (Closed/Open).
type UpgradeSystem struct {
	ecs    *entity.ECS
	rng    *utils.PRNGService
	queues *event.Queues
}

func NewUpgradeSystem(ecs *entity.ECS, rng *utils.PRNGService, queues *event.Queues) *UpgradeSystem {
	return &UpgradeSystem{ecs: ecs, rng: rng, queues: queues}
}

// Update открывает меню на первое повышение уровня в тике.
// Повышения, пришедшие при открытом меню, теряются.
func (s *UpgradeSystem) Update(deltaTime float64) {
	menu := s.ecs.Menu
	for range s.queues.LevelUp {
		if menu.State == component.MenuOpen {
			continue
		}
		menu.State = component.MenuOpen
		menu.Offered = s.rollOptions()
		menu.Generation++
	}
}

// rollOptions перемешивает каталог и берёт первые UpgradeChoices вариантов.
func (s *UpgradeSystem) rollOptions() []defs.UpgradeEffect {
	pool := make([]defs.UpgradeEffect, len(defs.UpgradeCatalog))
	copy(pool, defs.UpgradeCatalog)
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	n := defs.UpgradeChoices
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}

// Select применяет вариант с индексом index и закрывает меню.
// При закрытом меню или неверном индексе ничего не меняет.
func (s *UpgradeSystem) Select(index int) (defs.UpgradeEffect, bool) {
	menu := s.ecs.Menu
	if menu.State != component.MenuOpen || index < 0 || index >= len(menu.Offered) {
		return defs.UpgradeEffect{}, false
	}
	effect := menu.Offered[index]
	ApplyUpgrade(s.ecs.Weapon, s.ecs.XP, effect)
	menu.State = component.MenuClosed
	menu.Offered = nil
	return effect, true
}

// ApplyUpgrade меняет параметры оружия или опыта согласно варианту.
func ApplyUpgrade(weapon *component.WeaponStats, xp *component.PlayerXP, effect defs.UpgradeEffect) {
	switch effect.Kind {
	case defs.IncreaseMultishot:
		weapon.Multishot += effect.Count
		if weapon.Multishot < 1 {
			weapon.Multishot = 1
		}
	case defs.IncreaseSpread:
		weapon.SpreadDegrees += effect.Amount
	case defs.IncreaseProjectileSpeed:
		weapon.ProjectileSpeed += effect.Amount
	case defs.IncreaseMoveSpeed:
		// Скорость игрока этим улучшением не меняется.
		log.Printf("upgrade: %s has no effect", effect.Label())
	case defs.IncreaseXPGain:
		xp.OrbValue += effect.Count
	case defs.ChangeShotKind:
		weapon.ShotKind = effect.Shot
	default:
		log.Printf("upgrade: unknown effect kind %d", effect.Kind)
	}
}
