// internal/defs/upgrades.go
package defs

import (
	"fmt"
	"strconv"
)

// EffectKind — тег варианта улучшения.
type EffectKind int

const (
	IncreaseMultishot EffectKind = iota
	IncreaseSpread
	IncreaseProjectileSpeed
	IncreaseMoveSpeed
	IncreaseXPGain
	ChangeShotKind
)

// UpgradeEffect — вариант улучшения. Используется только поле, подходящее к Kind:
// Count для Multishot/XPGain, Amount для Spread/ProjectileSpeed/MoveSpeed, Shot для ChangeShotKind.
type UpgradeEffect struct {
	Kind   EffectKind
	Count  int
	Amount float64
	Shot   ProjectileKind
}

// Label возвращает подпись кнопки улучшения.
func (u UpgradeEffect) Label() string {
	switch u.Kind {
	case IncreaseMultishot:
		return fmt.Sprintf("+%d Multishot", u.Count)
	case IncreaseSpread:
		return fmt.Sprintf("+%s° Spread", formatAmount(u.Amount))
	case IncreaseProjectileSpeed:
		return fmt.Sprintf("+%s Shot Speed", formatAmount(u.Amount))
	case IncreaseMoveSpeed:
		return fmt.Sprintf("+%s Move Speed", formatAmount(u.Amount))
	case IncreaseXPGain:
		return fmt.Sprintf("+%d XP per Orb", u.Count)
	case ChangeShotKind:
		return u.Shot.String() + " Shot"
	default:
		return "Unknown"
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// UpgradeCatalog — фиксированный каталог из 8 улучшений.
var UpgradeCatalog = []UpgradeEffect{
	{Kind: IncreaseMultishot, Count: 1},
	{Kind: IncreaseSpread, Amount: 10},
	{Kind: IncreaseProjectileSpeed, Amount: 100},
	{Kind: IncreaseMoveSpeed, Amount: 50},
	{Kind: IncreaseXPGain, Count: 1},
	{Kind: ChangeShotKind, Shot: ShotFireball},
	{Kind: ChangeShotKind, Shot: ShotIce},
	{Kind: ChangeShotKind, Shot: ShotPiercing},
}

// UpgradeChoices — сколько улучшений предлагается за один уровень.
const UpgradeChoices = 3
