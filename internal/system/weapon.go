// internal/system/weapon.go
package system

import (
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/utils"
	vec "go-survivors/pkg/utils"
)

// WeaponSystem стреляет веером снарядов в ближайшего врага по фиксированному таймеру.
type WeaponSystem struct {
	ecs   *entity.ECS
	cfg   config.Config
	timer *RepeatingTimer
}

func NewWeaponSystem(ecs *entity.ECS, cfg config.Config) *WeaponSystem {
	return &WeaponSystem{
		ecs:   ecs,
		cfg:   cfg,
		timer: NewRepeatingTimer(cfg.WeaponInterval),
	}
}

func (s *WeaponSystem) Update(deltaTime float64) {
	if !s.timer.Tick(deltaTime) {
		return
	}
	playerPos, ok := s.ecs.PlayerPosition()
	if !ok {
		return
	}
	origin := playerPos.Vec()

	base := vec.UnitX
	if _, enemyPos, found := findNearestEnemy(s.ecs, origin); found {
		base = enemyPos.Sub(origin).NormalizeOrZero()
	}

	weapon := s.ecs.Weapon
	for _, dir := range FireDirections(base, weapon.Multishot, weapon.SpreadDegrees) {
		SpawnProjectile(s.ecs, origin, dir, weapon.ShotKind, s.cfg.ProjectileDamage)
	}
}

// FireDirections раскладывает multishot направлений веером шириной spreadDegrees
// симметрично вокруг base. multishot меньше 1 считается за 1.
func FireDirections(base vec.Vec2, multishot int, spreadDegrees float64) []vec.Vec2 {
	count := multishot
	if count < 1 {
		count = 1
	}
	step := 0.0
	if count > 1 {
		step = utils.DegToRad(spreadDegrees) / float64(count-1)
	}

	dirs := make([]vec.Vec2, 0, count)
	center := float64(count-1) / 2
	for i := 0; i < count; i++ {
		offset := step * (float64(i) - center)
		dirs = append(dirs, base.Rotate(offset).NormalizeOrZero())
	}
	return dirs
}
