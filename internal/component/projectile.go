// internal/component/projectile.go
package component

import (
	"go-survivors/internal/defs"
	"go-survivors/pkg/utils"
)

// Projectile представляет летящий снаряд.
// Direction фиксируется при выстреле и больше не перенацеливается.
type Projectile struct {
	Direction utils.Vec2
	Kind      defs.ProjectileKind
	Damage    float64
}
