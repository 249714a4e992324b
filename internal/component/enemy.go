// internal/component/enemy.go
package component

import "go-survivors/internal/defs"

// Enemy представляет вражескую сущность.
type Enemy struct {
	Kind defs.EnemyKind
}
