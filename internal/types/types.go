// internal/types/types.go
package types

import "fmt"

// EntityID — дескриптор сущности: индекс слота в арене и поколение слота.
// После деспавна поколение слота растёт, и старые дескрипторы перестают
// находиться. Нулевое значение никогда не выдаётся.
type EntityID struct {
	Index      uint32
	Generation uint32
}

// IsZero сообщает, что дескриптор не указывает ни на какую сущность.
func (id EntityID) IsZero() bool {
	return id.Generation == 0
}

func (id EntityID) String() string {
	return fmt.Sprintf("%d@%d", id.Index, id.Generation)
}
