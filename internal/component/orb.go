// internal/component/orb.go
package component

// Orb — сфера опыта, выпавшая из врага.
type Orb struct{}
