// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// enemyOverride — запись файла с параметрами врагов. Нулевые поля не меняются.
type enemyOverride struct {
	Name      string  `yaml:"name"`
	Speed     float64 `yaml:"speed"`
	MaxHealth float64 `yaml:"max_health"`
}

// LoadEnemyDefinitions reads a YAML list of enemy overrides and applies it to EnemyLibrary.
// The file is validated as a whole; on error the library is left untouched.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var overrides []enemyOverride
	if err := yaml.Unmarshal(file, &overrides); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	updated := make(map[EnemyKind]EnemyDefinition, len(EnemyLibrary))
	for kind, def := range EnemyLibrary {
		updated[kind] = def
	}
	for _, o := range overrides {
		kind, ok := enemyKindByName(o.Name)
		if !ok {
			return fmt.Errorf("unknown enemy %q in %s", o.Name, path)
		}
		if o.Speed < 0 || o.MaxHealth < 0 {
			return fmt.Errorf("enemy %q: speed and max_health must not be negative", o.Name)
		}
		def := updated[kind]
		if o.Speed > 0 {
			def.Speed = o.Speed
		}
		if o.MaxHealth > 0 {
			def.MaxHealth = o.MaxHealth
		}
		updated[kind] = def
	}

	EnemyLibrary = updated
	log.Printf("Loaded %d enemy overrides", len(overrides))
	return nil
}

func enemyKindByName(name string) (EnemyKind, bool) {
	for kind, def := range EnemyLibrary {
		if strings.EqualFold(def.Name, name) {
			return kind, true
		}
	}
	return 0, false
}
