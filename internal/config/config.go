// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	PlayerRadius     = 16.0
	EnemyRadius      = 14.0
	ProjectileRadius = 5.0
	OrbRadius        = 4.0

	// Формула сложности: interval = max(floor, DifficultyBase + DifficultyScale/(t+DifficultyScale))
	DifficultyBase  = 0.25
	DifficultyScale = 100.0

	ClickCooldown = 200 // мс
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	PlayerColor     = color.RGBA{50, 205, 50, 255}
	OrbColor        = color.RGBA{51, 153, 255, 255}
	HealthyColor    = color.RGBA{50, 205, 50, 255}
	WoundedColor    = color.RGBA{230, 200, 40, 255}
	CriticalColor   = color.RGBA{220, 60, 60, 255}
	XPBarColor      = color.RGBA{51, 179, 255, 255}
	PanelColor      = color.RGBA{0, 0, 0, 204}
	ButtonColor     = color.RGBA{64, 64, 64, 255}
	ButtonHover     = color.RGBA{96, 96, 96, 255}
	TextColor       = color.RGBA{240, 240, 240, 255}
)

// ErrInvalidConfig оборачивает все ошибки валидации конфигурации.
var ErrInvalidConfig = errors.New("invalid config")

// Config — набор настраиваемых констант симуляции.
type Config struct {
	HitRadius          float64 `yaml:"hit_radius"`
	AoeRadius          float64 `yaml:"aoe_radius"`
	OrbCollectRadius   float64 `yaml:"orb_collect_radius"`
	OrbAttractRadius   float64 `yaml:"orb_attract_radius"`
	OrbAttractSpeed    float64 `yaml:"orb_attract_speed"`
	SpawnRingMin       float64 `yaml:"spawn_ring_min"`
	SpawnRingMax       float64 `yaml:"spawn_ring_max"`
	WeaponInterval     float64 `yaml:"weapon_interval"`
	SpawnIntervalFloor float64 `yaml:"spawn_interval_floor"`
	ContactDamage      float64 `yaml:"contact_damage"`
	DamageCooldown     float64 `yaml:"damage_cooldown"`

	ProjectileDamage    float64 `yaml:"projectile_damage"`
	ProjectileCullRange float64 `yaml:"projectile_cull_range"`

	PlayerMaxHealth float64 `yaml:"player_max_health"`
	PlayerMoveSpeed float64 `yaml:"player_move_speed"`

	// XPOverflowLoop — переносить опыт через несколько порогов за один сбор.
	XPOverflowLoop bool `yaml:"xp_overflow_loop"`

	// Seed для PRNG; 0 — от текущего времени.
	Seed int64 `yaml:"seed"`
}

// Default возвращает встроенную конфигурацию.
func Default() Config {
	return Config{
		HitRadius:           20,
		AoeRadius:           50,
		OrbCollectRadius:    20,
		OrbAttractRadius:    150,
		OrbAttractSpeed:     200,
		SpawnRingMin:        300,
		SpawnRingMax:        400,
		WeaponInterval:      0.5,
		SpawnIntervalFloor:  0.1,
		ContactDamage:       10,
		DamageCooldown:      0.5,
		ProjectileDamage:    10,
		ProjectileCullRange: 1200,
		PlayerMaxHealth:     100,
		PlayerMoveSpeed:     200,
	}
}

// Validate проверяет инварианты конфигурации.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"hit_radius", c.HitRadius},
		{"aoe_radius", c.AoeRadius},
		{"orb_collect_radius", c.OrbCollectRadius},
		{"orb_attract_radius", c.OrbAttractRadius},
		{"spawn_ring_max", c.SpawnRingMax},
		{"weapon_interval", c.WeaponInterval},
		{"spawn_interval_floor", c.SpawnIntervalFloor},
		{"damage_cooldown", c.DamageCooldown},
		{"projectile_cull_range", c.ProjectileCullRange},
		{"player_max_health", c.PlayerMaxHealth},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.SpawnRingMin < 0 || c.SpawnRingMin >= c.SpawnRingMax {
		return fmt.Errorf("%w: spawn ring [%v, %v) is empty", ErrInvalidConfig, c.SpawnRingMin, c.SpawnRingMax)
	}
	if c.OrbCollectRadius > c.OrbAttractRadius {
		return fmt.Errorf("%w: orb_collect_radius %v exceeds orb_attract_radius %v", ErrInvalidConfig, c.OrbCollectRadius, c.OrbAttractRadius)
	}
	if c.ContactDamage < 0 || c.ProjectileDamage < 0 || c.OrbAttractSpeed < 0 || c.PlayerMoveSpeed < 0 {
		return fmt.Errorf("%w: damage and speed values must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Load читает YAML файл конфигурации поверх встроенных значений.
// Если path == "", пытается прочитать из ENV GAME_CONFIG; без файла возвращает Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv("GAME_CONFIG")
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
