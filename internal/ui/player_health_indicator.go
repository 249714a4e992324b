// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"go-survivors/internal/app"
	"go-survivors/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	healthBarWidth  = 300
	healthBarHeight = 16
)

// PlayerHealthIndicator отображает здоровье игрока полосой с цветовой зоной.
type PlayerHealthIndicator struct {
	X, Y     float32
	fontFace font.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, fontFace: face}
}

// BandColor возвращает цвет полосы для зоны здоровья.
func BandColor(band app.HealthBand) color.RGBA {
	switch band {
	case app.Healthy:
		return config.HealthyColor
	case app.Wounded:
		return config.WoundedColor
	default:
		return config.CriticalColor
	}
}

// Draw рисует полосу здоровья и подпись current/max.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, current, maxHealth, ratio float64, band app.HealthBand) {
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, borderWidth, borderColor, true)

	fillWidth := float32(float64(healthBarWidth-borderWidth*2) * ratio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, healthBarHeight-borderWidth*2, BandColor(band), true)
	}

	label := fmt.Sprintf("%.0f / %.0f", current, maxHealth)
	text.Draw(screen, label, i.fontFace, int(i.X)+healthBarWidth+8, int(i.Y)+healthBarHeight-3, config.TextColor)
}
