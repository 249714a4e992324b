// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"go-survivors/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// PlayerLevelIndicator отображает уровень и полосу опыта игрока.
type PlayerLevelIndicator struct {
	X, Y     float32
	fontFace font.Face
}

const (
	xpBarWidth  = 300
	xpBarHeight = 12
	borderWidth = 1
)

var borderColor = color.White

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32, face font.Face) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y, fontFace: face}
}

// Draw отрисовывает индикатор. fill уже ограничен [0, 1].
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level int, fill float64) {
	// 1. Обводка
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, borderColor, true)

	// 2. Заполненная часть
	fillWidth := float32(float64(xpBarWidth-borderWidth*2) * fill)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, config.XPBarColor, true)
	}

	// 3. Номер уровня справа от полосы
	label := fmt.Sprintf("Lv %d", level)
	text.Draw(screen, label, i.fontFace, int(i.X)+xpBarWidth+8, int(i.Y)+xpBarHeight-1, config.TextColor)
}
