// internal/ui/info_panel.go
package ui

import (
	"image"
	"log"
	"time"

	"go-survivors/internal/app"
	"go-survivors/internal/config"
	"go-survivors/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	buttonWidth   = 260
	buttonHeight  = 44
	buttonSpacing = 14
	panelPadding  = 24
	titleHeight   = 30
)

var choiceKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect image.Rectangle
	Text string
}

// UpgradePanel — модальное окно выбора улучшения. Логики игры здесь нет:
// клик по кнопке передаётся в UpgradeSelector.
type UpgradePanel struct {
	fontFace      font.Face
	Buttons       []Button
	lastClickTime time.Time
}

// NewUpgradePanel создаёт панель.
func NewUpgradePanel(face font.Face) *UpgradePanel {
	return &UpgradePanel{fontFace: face}
}

// Layout раскладывает кнопки по центру экрана сверху вниз.
func (p *UpgradePanel) Layout(options []app.UpgradeOption) {
	p.Buttons = p.Buttons[:0]
	total := len(options)*buttonHeight + (len(options)-1)*buttonSpacing
	x := (config.ScreenWidth - buttonWidth) / 2
	y := (config.ScreenHeight-total)/2 + titleHeight/2
	for i, opt := range options {
		top := y + i*(buttonHeight+buttonSpacing)
		p.Buttons = append(p.Buttons, Button{
			Rect: image.Rect(x, top, x+buttonWidth, top+buttonHeight),
			Text: opt.Label,
		})
	}
}

// ButtonAt возвращает индекс кнопки под точкой или -1.
func (p *UpgradePanel) ButtonAt(x, y int) int {
	pt := image.Point{X: x, Y: y}
	for i, b := range p.Buttons {
		if pt.In(b.Rect) {
			return i
		}
	}
	return -1
}

// Update обрабатывает клик мышью или цифровые клавиши.
func (p *UpgradePanel) Update(selector interfaces.UpgradeSelector) {
	if !selector.MenuOpen() {
		return
	}

	index := -1
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if time.Since(p.lastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
			return
		}
		p.lastClickTime = time.Now()
		index = p.ButtonAt(ebiten.CursorPosition())
	}
	for i := range p.Buttons {
		if i < len(choiceKeys) && inpututil.IsKeyJustPressed(choiceKeys[i]) {
			index = i
		}
	}
	if index < 0 {
		return
	}
	if !selector.SelectUpgrade(index) {
		log.Printf("upgrade selection %d rejected", index)
	}
}

// Draw рисует затемнение, заголовок и кнопки с подсветкой под курсором.
func (p *UpgradePanel) Draw(screen *ebiten.Image) {
	if len(p.Buttons) == 0 {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PanelColor, false)

	title := "LEVEL UP! Choose an upgrade"
	bounds := text.BoundString(p.fontFace, title)
	text.Draw(screen, title, p.fontFace, (config.ScreenWidth-bounds.Dx())/2, p.Buttons[0].Rect.Min.Y-panelPadding, config.TextColor)

	hover := p.ButtonAt(ebiten.CursorPosition())
	for i, b := range p.Buttons {
		bg := config.ButtonColor
		if i == hover {
			bg = config.ButtonHover
		}
		r := b.Rect
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, borderColor, false)

		tb := text.BoundString(p.fontFace, b.Text)
		tx := r.Min.X + (r.Dx()-tb.Dx())/2
		ty := r.Min.Y + (r.Dy()+tb.Dy())/2
		text.Draw(screen, b.Text, p.fontFace, tx, ty, config.TextColor)
	}
}
