// internal/state/shop_state.go
package state

import (
	"fmt"
	"image/color"

	"go-space-fighter/internal/app"
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/input"
	"go-space-fighter/internal/ui"
	"go-space-fighter/pkg/render"
)

const continueLabel = "Continue"

// ShopState - магазин между секторами. Последний пункт возвращает в бой.
type ShopState struct {
	sm       *StateMachine
	game     *app.Game
	previous State
	menu     *ui.Menu
}

func NewShopState(sm *StateMachine, game *app.Game, previous State) *ShopState {
	s := &ShopState{sm: sm, game: game, previous: previous}
	s.rebuild()
	return s
}

// rebuild обновляет подписи: цены растут после каждой покупки.
func (s *ShopState) rebuild() {
	selected := 0
	if s.menu != nil {
		selected = s.menu.Selected
	}
	offers := s.game.Offers()
	labels := make([]string, 0, len(offers)+1)
	for _, o := range offers {
		labels = append(labels, fmt.Sprintf("%s  %d", o.Def.Name, o.Price))
	}
	labels = append(labels, continueLabel)
	s.menu = ui.NewMenu(200, 480, 70, 12, labels...)
	for i, o := range offers {
		s.menu.Buttons[i].Hint = o.Def.Effect
	}
	s.menu.Selected = selected
}

func (s *ShopState) Enter() {}

func (s *ShopState) Update(in input.State) {
	switch {
	case in.Back:
		s.leave()
	case in.MenuUp:
		s.menu.Move(-1)
	case in.MenuDown:
		s.menu.Move(1)
	case in.Confirm:
		offers := s.game.Offers()
		if s.menu.Selected >= len(offers) {
			s.leave()
			return
		}
		if s.game.Purchase(offers[s.menu.Selected].Def.ID) {
			s.rebuild()
		}
	}
}

func (s *ShopState) leave() {
	s.game.LeaveShop()
	s.sm.SetState(s.previous)
}

func (s *ShopState) Draw(screen render.Surface) {
	s.previous.Draw(screen)
	dim(screen)
	title(screen, "UPGRADE SHOP", 90, config.HighlightColor)
	screen.DrawText(fmt.Sprintf("Resources %d", s.game.State().Resources), 22, config.ScreenWidth/2, 150, config.TextColor)

	offers := s.game.Offers()
	s.menu.Draw(screen, func(i int) color.RGBA {
		if i >= len(offers) {
			return config.TextColor
		}
		if offers[i].Affordable {
			return config.AffordColor
		}
		return config.ExpensiveColor
	})
}

func (s *ShopState) Exit() {}
