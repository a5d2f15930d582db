// internal/app/headless.go
package app

import (
	"go-space-fighter/internal/clock"
	"go-space-fighter/internal/component"
	"go-space-fighter/internal/config"
)

// FrameMillis - длительность кадра при фиксированных 60 Гц.
const FrameMillis = 1000 / config.TickRate

// Simulate прогоняет забег без окна: автопилот играет, в магазине скупает всё,
// что по карману. Останавливается на гибели, победе или по исчерпании тиков.
func Simulate(opts Options, ticks int) (*Game, *Stats) {
	clk := clock.NewManual(0)
	opts.Clock = clk
	g := NewGame(opts)
	g.Start(opts.Difficulty)
	pilot := NewAutopilot(g)

	for i := 0; i < ticks; i++ {
		switch g.State().Phase {
		case component.PhaseShop:
			g.shopSpree()
			g.LeaveShop()
		case component.PhaseGameOver, component.PhaseVictory:
			return g, g.Stats
		}
		g.Tick(pilot.Read())
		clk.Advance(FrameMillis)
	}
	return g, g.Stats
}

// shopSpree покупает доступные улучшения по кругу, пока хоть что-то покупается.
func (g *Game) shopSpree() {
	for bought := true; bought; {
		bought = false
		for _, offer := range g.Offers() {
			if offer.Affordable && g.Purchase(offer.Def.ID) {
				bought = true
			}
		}
	}
}
