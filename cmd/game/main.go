// cmd/game/main.go
package main

import (
	"flag"
	"log"

	"go-space-fighter/internal/app"
	"go-space-fighter/internal/assets"
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/defs"
	"go-space-fighter/internal/input"
	"go-space-fighter/internal/state"
	"go-space-fighter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGame = false // true - начинать с игры, false - с меню

type AppGame struct {
	stateMachine *state.StateMachine
	keyboard     *input.Keyboard
	fonts        *assets.FontManager
}

func (a *AppGame) Update() error {
	a.stateMachine.Update(a.keyboard.Read())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	a.stateMachine.Draw(render.NewScreen(screen, a.fonts))
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "RNG seed, 0 - from the clock")
	difficulty := flag.String("difficulty", "normal", "easy, normal or hard")
	endless := flag.Bool("endless", false, "keep playing after the final sector")
	configPath := flag.String("config", "", "optional YAML file with difficulty overrides")
	fontPath := flag.String("font", "", "optional TTF font, built-in Go Regular by default")
	flag.Parse()

	if *configPath != "" {
		if err := defs.LoadDifficultyTable(*configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	diff, err := defs.ParseDifficulty(*difficulty)
	if err != nil {
		log.Fatal(err)
	}
	fonts, err := assets.LoadFontManager(*fontPath)
	if err != nil {
		log.Fatal(err)
	}
	defer fonts.Cleanup()

	game := app.NewGame(app.Options{Seed: *seed, Difficulty: diff, Endless: *endless})
	sm := state.NewStateMachine() // Создаём машину состояний
	if startFromGame {
		game.Start(diff)
		sm.SetState(state.NewGameState(sm, game))
	} else {
		sm.SetState(state.NewMenuState(sm, game))
	}

	a := &AppGame{
		stateMachine: sm,
		keyboard:     input.NewKeyboard(),
		fonts:        fonts,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Space Fighter")
	ebiten.SetTPS(config.TickRate)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
