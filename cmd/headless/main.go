// cmd/headless/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go-space-fighter/internal/app"
	"go-space-fighter/internal/defs"
)

type runResult struct {
	seed  int64
	score int
	combo int
	stats *app.Stats
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var difficulty string
	var configPath string

	flag.IntVar(&runs, "runs", 5, "number of headless runs")
	flag.IntVar(&ticks, "ticks", 36000, "ticks per run (60 per second)")
	flag.Int64Var(&seedBase, "seed-base", 42, "seed for run 1, next runs add 1")
	flag.StringVar(&difficulty, "difficulty", "normal", "easy, normal or hard")
	flag.StringVar(&configPath, "config", "", "optional YAML file with difficulty overrides")
	flag.Parse()

	if runs <= 0 || ticks <= 0 {
		fmt.Println("error: -runs and -ticks must be > 0")
		os.Exit(2)
	}
	if configPath != "" {
		if err := defs.LoadDifficultyTable(configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	diff, err := defs.ParseDifficulty(difficulty)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("=== Headless Space Fighter Report ===\n")
	fmt.Printf("difficulty=%s runs=%d ticks=%d seed_base=%d\n\n", diff, runs, ticks, seedBase)

	results := make([]runResult, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)
		g, stats := app.Simulate(app.Options{Seed: seed, Difficulty: diff}, ticks)
		r := runResult{seed: seed, score: g.State().Score, combo: g.State().MaxCombo, stats: stats}
		results = append(results, r)
		fmt.Printf("run %d seed=%d score=%d max_combo=x%d\n", i+1, r.seed, r.score, r.combo)
		if _, err := stats.WriteTo(os.Stdout); err != nil {
			log.Fatal(err)
		}
		fmt.Println()
	}
	printAggregate(results)
}

func printAggregate(results []runResult) {
	var score, kills, waves, deaths, wins int
	for _, r := range results {
		score += r.score
		kills += r.stats.TotalKills()
		waves += r.stats.WavesCleared
		if r.stats.Died {
			deaths++
		}
		if r.stats.Victory {
			wins++
		}
	}
	n := float64(len(results))
	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("avg_score=%.1f avg_kills=%.1f avg_waves=%.1f deaths=%d victories=%d\n",
		float64(score)/n, float64(kills)/n, float64(waves)/n, deaths, wins)
}
