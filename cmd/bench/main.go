package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/Mshel/ouroboros/internal/config"
	"github.com/Mshel/ouroboros/internal/game"
	"github.com/charmbracelet/log"
	"github.com/gocarina/gocsv"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	games := flag.Int("games", 0, "number of games to play (overrides bench.games)")
	mode := flag.String("mode", "", "astar or longestPath (overrides bench.mode)")
	output := flag.String("out", "", "CSV output path (overrides bench.output)")
	workers := flag.Int("workers", runtime.NumCPU(), "concurrent games")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Could not load config", "error", err)
	}
	if *games > 0 {
		cfg.Bench.Games = *games
	}
	if *mode != "" {
		cfg.Bench.Mode = *mode
	}
	if *output != "" {
		cfg.Bench.Output = *output
	}

	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}
	logger := log.WithPrefix("bench")

	controlMode, err := game.ParseControlMode(cfg.Bench.Mode)
	if err != nil || !controlMode.IsAI() {
		logger.Fatal("Bench needs an AI mode", "mode", cfg.Bench.Mode)
	}

	settings, err := game.SettingsFromConfig(cfg)
	if err != nil {
		logger.Fatal("Bad settings", "error", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting bench", "games", cfg.Bench.Games, "mode", controlMode, "width", settings.GridWidth, "height", settings.GridHeight)
	start := time.Now()
	results := game.NewBotMaster(settings, *workers, logger).PlayGames(ctx, cfg.Bench.Games, controlMode, cfg.Bench.MaxTicks)

	out, err := os.Create(cfg.Bench.Output)
	if err != nil {
		logger.Fatal("Could not create output", "error", err)
	}
	defer out.Close()
	if err := gocsv.Marshal(results, out); err != nil {
		logger.Fatal("Could not write results", "error", err)
	}

	summary := game.Summarize(results)
	logger.Info("Bench finished",
		"elapsed", time.Since(start).Round(time.Millisecond),
		"games", summary.Games,
		"wins", summary.Wins,
		"mean_score", summary.MeanScore,
		"std_score", summary.StdScore,
		"max_score", summary.MaxScore,
		"mean_length", summary.MeanLength,
		"mean_ticks", summary.MeanTicks,
		"output", cfg.Bench.Output,
	)
}
