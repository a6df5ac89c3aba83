package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Mshel/ouroboros/internal/config"
	"github.com/Mshel/ouroboros/internal/game"
	"github.com/Mshel/ouroboros/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("error %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to bubbletea, so logs go to a file.
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Printf("error %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(logFile, log.Options{Level: level, ReportTimestamp: true, Prefix: "runner"})

	settings, err := game.SettingsFromConfig(cfg)
	if err != nil {
		logger.Fatal("Bad settings", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gameManager := game.NewGameManager(settings, logger)
	go gameManager.Run(ctx)

	p := tea.NewProgram(ui.NewControllerModel(gameManager, settings, 0, 0), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error %v", err)
		os.Exit(1)
	}
}
