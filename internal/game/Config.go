package game

import (
	"fmt"
	"time"

	"github.com/Mshel/ouroboros/internal/config"
	"github.com/Mshel/ouroboros/internal/pathfinding"
)

const (
	DefaultGridWidth     = 40
	DefaultGridHeight    = 30
	DefaultTickInterval  = 80 * time.Millisecond
	DefaultGrowthPerFood = 1
	DefaultMailboxSize   = 64
)

// Settings are the knobs of one GameManager.
type Settings struct {
	GridWidth     int
	GridHeight    int
	TickInterval  time.Duration
	GrowthPerFood int
	// Seed drives food placement. 0 seeds from the clock.
	Seed        int64
	MailboxSize int

	Finder   pathfinding.Finder
	Tunables pathfinding.Tunables
}

func DefaultSettings() Settings {
	return Settings{
		GridWidth:     DefaultGridWidth,
		GridHeight:    DefaultGridHeight,
		TickInterval:  DefaultTickInterval,
		GrowthPerFood: DefaultGrowthPerFood,
		MailboxSize:   DefaultMailboxSize,
		Finder:        pathfinding.FindPath,
		Tunables:      pathfinding.DefaultTunables,
	}
}

// SettingsFromConfig resolves the game and ai sections of cfg.
func SettingsFromConfig(cfg *config.Config) (Settings, error) {
	finder, err := pathfinding.FinderByName(cfg.AI.Search)
	if err != nil {
		return Settings{}, fmt.Errorf("ai.search: %w", err)
	}

	return Settings{
		GridWidth:     cfg.Game.GridWidth,
		GridHeight:    cfg.Game.GridHeight,
		TickInterval:  cfg.Game.TickInterval(),
		GrowthPerFood: cfg.Game.GrowthPerFood,
		Seed:          cfg.Game.Seed,
		MailboxSize:   cfg.Game.MailboxSize,
		Finder:        finder,
		Tunables: pathfinding.Tunables{
			MinFreeSpace: cfg.AI.MinFreeSpace,
			GrowthFactor: cfg.AI.GrowthFactor,
		},
	}, nil
}
