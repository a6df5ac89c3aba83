package game

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GameResult is the outcome of one headless AI game.
type GameResult struct {
	Game       int     `csv:"game"`
	Mode       string  `csv:"mode"`
	Width      int     `csv:"width"`
	Height     int     `csv:"height"`
	Score      int     `csv:"score"`
	Length     int     `csv:"length"`
	Ticks      int     `csv:"ticks"`
	Won        bool    `csv:"won"`
	Reason     string  `csv:"reason"`
	DurationMs float64 `csv:"duration_ms"`
}

// BotMaster plays AI games without a client, each on its own GameManager.
type BotMaster struct {
	Settings Settings
	Workers  int
	logger   *log.Logger
}

func NewBotMaster(settings Settings, workers int, logger *log.Logger) *BotMaster {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &BotMaster{Settings: settings, Workers: workers, logger: logger}
}

// PlayGame runs one game until it ends, maxTicks is reached (0 = no
// limit) or ctx is done. A non-zero seed is offset by id so every game
// gets different food.
func (bm *BotMaster) PlayGame(ctx context.Context, id int, mode ControlMode, maxTicks int) GameResult {
	settings := bm.Settings
	if settings.Seed != 0 {
		settings.Seed += int64(id)
	}

	gm := NewGameManager(settings, bm.logger.With("game", id))
	gm.HandleIntent(StartIntent{})
	gm.HandleIntent(ToggleModeIntent{Mode: mode})

	started := time.Now()
	s := gm.State()
	for gm.Running() && (maxTicks <= 0 || s.Ticks < maxTicks) && ctx.Err() == nil {
		if err := gm.Step(); err != nil {
			bm.logger.Debug("Bot game ended", "game", id, "error", err)
		}
		s = gm.State()
		// Nobody reads updates here; keep the mailbox from churning.
		for {
			if _, ok := gm.Updates.TryReceive(); !ok {
				break
			}
		}
	}

	reason := s.EndReason
	if s.Status == Running {
		reason = "tick limit"
	}

	return GameResult{
		Game:       id,
		Mode:       mode.String(),
		Width:      s.Width,
		Height:     s.Height,
		Score:      s.Score,
		Length:     s.Snake.Len(),
		Ticks:      s.Ticks,
		Won:        s.Status == Win,
		Reason:     reason,
		DurationMs: float64(time.Since(started).Microseconds()) / 1000,
	}
}

// PlayGames runs games on a pool of Workers goroutines. Results are indexed
// by game id; games not started before ctx was cancelled are left out.
func (bm *BotMaster) PlayGames(ctx context.Context, games int, mode ControlMode, maxTicks int) []GameResult {
	results := make([]GameResult, games)
	played := make([]bool, games)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < bm.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				results[id] = bm.PlayGame(ctx, id, mode, maxTicks)
				played[id] = true
			}
		}()
	}

feed:
	for id := 0; id < games && ctx.Err() == nil; id++ {
		select {
		case jobs <- id:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	finished := results[:0]
	for id, ok := range played {
		if ok {
			finished = append(finished, results[id])
		}
	}
	return finished
}

// Summary aggregates a batch of results.
type Summary struct {
	Games      int
	Wins       int
	MeanScore  float64
	StdScore   float64
	MaxScore   float64
	MeanLength float64
	MeanTicks  float64
}

func Summarize(results []GameResult) Summary {
	summary := Summary{Games: len(results)}
	if len(results) == 0 {
		return summary
	}

	scores := make([]float64, len(results))
	lengths := make([]float64, len(results))
	ticks := make([]float64, len(results))
	for i, r := range results {
		scores[i] = float64(r.Score)
		lengths[i] = float64(r.Length)
		ticks[i] = float64(r.Ticks)
		if r.Won {
			summary.Wins++
		}
	}

	summary.MeanScore = stat.Mean(scores, nil)
	if len(scores) > 1 {
		summary.StdScore = stat.StdDev(scores, nil)
	}
	summary.MaxScore = floats.Max(scores)
	summary.MeanLength = stat.Mean(lengths, nil)
	summary.MeanTicks = stat.Mean(ticks, nil)
	return summary
}
