package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mshel/ouroboros/internal/grid"
	"github.com/Mshel/ouroboros/internal/pathfinding"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// GameManager owns one game and runs its decision loop. Clients talk to it
// only through the Intents and Updates mailboxes. Its methods are not safe
// for concurrent use; when Run is active only the mailboxes may be touched
// from other goroutines.
type GameManager struct {
	Intents *Mailbox[Intent]
	Updates *Mailbox[tea.Msg]

	settings Settings
	state    *GameState
	food     *FoodSpawner
	logger   *log.Logger
}

func NewGameManager(settings Settings, logger *log.Logger) *GameManager {
	if logger == nil {
		logger = log.Default()
	}
	if settings.Finder == nil {
		settings.Finder = pathfinding.FindPath
	}
	if settings.TickInterval <= 0 {
		settings.TickInterval = DefaultTickInterval
	}
	if settings.GrowthPerFood < 1 {
		settings.GrowthPerFood = DefaultGrowthPerFood
	}

	return &GameManager{
		Intents:  NewMailbox[Intent](settings.MailboxSize),
		Updates:  NewMailbox[tea.Msg](settings.MailboxSize),
		settings: settings,
		state:    NewGameState(settings.GridWidth, settings.GridHeight),
		food:     NewFoodSpawner(settings.Seed),
		logger:   logger,
	}
}

// Send posts an intent for the loop. It never blocks.
func (gm *GameManager) Send(intent Intent) {
	if gm.Intents.Post(intent) {
		gm.logger.Warn("Intent mailbox full, dropped oldest intent")
	}
}

func (gm *GameManager) State() *GameState {
	return gm.state
}

func (gm *GameManager) Running() bool {
	return gm.state.Status == Running
}

// Run drives the game until ctx is done. The tick timer is armed only while
// a game is running and re-armed after each tick has been published, so
// ticks never overlap.
func (gm *GameManager) Run(ctx context.Context) error {
	gm.logger.Info("Game loop started.")
	defer gm.logger.Info("Game loop stopped.")

	timer := time.NewTimer(gm.settings.TickInterval)
	defer timer.Stop()
	armed := gm.Running()
	if !armed {
		timer.Stop()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case intent := <-gm.Intents.C():
			gm.HandleIntent(intent)
		case <-timer.C:
			armed = false
			gm.Tick()
		}

		running := gm.Running()
		switch {
		case running && !armed:
			timer.Reset(gm.settings.TickInterval)
			armed = true
		case !running && armed:
			timer.Stop()
			armed = false
		}
	}
}

// HandleIntent applies one client request. A panic while handling it ends
// the game like a failed tick does.
func (gm *GameManager) HandleIntent(intent Intent) {
	err := guard(func() error {
		gm.handleIntent(intent)
		return nil
	})
	if err != nil {
		gm.fail(fmt.Errorf("handling %T: %w", intent, err))
	}
}

func (gm *GameManager) handleIntent(intent Intent) {
	switch in := intent.(type) {
	case StartIntent:
		gm.start(in)

	case StopIntent:
		gm.stop()

	case ReconfigureIntent:
		gm.stop()
		if in.GridWidth*in.GridHeight < 2 {
			gm.logger.Warn("Ignoring reconfigure to an unusable board", "width", in.GridWidth, "height", in.GridHeight)
			return
		}
		gm.settings.GridWidth = in.GridWidth
		gm.settings.GridHeight = in.GridHeight
		gm.state = NewGameState(in.GridWidth, in.GridHeight)
		gm.logger.Info("Board reconfigured", "width", in.GridWidth, "height", in.GridHeight)
		gm.publishState()

	case DirectionIntent:
		if !gm.Running() {
			return
		}
		dir := grid.Direction{Dx: in.Dx, Dy: in.Dy}
		if !dir.IsUnit() {
			gm.logger.Warn("Ignoring direction", "dx", in.Dx, "dy", in.Dy, "error", ErrInvalidMove)
			return
		}
		if gm.state.Mode.IsAI() {
			gm.logger.Info("Player input disabling AI", "mode", gm.state.Mode)
			gm.setMode(PlayerControl)
		}
		gm.state.Snake.UpdateDirection(dir)

	case ToggleModeIntent:
		if !gm.Running() {
			return
		}
		gm.setMode(in.Mode)

	default:
		gm.logger.Warn("Unknown intent", "type", fmt.Sprintf("%T", intent))
	}
}

func (gm *GameManager) start(in StartIntent) {
	if gm.Running() {
		gm.logger.Info("Ignoring start, game already in progress")
		return
	}

	width, height := in.GridWidth, in.GridHeight
	if width <= 0 || height <= 0 {
		width, height = gm.settings.GridWidth, gm.settings.GridHeight
	}
	if width*height < 2 {
		gm.Updates.Post(ErrorMsg{Message: fmt.Sprintf("board %dx%d is too small", width, height)})
		return
	}
	if in.TickInterval > 0 {
		gm.settings.TickInterval = in.TickInterval
	}
	gm.settings.GridWidth, gm.settings.GridHeight = width, height

	state := NewGameState(width, height)
	food, err := gm.food.Spawn(state.Snake.Body, width, height)
	if err != nil {
		gm.Updates.Post(ErrorMsg{Message: err.Error()})
		return
	}
	state.Food = food
	state.Status = Running
	gm.state = state

	gm.logger.Info("Game started", "width", width, "height", height, "tick", gm.settings.TickInterval)
	gm.publishState()
	gm.publishAIStatus()
}

func (gm *GameManager) stop() {
	if gm.state.Status == NotStarted {
		return
	}
	gm.logger.Info("Game stopped", "score", gm.state.Score)
	gm.state.Status = NotStarted
	gm.state.Mode = PlayerControl
	gm.state.ClearPath()
	gm.publishAIStatus()
}

// setMode switches the control mode. The cached path is dropped and the
// next tick computes a fresh one.
func (gm *GameManager) setMode(mode ControlMode) {
	gm.state.Mode = mode
	gm.state.ClearPath()
	gm.publishAIStatus()
}

// Tick runs one step and publishes the result.
func (gm *GameManager) Tick() {
	if !gm.Running() {
		return
	}

	err := gm.Step()
	gm.publishState()

	switch {
	case err == nil:
	case errors.Is(err, ErrTickPanic):
		gm.logger.Error("Tick failed", "error", err)
		gm.Updates.Post(ErrorMsg{Message: err.Error()})
	default:
		gm.logger.Info("Snake died", "error", err, "score", gm.state.Score, "length", gm.state.Snake.Len())
	}

	if gm.state.Status.Finished() {
		gm.publishGameOver()
	}
}

// Step advances the game by one tick without publishing anything. An error
// means the game is over; a win returns nil with Status set to Win.
func (gm *GameManager) Step() error {
	if !gm.Running() {
		return ErrNotRunning
	}
	err := guard(gm.step)
	if err != nil {
		gm.state.Status = GameOver
		gm.state.EndReason = err.Error()
		gm.state.ClearPath()
	}
	return err
}

func (gm *GameManager) step() error {
	s := gm.state
	s.Ticks++

	next, moving, err := gm.nextHead()
	if err != nil {
		return err
	}
	if !moving {
		return nil
	}

	ate := next == s.Food
	grow := 0
	if ate {
		grow = gm.settings.GrowthPerFood
		s.Score++
	}
	s.Snake.Move(next, grow)

	if !s.InBounds(next) || s.Snake.HitsItself() {
		return fmt.Errorf("%w at %v", ErrCollision, next)
	}

	if s.Snake.Len() >= s.Capacity() {
		s.Status = Win
		s.EndReason = ErrBoardFull.Error()
		s.ClearPath()
		return nil
	}

	if ate {
		food, err := gm.food.Spawn(s.Snake.Body, s.Width, s.Height)
		if errors.Is(err, ErrBoardFull) {
			s.Status = Win
			s.EndReason = err.Error()
			s.ClearPath()
			return nil
		}
		s.Food = food
		// Whatever was cached was aimed at the old food.
		if s.Mode.IsAI() {
			s.ClearPath()
		}
	}
	return nil
}

// nextHead picks the cell the head moves to this tick. moving is false when
// the player has not chosen a direction yet.
func (gm *GameManager) nextHead() (next grid.Cell, moving bool, err error) {
	s := gm.state
	head := s.Snake.Head()

	if !s.Mode.IsAI() {
		dir := s.Snake.CurrentDirection
		if dir.IsZero() {
			return grid.Cell{}, false, nil
		}
		next = head.Step(dir)
		if !gm.isSafe(next) {
			return next, false, fmt.Errorf("%w: moved onto %v", ErrCollision, next)
		}
		return next, true, nil
	}

	// A cached path that has gone bad gets exactly one recomputation.
	for attempt := 0; attempt < 2; attempt++ {
		if !s.HasPath() {
			gm.recomputePath()
		}
		step, ok := s.NextPathStep()
		if !ok {
			break
		}

		dir, unit := grid.DirectionBetween(head, step)
		if !unit {
			gm.logger.Warn("Discarding AI path", "error", ErrInvalidMove, "head", head, "step", step)
			s.ClearPath()
			continue
		}
		if !gm.isSafe(step) {
			gm.logger.Warn("AI detected imminent collision, recomputing", "head", head, "step", step)
			s.ClearPath()
			continue
		}

		s.AdvancePath()
		s.Snake.CurrentDirection = dir
		return step, true, nil
	}

	return grid.Cell{}, false, fmt.Errorf("%w at %v", ErrTrapped, head)
}

// recomputePath fills the cache from the fallback chain: the mode's
// strategy, then chasing the tail, then the single most open neighbour.
func (gm *GameManager) recomputePath() {
	s := gm.state
	head, body := s.Snake.Head(), s.Snake.Body

	path := gm.strategyFor(s.Mode).FindPath(head, s.Food, body, s.Width, s.Height)
	source := StrategyPath

	if !gm.usable(head, path) {
		gm.logger.Debug("Strategy found nothing, chasing tail", "mode", s.Mode, "error", ErrNoPathFound)
		path = pathfinding.ChaseTail(head, body, s.Width, s.Height, gm.settings.Finder)
		source = TailPath
	}

	if !gm.usable(head, path) {
		move, ok := pathfinding.SurvivalMove(head, body, s.Snake.Growing(), s.Width, s.Height)
		if ok {
			gm.logger.Debug("No tail path, taking survival move", "move", move)
			path, source = pathfinding.Path{move}, SurvivalPath
		} else {
			path, source = nil, NoPath
		}
	}

	s.SetPath(path, source)
	gm.publishAIStatus()
}

// usable reports whether the first step of path can be taken right now.
func (gm *GameManager) usable(head grid.Cell, path pathfinding.Path) bool {
	if len(path) == 0 {
		return false
	}
	if _, unit := grid.DirectionBetween(head, path[0]); !unit {
		return false
	}
	return gm.isSafe(path[0])
}

// isSafe reports whether the head may enter c this tick. The tail tip is
// free unless the snake is growing.
func (gm *GameManager) isSafe(c grid.Cell) bool {
	return gm.state.InBounds(c) && !gm.state.Snake.Occupies(c)
}

// fail ends the game after an unexpected error and tells the client.
func (gm *GameManager) fail(err error) {
	gm.logger.Error("Game failed", "error", err)
	gm.Updates.Post(ErrorMsg{Message: err.Error()})
	gm.state.Status = GameOver
	gm.state.EndReason = err.Error()
	gm.state.ClearPath()
	gm.publishGameOver()
}

func (gm *GameManager) publishState() {
	gm.Updates.Post(gm.state.Snapshot())
}

func (gm *GameManager) publishAIStatus() {
	gm.Updates.Post(gm.state.AIStatus())
}

func (gm *GameManager) publishGameOver() {
	s := gm.state
	s.Mode = PlayerControl
	gm.Updates.Post(GameOverMsg{
		Score:  s.Score,
		Won:    s.Status == Win,
		Reason: s.EndReason,
	})
	gm.publishAIStatus()
}

// guard turns a panic in fn into an ErrTickPanic error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTickPanic, r)
		}
	}()
	return fn()
}
