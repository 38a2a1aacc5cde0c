package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// Snapshot is a copy of the game together with the focus hint of the last command.
type Snapshot struct {
	Game  entity.Game
	Focus int
}

type GameUseCase interface {
	Dispatch(ctx context.Context, cmd Command) Snapshot
	Snapshot(ctx context.Context) Snapshot
}

// gameUseCase owns the only game of the process.
// HTTP handlers run concurrently, so every access goes through mu.
type gameUseCase struct {
	logger *slog.Logger

	mu    sync.Mutex
	game  entity.Game
	focus int
}

func NewGameUseCase(logger *slog.Logger) GameUseCase {
	return &gameUseCase{
		logger: logger.With("component", "usecase"),
		game:   entity.NewGame(),
		focus:  NoFocus,
	}
}

func (that *gameUseCase) Dispatch(ctx context.Context, cmd Command) Snapshot {
	log := that.logger.With("method", "Dispatch", "action", cmd.Action)

	if !cmd.IsKnown() {
		log.WarnContext(ctx, "command ignored", "error", apperror.ErrUnknownAction)
		return that.Snapshot(ctx)
	}

	if cmd.Action == ActionActivateCell && !entity.IsValidCell(cmd.Cell) {
		log.WarnContext(ctx, "cell ignored", "error", fmt.Errorf("%w: %d", apperror.ErrInvalidCell, cmd.Cell))
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	before := that.game
	that.game, that.focus = Update(that.game, cmd)

	switch {
	case cmd.Action != ActionActivateCell:
		log.InfoContext(ctx, "game reset", "hard", cmd.Action == ActionNewMatch, "moves_discarded", before.MoveCount)
	case that.game == before:
		log.DebugContext(ctx, "move rejected", "cell", cmd.Cell, "status", before.Status())
	default:
		log.DebugContext(ctx, "move applied", "cell", cmd.Cell, "mark", before.Turn, "move_count", that.game.MoveCount)
		if that.game.IsFinished() {
			log.InfoContext(ctx, "game finished", "status", that.game.Status(), "winner", that.game.Winner)
		}
	}

	return Snapshot{Game: that.game, Focus: that.focus}
}

func (that *gameUseCase) Snapshot(_ context.Context) Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return Snapshot{Game: that.game, Focus: that.focus}
}
