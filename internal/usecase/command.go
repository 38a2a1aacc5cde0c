package usecase

import (
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
)

const (
	ActionActivateCell = "cell:activate"
	ActionRestart      = "game:restart"
	ActionNewMatch     = "game:new-match"

	// NoFocus means the view should not move keyboard focus.
	NoFocus = -1
)

// Command is a single user input.
type Command struct {
	Action string `json:"action"`
	Cell   int    `json:"cell,omitempty"`
}

func ActivateCell(cell int) Command {
	return Command{Action: ActionActivateCell, Cell: cell}
}

func Restart() Command {
	return Command{Action: ActionRestart}
}

func NewMatch() Command {
	return Command{Action: ActionNewMatch}
}

type commandHandler func(game entity.Game, cmd Command) (entity.Game, int)

var handlers = map[string]commandHandler{
	ActionActivateCell: handleActivateCell,
	ActionRestart:      handleReset(false),
	ActionNewMatch:     handleReset(true),
}

// IsKnown reports whether the action has a handler.
func (that Command) IsKnown() bool {
	_, ok := handlers[that.Action]
	return ok
}

// Update applies cmd to game and returns the next game together with the cell
// that should receive keyboard focus. Unknown actions leave the game as is.
func Update(game entity.Game, cmd Command) (entity.Game, int) {
	handler, ok := handlers[cmd.Action]
	if !ok {
		return game, NoFocus
	}

	return handler(game, cmd)
}

// handleActivateCell keeps focus on the activated cell so keyboard play
// continues from the same position after a re-render.
func handleActivateCell(game entity.Game, cmd Command) (entity.Game, int) {
	if !entity.IsValidCell(cmd.Cell) {
		return game, NoFocus
	}

	return tictactoe.ApplyMove(game, cmd.Cell), cmd.Cell
}

func handleReset(hard bool) commandHandler {
	return func(_ entity.Game, _ Command) (entity.Game, int) {
		return tictactoe.Reset(hard), 0
	}
}
